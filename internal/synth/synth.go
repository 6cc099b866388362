// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package synth derives placeholder values from a free-text prompt.
// The default implementation is a set of string heuristics; an AI-backed
// implementation can be swapped in without the façade noticing.
package synth

import "context"

// Synthesizer produces a value for each placeholder name given a user
// prompt. Implementations must return an entry for every requested name —
// a caller is entitled to substitute all of them.
type Synthesizer interface {
	Synthesize(ctx context.Context, prompt string, names []string) (map[string]string, error)
}
