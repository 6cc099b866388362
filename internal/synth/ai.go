// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package synth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"adforge/internal/ai"
)

// aiSystemPrompt instructs the model to return one value per placeholder
// as a flat JSON object. Anything else in the reply is discarded.
const aiSystemPrompt = `You write short marketing copy for design templates.
Given a description of the desired flyer or ad and a list of placeholder
names, reply with ONLY a flat JSON object mapping every placeholder name to
a concise string value appropriate for that slot. No code fences, no
commentary, no nested objects.`

// AI synthesizes placeholder values with the active LLM provider, falling
// back to the heuristic synthesizer when the provider fails or returns
// something unusable. Generation must never fail just because the model
// had a bad day.
type AI struct {
	registry *ai.Registry
	fallback *Heuristic
}

// NewAI returns an LLM-backed synthesizer over the given provider registry.
func NewAI(registry *ai.Registry) *AI {
	return &AI{
		registry: registry,
		fallback: NewHeuristic(),
	}
}

// Synthesize asks the active provider for placeholder values. Placeholders
// the model omits, and any provider or parse failure, are served by the
// heuristic rules instead.
func (a *AI) Synthesize(ctx context.Context, prompt string, names []string) (map[string]string, error) {
	if len(names) == 0 {
		return map[string]string{}, nil
	}

	userPrompt := fmt.Sprintf("Design brief: %s\n\nPlaceholders: %s",
		prompt, strings.Join(names, ", "))

	reply, err := a.registry.Generate(ctx, aiSystemPrompt, userPrompt)
	if err != nil {
		slog.Warn("ai synthesis failed, using heuristics", "error", err)
		return a.fallback.Synthesize(ctx, prompt, names)
	}

	parsed, err := parseValues(reply)
	if err != nil {
		slog.Warn("ai synthesis returned unusable reply, using heuristics", "error", err)
		return a.fallback.Synthesize(ctx, prompt, names)
	}

	// Take the model's value when present; heuristics cover the rest so
	// every requested name has an entry.
	values := make(map[string]string, len(names))
	for _, name := range names {
		if v, ok := parsed[name]; ok && strings.TrimSpace(v) != "" {
			values[name] = strings.TrimSpace(v)
			continue
		}
		values[name] = a.fallback.valueFor(name, strings.TrimSpace(prompt))
	}
	return values, nil
}

// parseValues extracts a flat string map from the model reply, tolerating
// code fences and surrounding prose.
func parseValues(reply string) (map[string]string, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in reply")
	}

	var values map[string]string
	if err := json.Unmarshal([]byte(reply[start:end+1]), &values); err != nil {
		return nil, fmt.Errorf("decode values: %w", err)
	}
	return values, nil
}
