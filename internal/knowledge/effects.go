// Effect string grammar. Raw effect tokens come from rule files and event
// choices in four typed forms:
//
//	+legitimacy.law = 5
//	-region.unrest = 10
//	+ambition.faith = 0.05
//	-modifier.ruthless = 0.1
//
// Anything that doesn't match stays an opaque string effect. Lenient on
// purpose: unrecognized or future effect vocabulary must not break loading.
package knowledge

import (
	"strconv"
	"strings"
)

// EffectKind discriminates the effect union.
type EffectKind string

const (
	EffectOpaque     EffectKind = "opaque"
	EffectLegitimacy EffectKind = "legitimacy"
	EffectRegion     EffectKind = "region"
	EffectAmbition   EffectKind = "ambition"
	EffectModifier   EffectKind = "modifier"
)

// Effect is one tagged effect. Raw always carries the original token so
// opaque effects round-trip unchanged and typed effects stay debuggable.
type Effect struct {
	Kind   EffectKind `json:"kind"`
	Raw    string     `json:"raw"`
	Target string     `json:"target,omitempty"`
	Delta  float64    `json:"delta,omitempty"`
}

// ParseEffect pattern-matches one raw token. Malformed tokens (missing sign,
// missing target, unparsable number) degrade to EffectOpaque.
func ParseEffect(raw string) Effect {
	opaque := Effect{Kind: EffectOpaque, Raw: raw}

	tok := strings.TrimSpace(raw)
	if len(tok) < 2 {
		return opaque
	}

	sign := 1.0
	switch tok[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return opaque
	}

	body, num, ok := strings.Cut(tok[1:], "=")
	if !ok {
		return opaque
	}
	delta, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return opaque
	}

	scope, target, ok := strings.Cut(strings.TrimSpace(body), ".")
	if !ok {
		return opaque
	}
	scope = strings.TrimSpace(scope)
	target = strings.TrimSpace(target)
	if target == "" {
		return opaque
	}

	var kind EffectKind
	switch scope {
	case "legitimacy":
		kind = EffectLegitimacy
	case "region":
		kind = EffectRegion
	case "ambition":
		kind = EffectAmbition
	case "modifier":
		kind = EffectModifier
	default:
		return opaque
	}

	return Effect{Kind: kind, Raw: raw, Target: target, Delta: sign * delta}
}

// ParseEffects maps ParseEffect over a token list.
func ParseEffects(raw []string) []Effect {
	if len(raw) == 0 {
		return nil
	}
	out := make([]Effect, len(raw))
	for i, tok := range raw {
		out[i] = ParseEffect(tok)
	}
	return out
}
