// Package ambition turns free-text player ambitions into a weighted profile
// across six narrative domains, and carries that profile through the game as
// an append-only, generation-counted value.
package ambition

// Canonical domain and modifier names, in scoring order.
var (
	DomainNames = []string{"power", "wealth", "faith", "virtue", "freedom", "creation"}

	ModifierNames = []string{"peaceful", "ruthless", "ascetic", "opulent", "secretive", "charismatic"}
)

// Scale describes how far the ambition reaches. The three weights sum to 1.0.
type Scale struct {
	Local    float64 `json:"local"`
	Regional float64 `json:"regional"`
	World    float64 `json:"world"`
}

// Mutation records one change to the profile. The log is append-only.
type Mutation struct {
	Tick           uint64             `json:"tick"`
	ActionID       string             `json:"action_id"`
	DomainDeltas   map[string]float64 `json:"domain_deltas,omitempty"`
	ModifierDeltas map[string]float64 `json:"modifier_deltas,omitempty"`
	Reason         string             `json:"reason"`
}

// Profile is the parsed ambition. Domains always sum to 1.0 (within 1e-3),
// modifiers sit independently in [0,1]. Profiles are value-semantics: Mutate
// returns a new Profile and never edits the receiver's maps.
type Profile struct {
	Domains    map[string]float64 `json:"domains"`
	Modifiers  map[string]float64 `json:"modifiers"`
	Scale      Scale              `json:"scale"`
	Archetypes []string           `json:"archetypes,omitempty"`
	Virtues    []string           `json:"virtues,omitempty"`
	Source     string             `json:"source"`
	Generation int                `json:"generation"`
	Mutations  []Mutation         `json:"mutations,omitempty"`
}

// Dominant returns domain names sorted by descending weight. Ties keep the
// canonical domain order so the result is stable across calls.
func (p Profile) Dominant() []string {
	out := make([]string, len(DomainNames))
	copy(out, DomainNames)
	// Insertion sort: six elements, stability matters more than speed.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && p.Domains[out[j]] > p.Domains[out[j-1]]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// HasArchetype reports whether the parsed text implied the named archetype.
func (p Profile) HasArchetype(name string) bool {
	for _, a := range p.Archetypes {
		if a == name {
			return true
		}
	}
	return false
}

// HasVirtue reports whether the parsed text implied the named virtue.
func (p Profile) HasVirtue(name string) bool {
	for _, v := range p.Virtues {
		if v == name {
			return true
		}
	}
	return false
}

// Mutate applies additive deltas and returns the next generation of the
// profile. Domain weights are re-normalized to sum 1.0 (negative intermediate
// values clamp to 0 first), modifiers clamp to [0,1], and exactly one
// Mutation record is appended. The receiver is left untouched.
func Mutate(p Profile, actionID string, domainDeltas, modifierDeltas map[string]float64, tick uint64, reason string) Profile {
	next := Profile{
		Domains:    make(map[string]float64, len(DomainNames)),
		Modifiers:  make(map[string]float64, len(ModifierNames)),
		Scale:      p.Scale,
		Archetypes: append([]string(nil), p.Archetypes...),
		Virtues:    append([]string(nil), p.Virtues...),
		Source:     p.Source,
		Generation: p.Generation + 1,
	}

	sum := 0.0
	for _, d := range DomainNames {
		v := p.Domains[d] + domainDeltas[d]
		if v < 0 {
			v = 0
		}
		next.Domains[d] = v
		sum += v
	}
	if sum <= 0 {
		// Degenerate deltas wiped every domain; reset to a flat spread.
		for _, d := range DomainNames {
			next.Domains[d] = 1.0 / float64(len(DomainNames))
		}
	} else {
		for _, d := range DomainNames {
			next.Domains[d] /= sum
		}
	}

	for _, m := range ModifierNames {
		v := p.Modifiers[m] + modifierDeltas[m]
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		next.Modifiers[m] = v
	}

	next.Mutations = make([]Mutation, 0, len(p.Mutations)+1)
	next.Mutations = append(next.Mutations, p.Mutations...)
	next.Mutations = append(next.Mutations, Mutation{
		Tick:           tick,
		ActionID:       actionID,
		DomainDeltas:   copyDeltas(domainDeltas),
		ModifierDeltas: copyDeltas(modifierDeltas),
		Reason:         reason,
	})
	return next
}

func copyDeltas(in map[string]float64) map[string]float64 {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
