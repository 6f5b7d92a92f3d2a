// Package knowledge loads and holds the declarative rule set driving the
// planner: requirement rules (goal id → named paths with costs, risks, and
// effects) and generator rules (condition-gated opportunity actions). Rule
// files are YAML; once loaded the base is read-only.
package knowledge

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ActionProposal is one ranked action the planner can offer. Proposals are
// ephemeral: regenerated every planning cycle, never mutated after creation,
// and compared only by ID within a single cycle.
type ActionProposal struct {
	ID          string             `json:"id"`
	Label       string             `json:"label"`
	Description string             `json:"description,omitempty"`
	Satisfies   []string           `json:"satisfies,omitempty"`
	Costs       map[string]int     `json:"costs,omitempty"`
	Rewards     map[string]int     `json:"rewards,omitempty"`
	Risks       map[string]float64 `json:"risks,omitempty"`
	Time        string             `json:"time,omitempty"`
	Requires    []string           `json:"requires,omitempty"`
	Regions     []string           `json:"regions,omitempty"`
	Effects     []Effect           `json:"effects,omitempty"`
	Score       float64            `json:"score"`
}

// PathRule is one named route through a requirement.
type PathRule struct {
	Label    string             `json:"label"`
	Costs    map[string]int     `json:"costs,omitempty"`
	Rewards  map[string]int     `json:"rewards,omitempty"`
	Time     string             `json:"time,omitempty"`
	Risks    map[string]float64 `json:"risks,omitempty"`
	Requires []string           `json:"requires,omitempty"`
	Effects  []Effect           `json:"effects,omitempty"`
}

// RequirementRule maps a goal node id to its available paths.
type RequirementRule struct {
	ID    string              `json:"id"`
	Label string              `json:"label"`
	Paths map[string]PathRule `json:"paths"`
}

// PathNames returns the rule's path names in sorted order so planning walks
// them deterministically.
func (r RequirementRule) PathNames() []string {
	names := make([]string, 0, len(r.Paths))
	for n := range r.Paths {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// GeneratorRule offers a pre-built action whenever every condition holds.
type GeneratorRule struct {
	ID         string         `json:"id"`
	Conditions []string       `json:"conditions"`
	Action     ActionProposal `json:"action"`
}

// Base is the loaded rule set.
type Base struct {
	Requirements map[string]RequirementRule `json:"requirements"`
	Generators   []GeneratorRule            `json:"generators"`
}

// Requirement looks up a rule by id.
func (b *Base) Requirement(id string) (RequirementRule, bool) {
	r, ok := b.Requirements[id]
	return r, ok
}

// YAML document shapes. Effects arrive as raw strings and are compiled into
// the tagged union on load.

type docRoot struct {
	Requirements map[string]docRequirement `yaml:"requirements"`
	Generators   []docGenerator            `yaml:"generators"`
}

type docRequirement struct {
	Label string             `yaml:"label"`
	Paths map[string]docPath `yaml:"paths"`
}

type docPath struct {
	Label    string             `yaml:"label"`
	Costs    map[string]int     `yaml:"costs"`
	Rewards  map[string]int     `yaml:"rewards"`
	Time     string             `yaml:"time"`
	Risks    map[string]float64 `yaml:"risks"`
	Requires []string           `yaml:"requires"`
	Effects  []string           `yaml:"effects"`
}

type docGenerator struct {
	ID         string    `yaml:"id"`
	Conditions []string  `yaml:"conditions"`
	Action     docAction `yaml:"action"`
}

type docAction struct {
	ID          string             `yaml:"id"`
	Label       string             `yaml:"label"`
	Description string             `yaml:"description"`
	Costs       map[string]int     `yaml:"costs"`
	Rewards     map[string]int     `yaml:"rewards"`
	Risks       map[string]float64 `yaml:"risks"`
	Time        string             `yaml:"time"`
	Requires    []string           `yaml:"requires"`
	Regions     []string           `yaml:"regions"`
	Effects     []string           `yaml:"effects"`
}

// Load parses YAML rule text into a Base. Structural problems (bad YAML,
// a generator without an action id) fail loudly; unrecognized effect tokens
// do not — they degrade to opaque effects.
func Load(raw []byte) (*Base, error) {
	var doc docRoot
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("knowledge: %w", err)
	}

	b := &Base{Requirements: make(map[string]RequirementRule, len(doc.Requirements))}

	for id, dr := range doc.Requirements {
		rule := RequirementRule{
			ID:    id,
			Label: dr.Label,
			Paths: make(map[string]PathRule, len(dr.Paths)),
		}
		for name, dp := range dr.Paths {
			rule.Paths[name] = PathRule{
				Label:    dp.Label,
				Costs:    dp.Costs,
				Rewards:  dp.Rewards,
				Time:     dp.Time,
				Risks:    dp.Risks,
				Requires: dp.Requires,
				Effects:  ParseEffects(dp.Effects),
			}
		}
		b.Requirements[id] = rule
	}

	for _, dg := range doc.Generators {
		if dg.ID == "" {
			return nil, fmt.Errorf("knowledge: generator with empty id")
		}
		if dg.Action.ID == "" {
			return nil, fmt.Errorf("knowledge: generator %s: action missing id", dg.ID)
		}
		b.Generators = append(b.Generators, GeneratorRule{
			ID:         dg.ID,
			Conditions: dg.Conditions,
			Action: ActionProposal{
				ID:          dg.Action.ID,
				Label:       dg.Action.Label,
				Description: dg.Action.Description,
				Costs:       dg.Action.Costs,
				Rewards:     dg.Action.Rewards,
				Risks:       dg.Action.Risks,
				Time:        dg.Action.Time,
				Requires:    dg.Action.Requires,
				Regions:     dg.Action.Regions,
				Effects:     ParseEffects(dg.Action.Effects),
			},
		})
	}

	return b, nil
}
