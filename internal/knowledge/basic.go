// Hand-authored baseline rule set, used whenever no custom rule file is
// supplied. Mirrors the shape a rule file would load into.
package knowledge

// Basic returns the built-in knowledge base: the four foundation
// requirements and the standing opportunity generators.
func Basic() *Base {
	return &Base{
		Requirements: map[string]RequirementRule{
			"land": {
				ID:    "land",
				Label: "Secure land to rule",
				Paths: map[string]PathRule{
					"conquest": {
						Label:    "Take territory by force",
						Costs:    map[string]int{"gold": 40, "grain": 20},
						Time:     "2 turns",
						Risks:    map[string]float64{"casualties": 0.3, "uprising": 0.1},
						Requires: []string{"army_small"},
						Effects: ParseEffects([]string{
							"+legitimacy.might = 6",
							"-legitimacy.law = 2",
							"+region.unrest = 5",
						}),
					},
					"purchase": {
						Label: "Buy a claim outright",
						Costs: map[string]int{"gold": 120},
						Time:  "1 turn",
						Effects: ParseEffects([]string{
							"+legitimacy.law = 4",
						}),
					},
					"marriage": {
						Label: "Marry into a landed line",
						Time:  "3 turns",
						Risks: map[string]float64{"scandal": 0.15},
						Effects: ParseEffects([]string{
							"+legitimacy.lineage = 8",
						}),
					},
				},
			},
			"army": {
				ID:    "army",
				Label: "Raise a fighting force",
				Paths: map[string]PathRule{
					"levy": {
						Label:   "Call a peasant levy",
						Costs:   map[string]int{"grain": 30},
						Time:    "1 turn",
						Risks:   map[string]float64{"desertion": 0.2},
						Rewards: map[string]int{},
						Effects: ParseEffects([]string{
							"+legitimacy.might = 3",
						}),
					},
					"mercenaries": {
						Label: "Hire mercenary companies",
						Costs: map[string]int{"gold": 80, "iron": 10},
						Time:  "1 turn",
						Risks: map[string]float64{"betrayal": 0.1},
						Effects: ParseEffects([]string{
							"+legitimacy.might = 5",
						}),
					},
				},
			},
			"people": {
				ID:    "people",
				Label: "Win the people's trust",
				Paths: map[string]PathRule{
					"festival": {
						Label: "Hold a grand festival",
						Costs: map[string]int{"gold": 30, "grain": 25},
						Time:  "1 turn",
						Effects: ParseEffects([]string{
							"-region.unrest = 8",
							"+ambition.virtue = 0.02",
						}),
					},
					"grain_dole": {
						Label:    "Open the granaries",
						Costs:    map[string]int{"grain": 40},
						Time:     "1 turn",
						Requires: []string{"people_restless"},
						Effects: ParseEffects([]string{
							"-region.unrest = 12",
							"+legitimacy.law = 2",
						}),
					},
				},
			},
			"governance": {
				ID:    "governance",
				Label: "Establish lawful rule",
				Paths: map[string]PathRule{
					"courts": {
						Label: "Seat traveling courts",
						Costs: map[string]int{"gold": 50},
						Time:  "2 turns",
						Effects: ParseEffects([]string{
							"+legitimacy.law = 8",
							"+region.lawfulness = 6",
						}),
					},
					"garrisons": {
						Label:    "Garrison the towns",
						Costs:    map[string]int{"gold": 35, "iron": 15},
						Time:     "2 turns",
						Requires: []string{"army_small"},
						Effects: ParseEffects([]string{
							"+region.security = 8",
							"+region.lawfulness = 4",
							"+legitimacy.might = 2",
						}),
					},
				},
			},
		},
		Generators: []GeneratorRule{
			{
				ID:         "iron_caravan",
				Conditions: []string{"iron < 10", "gold > 80"},
				Action: ActionProposal{
					ID:          "buy_iron_caravan",
					Label:       "Buy out the iron caravan",
					Description: "A trade caravan heavy with iron passes through. Coin now beats scarcity later.",
					Costs:       map[string]int{"gold": 60},
					Rewards:     map[string]int{"iron": 25},
					Time:        "1 turn",
				},
			},
			{
				ID:         "crime_wave",
				Conditions: []string{"high_crime"},
				Action: ActionProposal{
					ID:          "crackdown",
					Label:       "Crack down on the crime wave",
					Description: "Lawlessness spreads through your holdings. Guards can be hired, examples made.",
					Costs:       map[string]int{"gold": 45},
					Risks:       map[string]float64{"resentment": 0.2},
					Time:        "1 turn",
					Effects: ParseEffects([]string{
						"+region.lawfulness = 10",
						"+region.security = 5",
						"+legitimacy.law = 4",
					}),
				},
			},
			{
				ID:         "corruption",
				Conditions: []string{"unrest > 40", "gold > 50"},
				Action: ActionProposal{
					ID:          "purge_corruption",
					Label:       "Purge corrupt officials",
					Description: "Bribes and skimmed taxes feed the unrest. Rooting them out is costly but popular.",
					Costs:       map[string]int{"gold": 40},
					Risks:       map[string]float64{"reprisal": 0.15},
					Time:        "2 turns",
					Effects: ParseEffects([]string{
						"-region.unrest = 10",
						"+legitimacy.law = 6",
					}),
				},
			},
			{
				ID:         "winter_stores",
				Conditions: []string{"winter", "grain < 30"},
				Action: ActionProposal{
					ID:          "winter_stores",
					Label:       "Buy winter grain stores",
					Description: "The granaries run thin as winter closes in.",
					Costs:       map[string]int{"gold": 35},
					Rewards:     map[string]int{"grain": 30},
					Time:        "1 turn",
				},
			},
		},
	}
}
