// Keyword-window classification of raw ambition text. This is a plain
// multi-dictionary substring scan, fully deterministic, with intentional
// double counting: a window that matches several dictionaries scores all of
// them, which rewards richer text over terse text.
package ambition

import "strings"

// domainKeywords maps each domain to the substrings that score it.
var domainKeywords = map[string][]string{
	"power": {
		"king", "queen", "rule", "ruler", "conquer", "throne", "power",
		"empire", "command", "dominate", "reign", "crown", "lord", "control",
		"warlord", "general", "army",
	},
	"wealth": {
		"gold", "rich", "wealth", "trade", "merchant", "fortune", "prosper",
		"coin", "profit", "treasure", "market", "caravan",
	},
	"faith": {
		"god", "gods", "faith", "temple", "holy", "divine", "priest",
		"prophet", "sacred", "worship", "pious", "church", "blessed",
	},
	"virtue": {
		"just", "justice", "protect", "honor", "fair", "kind", "noble",
		"good", "virtuous", "mercy", "people", "defend", "righteous",
	},
	"freedom": {
		"free", "freedom", "liberty", "independen", "rebel", "escape",
		"unbound", "wander", "liberate",
	},
	"creation": {
		"build", "create", "craft", "art", "invent", "found", "construct",
		"forge", "grow", "wonder", "monument",
	},
}

var modifierKeywords = map[string][]string{
	"peaceful":    {"peace", "peaceful", "harmony", "calm", "gentle", "without war", "without bloodshed"},
	"ruthless":    {"ruthless", "crush", "fear", "blood", "merciless", "whatever it takes", "by any means"},
	"ascetic":     {"simple", "humble", "ascetic", "modest", "plain"},
	"opulent":     {"luxur", "splendor", "opulen", "grand", "magnificent", "lavish"},
	"secretive":   {"secret", "shadow", "hidden", "quiet", "spy", "unseen"},
	"charismatic": {"belove", "charisma", "inspire", "adore", "famous", "renown", "loved by"},
}

var scaleKeywords = map[string][]string{
	"local":    {"village", "town", "local", "home", "valley"},
	"regional": {"region", "kingdom", "realm", "province", "land", "county"},
	"world":    {"world", "empire", "all nations", "everywhere", "continent", "global"},
}

// archetypeKeywords and virtueKeywords feed world generation (legitimacy
// bonuses), not the weight vector.
var archetypeKeywords = map[string][]string{
	"king":      {"king", "queen", "throne", "crown", "monarch"},
	"merchant":  {"merchant", "trader", "tycoon"},
	"prophet":   {"prophet", "priest", "saint", "chosen"},
	"warlord":   {"warlord", "conqueror", "general"},
	"liberator": {"liberator", "rebel", "free my"},
	"builder":   {"builder", "architect", "founder"},
}

var virtueKeywords = map[string][]string{
	"justice":    {"just", "justice", "fair"},
	"mercy":      {"mercy", "merciful", "forgiv"},
	"protection": {"protect", "defend", "shield"},
	"honor":      {"honor", "honour", "oath"},
}

// Default weights used when the text matches nothing in a category.
var defaultDomains = map[string]float64{
	"power": 0.25, "wealth": 0.15, "faith": 0.15,
	"virtue": 0.25, "freedom": 0.10, "creation": 0.10,
}

var defaultScale = Scale{Local: 0.2, Regional: 0.6, World: 0.2}

// Parse classifies raw ambition text into a Profile. No randomness: equal
// text always yields an equal profile.
func Parse(text string) Profile {
	windows := tokenWindows(text)

	domainCounts := countMatches(windows, domainKeywords)
	modifierCounts := countMatches(windows, modifierKeywords)
	scaleCounts := countMatches(windows, scaleKeywords)

	p := Profile{
		Domains:   make(map[string]float64, len(DomainNames)),
		Modifiers: make(map[string]float64, len(ModifierNames)),
		Source:    text,
	}

	domainTotal := 0
	for _, c := range domainCounts {
		domainTotal += c
	}
	if domainTotal == 0 {
		for d, w := range defaultDomains {
			p.Domains[d] = w
		}
	} else {
		for _, d := range DomainNames {
			p.Domains[d] = float64(domainCounts[d]) / float64(domainTotal)
		}
	}

	// Modifiers normalize against the single strongest match, so the most
	// emphasized modifier always reads 1.0 and the rest scale under it.
	maxMod := 0
	for _, c := range modifierCounts {
		if c > maxMod {
			maxMod = c
		}
	}
	for _, m := range ModifierNames {
		if maxMod == 0 {
			p.Modifiers[m] = 0
		} else {
			p.Modifiers[m] = float64(modifierCounts[m]) / float64(maxMod)
		}
	}

	scaleTotal := scaleCounts["local"] + scaleCounts["regional"] + scaleCounts["world"]
	if scaleTotal == 0 {
		p.Scale = defaultScale
	} else {
		p.Scale = Scale{
			Local:    float64(scaleCounts["local"]) / float64(scaleTotal),
			Regional: float64(scaleCounts["regional"]) / float64(scaleTotal),
			World:    float64(scaleCounts["world"]) / float64(scaleTotal),
		}
	}

	p.Archetypes = matchedNames(windows, archetypeKeywords, archetypeOrder)
	p.Virtues = matchedNames(windows, virtueKeywords, virtueOrder)
	return p
}

var archetypeOrder = []string{"king", "merchant", "prophet", "warlord", "liberator", "builder"}
var virtueOrder = []string{"justice", "mercy", "protection", "honor"}

// tokenWindows lower-cases and tokenizes the text, then emits every 1-, 2-,
// and 3-word window for substring matching.
func tokenWindows(text string) []string {
	tokens := strings.Fields(strings.ToLower(text))
	windows := make([]string, 0, len(tokens)*3)
	for i := range tokens {
		windows = append(windows, tokens[i])
		if i+1 < len(tokens) {
			windows = append(windows, tokens[i]+" "+tokens[i+1])
		}
		if i+2 < len(tokens) {
			windows = append(windows, tokens[i]+" "+tokens[i+1]+" "+tokens[i+2])
		}
	}
	return windows
}

func countMatches(windows []string, dict map[string][]string) map[string]int {
	counts := make(map[string]int, len(dict))
	for _, w := range windows {
		for name, patterns := range dict {
			for _, pat := range patterns {
				if strings.Contains(w, pat) {
					counts[name]++
				}
			}
		}
	}
	return counts
}

func matchedNames(windows []string, dict map[string][]string, order []string) []string {
	var out []string
	for _, name := range order {
		for _, pat := range dict[name] {
			if containsAny(windows, pat) {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

func containsAny(windows []string, pat string) bool {
	for _, w := range windows {
		if strings.Contains(w, pat) {
			return true
		}
	}
	return false
}
