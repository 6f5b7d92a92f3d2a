// The event alchemizer: a pure diff over two world states that turns
// significant changes into narrative event cards with player choices.
package engine

import (
	"fmt"

	"github.com/talgya/crownfall/internal/knowledge"
	"github.com/talgya/crownfall/internal/world"
)

// Significance thresholds. Changes below these never surface as events.
const (
	sigLegitimacy = 8.0
	sigRegion     = 10.0
	sigGold       = 25
	sigGrain      = 20
	sigOther      = 15

	maxCards = 3
)

// Choice is one way the player can respond to an event. Effects use the same
// grammar as rule files and are applied on a later turn if taken.
type Choice struct {
	ID      string             `json:"id"`
	Label   string             `json:"label"`
	Effects []knowledge.Effect `json:"effects,omitempty"`
}

// EventCard is one narrative event produced by diffing two world states.
type EventCard struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Category string   `json:"category"`
	Tick     uint64   `json:"tick"`
	Choices  []Choice `json:"choices"`
}

// Alchemize diffs prev against next and returns at most three cards, highest
// significance first: new traits, then legitimacy swings, then regional
// shifts (controlled regions only), then resource swings. Deterministic for
// equal inputs — card ids derive from the tick and subject, not from any
// random source.
func Alchemize(prev, next *world.WorldState) []EventCard {
	var cards []EventCard

	cards = append(cards, traitCards(prev, next)...)
	cards = append(cards, legitimacyCards(prev, next)...)
	cards = append(cards, regionCards(prev, next)...)
	cards = append(cards, resourceCards(prev, next)...)

	if len(cards) > maxCards {
		cards = cards[:maxCards]
	}
	return cards
}

func traitCards(prev, next *world.WorldState) []EventCard {
	var cards []EventCard
	if !prev.HasTrait(TraitHighCrime) && next.HasTrait(TraitHighCrime) {
		cards = append(cards, EventCard{
			ID:       cardID(next.Tick, "crime_wave"),
			Title:    "Crime Wave",
			Body:     "Lawlessness has taken hold of your lands. Thieves work the roads openly and the watch looks away.",
			Category: "crime",
			Tick:     next.Tick,
			Choices: []Choice{
				{ID: "crackdown", Label: "Hire guards and make examples", Effects: knowledge.ParseEffects([]string{
					"+region.lawfulness = 8",
					"+region.security = 4",
					"-modifier.peaceful = 0.05",
				})},
				{ID: "amnesty", Label: "Offer amnesty and work", Effects: knowledge.ParseEffects([]string{
					"+region.lawfulness = 4",
					"-region.unrest = 4",
					"+ambition.virtue = 0.02",
				})},
			},
		})
	}
	if !prev.HasTrait(TraitHighBureaucracy) && next.HasTrait(TraitHighBureaucracy) {
		cards = append(cards, EventCard{
			ID:       cardID(next.Tick, "bureaucracy"),
			Title:    "The Scribes Multiply",
			Body:     "Your courts have grown so orderly that nothing moves without three seals and a fee. The clerks bill the treasury either way.",
			Category: "governance",
			Tick:     next.Tick,
			Choices: []Choice{
				{ID: "trim_rolls", Label: "Trim the clerk rolls", Effects: knowledge.ParseEffects([]string{
					"-region.lawfulness = 5",
				})},
				{ID: "accept", Label: "Order has its price"},
			},
		})
	}
	return cards
}

func legitimacyCards(prev, next *world.WorldState) []EventCard {
	var cards []EventCard
	for _, m := range world.MeterNames {
		delta := next.Legitimacy.Meter(m) - prev.Legitimacy.Meter(m)
		if abs(delta) < sigLegitimacy {
			continue
		}
		dir := "risen"
		if delta < 0 {
			dir = "fallen"
		}
		cards = append(cards, EventCard{
			ID:       cardID(next.Tick, "legitimacy_"+m),
			Title:    fmt.Sprintf("Your %s standing has %s", m, dir),
			Body:     fmt.Sprintf("Word spreads through the realm: your claim by %s has %s by %.0f.", m, dir, abs(delta)),
			Category: "legitimacy",
			Tick:     next.Tick,
			Choices: []Choice{
				{ID: "proclaim", Label: "Proclaim it in every square"},
				{ID: "stay_quiet", Label: "Let the rumor do its work"},
			},
		})
	}
	return cards
}

// regionCards covers controlled regions only; what happens in a rival lord's
// marches is their problem until it crosses a border.
func regionCards(prev, next *world.WorldState) []EventCard {
	var cards []EventCard
	for _, r := range next.Regions {
		if !r.Controlled {
			continue
		}
		before := prev.Region(r.ID)
		if before == nil {
			continue
		}
		if d := r.Lawfulness - before.Lawfulness; abs(d) >= sigRegion {
			cards = append(cards, regionShiftCard(next.Tick, r, "lawfulness", d))
		}
		if d := r.Unrest - before.Unrest; abs(d) >= sigRegion {
			cards = append(cards, regionShiftCard(next.Tick, r, "unrest", d))
		}
	}
	return cards
}

func regionShiftCard(tick uint64, r *world.Region, field string, delta float64) EventCard {
	dir := "risen"
	if delta < 0 {
		dir = "fallen"
	}
	return EventCard{
		ID:       cardID(tick, "region_"+r.ID+"_"+field),
		Title:    fmt.Sprintf("%s in %s", titleFor(field, delta), r.Name),
		Body:     fmt.Sprintf("Reports from %s: %s has %s by %.0f.", r.Name, field, dir, abs(delta)),
		Category: "region",
		Tick:     tick,
		Choices: []Choice{
			{ID: "send_envoy", Label: "Send an envoy to investigate"},
			{ID: "ignore", Label: "Trust the local reeves"},
		},
	}
}

func titleFor(field string, delta float64) string {
	switch {
	case field == "unrest" && delta > 0:
		return "Unrest Stirs"
	case field == "unrest":
		return "Tempers Cool"
	case delta > 0:
		return "Order Returns"
	default:
		return "Order Slips"
	}
}

func resourceCards(prev, next *world.WorldState) []EventCard {
	var cards []EventCard
	for _, name := range world.ResourceNames {
		delta := next.Resources.Get(name) - prev.Resources.Get(name)
		sig := sigOther
		switch name {
		case "gold":
			sig = sigGold
		case "grain":
			sig = sigGrain
		}
		if delta >= sig {
			cards = append(cards, EventCard{
				ID:       cardID(next.Tick, "windfall_"+name),
				Title:    fmt.Sprintf("A windfall of %s", name),
				Body:     fmt.Sprintf("The stores swell: %s is up by %d.", name, delta),
				Category: "resource",
				Tick:     next.Tick,
				Choices: []Choice{
					{ID: "invest", Label: "Put it to work"},
					{ID: "stockpile", Label: "Lay it up against lean years"},
				},
			})
		} else if -delta >= sig {
			cards = append(cards, EventCard{
				ID:       cardID(next.Tick, "shortfall_"+name),
				Title:    fmt.Sprintf("The %s runs short", name),
				Body:     fmt.Sprintf("The stewards report %s down by %d.", name, -delta),
				Category: "resource",
				Tick:     next.Tick,
				Choices: []Choice{
					{ID: "ration", Label: "Tighten the ledgers"},
					{ID: "borrow", Label: "Borrow against next season", Effects: knowledge.ParseEffects([]string{
						"-legitimacy.law = 2",
					})},
				},
			})
		}
	}
	return cards
}

func cardID(tick uint64, subject string) string {
	return fmt.Sprintf("evt-%d-%s", tick, subject)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
