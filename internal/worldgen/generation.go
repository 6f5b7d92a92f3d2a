// Package worldgen synthesizes a starting world from an ambition profile and
// a numeric seed. Generation is a pure function of those two inputs: all
// randomness flows through offset streams derived from the seed, plus a
// simplex noise layer for terrain flavor, so equal inputs always produce a
// deep-equal world.
package worldgen

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/crownfall/internal/ambition"
	"github.com/talgya/crownfall/internal/rng"
	"github.com/talgya/crownfall/internal/world"
)

// Stream offsets keep each generation concern on its own RNG sequence.
const (
	offsetRegions  = 0
	offsetFactions = 1
	offsetNames    = 2
)

// Baseline means for regional scalars. Individual regions perturb these by
// ±10 and the dominant ambition domains nudge the mean.
const (
	baseLawfulness = 60
	baseUnrest     = 25
	baseSecurity   = 45
	basePiety      = 35
	baseHeresy     = 20
)

const factionCount = 4

// Seed generates a world. The region count is rolled in [6,9]; exactly four
// factions are created and uncontrolled regions are handed to whichever
// faction sits nearest in domain-affinity space.
func Seed(profile ambition.Profile, seedNumber int64) *world.WorldState {
	regionStream := rng.New(seedNumber + offsetRegions)
	factionStream := rng.New(seedNumber + offsetFactions)
	nameStream := rng.New(seedNumber + offsetNames)
	terrain := opensimplex.NewNormalized(seedNumber)

	w := &world.WorldState{
		Seed:   seedNumber,
		Traits: make(map[string]bool),
	}

	power := profile.Domains["power"]
	faith := profile.Domains["faith"]
	wealth := profile.Domains["wealth"]
	virtue := profile.Domains["virtue"]

	regionCount := regionStream.IntRange(6, 9)
	controlled := 1
	if profile.Scale.World > 0.5 {
		controlled = 2
	}

	for i := 0; i < regionCount; i++ {
		r := generateRegion(i, regionStream, nameStream, terrain, profile)
		r.Controlled = i < controlled
		w.Regions = append(w.Regions, r)
	}

	for i := 0; i < factionCount; i++ {
		w.Factions = append(w.Factions, generateFaction(i, factionStream, nameStream, profile))
	}
	assignRegions(w)

	// Aggregates derive from the regions plus domain bias.
	for _, r := range w.Regions {
		if !r.Controlled {
			continue
		}
		w.Resources.Gold += r.Endowment.Gold
		w.Resources.Grain += r.Endowment.Grain
		w.Resources.Iron += r.Endowment.Iron
		w.Resources.Wood += r.Endowment.Wood
		w.Resources.Stone += r.Endowment.Stone
		w.People.Population += r.People.Population
	}
	w.Resources.Gold += 50 + int(wealth*100)
	w.Resources.Grain += 40
	w.People.Loyalty = world.Clamp01(0.5 + virtue*0.3)
	w.People.Unrest = world.Clamp01(0.25 - virtue*0.1 + profile.Modifiers["ruthless"]*0.15)
	w.People.Faith = world.Clamp01(0.3 + faith*0.5)

	w.Forces.Units = 15 + int(power*60) + regionStream.IntRange(0, 10)
	w.Forces.Morale = world.Clamp01(0.5 + power*0.2)
	w.Forces.Supply = world.Clamp01(0.6 + wealth*0.2)

	w.Legitimacy = startingLegitimacy(profile)
	return w
}

// startingLegitimacy computes the four meters from a shared base plus fixed
// archetype and virtue bonuses.
func startingLegitimacy(profile ambition.Profile) world.Legitimacy {
	l := world.Legitimacy{Law: 20, Faith: 20, Lineage: 20, Might: 20}

	if profile.HasArchetype("king") {
		l.Law += 10
		l.Lineage += 8
	}
	if profile.HasArchetype("prophet") {
		l.Faith += 12
	}
	if profile.HasArchetype("warlord") {
		l.Might += 12
	}
	if profile.HasArchetype("merchant") {
		l.Law += 4
	}
	if profile.HasVirtue("justice") {
		l.Law += 6
	}
	if profile.HasVirtue("protection") {
		l.Might += 4
	}
	if profile.HasVirtue("mercy") {
		l.Faith += 4
	}

	l.Law += profile.Domains["power"] * 10
	l.Faith += profile.Domains["faith"] * 20
	l.Might += profile.Domains["power"] * 15
	l.Lineage += profile.Domains["virtue"] * 8
	return l
}

func generateRegion(i int, stream, nameStream *rng.Stream, noise opensimplex.Noise, profile ambition.Profile) *world.Region {
	power := profile.Domains["power"]
	faith := profile.Domains["faith"]
	wealth := profile.Domains["wealth"]

	// One noise sample per region picks the terrain; the coordinate spread
	// keeps neighboring indices from collapsing to the same biome.
	x := float64(i) * 3.7
	elev := noise.Eval2(x*0.13, 0.5)
	moist := noise.Eval2(x*0.11, 7.5)

	r := &world.Region{
		ID:      fmt.Sprintf("region-%d", i+1),
		Name:    regionName(nameStream),
		Terrain: deriveTerrain(elev, moist),
		Endowment: world.Resources{
			Gold:  stream.IntRange(5, 25) + int(wealth*20),
			Grain: stream.IntRange(10, 40),
			Iron:  stream.IntRange(0, 15),
			Wood:  stream.IntRange(5, 30),
			Stone: stream.IntRange(5, 25),
		},
		People: world.People{
			Population: stream.IntRange(200, 1200),
			Loyalty:    world.Clamp01(0.4 + stream.Float()*0.3),
			Unrest:     world.Clamp01(0.1 + stream.Float()*0.2),
			Faith:      world.Clamp01(0.2 + stream.Float()*0.4 + faith*0.2),
		},
		Security:   world.Clamp100(float64(baseSecurity+stream.IntRange(-10, 10)) + power*20),
		Lawfulness: world.Clamp100(float64(baseLawfulness+stream.IntRange(-10, 10)) + power*5),
		Unrest:     world.Clamp100(float64(baseUnrest + stream.IntRange(-10, 10))),
		Piety:      world.Clamp100(float64(basePiety+stream.IntRange(-10, 10)) + faith*30),
		Heresy:     world.Clamp100(float64(baseHeresy+stream.IntRange(-10, 10)) - faith*15),
		Affinity:   sampleAffinity(stream),
	}

	// Terrain nudges the endowment toward what the land plausibly yields.
	switch r.Terrain {
	case "mountains":
		r.Endowment.Iron += stream.IntRange(5, 15)
		r.Endowment.Stone += stream.IntRange(5, 15)
		r.Endowment.Grain /= 2
	case "forest":
		r.Endowment.Wood += stream.IntRange(10, 25)
	case "plains":
		r.Endowment.Grain += stream.IntRange(10, 30)
	case "marsh":
		r.Endowment.Grain /= 2
		r.Endowment.Gold /= 2
	}
	return r
}

func deriveTerrain(elev, moist float64) string {
	switch {
	case elev > 0.72:
		return "mountains"
	case elev > 0.55:
		return "hills"
	case moist > 0.65:
		if elev < 0.3 {
			return "marsh"
		}
		return "forest"
	default:
		return "plains"
	}
}

func generateFaction(i int, stream, nameStream *rng.Stream, profile ambition.Profile) *world.Faction {
	f := &world.Faction{
		ID:       fmt.Sprintf("faction-%d", i+1),
		Name:     factionName(nameStream, i),
		Power:    float64(stream.IntRange(30, 70)),
		Affinity: sampleAffinity(stream),
	}

	// Stance roll: ruthless ambitions make enemies, charisma makes friends.
	roll := stream.Float()
	hostileBand := 0.25 + profile.Modifiers["ruthless"]*0.2
	alliedBand := 0.20 + profile.Modifiers["charismatic"]*0.2
	switch {
	case roll < hostileBand:
		f.Stance = world.StanceHostile
	case roll > 1.0-alliedBand:
		f.Stance = world.StanceAllied
	default:
		f.Stance = world.StanceNeutral
	}
	return f
}

func sampleAffinity(stream *rng.Stream) map[string]float64 {
	a := make(map[string]float64, len(ambition.DomainNames))
	for _, d := range ambition.DomainNames {
		a[d] = stream.Float()
	}
	return a
}

// assignRegions hands each uncontrolled region to the faction with the
// nearest affinity vector. Greedy, not optimal; the goal is reasonable
// compatibility, not a perfect matching.
func assignRegions(w *world.WorldState) {
	for _, r := range w.Regions {
		if r.Controlled {
			continue
		}
		var best *world.Faction
		bestDist := math.MaxFloat64
		for _, f := range w.Factions {
			d := affinityDistance(r.Affinity, f.Affinity)
			if d < bestDist {
				best, bestDist = f, d
			}
		}
		best.Regions = append(best.Regions, r.ID)
	}
}

func affinityDistance(a, b map[string]float64) float64 {
	sum := 0.0
	for _, d := range ambition.DomainNames {
		diff := a[d] - b[d]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
