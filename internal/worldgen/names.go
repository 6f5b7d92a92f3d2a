// Name synthesis for regions and factions. Names draw from the stream that
// the generator dedicates to naming, so changing the seed reshuffles names
// without disturbing the numeric layers.
package worldgen

import "github.com/talgya/crownfall/internal/rng"

var regionPrefixes = []string{
	"Ash", "Briar", "Cold", "Dun", "Ever", "Fall", "Gold", "Haven",
	"Iron", "Mist", "North", "Oak", "Raven", "Stone", "Thorn", "Wolf",
}

var regionSuffixes = []string{
	"dale", "fell", "ford", "gate", "hollow", "march", "mere", "moor",
	"reach", "ridge", "shire", "vale", "watch", "wood",
}

var factionNouns = []string{
	"Crown", "Compact", "Brotherhood", "Circle", "Path", "Covenant",
	"League", "Order", "Banner", "Court",
}

var factionEpithets = []string{
	"Iron", "Verdant", "Ashen", "Gilded", "Silent", "Broken",
	"Radiant", "Old", "Red", "Pale",
}

func regionName(stream *rng.Stream) string {
	return rng.Choice(stream, regionPrefixes) + rng.Choice(stream, regionSuffixes)
}

func factionName(stream *rng.Stream, i int) string {
	// "The <Epithet> <Noun>" — the index salt keeps two factions from
	// rolling identical names in one world.
	e := factionEpithets[(stream.IntRange(0, len(factionEpithets)-1)+i)%len(factionEpithets)]
	n := rng.Choice(stream, factionNouns)
	return "The " + e + " " + n
}
