package trade

import (
	"math"
	"sort"

	"github.com/andrescamacho/realm-economy/internal/domain/dice"
)

// GoldPerExportStep is the gp value of one export step. It scales both
// domestic export sales and foreign demand revenue.
const GoldPerExportStep = 5

// DemandScore computes a neighbour's desire for one commodity. Larger
// populations, scarcer goods and friendlier relations raise demand;
// distance suppresses it. Never negative.
func DemandScore(population int, scarcity float64, relationship, distance int) float64 {
	score := float64(population) + scarcity + float64(relationship) - float64(distance)
	return math.Max(0, score)
}

// ForeignSales totals the gp earned selling the given exports to every
// neighbour. Each neighbour/commodity pair with a positive demand score
// contributes score x die size x GoldPerExportStep; zero scarcity does not
// gate a sale when population and relationship outweigh distance.
// The fractional total is rounded to the nearest gp.
func ForeignSales(exports map[string]dice.Die, neighbours *NeighbourSet) int {
	if neighbours == nil {
		return 0
	}

	commodities := make([]string, 0, len(exports))
	for name := range exports {
		commodities = append(commodities, name)
	}
	sort.Strings(commodities)

	gp := 0.0
	for _, neighbourName := range neighbours.Names() {
		neighbour, _ := neighbours.Get(neighbourName)
		for _, commodity := range commodities {
			die := exports[commodity]
			score := DemandScore(
				neighbour.Population(),
				neighbour.Scarcity(commodity),
				neighbour.Relationship(),
				neighbour.Distance(),
			)
			if score > 0 {
				gp += score * float64(die.Size()) * GoldPerExportStep
			}
		}
	}
	return int(math.Round(gp))
}
