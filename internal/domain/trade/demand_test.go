package trade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/realm-economy/internal/domain/dice"
	"github.com/andrescamacho/realm-economy/internal/domain/trade"
	"github.com/andrescamacho/realm-economy/test/helpers"
)

func TestDemandScore_NeverNegative(t *testing.T) {
	assert.Equal(t, 0.0, trade.DemandScore(1, 0, -1, 10))
	assert.Equal(t, 0.0, trade.DemandScore(0, 0, 0, 1))
}

func TestDemandScore_Monotonicity(t *testing.T) {
	base := trade.DemandScore(4, 1, 0, 3)

	assert.GreaterOrEqual(t, trade.DemandScore(5, 1, 0, 3), base, "population raises demand")
	assert.GreaterOrEqual(t, trade.DemandScore(4, 2, 0, 3), base, "scarcity raises demand")
	assert.GreaterOrEqual(t, trade.DemandScore(4, 1, 1, 3), base, "relationship raises demand")
	assert.LessOrEqual(t, trade.DemandScore(4, 1, 0, 4), base, "distance suppresses demand")
}

func TestDemandScore_FractionalScarcity(t *testing.T) {
	// Cormyr wants fish: pop 4 + scarcity 0.5 + rel 1 - dist 5 = 0.5
	assert.InDelta(t, 0.5, trade.DemandScore(4, 0.5, 1, 5), 1e-9)
}

func TestForeignSales_NoExports(t *testing.T) {
	total := trade.ForeignSales(map[string]dice.Die{}, helpers.DefaultNeighbours(t))

	assert.Equal(t, 0, total)
}

func TestForeignSales_NilNeighbours(t *testing.T) {
	exports := map[string]dice.Die{"fish": dice.MustParseDie("d4")}

	assert.Equal(t, 0, trade.ForeignSales(exports, nil))
}

func TestForeignSales_DistanceDominatesEverything(t *testing.T) {
	// pop + scarcity + rel never outweigh the distance, so no sales at all.
	remote, err := trade.NewNeighbour("Thay", 2, 1, 50, map[string]float64{"fish": 3})
	require.NoError(t, err)

	exports := map[string]dice.Die{
		"fish":   dice.MustParseDie("d12"),
		"timber": dice.MustParseDie("d12"),
	}

	assert.Equal(t, 0, trade.ForeignSales(exports, trade.NewNeighbourSet(remote)))
}

func TestForeignSales_KnownTotal(t *testing.T) {
	// With the Ilha Prespur neighbours and fish d4 / timber d4 / salt d0:
	//   Cormyr: fish 0.5x4x5=10, timber 1x4x5=20, salt 1x0x5=0
	//   Sembia: fish 3x4x5=60, timber 4x4x5=80, salt 3x0x5=0
	//   Pirate Isles: fish 0, timber 1x4x5=20, salt 0
	exports := map[string]dice.Die{
		"fish":   dice.MustParseDie("d4"),
		"timber": dice.MustParseDie("d4"),
		"salt":   dice.MustParseDie("d0"),
	}

	total := trade.ForeignSales(exports, helpers.DefaultNeighbours(t))

	assert.Equal(t, 190, total)
}

func TestForeignSales_ZeroScarcityStillSellsWhenPopulationOutweighsDistance(t *testing.T) {
	// Sembia tracks no salt scarcity but pop 6 - dist 3 still yields demand.
	sembia, err := trade.NewNeighbour("Sembia", 6, 0, 3, map[string]float64{})
	require.NoError(t, err)

	exports := map[string]dice.Die{"salt": dice.MustParseDie("d4")}

	// score 3 x size 4 x 5 gp
	assert.Equal(t, 60, trade.ForeignSales(exports, trade.NewNeighbourSet(sembia)))
}

func TestNewNeighbour_Validation(t *testing.T) {
	_, err := trade.NewNeighbour("", 1, 0, 1, nil)
	assert.Error(t, err)

	_, err = trade.NewNeighbour("Cormyr", -1, 0, 1, nil)
	assert.Error(t, err)

	_, err = trade.NewNeighbour("Cormyr", 1, 0, 0, nil)
	assert.Error(t, err)

	_, err = trade.NewNeighbour("Cormyr", 1, 0, 1, map[string]float64{"fish": -0.5})
	assert.Error(t, err)

	// Negative relationship is legitimate (hostile neighbours still trade)
	_, err = trade.NewNeighbour("Pirate Isles", 1, -1, 1, nil)
	assert.NoError(t, err)
}
