package simulation

import "github.com/andrescamacho/realm-economy/internal/domain/shared"

// Narrative flavor for boom and slump months. Pure data: nothing in the
// simulation branches on the text, and the pools only feed a single
// uniform index draw.

var boomReasons = []string{
	"surge in overseas demand",
	"new trade treaty signed with a wealthy ally",
	"bountiful harvest season",
	"merchant caravan discovered rare ore deposits",
	"winds favour rapid shipping",
	"a local weaver wins a foreign festival prize, doubling orders for her tapestries",
	"explorers uncover a new inland salt spring; salt exports tick up overnight",
	"visiting nobles host a gala and spend lavishly in town",
	"a famous bard performs at the docks, drawing crowds and boosting tavern takings",
	"a craft guild invents a faster production method; carts are suddenly cheaper",
	"the island blessing draws pilgrims to the marketplace",
	"cartographers chart a shortcut across the reef, shaving days off voyages",
	"a traveling university campus sets up near the keep, hiring local labor",
	"farmers plant by moonlight under a druid's guidance, yielding a bumper crop",
	"banks are handing out frivolous loans; this surely can't go wrong",
}

var slumpReasons = []string{
	"poor harvest season",
	"pirate raids disrupted merchant routes",
	"outbreak of livestock disease",
	"regional conflict cut off key supply lines",
	"storms damaged several shipments",
	"the main grain mill's wheel cracks, halving flour output for weeks",
	"the carters' guild is on strike, again",
	"a far-off kingdom imposed sweeping tariffs, dragging the wider economy down",
	"the weavers' guild protests a new tax by refusing to sell cloth to city officials",
	"a small raiding party waylays a timber convoy on the forest road",
	"a sudden plague of rats tears through the docks, spoiling stored grain and salt",
	"a scandal over tainted meat crashes that market overnight",
	"a banking scandal freezes merchant credit lines",
	"a major merchant guild boycotts the docks in protest of new tariffs",
	"protesters tied themselves to a trade ship's mast and disrupted its schedule",
}

// drawReason selects one reason uniformly from the pool matching the phase.
// Returns empty for a neutral month.
func drawReason(phase Phase, src shared.RandomSource) string {
	switch phase {
	case PhaseBoom:
		return boomReasons[src.IntN(len(boomReasons))]
	case PhaseSlump:
		return slumpReasons[src.IntN(len(slumpReasons))]
	default:
		return ""
	}
}
