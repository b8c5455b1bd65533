package simulation

import (
	"time"

	"github.com/google/uuid"
)

// MonthlyReport is the per-month computed-results value. It carries every
// figure the step derived, including the foreign sales and tariff the
// engine used to record back into the shared revenue map before the
// config/results split.
type MonthlyReport struct {
	ID          uuid.UUID
	GeneratedAt time.Time

	Revenue RevenueBreakdown
	Costs   map[string]int

	Trend         TrendSignal
	Profit        int
	TreasuryAfter int

	Phase  Phase
	Reason string
}

// TotalExportGP returns the month's combined domestic and foreign export income
func (r *MonthlyReport) TotalExportGP() int {
	return r.Revenue.ExportGP + r.Revenue.ForeignGP
}
