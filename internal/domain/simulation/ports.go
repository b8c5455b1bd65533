package simulation

// Renderer presents a monthly report to a human. Implementations live in
// the adapters layer; the simulation only decides when to render.
type Renderer interface {
	Render(report *MonthlyReport)
}
