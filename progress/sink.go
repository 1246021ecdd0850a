// Package progress defines the notification surface the simulation
// driver reports through, and a gorilla/websocket broadcaster for
// streaming live updates to connected clients.
package progress

// Update is emitted once per completed time step.
type Update struct {
	Step        int
	Percent     float64
	GrainCount  int32
	HistoryTail float64
}

// Sink receives per-step progress and non-fatal warnings (e.g. a
// degenerate Avrami fit). Implementations must not block the driver for
// long; Server writes each update to its connected clients synchronously
// from Progress.
type Sink interface {
	Progress(u Update)
	Warning(msg string)
}

// Nop discards every update. Useful for tests and library callers that
// don't need progress notifications.
type Nop struct{}

func (Nop) Progress(Update)   {}
func (Nop) Warning(string) {}
