package conversation

import (
	"sync"

	"retireterm/app/client/simulation"
	"retireterm/app/service/schema"
)

// Mode is the engine's top-level state. The transition from collecting
// to interactive happens exactly once and is irreversible.
type Mode int

const (
	ModeCollecting Mode = iota
	ModeInteractive
)

type Role string

const (
	RoleUser   Role = "user"
	RoleSystem Role = "system"
)

// Entry is one element of the append-only transcript. The concrete
// types form a closed set matched exhaustively at render time.
type Entry interface {
	isEntry()
}

// Message is a plain line attributed to the user or the system.
type Message struct {
	Role Role
	Text string
}

// Chart is a completed simulation run ready for chart rendering.
type Chart struct {
	Run RunResult
}

// Structured is an assistant reply that matched the summary plus
// suggestions shape.
type Structured struct {
	Summary     string
	Suggestions []string
}

// Plain is an assistant reply kept as free text.
type Plain struct {
	Text string
}

func (Message) isEntry()    {}
func (Chart) isEntry()      {}
func (Structured) isEntry() {}
func (Plain) isEntry()      {}

// RunResult is an immutable snapshot of one submission and its
// response, retained as context for assistant questions.
type RunResult struct {
	Inputs  simulation.Payload
	Results *simulation.Response
}

// Recipient is filled incrementally as its two steps are answered.
// An entry with a nil field is excluded from the final payload.
type Recipient struct {
	StartYear     *float64
	MonthlyAmount *float64
}

// State is the single mutable conversation state, owned exclusively by
// the service and updated synchronously between suspension points.
type State struct {
	mu sync.Mutex

	steps      []schema.Step
	cursor     int
	answers    map[string]float64
	recipients []Recipient
	mode       Mode
	transcript []Entry
	latestRun  *RunResult

	// pending is set while a network round trip is in flight; further
	// submissions are rejected instead of queued.
	pending bool
}
