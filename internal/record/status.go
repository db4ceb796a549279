package record

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPicked    OrderStatus = "picked"
	StatusPacked    OrderStatus = "packed"
	StatusShipped   OrderStatus = "shipped"
	StatusProcessed OrderStatus = "processed"

	// StatusAll is not a real status; it is the filter value meaning
	// "do not filter".
	StatusAll OrderStatus = "all"
)

func (s OrderStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the five real order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPicked, StatusPacked, StatusShipped, StatusProcessed:
		return true
	}
	return false
}

// allowedTransitions encodes the strictly forward-progressing order
// lifecycle. "processed" is a terminal shortcut reachable from any
// non-terminal status (the legacy one-click "Process Order" action).
var allowedTransitions = map[OrderStatus]map[OrderStatus]bool{
	StatusPending: {
		StatusPicked:    true,
		StatusProcessed: true,
	},
	StatusPicked: {
		StatusPacked:    true,
		StatusProcessed: true,
	},
	StatusPacked: {
		StatusShipped:   true,
		StatusProcessed: true,
	},
	StatusShipped:   {},
	StatusProcessed: {},
}

// CanTransition reports whether moving an order from one status to
// another is allowed. Statuses only ever move forward.
func CanTransition(from, to OrderStatus) bool {
	next, ok := allowedTransitions[from]
	return ok && next[to]
}
