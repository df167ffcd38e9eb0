package engine

// Statistics holds the monotonic counters for one game. It is a dumb value
// struct so it can be copied into snapshots and persisted as-is.
type Statistics struct {
	// Lines is the total number of lines cleared.
	Lines uint64

	// Pieces is the number of pieces frozen into the field.
	Pieces uint64

	// Per-size clear counts: 1, 2, 3 and 4 simultaneous lines.
	Singles uint64
	Doubles uint64
	Triples uint64
	Fours   uint64
}
