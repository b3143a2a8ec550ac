package rope

// VisitedTail collects every distinct position held by the last knot.
func VisitedTail(history History) map[Position]struct{} {
	visited := make(map[Position]struct{})
	for _, chain := range history {
		visited[chain.Tail()] = struct{}{}
	}
	return visited
}

func CountVisited(history History) int {
	return len(VisitedTail(history))
}

// TailTracker counts the cells visited by the tail of a simulated rope.
type TailTracker struct{}

func NewTailTracker() *TailTracker {
	return &TailTracker{}
}

func (t *TailTracker) CountVisited(history History) int {
	return CountVisited(history)
}
