package crawler

// linkState tracks where a URL is in the crawl lifecycle. Every encountered
// URL moves Unseen -> Queued -> Visited; enqueueing is only permitted from
// Unseen, which bounds queue growth.
type linkState int

const (
	stateUnseen linkState = iota
	stateQueued
	stateVisited
)

// stateTracker records the crawl state of every URL the traversal has
// encountered. It is owned by the crawl loop and is not safe for
// concurrent use.
type stateTracker struct {
	states map[string]linkState
}

func newStateTracker() *stateTracker {
	return &stateTracker{states: make(map[string]linkState)}
}

func (t *stateTracker) state(url string) linkState {
	return t.states[url]
}

// markQueued transitions a URL from Unseen to Queued. Returns false without
// changing state when the URL is already queued or visited.
func (t *stateTracker) markQueued(url string) bool {
	if t.states[url] != stateUnseen {
		return false
	}
	t.states[url] = stateQueued
	return true
}

// markVisited transitions a URL to Visited from any state.
func (t *stateTracker) markVisited(url string) {
	t.states[url] = stateVisited
}
