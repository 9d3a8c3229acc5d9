package navigator

// maxConsecutiveActionFailures is the threshold for failing the session.
// A single timed-out action is recorded and fed back to the model, which
// usually picks a different element; three in a row means the page is not
// responding to us at all.
const maxConsecutiveActionFailures = 3

// loopState tracks failure bookkeeping across navigation steps.
type loopState struct {
	lastActionFailed          bool
	lastErrorMessage          string
	consecutiveActionFailures int
}

// shouldAbortOnFailures returns true once consecutive action failures
// reach the threshold.
func (s *loopState) shouldAbortOnFailures() bool {
	return s.consecutiveActionFailures >= maxConsecutiveActionFailures
}

// recordSuccess resets failure tracking after an action lands.
func (s *loopState) recordSuccess() {
	s.lastActionFailed = false
	s.lastErrorMessage = ""
	s.consecutiveActionFailures = 0
}

// recordFailure records a failed action. Only timeout-class failures count
// toward the consecutive threshold; anything else aborts the loop directly.
func (s *loopState) recordFailure(errMsg string, isTimeout bool) {
	s.lastActionFailed = true
	s.lastErrorMessage = errMsg
	if isTimeout {
		s.consecutiveActionFailures++
	} else {
		s.consecutiveActionFailures = 0
	}
}
