package webkit

// loadTracker turns WebKit's load signals into one outcome per navigation.
// WebKit emits LoadFinished after LoadFailed too, so a finish that follows a
// failure is not reported as a success.
type loadTracker struct {
	failedThisLoad bool
	onFinished     func()
	onFailed       func(error)
}

func (t *loadTracker) started() {
	t.failedThisLoad = false
}

func (t *loadTracker) failed(err error) {
	t.failedThisLoad = true
	if t.onFailed != nil {
		t.onFailed(err)
	}
}

func (t *loadTracker) finished() {
	if t.failedThisLoad {
		return
	}
	if t.onFinished != nil {
		t.onFinished()
	}
}
