package city

import "sync"

// RunHandle is the future for one asynchronous generation run. Callers may
// await Done, poll Completed, or block on Result.
type RunHandle struct {
	done chan struct{}

	mu     sync.Mutex
	output *GenerateCityOutput
	err    error
}

func newRunHandle() *RunHandle {
	return &RunHandle{done: make(chan struct{})}
}

// Done returns a channel that is closed when the run finishes.
func (h *RunHandle) Done() <-chan struct{} {
	return h.done
}

// Completed reports without blocking whether the run has finished.
func (h *RunHandle) Completed() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Result blocks until the run finishes and returns its outcome.
func (h *RunHandle) Result() (*GenerateCityOutput, error) {
	<-h.done

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.output, h.err
}

// complete records the outcome and releases every waiter. Called exactly
// once per run.
func (h *RunHandle) complete(output *GenerateCityOutput, err error) {
	h.mu.Lock()
	h.output = output
	h.err = err
	h.mu.Unlock()

	close(h.done)
}
