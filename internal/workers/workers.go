package workers

// Workers aggregates background workers so the application can start and
// stop them as a unit.
type Workers struct {
	workers []Worker
}

// New bundles the given workers. Nil entries are skipped.
func New(all ...Worker) *Workers {
	bundle := &Workers{}
	for _, w := range all {
		if w != nil {
			bundle.workers = append(bundle.workers, w)
		}
	}
	return bundle
}

// Run starts every worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
