package dashboards

import "context"

// Options control how the executor reacts to per-item failures.
type Options struct {
	// StopOnFirstError aborts the batch when an item fails. The delete path
	// always runs best-effort and leaves this false; the add path sets it
	// unless the user passed --skip-errors.
	StopOnFirstError bool
}

// Executor runs an operation over a set of ids one at a time, in order,
// isolating per-item failures into the result.
type Executor struct {
	Progress ProgressSink
}

// Execute invokes op once per id. Failures are recorded in the result; with
// StopOnFirstError the failing error is also returned and the batch stops.
// Cancelling ctx skips the remaining ids and returns the partial result
// together with the context error. In every case Succeeded plus len(Failed)
// equals the number of attempted items.
func (e Executor) Execute(ctx context.Context, ids []string, op func(context.Context, string) error, opts Options) (BulkResult, error) {
	var result BulkResult
	total := len(ids)

	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			e.complete(result)
			return result, err
		}

		e.itemStart(id, i+1, total)
		err := op(ctx, id)
		e.itemResult(id, err)

		if err != nil {
			result.Failed = append(result.Failed, ItemFailure{ID: id, Err: err})
			if opts.StopOnFirstError {
				e.complete(result)
				return result, err
			}
			continue
		}
		result.Succeeded++
	}

	e.complete(result)
	return result, nil
}

func (e Executor) itemStart(id string, index, total int) {
	if e.Progress != nil {
		e.Progress.ItemStart(id, index, total)
	}
}

func (e Executor) itemResult(id string, err error) {
	if e.Progress != nil {
		e.Progress.ItemResult(id, err)
	}
}

func (e Executor) complete(result BulkResult) {
	if e.Progress != nil {
		e.Progress.Complete(result)
	}
}
