package dashboards

import "context"

// Service is the dashboard API surface the core depends on. The transport,
// auth headers, and payload formats behind it belong to the API client.
type Service interface {
	List(ctx context.Context) ([]Summary, error)
	Delete(ctx context.Context, id string) error
}

// PromptSink asks the user for confirmation. ConfirmStrong only returns true
// when the user types requiredPhrase verbatim.
type PromptSink interface {
	Confirm(message string) (bool, error)
	ConfirmStrong(message, requiredPhrase string) (bool, error)
}

// ProgressSink observes a bulk operation. Implementations must not influence
// control flow.
type ProgressSink interface {
	ItemStart(id string, index, total int)
	ItemResult(id string, err error)
	Complete(result BulkResult)
}

// Output emits status lines to the user.
type Output interface {
	Successf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Infof(format string, args ...any)
}
