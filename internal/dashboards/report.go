package dashboards

import (
	"fmt"
	"strings"
)

// Report formats the one-line summary of a delete batch. Per-item failure
// reasons were already emitted by the progress sink, so the summary lists
// only the failed ids.
func Report(result BulkResult, total int) string {
	if len(result.Failed) == 0 {
		return fmt.Sprintf("Successfully deleted %s", countNoun(result.Succeeded))
	}
	return fmt.Sprintf("Deleted %d of %s. Failed: %s",
		result.Succeeded, countNoun(total), strings.Join(result.FailedIDs(), ", "))
}
