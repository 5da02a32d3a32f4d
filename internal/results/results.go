// Package results holds the result shapes shared across domain packages:
// the uniform deletion outcome with its confirmation warning, and the
// empty-list sentinel.
package results

// Deletion is the outcome of every destructive tool. A missing confirmation
// is a warning ("did not happen, needs confirmation"), distinct from the
// error path ("attempted and failed"): Deleted stays false, Warning is set,
// and no backend call was made.
type Deletion struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// Deleted reports a completed deletion of the identified record.
func Deleted(id string) Deletion {
	return Deletion{Deleted: true, ID: id}
}

// NeedsConfirmation reports a refused deletion. what names the record kind
// in the warning text.
func NeedsConfirmation(what string) Deletion {
	return Deletion{Warning: "This will permanently delete the " + what + ". Pass confirm=true to proceed."}
}

// NoneFound is the sentinel message for an empty successful result set.
func NoneFound(what string) string {
	return "No " + what + " found"
}
