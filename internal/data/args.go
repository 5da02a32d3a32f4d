package data

// ExportArgs contains parameters for the CSV export tools.
type ExportArgs struct{}

// ExportTransactionsArgs contains parameters for the transaction export,
// which supports an optional date range and account scope.
type ExportTransactionsArgs struct {
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Range start (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"Range end (YYYY-MM-DD)"`
	Accounts  string `json:"accounts,omitempty" jsonschema_description:"Comma-separated account IDs to limit the export"`
}

// ExportResult carries one CSV export.
type ExportResult struct {
	Kind    string `json:"kind"`
	CSV     string `json:"csv"`
	Message string `json:"message,omitempty"`
}

// BulkUpdateArgs contains parameters for the bulk transaction update. The
// query pairs a where clause with the new values, e.g.
// {"where": {"account_id": 1}, "update": {"account_id": 2}}.
type BulkUpdateArgs struct {
	Query string `json:"query" jsonschema:"required" jsonschema_description:"Bulk update query as a JSON literal with where and update clauses"`
}

// BulkUpdateResult is the outcome of a bulk transaction update.
type BulkUpdateResult struct {
	Applied bool `json:"applied"`
}

// DestroyArgs contains parameters for bulk deletion of one object class.
type DestroyArgs struct {
	Objects string `json:"objects" jsonschema:"required" jsonschema_description:"Object class to destroy, e.g. budgets, tags, transactions"`
	Confirm bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DestroyResult is the outcome of a bulk deletion.
type DestroyResult struct {
	Destroyed bool   `json:"destroyed"`
	Objects   string `json:"objects,omitempty"`
	Warning   string `json:"warning,omitempty"`
}

// PurgeArgs contains parameters for purging soft-deleted records. Purging
// cannot be undone, so it demands a second acknowledgement on top of the
// usual confirmation.
type PurgeArgs struct {
	Confirm                 bool `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize the purge"`
	AcknowledgeIrreversible bool `json:"acknowledge_irreversible,omitempty" jsonschema_description:"Must also be true; purged records cannot be restored"`
}

// PurgeResult is the outcome of a purge.
type PurgeResult struct {
	Purged  bool   `json:"purged"`
	Warning string `json:"warning,omitempty"`
}
