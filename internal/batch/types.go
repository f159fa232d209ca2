package batch

// Options selects what happens to a source after filtering.
type Options struct {
	Backup  bool // copy the source aside before overwriting it
	InPlace bool // overwrite the source with filtered content
	DryRun  bool // count only, never write
}

// Result records the outcome of processing one source. Err is per-source:
// a failed source never aborts the batch.
type Result struct {
	File    string
	Removed int
	Success bool
	Err     error
}
