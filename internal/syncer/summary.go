package syncer

// Result aggregates the outcome of a run: whether any change was staged
// and whether any entry failed. Per-entry failures never abort the run,
// so both can be true at once.
type Result struct {
	Changed bool
	Errored bool
}

// Summary maps a result to its final human-readable outcome. Pure; the
// four cases are mutually exclusive.
func Summary(r Result) string {
	switch {
	case r.Changed && !r.Errored:
		return "changes staged; review and commit"
	case r.Changed && r.Errored:
		return "changes staged, but some entries failed"
	case !r.Changed && r.Errored:
		return "no changes; some entries failed"
	default:
		return "everything already in sync"
	}
}
