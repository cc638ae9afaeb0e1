package output

import "sync/atomic"

// dryRun is the process-wide execution-phase flag: preview (dry run) versus
// apply. It is read by Apply and set once per phase by the program runtime (the
// external collaborator that decides preview vs. apply); tests mutate it
// freely via SetDryRun. It is a synchronized atomic rather than a bare
// mutable global, mirroring the atomic-state idiom used throughout this
// codebase's donor lineage for shared scheduler state.
var dryRun atomic.Bool

// SetDryRun sets the process-wide dry-run flag. Production code calls this
// once per execution phase; tests may call it as often as needed.
func SetDryRun(v bool) {
	dryRun.Store(v)
}

// IsDryRun reports the current value of the process-wide dry-run flag.
func IsDryRun() bool {
	return dryRun.Load()
}
