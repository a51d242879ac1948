package interfaces

// IFaultInjector decides whether a repository write should fail with
// ErrTransientFailure. The production wiring uses a random ~10% strategy to
// exercise rollback paths; tests inject deterministic strategies so both
// branches are forced, never rolled by chance.
type IFaultInjector interface {
	ShouldFail() bool
}
