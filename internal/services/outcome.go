// Package services implements the typed domain operations of the inspection
// logger: constructors and mutators over the record repositories, the session
// that tracks the active inspection, and the bundle assembler used by review
// and report surfaces.
package services

// Outcome reports what a lenient mutator did. Mutating a record whose parent
// is gone is not an error in this tool: the field UI may race ahead of the
// store, so a missing target is a visible skip, not a failure.
type Outcome string

const (
	// OutcomeApplied means the mutation was applied (or was already in
	// effect, for idempotent mutators).
	OutcomeApplied Outcome = "applied"

	// OutcomeSkippedNotFound means the target record does not exist and the
	// mutation changed nothing.
	OutcomeSkippedNotFound Outcome = "skipped-not-found"
)
