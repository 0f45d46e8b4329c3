// Package reconcile computes and applies the minimal set of writes that make a
// stored collection of child records match an edited snapshot.
//
// # Architecture
//
// 1. Diff: indexes the before and after collections by key, builds the union
// of keys and classifies every key as added, deleted, updated or unchanged.
// Records present on both sides are compared structurally (go-cmp).
//
// 2. Plan: orders the resulting actions as deletes, then updates, then creates.
//
// 3. Mutator: kind-specific implementation of Delete/Update/Create, usually
// bound to a gorm transaction and the owning parent record. ApplyPlan drives
// a Mutator through a Plan and stops at the first failure, leaving rollback to
// the enclosing transaction.
//
// # Usage Example
//
//	plan, err := reconcile.Reconcile[string, models.TruckingLogSnapshot](
//	    ctx, "trucking", before.TruckingLogs, after.TruckingLogs, mutator)
//	if err != nil {
//	    return err // *DuplicateIdentifierError or *WriteError
//	}
//	fmt.Println(plan.Summary.Changed())
package reconcile
