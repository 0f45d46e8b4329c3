// Package reconcile applies edited timesheet snapshots to storage, one child
// kind at a time.
//
// Each kind has a mutator bound to a transaction and the owning timesheet.
// Deletes and updates are scoped by both record id and timesheet id, so a
// snapshot can never reach records of another timesheet; such an attempt
// fails with ErrNotOwned. Trucking and tasco logs own grandchildren
// (equipment hauled, materials, refuel logs, state mileages) which are
// replaced wholesale whenever their parent is updated, and removed before
// their parent is deleted.
//
// ApplyAll runs the kinds in a fixed order: maintenance, trucking, tasco,
// equipment. PlanAll returns the same reports without writing.
package reconcile
