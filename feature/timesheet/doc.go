// Package timesheet edits timesheets and their nested child logs.
//
// An edit (UpdateRequest) carries the snapshot the editor started from and the
// edited snapshot. Service.UpdateTimesheet applies it in a single database
// transaction:
//
//  1. resolve the editor and the timesheet owner
//  2. check the snapshot version against the stored one
//  3. acknowledge open review notifications (inline mode)
//  4. write a change-log entry when the edit lists changes
//  5. update the timesheet's own fields and bump its version
//  6. reconcile maintenance, trucking, tasco and equipment logs
//
// A failure at any step rolls everything back. After commit a
// TimesheetEdited event is dispatched; its handlers invalidate cached views,
// archive the change-log entry and, in event mode, acknowledge notifications.
// Handler failures are logged and never undo the edit.
//
// # HTTP
//
//	PUT  /timesheets/:id             apply an edit
//	POST /timesheets/:id/plan        dry run
//	GET  /timesheets                 list
//	GET  /timesheets/:id             read with child logs
//	GET  /timesheets/:id/changelogs  audit history
package timesheet
