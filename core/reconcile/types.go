package reconcile

import (
	"cmp"
	"fmt"
)

// Record is an element of a child collection, identified by a key that is
// unique within its collection.
type Record[K cmp.Ordered] interface {
	Key() K
}

// IDSets partitions the keys of a before/after pair of collections.
// Every key of before ∪ after appears in exactly one list, each sorted ascending.
type IDSets[K cmp.Ordered] struct {
	// Added holds keys present only in the after collection.
	Added []K `json:"added"`

	// Deleted holds keys present only in the before collection.
	Deleted []K `json:"deleted"`

	// Updated holds keys present in both whose records differ.
	Updated []K `json:"updated"`

	// Unchanged holds keys present in both with equal records.
	Unchanged []K `json:"unchanged"`
}

// IsEmpty reports whether nothing needs to be written.
func (s IDSets[K]) IsEmpty() bool {
	return len(s.Added) == 0 && len(s.Deleted) == 0 && len(s.Updated) == 0
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionDelete removes a stored record.
	ActionDelete ActionType = "delete"
	// ActionUpdate rewrites a stored record from the after snapshot.
	ActionUpdate ActionType = "update"
	// ActionCreate inserts a record from the after snapshot.
	ActionCreate ActionType = "create"
)

// Action represents a planned mutation operation.
type Action[K cmp.Ordered] struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the record identifier.
	Key K `json:"key"`
}

// Plan is the ordered list of mutations for one record kind.
type Plan[K cmp.Ordered] struct {
	// Kind names the record kind (e.g., "trucking").
	Kind string `json:"kind"`

	// Actions are executed in order: deletes, updates, creates.
	Actions []Action[K] `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	Added     int `json:"added"`
	Updated   int `json:"updated"`
	Deleted   int `json:"deleted"`
	Unchanged int `json:"unchanged"`
}

// Changed returns the number of records the plan writes.
func (s PlanSummary) Changed() int {
	return s.Added + s.Updated + s.Deleted
}

// Report is a key-type independent view of a plan, used for output.
type Report struct {
	Kind    string         `json:"kind"`
	Summary PlanSummary    `json:"summary"`
	Actions []ActionReport `json:"actions"`
}

// ActionReport is one action of a Report.
type ActionReport struct {
	Type ActionType `json:"type"`
	Key  string     `json:"key"`
}

// Report converts the plan into its printable form.
func (p *Plan[K]) Report() Report {
	r := Report{
		Kind:    p.Kind,
		Summary: p.Summary,
		Actions: make([]ActionReport, 0, len(p.Actions)),
	}
	for _, a := range p.Actions {
		r.Actions = append(r.Actions, ActionReport{Type: a.Type, Key: fmt.Sprint(a.Key)})
	}
	return r
}
