package reconcile

import (
	"cmp"
	"context"
	"errors"
	"fmt"
)

// Mutator applies planned actions for one record kind against a storage backend.
// Implementations are usually bound to a transaction and an owning parent.
type Mutator[K cmp.Ordered, T Record[K]] interface {
	// Delete removes the record with the given key.
	Delete(ctx context.Context, key K) error

	// Update rewrites the stored record to match item.
	Update(ctx context.Context, item T) error

	// Create inserts item.
	Create(ctx context.Context, item T) error
}

// BuildPlan orders the actions for a set of key changes. Deletes come first,
// then updates, then creates, so a key deleted and re-added resolves as
// delete-then-create.
func BuildPlan[K cmp.Ordered](kind string, sets IDSets[K]) *Plan[K] {
	plan := &Plan[K]{
		Kind:    kind,
		Actions: make([]Action[K], 0, len(sets.Deleted)+len(sets.Updated)+len(sets.Added)),
		Summary: PlanSummary{
			Added:     len(sets.Added),
			Updated:   len(sets.Updated),
			Deleted:   len(sets.Deleted),
			Unchanged: len(sets.Unchanged),
		},
	}

	for _, key := range sets.Deleted {
		plan.Actions = append(plan.Actions, Action[K]{Type: ActionDelete, Key: key})
	}
	for _, key := range sets.Updated {
		plan.Actions = append(plan.Actions, Action[K]{Type: ActionUpdate, Key: key})
	}
	for _, key := range sets.Added {
		plan.Actions = append(plan.Actions, Action[K]{Type: ActionCreate, Key: key})
	}

	return plan
}

// ApplyPlan executes the actions of a plan in order, reading update and
// create payloads from the after collection. The first failing action stops
// execution and is returned as a *WriteError.
func ApplyPlan[K cmp.Ordered, T Record[K]](ctx context.Context, plan *Plan[K], after []T, mutator Mutator[K, T]) (executed int, err error) {
	afterIndex, err := buildIndex[K](after, "after")
	if err != nil {
		return 0, err
	}

	for _, action := range plan.Actions {
		var actionErr error

		switch action.Type {
		case ActionDelete:
			actionErr = mutator.Delete(ctx, action.Key)
		case ActionUpdate, ActionCreate:
			item, ok := afterIndex[action.Key]
			if !ok {
				actionErr = fmt.Errorf("no record with key %v in after snapshot", action.Key)
				break
			}
			if action.Type == ActionUpdate {
				actionErr = mutator.Update(ctx, item)
			} else {
				actionErr = mutator.Create(ctx, item)
			}
		default:
			actionErr = fmt.Errorf("unknown action type %q", action.Type)
		}

		if actionErr != nil {
			return executed, &WriteError{Kind: plan.Kind, Action: action.Type, Key: action.Key, Err: actionErr}
		}
		executed++
	}

	return executed, nil
}

// Reconcile diffs two collections and applies the resulting plan.
// The returned plan is non-nil whenever the diff succeeded.
func Reconcile[K cmp.Ordered, T Record[K]](ctx context.Context, kind string, before, after []T, mutator Mutator[K, T]) (*Plan[K], error) {
	plan, err := PlanDiff[K](kind, before, after)
	if err != nil {
		return nil, err
	}

	if _, err := ApplyPlan(ctx, plan, after, mutator); err != nil {
		return plan, err
	}
	return plan, nil
}

// PlanDiff diffs two collections and returns the plan without applying it.
func PlanDiff[K cmp.Ordered, T Record[K]](kind string, before, after []T) (*Plan[K], error) {
	sets, err := Diff[K](before, after)
	if err != nil {
		var dup *DuplicateIdentifierError
		if errors.As(err, &dup) {
			dup.Kind = kind
		}
		return nil, err
	}
	return BuildPlan(kind, sets), nil
}
