package ticket

import (
	"time"

	vo "issuetracker/internal/domain/ticket/valueobjects"
	"issuetracker/internal/shared/errors"
)

// ErrUnknownTransition is returned when either end of a transition is not a
// known status value.
var ErrUnknownTransition = errors.NewValidationError("Status must be open, in_progress, or resolved")

// transitionRule pairs the precondition of a status change with the side
// effects it applies. The check and the mutation are one atomic decision:
// a failed precondition leaves the ticket untouched.
type transitionRule struct {
	check func(t *Ticket, reason string) error
	apply func(t *Ticket, now time.Time)
}

type transitionKey struct {
	from vo.Status
	to   vo.Status
}

// enterResolved requires a substantial description and stamps resolvedAt.
// It also covers resolved → resolved, which re-stamps resolvedAt.
var enterResolved = transitionRule{
	check: func(t *Ticket, _ string) error {
		return ValidateResolutionDescription(t.description)
	},
	apply: func(t *Ticket, now time.Time) {
		t.status = vo.StatusResolved
		t.resolvedAt = &now
	},
}

// leaveResolved requires a caller-supplied reason and clears resolvedAt.
func leaveResolved(target vo.Status) transitionRule {
	return transitionRule{
		check: func(_ *Ticket, reason string) error {
			_, err := ValidateReason(reason)
			return err
		},
		apply: func(t *Ticket, _ time.Time) {
			t.status = target
			t.resolvedAt = nil
		},
	}
}

// lateral moves between non-resolved statuses carry no precondition and
// leave resolvedAt untouched (it is nil in every non-resolved status).
func lateral(target vo.Status) transitionRule {
	return transitionRule{
		check: func(_ *Ticket, _ string) error { return nil },
		apply: func(t *Ticket, _ time.Time) {
			t.status = target
		},
	}
}

// transitionTable enumerates every current × target pair. All statuses are
// reachable from all others; only preconditions and side effects differ.
var transitionTable = map[transitionKey]transitionRule{
	{vo.StatusOpen, vo.StatusOpen}:             lateral(vo.StatusOpen),
	{vo.StatusOpen, vo.StatusInProgress}:       lateral(vo.StatusInProgress),
	{vo.StatusOpen, vo.StatusResolved}:         enterResolved,
	{vo.StatusInProgress, vo.StatusOpen}:       lateral(vo.StatusOpen),
	{vo.StatusInProgress, vo.StatusInProgress}: lateral(vo.StatusInProgress),
	{vo.StatusInProgress, vo.StatusResolved}:   enterResolved,
	{vo.StatusResolved, vo.StatusOpen}:         leaveResolved(vo.StatusOpen),
	{vo.StatusResolved, vo.StatusInProgress}:   leaveResolved(vo.StatusInProgress),
	{vo.StatusResolved, vo.StatusResolved}:     enterResolved,
}

// Transition moves the ticket to the target status, enforcing the rule for
// the current → target pair and stamping updatedAt. A transition to the
// current status is processed normally and still refreshes updatedAt.
func (t *Ticket) Transition(target vo.Status, reason string) error {
	rule, ok := transitionTable[transitionKey{t.status, target}]
	if !ok {
		// Unreachable for valid statuses; Reconstruct and NewStatus guard both ends.
		return ErrUnknownTransition
	}

	if err := rule.check(t, reason); err != nil {
		return err
	}

	now := time.Now()
	rule.apply(t, now)
	t.updatedAt = now
	return nil
}
