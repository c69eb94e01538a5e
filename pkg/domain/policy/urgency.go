package policy

import (
	"math"
	"time"

	"github.com/maham-hq/maham/pkg/domain/types"
)

// urgentWindowDays is the deadline proximity below which a pending task is
// shown as urgent. The boundary is exclusive: exactly 30 days remaining is
// still pending.
const urgentWindowDays = 30

// DeriveUrgency maps a task's deadline and stored status to its display
// urgency class. Precedence: completed, declined, and progress map to
// themselves regardless of deadline; approved tasks display as completed;
// only pending tasks are classified by deadline proximity. A deadline in
// the past yields a negative remaining-day count and therefore urgent.
func DeriveUrgency(deadline time.Time, status types.TaskStatus, now time.Time) types.Urgency {
	switch status.Normalize() {
	case types.TaskStatusCompleted, types.TaskStatusApproved:
		return types.UrgencyCompleted
	case types.TaskStatusDeclined:
		return types.UrgencyDeclined
	case types.TaskStatusProgress:
		return types.UrgencyProgress
	}

	if DaysRemaining(deadline, now) < urgentWindowDays {
		return types.UrgencyUrgent
	}
	return types.UrgencyPending
}

// DaysRemaining returns ceil((deadline - now) / 1 day)
func DaysRemaining(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}
