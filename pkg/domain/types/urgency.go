package types

// Urgency is the derived display classification of a task. It differs from
// TaskStatus only for pending tasks, where deadline proximity promotes the
// badge to urgent. There is no separate overdue class; a past deadline
// derives urgent.
type Urgency string

const (
	UrgencyPending   Urgency = "pending"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyProgress  Urgency = "progress"
	UrgencyCompleted Urgency = "completed"
	UrgencyDeclined  Urgency = "declined"
)

// AllUrgencies returns all valid urgency classes
func AllUrgencies() []Urgency {
	return []Urgency{
		UrgencyPending,
		UrgencyUrgent,
		UrgencyProgress,
		UrgencyCompleted,
		UrgencyDeclined,
	}
}

// IsValid checks if the urgency is valid
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyPending,
		UrgencyUrgent,
		UrgencyProgress,
		UrgencyCompleted,
		UrgencyDeclined:
		return true
	default:
		return false
	}
}

// String returns the string representation of the urgency
func (u Urgency) String() string {
	return string(u)
}
