package maintenance

type Status string

const (
	StatusReported   Status = "reported"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReported, StatusInProgress, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the ticket still claims the room.
func (s Status) IsOpen() bool {
	return s == StatusReported || s == StatusInProgress
}

func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}
