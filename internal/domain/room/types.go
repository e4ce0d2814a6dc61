package room

type Status string

const (
	StatusAvailable          Status = "available"
	StatusReserved           Status = "reserved"
	StatusOccupied           Status = "occupied"
	StatusDirty              Status = "dirty"
	StatusCleaningInProgress Status = "cleaning_in_progress"
	StatusClean              Status = "clean"
	StatusUnderMaintenance   Status = "under_maintenance"
	StatusOutOfService       Status = "out_of_service"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusOccupied, StatusDirty,
		StatusCleaningInProgress, StatusClean, StatusUnderMaintenance,
		StatusOutOfService:
		return true
	default:
		return false
	}
}

// housekeepingFlow lists the manual transitions housekeeping staff may apply
// directly. Everything else goes through the reconciler.
var housekeepingFlow = map[Status][]Status{
	StatusAvailable:          {StatusDirty},
	StatusClean:              {StatusDirty, StatusAvailable},
	StatusDirty:              {StatusCleaningInProgress},
	StatusCleaningInProgress: {StatusClean},
}

func CanHousekeepingTransition(from, to Status) bool {
	for _, next := range housekeepingFlow[from] {
		if next == to {
			return true
		}
	}
	return false
}
