package constants

// StatusFilter narrows a todo listing by completion state. It replaces the
// "all"/"active"/"completed" string sentinels with a closed set.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

func (s StatusFilter) Valid() bool {
	switch s {
	case StatusAll, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// ParseStatusFilter maps a request value to a StatusFilter; empty means all.
func ParseStatusFilter(v string) (StatusFilter, bool) {
	if v == "" {
		return StatusAll, true
	}
	s := StatusFilter(v)
	return s, s.Valid()
}
