package constants

// SortMode selects the comparator applied to a fetched todo list.
type SortMode string

const (
	SortDefault  SortMode = "default"
	SortPriority SortMode = "priority"
	SortDueDate  SortMode = "due_date"
	SortCreated  SortMode = "created"
)

func (m SortMode) Valid() bool {
	switch m {
	case SortDefault, SortPriority, SortDueDate, SortCreated:
		return true
	}
	return false
}

// ParseSortMode maps a request value to a SortMode; empty means default.
func ParseSortMode(v string) (SortMode, bool) {
	if v == "" {
		return SortDefault, true
	}
	m := SortMode(v)
	return m, m.Valid()
}
