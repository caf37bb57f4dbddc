package constants

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// priorityRanks orders priorities by severity for sorting; lower rank sorts first.
var priorityRanks = map[Priority]int{
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityLow:    3,
}

func (p Priority) Valid() bool {
	_, ok := priorityRanks[p]
	return ok
}

// Rank returns the sort rank of p. Unknown values rank as medium.
func (p Priority) Rank() int {
	if r, ok := priorityRanks[p]; ok {
		return r
	}
	return priorityRanks[PriorityMedium]
}
