package constants

import "time"

// DueStatus classifies a todo's due date against the current time.
// DueStatusNone means the todo has no due date and renders nothing.
type DueStatus string

const (
	DueStatusNone    DueStatus = ""
	DueStatusOverdue DueStatus = "overdue"
	DueStatusDueSoon DueStatus = "due_soon"
	DueStatusOnTrack DueStatus = "on_track"
)

// DueSoonWindow is the span before the due date, inclusive, in which a todo
// counts as due soon.
const DueSoonWindow = 3 * 24 * time.Hour
