package models

// Status is shared by projects and tasks.
const (
	StatusTodo     = "todo"
	StatusDone     = "done"
	StatusDropped  = "dropped"
	StatusDeferred = "deferred"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusTodo, StatusDone, StatusDropped, StatusDeferred:
		return true
	}
	return false
}
