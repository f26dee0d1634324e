package model

// Task identifies one of the two independent classification targets.
// The task name doubles as the label column name in the dataset CSV.
type Task string

const (
	TaskDepartment Task = "department"
	TaskSentiment  Task = "sentiment"
)

// Tasks lists every known task in training order.
var Tasks = []Task{TaskDepartment, TaskSentiment}

// Known reports whether t names a recognized task.
func (t Task) Known() bool {
	switch t {
	case TaskDepartment, TaskSentiment:
		return true
	}
	return false
}

// Label extracts the task's label column value from a review.
// Returns "" for unknown tasks.
func (t Task) Label(r Review) string {
	switch t {
	case TaskDepartment:
		return r.Department
	case TaskSentiment:
		return r.Sentiment
	}
	return ""
}
