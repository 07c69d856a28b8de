package models

import "time"

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskOverdue    TaskStatus = "overdue"
)

// Task is a follow-up action on a student.
type Task struct {
	ID          string     `bson:"_id"`
	StudentID   string     `bson:"studentId"`
	Description string     `bson:"description"`
	DueDate     time.Time  `bson:"dueDate"`
	AssignedTo  string     `bson:"assignedTo"`
	Status      TaskStatus `bson:"status"`
	CreatedBy   string     `bson:"createdBy"`
	CreatedAt   time.Time  `bson:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt"`
}

// CanBeUpdatedBy reports whether the user may change the task.
func (t *Task) CanBeUpdatedBy(userID string) bool {
	return userID != "" && (t.CreatedBy == userID || t.AssignedTo == userID)
}
