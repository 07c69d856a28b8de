package dto

import "github.com/noah-isme/admissions-crm-api/internal/models"

type CreateTaskRequest struct {
	StudentID   string `json:"studentId" validate:"required"`
	Description string `json:"description" validate:"required"`
	DueDate     string `json:"dueDate" validate:"required"`
	AssignedTo  string `json:"assignedTo" validate:"required"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed overdue"`
}

type TaskResponse struct {
	ID          string `json:"id"`
	StudentID   string `json:"studentId"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	AssignedTo  string `json:"assignedTo"`
	Status      string `json:"status"`
	CreatedBy   string `json:"createdBy"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func TaskToWire(t *models.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		StudentID:   t.StudentID,
		Description: t.Description,
		DueDate:     FormatTimestamp(t.DueDate),
		AssignedTo:  t.AssignedTo,
		Status:      string(t.Status),
		CreatedBy:   t.CreatedBy,
		CreatedAt:   FormatTimestamp(t.CreatedAt),
		UpdatedAt:   FormatTimestamp(t.UpdatedAt),
	}
}

func TasksToWire(tasks []models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, TaskToWire(&tasks[i]))
	}
	return out
}
