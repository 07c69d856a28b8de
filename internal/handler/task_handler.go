package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	"github.com/noah-isme/admissions-crm-api/pkg/response"
)

type taskService interface {
	List(ctx context.Context, studentID string) ([]models.Task, error)
	Create(ctx context.Context, actor string, req dto.CreateTaskRequest) (*models.Task, error)
	UpdateStatus(ctx context.Context, actor, id string, req dto.UpdateTaskStatusRequest) (*models.Task, error)
}

// TaskHandler exposes follow-up task endpoints.
type TaskHandler struct {
	service taskService
}

func NewTaskHandler(service taskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List godoc
// @Summary List tasks, newest first
// @Tags Tasks
// @Produce json
// @Param studentId query string false "Student id"
// @Success 200 {array} dto.TaskResponse
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.service.List(c.Request.Context(), c.Query("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.TasksToWire(tasks))
}

// Create godoc
// @Summary Create a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param payload body dto.CreateTaskRequest true "Task"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} response.ErrorBody
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	principal := requirePrincipal(c)
	if principal == nil {
		return
	}
	var req dto.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.service.Create(c.Request.Context(), principal.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.TaskToWire(task))
}

// UpdateStatus godoc
// @Summary Change a task's status
// @Description Only the creator or the assignee may update a task.
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task id"
// @Param payload body dto.UpdateTaskStatusRequest true "New status"
// @Success 200 {object} dto.TaskResponse
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /tasks/{id} [patch]
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	principal := requirePrincipal(c)
	if principal == nil {
		return
	}
	var req dto.UpdateTaskStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.service.UpdateStatus(c.Request.Context(), principal.UserID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.TaskToWire(task))
}
