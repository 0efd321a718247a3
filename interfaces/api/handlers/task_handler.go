package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"gofiber-todo/domain/dto"
	"gofiber-todo/domain/services"
	"gofiber-todo/pkg/greeting"
	"gofiber-todo/pkg/logger"
	"gofiber-todo/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
	greeter     greeting.Source
}

func NewTaskHandler(taskService services.TaskService, greeter greeting.Source) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		greeter:     greeter,
	}
}

// ListTasks หน้าแรก: tasks ของ user + จำนวนที่ยังไม่เสร็จ + greeting
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.RedirectToLogin(c)
	}

	search := c.Query("search")
	if search == "" {
		search = c.Query("search-field")
	}

	tasks, incomplete, err := h.taskService.ListTasks(ctx, user.ID, search)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskListResponse{
		Tasks:           dto.TasksToTaskResponses(tasks),
		IncompleteCount: incomplete,
		Greeting:        greeting.Pick(h.greeter, user.Username),
		Search:          search,
	})
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.RedirectToLogin(c)
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Task not found")
	}

	task, err := h.taskService.GetTask(ctx, user.ID, taskID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

// CreateTaskForm GET /create-task/ ไม่ต้อง login
func (h *TaskHandler) CreateTaskForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, formDescriptor(c, "task", "/create-task/", "title", "description", "complete"))
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.RedirectToLogin(c)
	}

	var req dto.CreateTaskRequest
	if err := parseCreateTask(c, &req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessOrRedirect(c, fiber.StatusCreated, dto.TaskToTaskResponse(task), utils.ListPath)
}

// EditTask GET /update-task/:id/ คืน task สำหรับเติมใน form
func (h *TaskHandler) EditTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.RedirectToLogin(c)
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Task not found")
	}

	task, err := h.taskService.GetTask(ctx, user.ID, taskID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, dto.EditTaskResponse{
		Task: *dto.TaskToTaskResponse(task),
		Form: formDescriptor(c, "task", c.Path(), "title", "description", "complete"),
	})
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.RedirectToLogin(c)
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Task not found")
	}

	var req dto.UpdateTaskRequest
	if err := parseUpdateTask(c, &req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	task, err := h.taskService.UpdateTask(ctx, user.ID, taskID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessOrRedirect(c, fiber.StatusOK, dto.TaskToTaskResponse(task), utils.ListPath)
}

// RequestDelete GET /delete-task/:id/ ขั้นยืนยัน ยังไม่ลบ
func (h *TaskHandler) RequestDelete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.RedirectToLogin(c)
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Task not found")
	}

	task, err := h.taskService.RequestDelete(ctx, user.ID, taskID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, dto.DeleteConfirmationResponse{
		Task:    *dto.TaskToTaskResponse(task),
		Confirm: fmt.Sprintf("Are you sure you want to delete %q?", task.Title),
		Form:    formDescriptor(c, "delete-task", c.Path()),
	})
}

// ConfirmDelete POST|DELETE /delete-task/:id/
func (h *TaskHandler) ConfirmDelete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.RedirectToLogin(c)
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Task not found")
	}

	if err := h.taskService.ConfirmDelete(ctx, user.ID, taskID); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessOrRedirect(c, fiber.StatusOK, dto.DeleteTaskResponse{ID: taskID, Deleted: true}, utils.ListPath)
}

// parseTaskID id ที่ไม่ใช่ตัวเลขถือว่าไม่มี task (404)
func parseTaskID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
