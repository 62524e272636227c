package handlers

import (
	"net/http"
	"strconv"

	"taskClient/internal/gateway"
	"taskClient/internal/logger"
	"taskClient/internal/models/task"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	filter, _ := task.ParseFilter(r.URL.Query().Get("status"))

	page := dashboardPage{
		Filter:   string(filter),
		Statuses: statusChoices,
	}

	tasks, err := h.tasks.LoadForFilter(r.Context(), filter)
	if err != nil {
		if h.guard.HandleAPIError(err) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		// показываем последний удачный снимок, а не пустой экран
		page.Error = "An error occurred while fetching tasks"
		page.Tasks = h.tasks.Snapshot()
		h.render(w, http.StatusOK, "dashboard", page)
		return
	}

	if r.URL.Query().Get("error") == "delete_failed" {
		page.Error = "The task could not be deleted and has been restored"
	}
	page.Tasks = tasks
	h.render(w, http.StatusOK, "dashboard", page)
}

func (h *Handler) AddTaskForm(w http.ResponseWriter, r *http.Request) {
	page := taskFormPage{
		Title:    "Add New Task",
		Action:   "/tasks/create",
		Statuses: statusChoices,
		Values:   map[string]string{"status": string(task.StatusPending)},
	}

	categories, err := h.categories.LoadAll(r.Context())
	if err != nil {
		if h.guard.HandleAPIError(err) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		page.Error = "Error loading categories"
	}
	page.Categories = categories
	h.render(w, http.StatusOK, "task_form", page)
}

func (h *Handler) AddTask(w http.ResponseWriter, r *http.Request) {
	draft, values := draftFromForm(r)

	_, err := h.tasks.Create(r.Context(), draft)
	if err != nil {
		if h.guard.HandleAPIError(err) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.renderTaskForm(w, r, "Add New Task", "/tasks/create", values, err)
		return
	}

	// в коллекцию не вставляем: дашборд перечитает список под свой фильтр
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) EditTaskForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.render(w, http.StatusNotFound, "error", errorPage{Message: "Task not found"})
		return
	}

	current, err := h.api.GetTask(r.Context(), id)
	if err != nil {
		h.renderTaskError(w, r, err)
		return
	}

	page := taskFormPage{
		Title:    "Edit Task",
		Action:   "/tasks/edit/" + strconv.FormatInt(id, 10),
		Statuses: statusChoices,
		Values: map[string]string{
			"title":       current.Title,
			"description": current.Description,
			"status":      string(current.Status),
			"category_id": strconv.FormatInt(current.CategoryID, 10),
			"due_date":    current.DueDate.String(),
		},
	}

	categories, err := h.categories.LoadAll(r.Context())
	if err != nil {
		page.Error = "Error loading categories"
	}
	page.Categories = categories
	h.render(w, http.StatusOK, "task_form", page)
}

func (h *Handler) EditTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.render(w, http.StatusNotFound, "error", errorPage{Message: "Task not found"})
		return
	}

	current, err := h.api.GetTask(r.Context(), id)
	if err != nil {
		h.renderTaskError(w, r, err)
		return
	}

	// полная замена записи: недостающие в форме поля берутся из текущей
	status, _ := task.ParseStatus(r.FormValue("status"))
	dueDate, _ := task.ParseDate(r.FormValue("due_date"))
	categoryID, _ := strconv.ParseInt(r.FormValue("category_id"), 10, 64)

	draft := task.DraftFrom(current,
		task.WithTitle(r.FormValue("title")),
		task.WithDescription(r.FormValue("description")),
		task.WithStatus(status),
		task.WithCategoryID(categoryID),
		task.WithDueDate(dueDate),
	)

	values := draftToValues(draft)
	if _, err := h.tasks.Update(r.Context(), id, draft); err != nil {
		if h.guard.HandleAPIError(err) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.renderTaskForm(w, r, "Edit Task", "/tasks/edit/"+strconv.FormatInt(id, 10), values, err)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.render(w, http.StatusNotFound, "error", errorPage{Message: "Task not found"})
		return
	}

	if err := h.tasks.Delete(r.Context(), id); err != nil {
		if h.guard.HandleAPIError(err) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		logger.Warn("HTTP: Удаление не удалось", zap.Int64("task_id", id), zap.Error(err))
		http.Redirect(w, r, "/dashboard?error=delete_failed", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// renderTaskForm перерисовывает форму с ошибками, сохраняя ввод пользователя
func (h *Handler) renderTaskForm(w http.ResponseWriter, r *http.Request, title, action string, values map[string]string, cause error) {
	page := taskFormPage{
		Title:    title,
		Action:   action,
		Statuses: statusChoices,
		Values:   values,
	}

	if fields := gateway.FieldErrors(cause); fields != nil {
		page.Error = "Error saving task"
		page.Errors = fields
	} else {
		page.Error = "Unknown error occurred while saving the task"
	}

	categories, err := h.categories.LoadAll(r.Context())
	if err != nil {
		categories = h.categories.Snapshot()
	}
	page.Categories = categories
	h.render(w, http.StatusUnprocessableEntity, "task_form", page)
}

func (h *Handler) renderTaskError(w http.ResponseWriter, r *http.Request, err error) {
	if h.guard.HandleAPIError(err) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if gateway.IsNotFound(err) {
		h.render(w, http.StatusNotFound, "error", errorPage{Message: "Task not found"})
		return
	}
	h.render(w, http.StatusBadGateway, "error", errorPage{Message: "Error loading task"})
}

func draftFromForm(r *http.Request) (task.Draft, map[string]string) {
	status, _ := task.ParseStatus(r.FormValue("status"))
	dueDate, _ := task.ParseDate(r.FormValue("due_date"))
	categoryID, _ := strconv.ParseInt(r.FormValue("category_id"), 10, 64)

	draft := task.Draft{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Status:      status,
		CategoryID:  categoryID,
		DueDate:     dueDate,
	}
	return draft, draftToValues(draft)
}

func draftToValues(d task.Draft) map[string]string {
	categoryID := ""
	if d.CategoryID != 0 {
		categoryID = strconv.FormatInt(d.CategoryID, 10)
	}
	return map[string]string{
		"title":       d.Title,
		"description": d.Description,
		"status":      string(d.Status),
		"category_id": categoryID,
		"due_date":    d.DueDate.String(),
	}
}
