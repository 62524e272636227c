package handlers

import (
	"context"
	"html/template"
	"net/http"

	"taskClient/internal/logger"
	"taskClient/internal/models/category"
	"taskClient/internal/models/task"
	"taskClient/internal/session"
	"taskClient/internal/state"
)

// API - часть gateway, которую представление зовёт напрямую
// (вход, регистрация и загрузка задачи для формы редактирования)
type API interface {
	Register(ctx context.Context, name, email, password, confirmation string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetTask(ctx context.Context, id int64) (task.Task, error)
}

// Credentials - запись токена после входа/регистрации
type Credentials interface {
	Set(token string)
}

type Handler struct {
	api        API
	creds      Credentials
	guard      *session.Guard
	tasks      *state.TaskCollection
	categories *state.CategoryRegistry
	tmpl       *template.Template
}

func New(api API, creds Credentials, guard *session.Guard, tasks *state.TaskCollection, categories *state.CategoryRegistry) *Handler {
	return &Handler{
		api:        api,
		creds:      creds,
		guard:      guard,
		tasks:      tasks,
		categories: categories,
		tmpl:       template.Must(template.New("pages").Parse(pagesHTML)),
	}
}

var statusChoices = []task.Status{task.StatusPending, task.StatusInProgress, task.StatusCompleted}

type authPage struct {
	Error  string
	Values map[string]string
}

type dashboardPage struct {
	Error    string
	Filter   string
	Statuses []task.Status
	Tasks    []task.Task
}

type taskFormPage struct {
	Title      string
	Action     string
	Error      string
	Errors     map[string][]string
	Values     map[string]string
	Statuses   []task.Status
	Categories []category.Category
}

type categoryFormPage struct {
	Error  string
	Errors map[string][]string
	Values map[string]string
}

type errorPage struct {
	Message string
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("HTTP: Ошибка рендера страницы", err)
	}
}

// Home - корень: авторизованных на дашборд, остальных на вход
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if h.guard.State() == session.StateAuthorized {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
