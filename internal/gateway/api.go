package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"taskClient/internal/models/category"
	"taskClient/internal/models/task"

	"go.uber.org/zap"

	"taskClient/internal/logger"
)

// wireTask - задача в формате провода; статус сервер исторически
// отдаёт в разнобой, поэтому сворачивание в канонический enum
// происходит только здесь
type wireTask struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CategoryID  int64     `json:"category_id"`
	DueDate     task.Date `json:"due_date"`
}

func (w wireTask) toModel() task.Task {
	status, ok := task.ParseStatus(w.Status)
	if !ok {
		logger.Warn("Gateway: Неизвестный статус задачи",
			zap.Int64("task_id", w.ID),
			zap.String("status", w.Status),
		)
	}

	return task.Task{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Status:      status,
		CategoryID:  w.CategoryID,
		DueDate:     w.DueDate,
	}
}

// taskPayload - тело POST/PUT /tasks, статус всегда канонический
type taskPayload struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CategoryID  int64     `json:"category_id"`
	DueDate     task.Date `json:"due_date"`
}

func payloadFromDraft(d task.Draft) taskPayload {
	return taskPayload{
		Title:       d.Title,
		Description: d.Description,
		Status:      string(d.Status),
		CategoryID:  d.CategoryID,
		DueDate:     d.DueDate,
	}
}

type taskListEnvelope struct {
	Data []wireTask `json:"data"`
}

type taskEnvelope struct {
	Data wireTask `json:"data"`
}

type categoryListEnvelope struct {
	Data []category.Category `json:"data"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (c *Client) Register(ctx context.Context, name, email, password, confirmation string) (string, error) {
	body := registerRequest{
		Name:                 name,
		Email:                email,
		Password:             password,
		PasswordConfirmation: confirmation,
	}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/register", nil, body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil, nil)
}

func (c *Client) ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	query := url.Values{}
	if filter != task.FilterAll {
		query.Set("status", string(filter))
	}

	var envelope taskListEnvelope
	if err := c.do(ctx, http.MethodGet, "/tasks", query, nil, &envelope); err != nil {
		return nil, err
	}

	tasks := make([]task.Task, len(envelope.Data))
	for i, w := range envelope.Data {
		tasks[i] = w.toModel()
	}
	return tasks, nil
}

func (c *Client) GetTask(ctx context.Context, id int64) (task.Task, error) {
	var envelope taskEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, nil, &envelope); err != nil {
		return task.Task{}, err
	}
	return envelope.Data.toModel(), nil
}

func (c *Client) CreateTask(ctx context.Context, draft task.Draft) (task.Task, error) {
	var created wireTask
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, payloadFromDraft(draft), &created); err != nil {
		return task.Task{}, err
	}
	return created.toModel(), nil
}

func (c *Client) UpdateTask(ctx context.Context, id int64, draft task.Draft) (task.Task, error) {
	var updated wireTask
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), nil, payloadFromDraft(draft), &updated); err != nil {
		return task.Task{}, err
	}
	return updated.toModel(), nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]category.Category, error) {
	var envelope categoryListEnvelope
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (category.Category, error) {
	var created category.Category
	if err := c.do(ctx, http.MethodPost, "/categories", nil, categoryRequest{Name: name}, &created); err != nil {
		return category.Category{}, err
	}
	return created, nil
}
