package state

import (
	"context"
	"strings"
	"sync"

	"taskClient/internal/gateway"
	"taskClient/internal/logger"
	"taskClient/internal/models/task"

	"go.uber.org/zap"
)

// TaskAPI - часть gateway, нужная коллекции задач
type TaskAPI interface {
	ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error)
	CreateTask(ctx context.Context, draft task.Draft) (task.Task, error)
	UpdateTask(ctx context.Context, id int64, draft task.Draft) (task.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// CategoryChecker проверяет, известна ли категория реестру на момент отправки
type CategoryChecker interface {
	Contains(id int64) bool
}

// pendingDelete - запись журнала незавершённых удалений:
// задача снята с экрана, сервер ещё не подтвердил
type pendingDelete struct {
	task  task.Task
	index int
}

// TaskCollection владеет упорядоченным списком задач текущего фильтра.
// Порядок - как вернул сервер, без пересортировки на клиенте.
type TaskCollection struct {
	api        TaskAPI
	categories CategoryChecker

	mtx     sync.RWMutex
	tasks   []task.Task
	filter  task.Filter
	issued  uint64 // номер последнего выданного запроса списка
	applied uint64 // номер запроса, чей ответ применён
	pending map[int64]pendingDelete
}

func NewTaskCollection(api TaskAPI, categories CategoryChecker) *TaskCollection {
	return &TaskCollection{
		api:        api,
		categories: categories,
		filter:     task.FilterAll,
		pending:    make(map[int64]pendingDelete),
	}
}

// LoadForFilter перечитывает коллекцию под фильтр.
// Применяется только ответ самого позднего выданного запроса:
// медленный старый ответ не должен затирать быстрый новый.
// При ошибке прежняя коллекция остаётся нетронутой.
func (c *TaskCollection) LoadForFilter(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	c.mtx.Lock()
	c.issued++
	seq := c.issued
	c.filter = filter
	c.mtx.Unlock()

	tasks, err := c.api.ListTasks(ctx, filter)

	c.mtx.Lock()
	defer c.mtx.Unlock()

	if seq != c.issued {
		logger.Debug("State: Устаревший ответ отброшен",
			zap.Uint64("seq", seq),
			zap.Uint64("issued", c.issued),
		)
		return c.snapshotLocked(), nil
	}

	if err != nil {
		return nil, err
	}

	c.tasks = make([]task.Task, len(tasks))
	copy(c.tasks, tasks)
	c.applied = seq

	logger.Info("State: Коллекция обновлена",
		zap.String("filter", string(filter)),
		zap.Int("count", len(tasks)),
	)
	return c.snapshotLocked(), nil
}

// Create отправляет черновик на сервер после локальной проверки.
// В коллекцию задача не добавляется: новая задача может не попадать
// под активный фильтр, целевой экран перечитает список сам.
func (c *TaskCollection) Create(ctx context.Context, draft task.Draft) (task.Task, error) {
	if err := c.validate(draft); err != nil {
		return task.Task{}, err
	}
	return c.api.CreateTask(ctx, draft)
}

// Update - полная замена записи; при успехе запись с тем же id
// подменяется на месте, перечитывать список не нужно
func (c *TaskCollection) Update(ctx context.Context, id int64, draft task.Draft) (task.Task, error) {
	if err := c.validate(draft); err != nil {
		return task.Task{}, err
	}

	updated, err := c.api.UpdateTask(ctx, id, draft)
	if err != nil {
		return task.Task{}, err
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks[i] = updated
			break
		}
	}
	return updated, nil
}

// Delete - оптимистичное удаление в две фазы: задача снимается с экрана
// сразу, а в журнал pending пишется её прежняя позиция. Если сервер
// отказал, задача возвращается на исходный индекс без потери полей.
func (c *TaskCollection) Delete(ctx context.Context, id int64) error {
	c.mtx.Lock()
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.pending[id] = pendingDelete{task: c.tasks[i], index: i}
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			break
		}
	}
	c.mtx.Unlock()

	err := c.api.DeleteTask(ctx, id)

	c.mtx.Lock()
	defer c.mtx.Unlock()

	entry, ok := c.pending[id]
	delete(c.pending, id)

	if err == nil {
		return nil
	}

	if ok {
		c.restoreLocked(entry)
		logger.Warn("State: Удаление не подтверждено, задача возвращена",
			zap.Int64("task_id", id),
			zap.Int("index", entry.index),
		)
	}
	return err
}

// restoreLocked возвращает задачу на прежний индекс; если коллекция
// успела сократиться, индекс прижимается к текущей длине
func (c *TaskCollection) restoreLocked(entry pendingDelete) {
	for i := range c.tasks {
		if c.tasks[i].ID == entry.task.ID {
			return
		}
	}

	index := entry.index
	if index > len(c.tasks) {
		index = len(c.tasks)
	}

	c.tasks = append(c.tasks, task.Task{})
	copy(c.tasks[index+1:], c.tasks[index:])
	c.tasks[index] = entry.task
}

// validate - клиентская предпроверка перед сетевым вызовом,
// форма ошибок та же, что у серверной валидации
func (c *TaskCollection) validate(draft task.Draft) error {
	fields := make(map[string][]string)

	if strings.TrimSpace(draft.Title) == "" {
		fields["title"] = append(fields["title"], "title is required")
	}
	if strings.TrimSpace(draft.Description) == "" {
		fields["description"] = append(fields["description"], "description is required")
	}
	if draft.Status == task.StatusUnknown {
		fields["status"] = append(fields["status"], "status is required")
	}
	if draft.DueDate.IsZero() {
		fields["due_date"] = append(fields["due_date"], "due_date is required")
	}
	if draft.CategoryID == 0 {
		fields["category_id"] = append(fields["category_id"], "category_id is required")
	} else if !c.categories.Contains(draft.CategoryID) {
		fields["category_id"] = append(fields["category_id"], "category_id is unknown")
	}

	if len(fields) > 0 {
		return gateway.NewValidationError(fields)
	}
	return nil
}

func (c *TaskCollection) Snapshot() []task.Task {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return c.snapshotLocked()
}

func (c *TaskCollection) snapshotLocked() []task.Task {
	snapshot := make([]task.Task, len(c.tasks))
	copy(snapshot, c.tasks)
	return snapshot
}

func (c *TaskCollection) ActiveFilter() task.Filter {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return c.filter
}

// Reset - полный сброс состояния при выходе из сессии.
// Счётчики запросов не обнуляются, чтобы ответ из прошлой сессии
// не мог примениться к новой.
func (c *TaskCollection) Reset() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.tasks = nil
	c.filter = task.FilterAll
	c.pending = make(map[int64]pendingDelete)
	c.issued++ // незавершённые запросы списка становятся устаревшими
}
