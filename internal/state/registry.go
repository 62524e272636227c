package state

import (
	"context"
	"strings"
	"sync"

	"taskClient/internal/gateway"
	"taskClient/internal/logger"
	"taskClient/internal/models/category"

	"go.uber.org/zap"
)

// CategoryAPI - часть gateway, нужная реестру категорий
type CategoryAPI interface {
	ListCategories(ctx context.Context) ([]category.Category, error)
	CreateCategory(ctx context.Context, name string) (category.Category, error)
}

// CategoryRegistry владеет списком категорий.
// Со стороны клиента категории только добавляются, обновления
// и удаления в системе не существуют.
type CategoryRegistry struct {
	api CategoryAPI

	mtx        sync.RWMutex
	categories []category.Category
}

func NewCategoryRegistry(api CategoryAPI) *CategoryRegistry {
	return &CategoryRegistry{api: api}
}

// LoadAll полностью заменяет реестр; при ошибке прежний список цел
func (r *CategoryRegistry) LoadAll(ctx context.Context) ([]category.Category, error) {
	categories, err := r.api.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	r.mtx.Lock()
	r.categories = make([]category.Category, len(categories))
	copy(r.categories, categories)
	r.mtx.Unlock()

	logger.Info("State: Реестр категорий обновлён", zap.Int("count", len(categories)))
	return r.Snapshot(), nil
}

// Create добавляет подтверждённую сервером категорию в реестр;
// при ошибке реестр не меняется
func (r *CategoryRegistry) Create(ctx context.Context, name string) (category.Category, error) {
	if strings.TrimSpace(name) == "" {
		return category.Category{}, gateway.NewValidationError(map[string][]string{
			"name": {"name is required"},
		})
	}

	created, err := r.api.CreateCategory(ctx, name)
	if err != nil {
		return category.Category{}, err
	}

	r.mtx.Lock()
	r.categories = append(r.categories, created)
	r.mtx.Unlock()
	return created, nil
}

func (r *CategoryRegistry) Contains(id int64) bool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	for _, c := range r.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (r *CategoryRegistry) Snapshot() []category.Category {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	snapshot := make([]category.Category, len(r.categories))
	copy(snapshot, r.categories)
	return snapshot
}

func (r *CategoryRegistry) Reset() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.categories = nil
}
