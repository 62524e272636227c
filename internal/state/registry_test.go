package state_test

import (
	"context"
	"testing"

	"taskClient/internal/gateway"
	"taskClient/internal/models/category"
	"taskClient/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCategoryAPI struct {
	mock.Mock
}

func (m *MockCategoryAPI) ListCategories(ctx context.Context) ([]category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.Category), args.Error(1)
}

func (m *MockCategoryAPI) CreateCategory(ctx context.Context, name string) (category.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(category.Category), args.Error(1)
}

var _ state.CategoryAPI = (*MockCategoryAPI)(nil)

func TestCategoryRegistry_LoadAll_FullReplace(t *testing.T) {
	api := &MockCategoryAPI{}
	registry := state.NewCategoryRegistry(api)

	first := []category.Category{{ID: 1, Name: "Work"}}
	second := []category.Category{{ID: 2, Name: "Home"}, {ID: 3, Name: "Errands"}}

	api.On("ListCategories", mock.Anything).Return(first, nil).Once()
	api.On("ListCategories", mock.Anything).Return(second, nil).Once()

	got, err := registry.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.True(t, registry.Contains(1))

	// повторная загрузка - полная замена, а не слияние
	got, err = registry.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.False(t, registry.Contains(1))
	assert.True(t, registry.Contains(2))
}

func TestCategoryRegistry_LoadAll_KeepsPreviousOnError(t *testing.T) {
	api := &MockCategoryAPI{}
	registry := state.NewCategoryRegistry(api)

	api.On("ListCategories", mock.Anything).Return([]category.Category{{ID: 1, Name: "Work"}}, nil).Once()
	_, err := registry.LoadAll(context.Background())
	require.NoError(t, err)

	api.On("ListCategories", mock.Anything).
		Return(nil, &gateway.APIError{Code: gateway.CodeTransport, Message: "сервер недоступен"}).Once()

	_, err = registry.LoadAll(context.Background())
	require.Error(t, err)
	assert.True(t, registry.Contains(1))
}

func TestCategoryRegistry_Create(t *testing.T) {
	api := &MockCategoryAPI{}
	registry := state.NewCategoryRegistry(api)

	api.On("CreateCategory", mock.Anything, "Work").
		Return(category.Category{ID: 5, Name: "Work"}, nil).Once()

	created, err := registry.Create(context.Background(), "Work")
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.True(t, registry.Contains(5))
	api.AssertExpectations(t)
}

// пустое имя отбрасывается локально, без похода в сеть
func TestCategoryRegistry_Create_EmptyNameRejectedLocally(t *testing.T) {
	api := &MockCategoryAPI{}
	registry := state.NewCategoryRegistry(api)

	_, err := registry.Create(context.Background(), "   ")

	require.Error(t, err)
	require.True(t, gateway.IsValidation(err))
	assert.Contains(t, gateway.FieldErrors(err), "name")
	api.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestCategoryRegistry_Create_ServerErrorKeepsRegistry(t *testing.T) {
	api := &MockCategoryAPI{}
	registry := state.NewCategoryRegistry(api)

	api.On("CreateCategory", mock.Anything, "Work").
		Return(category.Category{}, gateway.NewValidationError(map[string][]string{
			"name": {"The name has already been taken."},
		})).Once()

	_, err := registry.Create(context.Background(), "Work")
	require.Error(t, err)
	assert.Empty(t, registry.Snapshot())
}

func TestCategoryRegistry_Reset(t *testing.T) {
	api := &MockCategoryAPI{}
	registry := state.NewCategoryRegistry(api)

	api.On("ListCategories", mock.Anything).Return([]category.Category{{ID: 1, Name: "Work"}}, nil).Once()
	_, err := registry.LoadAll(context.Background())
	require.NoError(t, err)

	registry.Reset()

	assert.Empty(t, registry.Snapshot())
	assert.False(t, registry.Contains(1))
}
