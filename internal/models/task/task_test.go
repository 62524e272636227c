package task_test

import (
	"encoding/json"
	"testing"

	"taskClient/internal/models/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseStatus проверяет сворачивание всех вариантов написания
func TestParseStatus(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected task.Status
		ok       bool
	}{
		{name: "form lowercase pending", raw: "pending", expected: task.StatusPending, ok: true},
		{name: "display pending", raw: "Pending", expected: task.StatusPending, ok: true},
		{name: "form in-progress", raw: "in-progress", expected: task.StatusInProgress, ok: true},
		{name: "display in progress", raw: "In Progress", expected: task.StatusInProgress, ok: true},
		{name: "underscore in_progress", raw: "in_progress", expected: task.StatusInProgress, ok: true},
		{name: "form done", raw: "done", expected: task.StatusCompleted, ok: true},
		{name: "form completed", raw: "completed", expected: task.StatusCompleted, ok: true},
		{name: "display completed", raw: "Completed", expected: task.StatusCompleted, ok: true},
		{name: "uppercase done", raw: "DONE", expected: task.StatusCompleted, ok: true},
		{name: "padded", raw: "  pending ", expected: task.StatusPending, ok: true},
		{name: "empty", raw: "", expected: task.StatusUnknown, ok: false},
		{name: "garbage", raw: "archived", expected: task.StatusUnknown, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := task.ParseStatus(tt.raw)
			assert.Equal(t, tt.expected, status)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected task.Filter
		ok       bool
	}{
		{name: "all", raw: "all", expected: task.FilterAll, ok: true},
		{name: "all uppercase", raw: "All", expected: task.FilterAll, ok: true},
		{name: "status variant", raw: "done", expected: task.Filter(task.StatusCompleted), ok: true},
		{name: "canonical status", raw: "In Progress", expected: task.Filter(task.StatusInProgress), ok: true},
		{name: "garbage falls back to all", raw: "whatever", expected: task.FilterAll, ok: false},
		{name: "empty falls back to all", raw: "", expected: task.FilterAll, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, ok := task.ParseFilter(tt.raw)
			assert.Equal(t, tt.expected, filter)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestFilterMatches(t *testing.T) {
	assert.True(t, task.FilterAll.Matches(task.StatusPending))
	assert.True(t, task.FilterAll.Matches(task.StatusUnknown))
	assert.True(t, task.Filter(task.StatusCompleted).Matches(task.StatusCompleted))
	assert.False(t, task.Filter(task.StatusCompleted).Matches(task.StatusPending))
}

func TestDateJSON(t *testing.T) {
	d, err := task.ParseDate("2025-04-01")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-04-01"`, string(data))

	var decoded task.Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-04-01"`), &decoded))
	assert.Equal(t, "2025-04-01", decoded.String())

	// сервер может прислать дату со временем
	require.NoError(t, json.Unmarshal([]byte(`"2025-04-01T15:04:05Z"`), &decoded))
	assert.Equal(t, "2025-04-01", decoded.String())

	require.NoError(t, json.Unmarshal([]byte(`""`), &decoded))
	assert.True(t, decoded.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"01.04.2025"`), &decoded))
}

func TestDateParseInvalid(t *testing.T) {
	_, err := task.ParseDate("not-a-date")
	assert.Error(t, err)
}

// TestDraftFrom проверяет сборку полного обновления из текущей задачи
func TestDraftFrom(t *testing.T) {
	due, err := task.ParseDate("2025-05-01")
	require.NoError(t, err)

	current := task.Task{
		ID:          7,
		Title:       "old title",
		Description: "old description",
		Status:      task.StatusPending,
		CategoryID:  3,
		DueDate:     due,
	}

	draft := task.DraftFrom(current,
		task.WithTitle("new title"),
		task.WithStatus(task.StatusCompleted),
	)

	assert.Equal(t, "new title", draft.Title)
	assert.Equal(t, "old description", draft.Description)
	assert.Equal(t, task.StatusCompleted, draft.Status)
	assert.Equal(t, int64(3), draft.CategoryID)
	assert.Equal(t, due, draft.DueDate)
}

// невалидные опции не должны затирать текущие значения
func TestDraftFrom_NilOptionsSkipped(t *testing.T) {
	due, err := task.ParseDate("2025-05-01")
	require.NoError(t, err)

	current := task.Task{Status: task.StatusInProgress, DueDate: due}

	draft := task.DraftFrom(current,
		task.WithStatus(task.StatusUnknown),
		task.WithDueDate(task.Date{}),
	)

	assert.Equal(t, task.StatusInProgress, draft.Status)
	assert.Equal(t, due, draft.DueDate)
}
