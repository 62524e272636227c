package task

import (
	"fmt"
	"strings"
	"time"
)

type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	CategoryID  int64  `json:"category_id"`
	DueDate     Date   `json:"due_date"`
}

type Status string

// канонические значения, формы и дашборд приводятся к ним на границе gateway
const StatusPending Status = "Pending"
const StatusInProgress Status = "In Progress"
const StatusCompleted Status = "Completed"
const StatusUnknown Status = ""

// ParseStatus сворачивает все варианты написания статуса в канонический
// ("pending", "in-progress", "in progress", "done", "completed" и т.д.)
func ParseStatus(raw string) (Status, bool) {
	folded := strings.ToLower(strings.TrimSpace(raw))
	folded = strings.ReplaceAll(folded, "-", " ")
	folded = strings.ReplaceAll(folded, "_", " ")

	switch folded {
	case "pending":
		return StatusPending, true
	case "in progress":
		return StatusInProgress, true
	case "done", "completed":
		return StatusCompleted, true
	}
	return StatusUnknown, false
}

type Filter string

const FilterAll Filter = "all"

// ParseFilter принимает "all" либо любой вариант написания статуса
func ParseFilter(raw string) (Filter, bool) {
	if strings.EqualFold(strings.TrimSpace(raw), string(FilterAll)) {
		return FilterAll, true
	}
	if status, ok := ParseStatus(raw); ok {
		return Filter(status), true
	}
	return FilterAll, false
}

func (f Filter) Matches(s Status) bool {
	if f == FilterAll {
		return true
	}
	return Status(f) == s
}

// Date - календарная дата без времени, на проводе "2006-01-02"
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return Date{}, fmt.Errorf("разбор даты %q: %w", raw, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*d = Date{}
		return nil
	}

	// сервер может вернуть дату и с временем
	if t, err := time.Parse(dateLayout, raw); err == nil {
		*d = Date{t}
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("разбор даты %q: %w", raw, err)
	}
	*d = Date{t}
	return nil
}

// Draft - черновик задачи до подтверждения сервером (id ещё нет)
type Draft struct {
	Title       string
	Description string
	Status      Status
	CategoryID  int64
	DueDate     Date
}
