package task

// DraftOption - точечное изменение черновика при полном обновлении записи
type DraftOption func(*Draft)

// DraftFrom собирает черновик полного обновления из существующей задачи
func DraftFrom(t Task, options ...DraftOption) Draft {
	draft := Draft{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CategoryID:  t.CategoryID,
		DueDate:     t.DueDate,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&draft)
	}
	return draft
}

func WithTitle(title string) DraftOption {
	return func(d *Draft) {
		d.Title = title
	}
}

func WithDescription(description string) DraftOption {
	return func(d *Draft) {
		d.Description = description
	}
}

func WithStatus(status Status) DraftOption {
	if status == StatusUnknown {
		return nil
	}
	return func(d *Draft) {
		d.Status = status
	}
}

func WithCategoryID(id int64) DraftOption {
	return func(d *Draft) {
		d.CategoryID = id
	}
}

func WithDueDate(dueDate Date) DraftOption {
	if dueDate.IsZero() {
		return nil
	}
	return func(d *Draft) {
		d.DueDate = dueDate
	}
}
