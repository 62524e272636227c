package handlers

import (
	"net/http"

	"taskClient/internal/gateway"
	"taskClient/internal/logger"

	"go.uber.org/zap"
)

func (h *Handler) AddCategoryForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "category_form", categoryFormPage{Values: map[string]string{}})
}

func (h *Handler) AddCategory(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")

	if _, err := h.categories.Create(r.Context(), name); err != nil {
		if h.guard.HandleAPIError(err) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		page := categoryFormPage{
			Error:  "Failed to create category",
			Values: map[string]string{"name": name},
		}
		if fields := gateway.FieldErrors(err); fields != nil {
			page.Errors = fields
		}
		logger.Warn("HTTP: Категория не создана", zap.Error(err))
		h.render(w, http.StatusUnprocessableEntity, "category_form", page)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
