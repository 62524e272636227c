package handlers

import (
	"net/http"

	"taskClient/internal/gateway"
	"taskClient/internal/logger"

	"go.uber.org/zap"
)

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "login", authPage{Values: map[string]string{}})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	token, err := h.api.Login(r.Context(), email, password)
	if err != nil {
		message := "An error occurred while logging in"
		if gateway.IsAuth(err) || gateway.IsValidation(err) {
			message = "Invalid email or password"
		}
		logger.Warn("HTTP: Неудачный вход", zap.Error(err))
		h.render(w, http.StatusUnauthorized, "login", authPage{
			Error:  message,
			Values: map[string]string{"email": email},
		})
		return
	}

	h.creds.Set(token)
	logger.Info("HTTP: Вход выполнен")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "register", authPage{Values: map[string]string{}})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")
	confirmation := r.FormValue("password_confirmation")

	token, err := h.api.Register(r.Context(), name, email, password, confirmation)
	if err != nil {
		message := "An error occurred while creating the account"
		if fields := gateway.FieldErrors(err); fields != nil {
			for _, messages := range fields {
				if len(messages) > 0 {
					message = messages[0]
					break
				}
			}
		}
		logger.Warn("HTTP: Неудачная регистрация", zap.Error(err))
		h.render(w, http.StatusUnprocessableEntity, "register", authPage{
			Error:  message,
			Values: map[string]string{"name": name, "email": email},
		})
		return
	}

	h.creds.Set(token)
	logger.Info("HTTP: Аккаунт создан")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.guard.Logout(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
