package session

import (
	"context"
	"net/http"

	"taskClient/internal/gateway"
	"taskClient/internal/logger"

	"go.uber.org/zap"
)

type State string

const StateAuthorized State = "authorized"
const StateUnauthorized State = "unauthorized"

// Credentials - хранилище токена; guard его читает и сбрасывает,
// но никогда не выставляет
type Credentials interface {
	Get() (string, bool)
	Clear()
}

// API - часть gateway, нужная для выхода из сессии
type API interface {
	Logout(ctx context.Context) error
}

// Resetter - компонент, чьё состояние обнуляется при выходе
type Resetter interface {
	Reset()
}

// Guard решает, пускать ли навигацию на защищённый экран.
// Проверка только на наличие токена, без похода в сеть: протухший
// токен обнаружится первым же ответом API со статусом 401.
type Guard struct {
	creds  Credentials
	api    API
	resets []Resetter
}

func NewGuard(creds Credentials, api API, resets ...Resetter) *Guard {
	return &Guard{
		creds:  creds,
		api:    api,
		resets: resets,
	}
}

// State вычисляется заново на каждый вход, без кэширования между навигациями
func (g *Guard) State() State {
	if _, ok := g.creds.Get(); ok {
		return StateAuthorized
	}
	return StateUnauthorized
}

// Protect - middleware защищённых маршрутов: без токена редирект
// на /login, намерение навигации не сохраняется
func (g *Guard) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.State() == StateUnauthorized {
			logger.Info("Session: Неавторизованная навигация",
				zap.String("path", r.URL.Path),
			)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Logout - выход из сессии: уведомление сервера (по возможности),
// сброс токена и полный сброс состояния менеджеров, чтобы после
// выхода не остались чужие задачи
func (g *Guard) Logout(ctx context.Context) {
	if err := g.api.Logout(ctx); err != nil {
		logger.Warn("Session: Сервер не подтвердил выход", zap.Error(err))
	}

	g.creds.Clear()
	for _, r := range g.resets {
		r.Reset()
	}
	logger.Info("Session: Сессия завершена")
}

// HandleAPIError - политика обработки ошибок для действий пользователя:
// ответ AUTHENTICATION_FAILED детерминированно переводит систему
// в Unauthorized (токен сбрасывается сразу, не при следующей навигации).
// Возвращает true, если вызывающему следует уйти на /login.
func (g *Guard) HandleAPIError(err error) bool {
	if !gateway.IsAuth(err) {
		return false
	}

	g.creds.Clear()
	for _, r := range g.resets {
		r.Reset()
	}
	logger.Warn("Session: Сессия отклонена сервером, токен сброшен")
	return true
}
