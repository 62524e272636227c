package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskClient/internal/config"
	"taskClient/internal/credstore"
	"taskClient/internal/gateway"
	"taskClient/internal/handlers"
	"taskClient/internal/logger"
	"taskClient/internal/middleware"
	"taskClient/internal/session"
	"taskClient/internal/state"
	"taskClient/internal/worker"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// без config.yml работаем на значениях по умолчанию
		cfg = config.Default()
	}

	logger.Init(cfg.Logging.Development)
	defer logger.Sync()

	creds := credstore.New(cfg.Storage.TokenPath)

	api, err := gateway.New(cfg.API.BaseURL, cfg.API.Timeout.Std(), creds)
	if err != nil {
		logger.Error("Не удалось создать gateway", err)
		os.Exit(1)
	}

	categories := state.NewCategoryRegistry(api)
	tasks := state.NewTaskCollection(api, categories)
	guard := session.NewGuard(creds, api, tasks, categories)
	h := handlers.New(api, creds, guard, tasks, categories)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Refresh.Enabled {
		interval := cfg.Refresh.Interval.Std()
		refresher := worker.NewRefreshWorker(tasks, creds, &interval)
		go refresher.Start(ctx)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", h.Home)
	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)
	r.Get("/register", h.RegisterForm)
	r.Post("/register", h.Register)
	r.Post("/logout", h.Logout)

	// защищённые маршруты, guard проверяет сессию на каждый вход
	r.Group(func(r chi.Router) {
		r.Use(guard.Protect)

		r.Get("/dashboard", h.Dashboard)

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/create", h.AddTaskForm)
			r.Post("/create", h.AddTask)
			r.Get("/edit/{id}", h.EditTaskForm)
			r.Post("/edit/{id}", h.EditTask)
			r.Post("/delete/{id}", h.DeleteTask)
		})

		r.Get("/categories/create", h.AddCategoryForm)
		r.Post("/categories/create", h.AddCategory)
	})

	server := &http.Server{
		Addr:    cfg.GetServerAddr(),
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.Info("Клиент запущен", zap.String("addr", server.Addr), zap.String("api", cfg.API.BaseURL))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Сервер остановился с ошибкой", err)
		os.Exit(1)
	}
	logger.Info("Клиент остановлен")
}
