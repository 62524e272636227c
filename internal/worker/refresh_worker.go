package worker

import (
	"context"
	"time"

	"taskClient/internal/gateway"
	"taskClient/internal/logger"
	"taskClient/internal/models/task"

	"go.uber.org/zap"
)

type Collection interface {
	LoadForFilter(ctx context.Context, filter task.Filter) ([]task.Task, error)
	ActiveFilter() task.Filter
}

type TokenSource interface {
	Get() (string, bool)
}

// RefreshWorker - фоновая сверка коллекции с сервером по активному фильтру.
// Фоновый запрос не имеет права разлогинить пользователя: ошибку
// авторизации он только логирует, сброс токена - политика действий
// самого пользователя.
type RefreshWorker struct {
	collection Collection
	creds      TokenSource
	interval   time.Duration
}

func NewRefreshWorker(collection Collection, creds TokenSource, interval *time.Duration) *RefreshWorker {
	var intervalToSet time.Duration
	if interval == nil {
		intervalToSet = time.Minute
	} else {
		intervalToSet = *interval
	}

	return &RefreshWorker{
		collection: collection,
		creds:      creds,
		interval:   intervalToSet,
	}
}

func (w *RefreshWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.Refresh(ctx)
		case <-ctx.Done():
			logger.Info("Worker: Фоновая сверка останавливается")
			return
		}
	}
}

func (w *RefreshWorker) Refresh(ctx context.Context) {
	if _, ok := w.creds.Get(); !ok {
		// сессии нет - сверять нечего
		return
	}

	start := time.Now()
	filter := w.collection.ActiveFilter()

	tasks, err := w.collection.LoadForFilter(ctx, filter)
	if err != nil {
		if gateway.IsAuth(err) {
			logger.Warn("Worker: Сессия отклонена, токен не трогаем", zap.Error(err))
			return
		}
		logger.Warn("Worker: Ошибка фоновой сверки", zap.Error(err))
		return
	}

	logger.Info("Worker: Фоновая сверка завершена",
		zap.String("filter", string(filter)),
		zap.Int("count", len(tasks)),
		zap.Duration("ms", time.Since(start)),
	)
}
