package credstore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"taskClient/internal/logger"

	"go.uber.org/zap"
)

// Store хранит единственный bearer-токен сессии в файле,
// чтобы сессия переживала перезапуск процесса.
// Операции тотальные: сбой записи на диск логируется,
// значение в памяти остаётся авторитетным для процесса.
type Store struct {
	path  string
	mtx   sync.RWMutex
	token string
}

func New(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Credstore: Ошибка чтения токена", zap.Error(err))
		}
		return
	}
	s.token = strings.TrimSpace(string(data))
}

func (s *Store) Get() (string, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if s.token == "" {
		return "", false
	}
	return s.token, true
}

func (s *Store) Set(token string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.token = token
	s.persist(token)
}

func (s *Store) Clear() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		logger.Warn("Credstore: Ошибка удаления токена", zap.Error(err))
	}
}

// атомарная запись через временный файл и rename
func (s *Store) persist(token string) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("Credstore: Ошибка создания каталога", zap.Error(err))
		return
	}

	tmp, err := os.CreateTemp(dir, "token-*")
	if err != nil {
		logger.Warn("Credstore: Ошибка записи токена", zap.Error(err))
		return
	}

	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		logger.Warn("Credstore: Ошибка записи токена", zap.Error(err))
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		logger.Warn("Credstore: Ошибка записи токена", zap.Error(err))
		return
	}

	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		logger.Warn("Credstore: Ошибка выставления прав", zap.Error(err))
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		logger.Warn("Credstore: Ошибка сохранения токена", zap.Error(err))
	}
}
