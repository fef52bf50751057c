package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// StorageProbe is implemented by the Bolt-backed activity repository.
type StorageProbe interface {
	Ping() error
	Count(ctx context.Context) int
}

// Monitor periodically probes the durable store and caches the result for
// the health endpoint.
type Monitor struct {
	storage StorageProbe

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(storage StorageProbe, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		storage:  storage,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Storage
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	ok, count := m.checkStorage()
	status := Status{
		Storage:    ok,
		Activities: count,
		LastCheck:  time.Now(),
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkStorage() (bool, int) {
	if m.storage == nil {
		return false, 0
	}
	if err := m.storage.Ping(); err != nil {
		m.logger.Warn("storage probe failed", zap.Error(err))
		return false, 0
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return true, m.storage.Count(ctx)
}
