package netmon

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

//go:generate moq -out prober_mock.go . Prober

// Prober определяет точечную проверку доступности сети
type Prober interface {
	// Probe reports whether the remote side is reachable right now
	Probe(ctx context.Context) (bool, error)
}

// TransitionFunc вызывается при каждой смене состояния связи
type TransitionFunc func(offline bool)

// Monitor наблюдает за доступностью сети: хранит текущее состояние,
// опрашивает prober в фоне и уведомляет подписчиков о переходах.
type Monitor struct {
	prober   Prober
	logger   *slog.Logger
	interval time.Duration

	mu      sync.Mutex
	offline bool
	subs    map[int]TransitionFunc
	nextSub int
	stopC   chan struct{}
	stopped bool
}

// New creates a new connectivity monitor.
// Монитор стартует в состоянии offline и уточняет его первым опросом.
func New(prober Prober, interval time.Duration, logger *slog.Logger) *Monitor {
	return &Monitor{
		prober:   prober,
		logger:   logger,
		interval: interval,
		offline:  true,
		subs:     make(map[int]TransitionFunc),
		stopC:    make(chan struct{}),
	}
}

// Start запускает фоновый опрос prober-а. Первый опрос выполняется
// синхронно, чтобы состояние было актуальным сразу после старта.
func (m *Monitor) Start(ctx context.Context) {
	m.check(ctx)

	go m.loop(ctx)
}

// Stop останавливает фоновый опрос. Повторный вызов безопасен.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return
	}
	m.stopped = true
	close(m.stopC)
}

// Offline возвращает текущее состояние связи (точечная проверка кеша)
func (m *Monitor) Offline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.offline
}

// Subscribe регистрирует callback на смену состояния связи.
// Возвращает функцию отписки для очистки жизненного цикла.
func (m *Monitor) Subscribe(fn TransitionFunc) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// loop опрашивает prober с заданным интервалом
func (m *Monitor) loop(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.check(ctx)
		case <-m.stopC:
			return
		case <-ctx.Done():
			return
		}
	}
}

// check выполняет один опрос и рассылает уведомления при переходе
func (m *Monitor) check(ctx context.Context) {
	connected, err := m.prober.Probe(ctx)
	if err != nil {
		// Ошибка опроса трактуется как отсутствие связи
		m.logger.Debug("connectivity probe failed", "error", err)
		connected = false
	}

	offline := !connected

	m.mu.Lock()
	changed := offline != m.offline
	m.offline = offline

	var subs []TransitionFunc
	if changed {
		subs = make([]TransitionFunc, 0, len(m.subs))
		for _, fn := range m.subs {
			subs = append(subs, fn)
		}
	}
	m.mu.Unlock()

	if !changed {
		return
	}

	m.logger.Info("connectivity state changed", "offline", offline)

	// Уведомляем без удержания mutex-а: callback-и могут быть медленными
	// (стандартная проводка запускает drain очереди)
	for _, fn := range subs {
		fn(offline)
	}
}
