package background

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"

	"boardinghouse/pkg/database"
)

// ConnectivityMonitor periodically pings the graph store and logs
// transitions between reachable and degraded. It exists so a store
// outage shows up in the logs even when no requests are flowing.
type ConnectivityMonitor struct {
	scheduler gocron.Scheduler
	graph     *database.Graph
	interval  time.Duration
	log       *logrus.Logger

	mu       sync.Mutex
	degraded bool
}

func NewConnectivityMonitor(graph *database.Graph, interval time.Duration, log *logrus.Logger) (*ConnectivityMonitor, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	m := &ConnectivityMonitor{
		scheduler: scheduler,
		graph:     graph,
		interval:  interval,
		log:       log,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(m.check, context.Background()),
		gocron.WithName("graph-connectivity-check"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ConnectivityMonitor) Start() {
	m.log.Infof("starting connectivity monitor, interval %s", m.interval)
	m.scheduler.Start()
}

func (m *ConnectivityMonitor) Stop() error {
	return m.scheduler.Shutdown()
}

// Degraded reports whether the last check failed.
func (m *ConnectivityMonitor) Degraded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.degraded
}

func (m *ConnectivityMonitor) check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	err := m.graph.Ping(ctx)

	m.mu.Lock()
	wasDegraded := m.degraded
	m.degraded = err != nil
	m.mu.Unlock()

	switch {
	case err != nil && !wasDegraded:
		m.log.WithError(err).Warn("graph store unreachable, entering degraded mode")
	case err == nil && wasDegraded:
		m.log.Info("graph store reachable again")
	}
}
