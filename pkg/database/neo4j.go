package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/sirupsen/logrus"

	"boardinghouse/internal/common"
)

const (
	defaultMaxAttempts = 5
	defaultRetryDelay  = 2 * time.Second
)

// Config holds the graph store connection settings.
type Config struct {
	URI      string
	Username string
	Password string

	// MaxAttempts and RetryDelay bound the per-operation retry envelope.
	// Zero values select the defaults (5 attempts, 2s between attempts).
	MaxAttempts int
	RetryDelay  time.Duration
}

// Graph is the handle to the Neo4j store. All repository reads and writes go
// through Run, which applies the retry policy and normalizes store-native
// types, so callers never observe driver values or raw driver errors.
type Graph struct {
	driver      neo4j.DriverWithContext
	maxAttempts int
	retryDelay  time.Duration
	log         *logrus.Logger
}

// Connect creates the driver. The connection itself is lazy; use Ping to
// verify connectivity.
func Connect(cfg Config, log *logrus.Logger) (*Graph, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI,
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""),
		func(c *config.Config) {
			c.MaxConnectionLifetime = time.Hour
			c.MaxConnectionPoolSize = 10
			c.SocketConnectTimeout = 60 * time.Second
			c.ConnectionAcquisitionTimeout = 120 * time.Second
		})
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}

	return &Graph{
		driver:      driver,
		maxAttempts: cfg.MaxAttempts,
		retryDelay:  cfg.RetryDelay,
		log:         log,
	}, nil
}

// Close releases the driver and its connection pool.
func (g *Graph) Close(ctx context.Context) error {
	return g.driver.Close(ctx)
}

// Ping verifies connectivity to the store.
func (g *Graph) Ping(ctx context.Context) error {
	return g.driver.VerifyConnectivity(ctx)
}

// EnsureConstraints creates the uniqueness constraints the data model relies
// on. Idempotent; safe to run at every startup.
func (g *Graph) EnsureConstraints(ctx context.Context) error {
	statements := []string{
		"CREATE CONSTRAINT IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE",
		"CREATE CONSTRAINT IF NOT EXISTS FOR (u:User) REQUIRE u.email IS UNIQUE",
		"CREATE CONSTRAINT IF NOT EXISTS FOR (r:Room) REQUIRE r.id IS UNIQUE",
		"CREATE CONSTRAINT IF NOT EXISTS FOR (b:Booking) REQUIRE b.id IS UNIQUE",
		"CREATE CONSTRAINT IF NOT EXISTS FOR (t:Tenant) REQUIRE t.id IS UNIQUE",
		"CREATE CONSTRAINT IF NOT EXISTS FOR (n:Notification) REQUIRE n.id IS UNIQUE",
	}
	for _, stmt := range statements {
		if _, err := g.Run(ctx, "ensure_constraints", stmt, nil); err != nil {
			return err
		}
	}
	return nil
}

// Run executes a single Cypher statement in its own session and returns the
// result rows with all values normalized. Each call is one store-side unit of
// work; the retry policy wraps the whole statement.
func (g *Graph) Run(ctx context.Context, op, query string, params map[string]any) ([]map[string]any, error) {
	result, err := g.withRetry(ctx, op, func(ctx context.Context) (any, error) {
		session := g.driver.NewSession(ctx, neo4j.SessionConfig{})
		defer session.Close(ctx)

		res, err := session.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		rows := make([]map[string]any, 0, len(records))
		for _, record := range records {
			rows = append(rows, normalizeRecord(record))
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]map[string]any), nil
}

// withRetry executes fn up to maxAttempts times, sleeping retryDelay between
// attempts and logging each failure. Constraint violations are classified
// immediately and never retried; every other exhausted failure collapses to
// the generic storage-unavailable error so driver detail stays server-side.
func (g *Graph) withRetry(ctx context.Context, op string, fn func(context.Context) (any, error)) (any, error) {
	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %s", common.ErrAlreadyExists, op)
		}

		lastErr = err
		g.log.Warnf("store operation %s failed (attempt %d/%d): %v", op, attempt, g.maxAttempts, err)

		if attempt < g.maxAttempts {
			select {
			case <-time.After(g.retryDelay):
			case <-ctx.Done():
				g.log.Errorf("store operation %s abandoned: %v", op, ctx.Err())
				return nil, fmt.Errorf("%w: %s", common.ErrStorageUnavailable, op)
			}
		}
	}

	g.log.Errorf("store operation %s failed after %d attempts: %v", op, g.maxAttempts, lastErr)
	return nil, fmt.Errorf("%w: %s", common.ErrStorageUnavailable, op)
}

func isConstraintViolation(err error) bool {
	var neoErr *db.Neo4jError
	if errors.As(err, &neoErr) {
		return strings.Contains(neoErr.Code, "ConstraintValidationFailed")
	}
	return false
}
