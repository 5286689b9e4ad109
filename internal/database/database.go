// internal/database/database.go
package database

import (
	"context"
	"crypto/tls"
	"log/slog"
	"strings"
	"sync"
	"time"

	"inkwell/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the service.
const (
	ColProfiles     = "users"
	ColViews        = "article_views"
	ColReactions    = "article_reactions"
	ColAnalytics    = "article_analytics"
	ColFavorites    = "favorite_articles"
	ColUserArticles = "user_articles"
)

const (
	connectTimeout   = 10 * time.Second
	reconnectRetries = 3
	reconnectDelay   = 2 * time.Second
)

// MongoDB wraps the driver client. Connection establishment walks an ordered
// list of TLS strategies; if all fail at startup the service still runs in
// degraded mode and every store access retries the sequence lazily.
type MongoDB struct {
	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database

	uri  string
	name string
	log  *slog.Logger

	// Set after the first successful connect declares the indexes, so a
	// reconnect from a degraded start still bootstraps them exactly once.
	indexed bool
}

// connStrategy is one transport-security configuration to try.
type connStrategy struct {
	name  string
	build func(uri string) *options.ClientOptions
}

func strategies() []connStrategy {
	return []connStrategy{
		{
			name: "tls-verified",
			build: func(uri string) *options.ClientOptions {
				serverAPI := options.ServerAPI(options.ServerAPIVersion1)
				return options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
			},
		},
		{
			name: "tls-skip-verify",
			build: func(uri string) *options.ClientOptions {
				return options.Client().ApplyURI(uri).
					SetTLSConfig(&tls.Config{InsecureSkipVerify: true})
			},
		},
		{
			name: "tls-insecure",
			build: func(uri string) *options.ClientOptions {
				return options.Client().ApplyURI(insecureURI(uri))
			},
		},
	}
}

// insecureURI appends the driver-level option that disables certificate
// verification entirely.
func insecureURI(uri string) string {
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	return uri + sep + "tlsInsecure=true"
}

// NewMongoDB prepares a handle and attempts the first connection. The handle
// is usable even when the returned error is non-nil: repository methods will
// retry the connection sequence on use.
func NewMongoDB(ctx context.Context, uri, name string, log *slog.Logger) (*MongoDB, error) {
	m := &MongoDB{uri: uri, name: name, log: log}
	err := m.connectLocked(ctx)
	return m, err
}

// connectLocked walks the strategy list until one passes a ping. Callers must
// hold m.mu, except during construction.
func (m *MongoDB) connectLocked(ctx context.Context) error {
	var lastErr error
	for _, s := range strategies() {
		cctx, cancel := context.WithTimeout(ctx, connectTimeout)
		client, err := mongo.Connect(cctx, s.build(m.uri))
		if err != nil {
			cancel()
			lastErr = err
			m.log.Warn("mongo connect failed", "strategy", s.name, "err", err)
			continue
		}

		if err := client.Database("admin").RunCommand(cctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			_ = client.Disconnect(cctx)
			cancel()
			lastErr = err
			m.log.Warn("mongo ping failed", "strategy", s.name, "err", err)
			continue
		}
		cancel()

		m.client = client
		m.db = client.Database(m.name)
		m.log.Info("connected to MongoDB", "strategy", s.name, "database", m.name)

		if !m.indexed {
			m.ensureIndexes(ctx, m.db)
			m.indexed = true
		}
		return nil
	}

	return utils.NewAppError(utils.ErrDatabaseUnavailable, "all connection strategies exhausted", lastErr)
}

// database returns the active database handle, reconnecting with bounded
// retries when the service started degraded.
func (m *MongoDB) database(ctx context.Context) (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	var err error
	for attempt := 1; attempt <= reconnectRetries; attempt++ {
		if err = m.connectLocked(ctx); err == nil {
			return m.db, nil
		}
		if attempt < reconnectRetries {
			select {
			case <-time.After(reconnectDelay):
			case <-ctx.Done():
				return nil, utils.NewAppError(utils.ErrDatabaseUnavailable, "database unavailable", ctx.Err())
			}
		}
	}
	return nil, utils.NewAppError(utils.ErrDatabaseUnavailable, "database unavailable", err)
}

// Ping runs a fresh liveness probe, first walking the connection sequence
// once if the service is still degraded. Never cached; used by the health
// endpoint.
func (m *MongoDB) Ping(ctx context.Context) error {
	m.mu.Lock()
	if m.client == nil {
		if err := m.connectLocked(ctx); err != nil {
			m.mu.Unlock()
			return err
		}
	}
	client := m.client
	m.mu.Unlock()

	return client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (m *MongoDB) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
