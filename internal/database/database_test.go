package database

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"inkwell/internal/utils"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStrategyOrder(t *testing.T) {
	list := strategies()
	assert.Len(t, list, 3)
	assert.Equal(t, "tls-verified", list[0].name)
	assert.Equal(t, "tls-skip-verify", list[1].name)
	assert.Equal(t, "tls-insecure", list[2].name)
}

func TestSkipVerifyStrategyDisablesValidation(t *testing.T) {
	opts := strategies()[1].build("mongodb://localhost:27017")
	assert.NotNil(t, opts.TLSConfig)
	assert.True(t, opts.TLSConfig.InsecureSkipVerify)
}

func TestInsecureURI(t *testing.T) {
	assert.Equal(t,
		"mongodb://localhost:27017?tlsInsecure=true",
		insecureURI("mongodb://localhost:27017"))

	// A URI that already carries a query string gets an extra parameter, not
	// a second question mark.
	assert.Equal(t,
		"mongodb://localhost:27017/?retryWrites=true&tlsInsecure=true",
		insecureURI("mongodb://localhost:27017/?retryWrites=true"))
}

// View dedupe and favorite idempotence both rest on unique compound indexes;
// the declarations must carry the uniqueness flag, whenever they get created.
func TestIndexSpecsEnforceDedupe(t *testing.T) {
	unique := map[string][]bson.D{}
	for _, spec := range indexSpecs() {
		opts := spec.model.Options
		if opts != nil && opts.Unique != nil && *opts.Unique {
			unique[spec.collection] = append(unique[spec.collection], spec.model.Keys.(bson.D))
		}
	}

	pair := bson.D{{Key: "article_id", Value: 1}, {Key: "user_wallet", Value: 1}}
	assert.Contains(t, unique[ColViews], pair)
	assert.Contains(t, unique[ColReactions], pair)
	assert.Contains(t, unique[ColFavorites],
		bson.D{{Key: "user_wallet", Value: 1}, {Key: "article_id", Value: 1}})
	assert.Contains(t, unique[ColProfiles],
		bson.D{{Key: "wallet_address", Value: 1}})
}

// A degraded handle must walk the connection sequence on a probe instead of
// reporting a stale "not connected". The canceled context makes every
// strategy fail immediately.
func TestPingRetriesConnectWhenDegraded(t *testing.T) {
	m := &MongoDB{
		uri:  "mongodb://127.0.0.1:1",
		name: "test",
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Ping(ctx)
	assert.Error(t, err)
	assert.True(t, utils.IsErrorCode(err, utils.ErrDatabaseUnavailable))
	assert.Contains(t, err.Error(), "all connection strategies exhausted")
}
