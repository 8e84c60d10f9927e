// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/hirehub/internal/app/system/indexes"
	"github.com/dalemusser/hirehub/internal/app/system/timeouts"
	"github.com/dalemusser/hirehub/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB creates the process-wide MongoDB client.
//
// Lifecycle policy: one pooled client, created here at startup, injected into
// handlers through DBDeps, and closed in Shutdown. The driver's pool makes
// the client safe for concurrent use by in-flight requests; nothing else in
// the app opens connections. When the Mongo settings are incomplete the
// returned deps are empty and endpoints degrade individually.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if !appCfg.Configured() {
		logger.Warn("skipping MongoDB connection (not configured)")
		return DBDeps{}, nil
	}

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	connectCtx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	// Verify reachability now so a bad URI fails startup, not the first request.
	pingCtx, cancelPing := context.WithTimeout(ctx, timeouts.Ping())
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.String("collection", appCfg.MongoCollection))

	return DBDeps{
		MongoClient: client,
		MongoDB:     client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema ensures the submissions collection, its optional server-side
// document validator, and its indexes. Every step is idempotent, so restarts
// and horizontally scaled instances are safe.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDB == nil {
		return nil
	}
	if err := validators.EnsureSubmissions(ctx, deps.MongoDB, appCfg.MongoCollection); err != nil {
		return fmt.Errorf("ensure collection: %w", err)
	}
	if err := indexes.EnsureSubmissions(ctx, deps.MongoDB, appCfg.MongoCollection, appCfg.AltEmailUnique); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	return nil
}
