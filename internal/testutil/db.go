package testutil

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// TestMongoEnv names the environment variable holding the URI of the MongoDB
// instance used by integration tests. Tests that need a real database skip
// when it is unset or the server is unreachable.
const TestMongoEnv = "HIREHUB_TEST_MONGO_URI"

// SetupTestDB connects to the test MongoDB instance and returns a database
// with a unique throwaway name. The database is dropped and the client
// disconnected when the test finishes.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv(TestMongoEnv)
	if uri == "" {
		t.Skipf("skipping: %s not set", TestMongoEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("skipping: mongo connect failed: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("skipping: mongo unreachable: %v", err)
	}

	name := "hirehub_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	db := client.Database(name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

// TestContext returns a context with a generous timeout for test operations.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
