// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
//
// All fields are nil when the Mongo settings are incomplete; handlers that
// need storage check for that and answer with a service error instead of
// assuming a live connection.
type DBDeps struct {
	MongoClient *mongo.Client
	MongoDB     *mongo.Database
}
