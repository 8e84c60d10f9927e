// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureSubmissions makes sure the submissions collection exists and tries
// to attach a JSON-Schema validator mirroring the required fields of the
// submission document. On servers that don't support collMod/validators
// (e.g. some DocumentDB versions), the validator is logged and skipped; the
// application-level validation in inputval still applies either way.
func EnsureSubmissions(ctx context.Context, db *mongo.Database, coll string) error {
	if _, err := ensureCollection(ctx, db, coll); err != nil {
		return err
	}
	if err := setValidator(ctx, db, coll, submissionsSchema()); err != nil {
		if isNoSuchCommand(err) || isNotImplemented(err) {
			zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
			return nil
		}
		return err
	}
	return nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	names, listErr := db.ListCollectionNames(ctx, bson.M{"name": name})
	if listErr == nil && len(names) > 0 {
		zap.L().Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExistsErr(err) {
			zap.L().Info("collection exists", zap.String("collection", name))
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

// submissionsSchema keeps the storage layer honest about the required shape.
// Length and enum constraints live in inputval, where policy variants apply;
// the schema only pins required fields and basic types.
func submissionsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{
				"email_primary", "circle", "state", "district", "name",
				"contact_number", "pin_code", "designation", "activity",
				"work_at_height_certificate", "ppes", "submitted_at",
			},
			"properties": bson.M{
				"email_primary":              bson.M{"bsonType": "string", "minLength": 3},
				"email_alt":                  bson.M{"bsonType": bson.A{"string", "null"}},
				"circle":                     bson.M{"bsonType": "string", "minLength": 1},
				"state":                      bson.M{"bsonType": "string", "minLength": 1},
				"district":                   bson.M{"bsonType": "string", "minLength": 1},
				"name":                       bson.M{"bsonType": "string", "minLength": 2},
				"contact_number":             bson.M{"bsonType": "string", "minLength": 7, "maxLength": 20},
				"pin_code":                   bson.M{"bsonType": "string", "minLength": 3, "maxLength": 12},
				"designation":                bson.M{"bsonType": "string", "minLength": 1},
				"activity":                   bson.M{"bsonType": "string", "minLength": 1},
				"work_at_height_certificate": bson.M{"bsonType": "string", "minLength": 1},
				"ppes":                       bson.M{"bsonType": "string", "minLength": 1},
				"education_qualification":    bson.M{"bsonType": bson.A{"string", "null"}},
				"jbth_certificate_number":    bson.M{"bsonType": bson.A{"string", "null"}},
				"farm_tocli_number":          bson.M{"bsonType": bson.A{"string", "null"}},
				"submitted_at":               bson.M{"bsonType": "date"},
			},
		},
	}
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}
