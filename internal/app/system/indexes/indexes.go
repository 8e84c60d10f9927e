// Package indexes reconciles the submissions collection's indexes at startup.
//
// EnsureSubmissions is idempotent: it is safe to run on every boot and from
// several instances at once. The unique index on email_primary is what
// ultimately enforces the dedup invariant; the handler's precheck only
// exists to return a friendlier error sooner.
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureSubmissions reconciles the index set for the submissions collection.
// altUnique upgrades the alternate-email index to a unique one.
func EnsureSubmissions(ctx context.Context, db *mongo.Database, coll string, altUnique bool) error {
	models := []mongo.IndexModel{
		// The authority for the uniqueness invariant. Emails are stored
		// lower-cased, so a plain unique index is case-insensitive in effect.
		{
			Keys:    bson.D{{Key: "email_primary", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_submissions_email_primary"),
		},
		// Alternate-email lookups for the dedup precheck. Sparse so documents
		// without an email_alt do not collide when the index is unique.
		{
			Keys: bson.D{{Key: "email_alt", Value: 1}},
			Options: options.Index().
				SetUnique(altUnique).
				SetSparse(true).
				SetName("idx_submissions_email_alt"),
		},
		// Postal-code lookups for operational queries.
		{
			Keys:    bson.D{{Key: "pin_code", Value: 1}},
			Options: options.Index().SetName("idx_submissions_pin_code"),
		},
		// /debug lists newest-first.
		{
			Keys:    bson.D{{Key: "submitted_at", Value: -1}},
			Options: options.Index().SetName("idx_submissions_submitted_at"),
		},
	}
	return ensureIndexSet(ctx, db.Collection(coll), models)
}

// existingIndex is the slice of index metadata we compare against.
type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

// ensureIndexSet creates each desired index, reusing an existing index with
// the same keys and options, and dropping/recreating one whose options
// differ (e.g. the alt-email index flipping between unique and non-unique
// when the policy changes).
func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	existing, err := listIndexes(ctx, coll)
	if err != nil {
		// A fresh collection has no indexes to list; creation below decides.
		zap.L().Warn("listing indexes failed", zap.String("collection", coll.Name()), zap.Error(err))
	}

	var errs []string
	for _, m := range models {
		name, unique := indexOptions(m)
		sig := keySig(m.Keys.(bson.D))

		if ex, ok := existing[sig]; ok {
			if boolOf(ex.Unique) == unique {
				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", sig))
				continue
			}
			// Options changed: drop and recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), name, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if isAlreadyExistsErr(err) {
				zap.L().Info("index already exists",
					zap.String("collection", coll.Name()),
					zap.String("name", name))
				continue
			}
			if isDuplicateDataErr(err) && unique {
				errs = append(errs, fmt.Sprintf("%s(%s): cannot create unique index (duplicates present)", coll.Name(), name))
				continue
			}
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.String("keys", sig),
			zap.Bool("unique", unique))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func listIndexes(ctx context.Context, coll *mongo.Collection) (map[string]existingIndex, error) {
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := map[string]existingIndex{}
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		out[keySig(idx.Key)] = idx
	}
	return out, cur.Err()
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func indexOptions(m mongo.IndexModel) (name string, unique bool) {
	if m.Options != nil {
		if m.Options.Name != nil {
			name = *m.Options.Name
		}
		if m.Options.Unique != nil {
			unique = *m.Options.Unique
		}
	}
	return name, unique
}

func boolOf(p *bool) bool { return p != nil && *p }

// isAlreadyExistsErr covers IndexOptionsConflict / IndexKeySpecsConflict from
// a racing instance creating the same index first.
func isAlreadyExistsErr(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "IndexOptionsConflict") ||
		strings.Contains(s, "IndexKeySpecsConflict") ||
		strings.Contains(strings.ToLower(s), "already exists")
}

// isDuplicateDataErr detects E11000 raised when a unique index is built over
// data that already contains duplicates.
func isDuplicateDataErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}
