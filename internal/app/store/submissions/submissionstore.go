// internal/app/store/submissions/submissionstore.go
package submissionstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/hirehub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateEmail is returned when a submission's email collides with a
// stored record, whether the precheck or the unique index caught it.
var ErrDuplicateEmail = errors.New("a submission with this email already exists")

type Store struct {
	c *mongo.Collection

	// altInConstraint mirrors whether the email_alt index is unique. The
	// precheck always looks at alternate emails either way; this only
	// documents which collisions the storage layer itself can reject.
	altInConstraint bool
}

// New returns a Store over the given collection. Emails in stored documents
// are already normalized (lower-cased) by the submit handler.
func New(db *mongo.Database, coll string, altEmailUnique bool) *Store {
	return &Store{c: db.Collection(coll), altInConstraint: altEmailUnique}
}

// Create inserts a submission and returns the assigned ObjectID.
//
// It runs a duplicate precheck first so most duplicates get a clean
// ErrDuplicateEmail without an insert attempt. The precheck and the insert
// are not atomic against concurrent requests; the unique index on
// email_primary is the authority, and a duplicate-key error from the insert
// maps to the same ErrDuplicateEmail.
//
// SubmittedAt is stamped here if the handler left it zero.
func (s *Store) Create(ctx context.Context, sub models.Submission) (primitive.ObjectID, error) {
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = time.Now().UTC()
	}
	sub.ID = primitive.NewObjectID()

	dup, err := s.emailExists(ctx, sub.EmailPrimary, sub.EmailAlt)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if dup {
		return primitive.NilObjectID, ErrDuplicateEmail
	}

	if _, err := s.c.InsertOne(ctx, sub); err != nil {
		if wafflemongo.IsDup(err) {
			return primitive.NilObjectID, ErrDuplicateEmail
		}
		return primitive.NilObjectID, err
	}
	return sub.ID, nil
}

// emailExists reports whether any stored submission's primary or alternate
// email matches the candidate's primary or alternate email.
func (s *Store) emailExists(ctx context.Context, primary string, alt *string) (bool, error) {
	candidates := []string{primary}
	if alt != nil && *alt != "" {
		candidates = append(candidates, *alt)
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"email_primary": bson.M{"$in": candidates}},
		bson.M{"email_alt": bson.M{"$in": candidates}},
	}}

	err := s.c.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// Recent returns up to limit submissions, newest first, with the internal
// _id stripped. It backs the /debug listing.
func (s *Store) Recent(ctx context.Context, limit int) ([]models.Submission, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"_id": 0})

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []models.Submission{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Count returns the total number of stored submissions.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
