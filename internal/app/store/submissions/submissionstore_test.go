package submissionstore_test

import (
	"errors"
	"testing"
	"time"

	submissionstore "github.com/dalemusser/hirehub/internal/app/store/submissions"
	"github.com/dalemusser/hirehub/internal/app/system/indexes"
	"github.com/dalemusser/hirehub/internal/domain/models"
	"github.com/dalemusser/hirehub/internal/testutil"
)

func newTestStore(t *testing.T, altUnique bool) *submissionstore.Store {
	t.Helper()
	db := testutil.SetupTestDB(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureSubmissions(ctx, db, "submissions", altUnique); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return submissionstore.New(db, "submissions", altUnique)
}

func submission(email string) models.Submission {
	return models.Submission{
		EmailPrimary:            email,
		Circle:                  "south",
		State:                   "karnataka",
		District:                "bengaluru urban",
		Name:                    "Joe Doe",
		ContactNumber:           "9876543210",
		PinCode:                 "560001",
		Designation:             "rigger",
		Activity:                "tower maintenance",
		WorkAtHeightCertificate: "YES",
		PPEs:                    "YES",
	}
}

func TestCreate_AssignsIDAndTimestamp(t *testing.T) {
	store := newTestStore(t, false)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before := time.Now().UTC().Add(-time.Second)
	id, err := store.Create(ctx, submission("first@example.com"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id.IsZero() {
		t.Error("expected a non-zero id")
	}

	id2, err := store.Create(ctx, submission("second@example.com"))
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if id2 == id {
		t.Error("expected distinct ids for distinct submissions")
	}

	// The store stamps submitted_at when the caller leaves it zero.
	docs, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	for _, doc := range docs {
		if doc.SubmittedAt.Before(before) {
			t.Errorf("submitted_at %v predates the inserts", doc.SubmittedAt)
		}
	}
}

func TestCreate_DuplicatePrimary(t *testing.T) {
	store := newTestStore(t, false)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, submission("a@x.com")); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := store.Create(ctx, submission("a@x.com"))
	if !errors.Is(err, submissionstore.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCreate_AltEmailCollision(t *testing.T) {
	store := newTestStore(t, false)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alt := "shared@x.com"
	first := submission("owner@x.com")
	first.EmailAlt = &alt
	if _, err := store.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	// New primary equal to an existing alternate collides.
	_, err := store.Create(ctx, submission("shared@x.com"))
	if !errors.Is(err, submissionstore.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// New alternate equal to an existing primary collides too.
	owner := "owner@x.com"
	second := submission("fresh@x.com")
	second.EmailAlt = &owner
	_, err = store.Create(ctx, second)
	if !errors.Is(err, submissionstore.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCreate_UniqueAltIndex(t *testing.T) {
	store := newTestStore(t, true)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alt := "backup@x.com"
	first := submission("one@x.com")
	first.EmailAlt = &alt
	if _, err := store.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	second := submission("two@x.com")
	second.EmailAlt = &alt
	_, err := store.Create(ctx, second)
	if !errors.Is(err, submissionstore.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail for shared alt, got %v", err)
	}

	// Submissions without an alternate do not trip the sparse index.
	if _, err := store.Create(ctx, submission("three@x.com")); err != nil {
		t.Fatalf("create without alt: %v", err)
	}
	if _, err := store.Create(ctx, submission("four@x.com")); err != nil {
		t.Fatalf("create second without alt: %v", err)
	}
}

func TestRecent_OrderAndLimit(t *testing.T) {
	store := newTestStore(t, false)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	emails := []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"}
	base := time.Now().UTC().Add(-time.Hour)
	for i, email := range emails {
		sub := submission(email)
		sub.SubmittedAt = base.Add(time.Duration(i) * time.Minute)
		if _, err := store.Create(ctx, sub); err != nil {
			t.Fatalf("create %s: %v", email, err)
		}
	}

	docs, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 docs, got %d", len(docs))
	}
	if docs[0].EmailPrimary != "d@x.com" {
		t.Errorf("expected newest first, got %s", docs[0].EmailPrimary)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != int64(len(emails)) {
		t.Errorf("expected count %d, got %d", len(emails), n)
	}
}
