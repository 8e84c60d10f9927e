// Package submit accepts a new job-application submission: it validates the
// payload, normalizes it at a single boundary, runs the email dedup check,
// and inserts one immutable document.
package submit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	submissionstore "github.com/dalemusser/hirehub/internal/app/store/submissions"
	"github.com/dalemusser/hirehub/internal/app/system/apierror"
	"github.com/dalemusser/hirehub/internal/app/system/normalize"
	"github.com/dalemusser/hirehub/internal/app/system/timeouts"
	"github.com/dalemusser/hirehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the submit operation.
type Handler struct {
	Store  *submissionstore.Store
	Policy Policy
	Log    *zap.Logger
}

// NewHandler constructs a submit Handler. Store is nil when Mongo is not
// configured; Serve then answers 503 after validation succeeds.
func NewHandler(store *submissionstore.Store, policy Policy, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Policy: policy, Log: logger}
}

// submitResponse is the JSON acknowledgment for an accepted submission.
type submitResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// Serve handles POST /submit.
//
// Pipeline: decode → validate → normalize → stamp submitted_at (UTC) →
// dedup check → insert. Outcomes:
//
//	200 {"ok":true,"id":"<hex>"}   accepted
//	400 malformed JSON body
//	422 constraint violations, listing the offending fields
//	409 duplicate email (precheck or unique-index violation)
//	503 store not configured or unreachable
//	500 anything else during insert
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	var in submitInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apierror.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if result := validateInput(in, h.Policy); result.HasErrors() {
		apierror.Validation(w, result)
		return
	}

	// Validation never needs the store; only an accepted payload does.
	if h.Store == nil {
		apierror.Unavailable(w)
		return
	}

	sub := buildSubmission(in, h.Policy)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	id, err := h.Store.Create(ctx, sub)
	if err != nil {
		if errors.Is(err, submissionstore.ErrDuplicateEmail) {
			apierror.Conflict(w)
			return
		}
		h.Log.Error("submit: insert failed", zap.Error(err))
		if isStoreDown(err) {
			apierror.Unavailable(w)
			return
		}
		apierror.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.Log.Info("submission accepted", zap.String("id", id.Hex()))
	apierror.JSON(w, http.StatusOK, submitResponse{OK: true, ID: id.Hex()})
}

// buildSubmission is the normalization boundary: trimming and case-folding
// happen here, once, after validation and before the dedup check.
func buildSubmission(in submitInput, p Policy) models.Submission {
	sub := models.Submission{
		EmailPrimary:            normalize.Email(in.EmailPrimary),
		Circle:                  normalize.Field(in.Circle),
		State:                   normalize.Field(in.State),
		District:                normalize.Field(in.District),
		Name:                    normalize.Field(in.Name),
		ContactNumber:           normalize.Field(in.ContactNumber),
		PinCode:                 normalize.Field(in.PinCode),
		Designation:             normalize.Field(in.Designation),
		Activity:                normalize.Field(in.Activity),
		WorkAtHeightCertificate: normalize.Field(in.WorkAtHeightCertificate),
		PPEs:                    normalize.Field(in.PPEs),
		SubmittedAt:             time.Now().UTC(),
	}

	if p.StrictChoices {
		sub.WorkAtHeightCertificate = normalize.Choice(in.WorkAtHeightCertificate)
		sub.PPEs = normalize.Choice(in.PPEs)
	}

	if in.EmailAlt != nil && normalize.Email(*in.EmailAlt) != "" {
		alt := normalize.Email(*in.EmailAlt)
		sub.EmailAlt = &alt
	}
	sub.EducationQualification = optionalField(in.EducationQualification)
	sub.JBTHCertificateNumber = optionalField(in.JBTHCertificateNumber)
	sub.FarmTocliNumber = optionalField(in.FarmTocliNumber)

	return sub
}

// optionalField trims an optional value, dropping it entirely when blank.
func optionalField(p *string) *string {
	if p == nil {
		return nil
	}
	v := normalize.Field(*p)
	if v == "" {
		return nil
	}
	return &v
}

// isStoreDown classifies connectivity failures so callers see 503 (retry
// later) instead of a generic 500.
func isStoreDown(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err)
}
