package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one applicant's stored form record. Emails are stored
// lower-cased; EmailPrimary is unique across the collection. A submission is
// never updated or deleted after insert.
type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	EmailPrimary string             `bson:"email_primary" json:"email_primary"`
	EmailAlt     *string            `bson:"email_alt,omitempty" json:"email_alt,omitempty"`

	Circle        string `bson:"circle" json:"circle"`
	State         string `bson:"state" json:"state"`
	District      string `bson:"district" json:"district"`
	Name          string `bson:"name" json:"name"`
	ContactNumber string `bson:"contact_number" json:"contact_number"`
	PinCode       string `bson:"pin_code" json:"pin_code"`
	Designation   string `bson:"designation" json:"designation"`
	Activity      string `bson:"activity" json:"activity"`

	WorkAtHeightCertificate string `bson:"work_at_height_certificate" json:"work_at_height_certificate"`
	PPEs                    string `bson:"ppes" json:"ppes"`

	EducationQualification *string `bson:"education_qualification,omitempty" json:"education_qualification,omitempty"`
	JBTHCertificateNumber  *string `bson:"jbth_certificate_number,omitempty" json:"jbth_certificate_number,omitempty"`
	FarmTocliNumber        *string `bson:"farm_tocli_number,omitempty" json:"farm_tocli_number,omitempty"`

	// SubmittedAt is assigned by the server in UTC at insert time. A value
	// supplied by the client is discarded.
	SubmittedAt time.Time `bson:"submitted_at" json:"submitted_at"`
}
