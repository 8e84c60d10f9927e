// internal/app/features/submit/types.go
package submit

// submitInput is the raw /submit payload shape with its declarative field
// constraints. Pin-code and certificate/PPE constraints that depend on the
// configured policy variant are applied separately in validateInput.
//
// There is deliberately no submitted_at field here: anything the client
// sends under that name is discarded by the decoder, and the handler stamps
// its own UTC timestamp.
type submitInput struct {
	EmailPrimary string  `json:"email_primary" validate:"required,email" label:"Primary email"`
	EmailAlt     *string `json:"email_alt" validate:"email" label:"Alternate email"`

	Circle        string `json:"circle" validate:"required" label:"Circle"`
	State         string `json:"state" validate:"required" label:"State"`
	District      string `json:"district" validate:"required" label:"District"`
	Name          string `json:"name" validate:"required,min=2" label:"Name"`
	ContactNumber string `json:"contact_number" validate:"required,min=7,max=20" label:"Contact number"`
	PinCode       string `json:"pin_code" validate:"required" label:"Pin code"`
	Designation   string `json:"designation" validate:"required" label:"Designation"`
	Activity      string `json:"activity" validate:"required" label:"Activity"`

	WorkAtHeightCertificate string `json:"work_at_height_certificate" validate:"required" label:"Work at height certificate"`
	PPEs                    string `json:"ppes" validate:"required" label:"PPEs"`

	EducationQualification *string `json:"education_qualification"`
	JBTHCertificateNumber  *string `json:"jbth_certificate_number"`
	FarmTocliNumber        *string `json:"farm_tocli_number"`
}

// Policy selects the strict validation variants.
type Policy struct {
	// StrictPIN requires pin_code to be exactly 6 digits instead of any
	// 3-12 character string.
	StrictPIN bool

	// StrictChoices constrains work_at_height_certificate and ppes to
	// YES/NO (case-insensitive input, stored upper-cased).
	StrictChoices bool
}
