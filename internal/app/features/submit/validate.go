// internal/app/features/submit/validate.go
package submit

import (
	"strings"

	"github.com/dalemusser/hirehub/internal/app/system/inputval"
	"github.com/dalemusser/hirehub/internal/app/system/normalize"
)

// validateInput applies the struct-tag constraints plus the policy-dependent
// pin and choice rules. It inspects the raw payload only; normalization
// happens afterwards, in buildSubmission.
func validateInput(in submitInput, p Policy) *inputval.Result {
	res := inputval.Validate(in)

	if pin := strings.TrimSpace(in.PinCode); pin != "" {
		if p.StrictPIN {
			if !isDigits(pin) || len(pin) != 6 {
				res.Add("pin_code", "Pin code must be exactly 6 digits.")
			}
		} else if len(pin) < 3 || len(pin) > 12 {
			res.Add("pin_code", "Pin code must be between 3 and 12 characters.")
		}
	}

	if p.StrictChoices {
		if v := normalize.Choice(in.WorkAtHeightCertificate); v != "" && v != "YES" && v != "NO" {
			res.Add("work_at_height_certificate", "Work at height certificate must be one of: YES, NO.")
		}
		if v := normalize.Choice(in.PPEs); v != "" && v != "YES" && v != "NO" {
			res.Add("ppes", "PPEs must be one of: YES, NO.")
		}
	}

	return res
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
