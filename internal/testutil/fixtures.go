package testutil

// ValidSubmissionPayload returns a complete, valid /submit request body.
// Override fields (or set them to nil to drop them) to build invalid
// variants in table tests.
func ValidSubmissionPayload(overrides map[string]any) map[string]any {
	payload := map[string]any{
		"email_primary":              "joe@example.com",
		"circle":                     "South",
		"state":                      "Karnataka",
		"district":                   "Bengaluru Urban",
		"name":                       "Joe Doe",
		"contact_number":             "9876543210",
		"pin_code":                   "560001",
		"designation":                "Rigger",
		"activity":                   "Tower maintenance",
		"work_at_height_certificate": "YES",
		"ppes":                       "YES",
	}
	for k, v := range overrides {
		if v == nil {
			delete(payload, k)
			continue
		}
		payload[k] = v
	}
	return payload
}
