package inputval

import "testing"

func TestValidate(t *testing.T) {
	type testInput struct {
		Name  string `json:"name" validate:"required,min=2,max=10" label:"Full name"`
		Email string `json:"email_primary" validate:"required,email" label:"Primary email"`
	}

	tests := []struct {
		name       string
		input      testInput
		wantErrors bool
		wantFirst  string
	}{
		{
			name:       "valid input",
			input:      testInput{Name: "Joe", Email: "joe@example.com"},
			wantErrors: false,
		},
		{
			name:       "missing name",
			input:      testInput{Name: "", Email: "joe@example.com"},
			wantErrors: true,
			wantFirst:  "Full name is required.",
		},
		{
			name:       "name too short",
			input:      testInput{Name: "J", Email: "joe@example.com"},
			wantErrors: true,
			wantFirst:  "Full name must be at least 2 characters.",
		},
		{
			name:       "name too long",
			input:      testInput{Name: "AVeryLongName", Email: "joe@example.com"},
			wantErrors: true,
			wantFirst:  "Full name must be at most 10 characters.",
		},
		{
			name:       "invalid email",
			input:      testInput{Name: "Joe", Email: "not-an-email"},
			wantErrors: true,
			wantFirst:  "A valid email address is required.",
		},
		{
			name:       "missing both",
			input:      testInput{Name: "", Email: ""},
			wantErrors: true,
			wantFirst:  "Full name is required.", // First error
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.input)

			if result.HasErrors() != tt.wantErrors {
				t.Errorf("Validate() HasErrors = %v, want %v", result.HasErrors(), tt.wantErrors)
			}
			if tt.wantErrors && result.First() != tt.wantFirst {
				t.Errorf("Validate() First() = %q, want %q", result.First(), tt.wantFirst)
			}
		})
	}
}

func TestValidate_OptionalPointerField(t *testing.T) {
	type testInput struct {
		EmailAlt *string `json:"email_alt" validate:"email" label:"Alternate email"`
	}

	t.Run("nil pointer passes", func(t *testing.T) {
		if result := Validate(testInput{}); result.HasErrors() {
			t.Errorf("Validate(nil alt) has errors: %v", result.Errors)
		}
	})

	t.Run("valid value passes", func(t *testing.T) {
		v := "alt@example.com"
		if result := Validate(testInput{EmailAlt: &v}); result.HasErrors() {
			t.Errorf("Validate(valid alt) has errors: %v", result.Errors)
		}
	})

	t.Run("invalid value fails", func(t *testing.T) {
		v := "nope"
		result := Validate(testInput{EmailAlt: &v})
		if !result.HasErrors() {
			t.Fatal("Validate(invalid alt) should have errors")
		}
		if result.Errors[0].Field != "email_alt" {
			t.Errorf("field = %q, want %q", result.Errors[0].Field, "email_alt")
		}
	})
}

func TestValidate_DigitsAndOneof(t *testing.T) {
	type pinInput struct {
		Pin string `json:"pin_code" validate:"required,digits=6" label:"Pin code"`
	}
	type choiceInput struct {
		PPEs string `json:"ppes" validate:"required,oneof=YES NO" label:"PPEs"`
	}

	t.Run("valid pin", func(t *testing.T) {
		if result := Validate(pinInput{Pin: "560001"}); result.HasErrors() {
			t.Errorf("Validate(valid pin) has errors: %v", result.Errors)
		}
	})

	t.Run("non-digit pin", func(t *testing.T) {
		result := Validate(pinInput{Pin: "56000a"})
		if !result.HasErrors() {
			t.Fatal("Validate(non-digit pin) should have errors")
		}
		if result.First() != "Pin code must be exactly 6 digits." {
			t.Errorf("First() = %q", result.First())
		}
	})

	t.Run("short pin", func(t *testing.T) {
		if result := Validate(pinInput{Pin: "5600"}); !result.HasErrors() {
			t.Error("Validate(short pin) should have errors")
		}
	})

	t.Run("valid choice", func(t *testing.T) {
		if result := Validate(choiceInput{PPEs: "NO"}); result.HasErrors() {
			t.Errorf("Validate(valid choice) has errors: %v", result.Errors)
		}
	})

	t.Run("invalid choice", func(t *testing.T) {
		result := Validate(choiceInput{PPEs: "MAYBE"})
		if !result.HasErrors() {
			t.Fatal("Validate(invalid choice) should have errors")
		}
		if result.First() != "PPEs must be one of: YES, NO." {
			t.Errorf("First() = %q", result.First())
		}
	})
}

func TestResult_All(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		r := &Result{}
		if r.All() != "" {
			t.Errorf("All() = %q, want empty", r.All())
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		r := &Result{
			Errors: []FieldError{
				{Message: "Error 1"},
				{Message: "Error 2"},
			},
		}
		want := "Error 1; Error 2"
		if r.All() != want {
			t.Errorf("All() = %q, want %q", r.All(), want)
		}
	})
}
