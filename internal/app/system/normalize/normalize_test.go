package normalize

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user@example.com", "user@example.com"},
		{"USER@EXAMPLE.COM", "user@example.com"},
		{"  User@Example.Com  ", "user@example.com"},
		{"", ""},
		{"   ", ""},
		{"Mixed.Case@Domain.ORG", "mixed.case@domain.org"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Email(tt.input)
			if got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestField(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Joe Doe", "Joe Doe"},
		{"  Joe Doe  ", "Joe Doe"},
		{"", ""},
		{"   ", ""},
		{"UPPERCASE NAME", "UPPERCASE NAME"}, // Field preserves case
		{"lowercase name", "lowercase name"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Field(tt.input)
			if got != tt.want {
				t.Errorf("Field(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestChoice(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"YES", "YES"},
		{"yes", "YES"},
		{"  No  ", "NO"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Choice(tt.input)
			if got != tt.want {
				t.Errorf("Choice(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
