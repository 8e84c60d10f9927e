package inputval

import "strings"

// IsValidEmail reports whether s looks like a deliverable email address.
//
// Deliberately stricter than a bare "has an @" check and looser than full
// RFC 5322: display-name forms are rejected, single-label domains are
// accepted (useful for dev/test environments), and dot placement is policed
// in both the local part and the domain.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if strings.ContainsAny(s, " \t<>") {
		return false
	}

	if strings.Count(s, "@") != 1 {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]

	return validDotRun(local) && validDotRun(domain)
}

// validDotRun rejects leading/trailing dots and consecutive dots.
func validDotRun(part string) bool {
	if part == "" {
		return false
	}
	if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") {
		return false
	}
	return !strings.Contains(part, "..")
}
