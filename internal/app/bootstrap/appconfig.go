// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging level, body limits);
// AppConfig is everything specific to HireHub.
//
// MongoURI, MongoDatabase, and MongoCollection may all be left blank: the
// service still starts, /health reports "not-configured", and /submit and
// /debug answer with a service error. This mirrors how the service behaves
// on platforms where storage is provisioned separately from the app.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoCollection  string // Collection that stores submissions
	MongoMaxPoolSize uint64 // Driver connection pool upper bound
	MongoMinPoolSize uint64 // Driver connection pool lower bound

	// AllowedOrigins is the comma-separated cross-origin caller list.
	// Empty means no CORS restrictions (permissive).
	AllowedOrigins string

	// DebugPageSize bounds how many recent submissions /debug returns.
	DebugPageSize int

	// PINPolicy is "relaxed" (length 3-12) or "strict" (exactly 6 digits).
	PINPolicy string

	// ChoicePolicy is "relaxed" (any non-empty value) or "strict"
	// (work_at_height_certificate and ppes must be YES or NO).
	ChoicePolicy string

	// AltEmailUnique makes the alternate-email index unique, extending the
	// storage-level uniqueness guarantee to email_alt.
	AltEmailUnique bool
}

// Configured reports whether the storage settings needed by /submit and
// /debug are all present.
func (c AppConfig) Configured() bool {
	return c.MongoURI != "" && c.MongoDatabase != "" && c.MongoCollection != ""
}
