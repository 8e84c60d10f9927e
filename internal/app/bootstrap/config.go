// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for HireHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, mongo_collection, etc.
//   - Environment variables: HIREHUB_MONGO_URI, HIREHUB_MONGO_COLLECTION, etc.
//   - Command-line flags: --mongo_uri, --mongo_collection, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI (blank runs the service without storage)"},
	{Name: "mongo_database", Default: "", Desc: "MongoDB database name"},
	{Name: "mongo_collection", Default: "submissions", Desc: "Collection that stores submissions"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "allowed_origins", Default: "", Desc: "Comma-separated CORS origin allowlist (blank disables restrictions)"},

	{Name: "debug_page_size", Default: 10, Desc: "Max documents returned by /debug"},

	{Name: "pin_policy", Default: "relaxed", Desc: "Pin code policy: 'relaxed' (length 3-12) or 'strict' (6 digits)"},
	{Name: "choice_policy", Default: "relaxed", Desc: "Certificate/PPE policy: 'relaxed' or 'strict' (YES/NO only)"},
	{Name: "alt_email_unique", Default: false, Desc: "Enforce uniqueness on the alternate email at the storage layer"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have access
// to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "HIREHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoCollection:  appValues.String("mongo_collection"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AllowedOrigins: appValues.String("allowed_origins"),
		DebugPageSize:  appValues.Int("debug_page_size"),

		PINPolicy:      appValues.String("pin_policy"),
		ChoicePolicy:   appValues.String("choice_policy"),
		AltEmailUnique: appValues.Bool("alt_email_unique"),
	}

	if !appCfg.Configured() {
		logger.Warn("mongo settings incomplete; /submit and /debug will report a service error",
			zap.Bool("uri_set", appCfg.MongoURI != ""),
			zap.Bool("database_set", appCfg.MongoDatabase != ""),
			zap.Bool("collection_set", appCfg.MongoCollection != ""))
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// A blank Mongo URI is accepted (the service degrades per endpoint), but a
// present URI must parse, and policy knobs must name a known policy so a
// typo fails startup instead of silently relaxing validation.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MongoURI != "" {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	}

	switch appCfg.PINPolicy {
	case "relaxed", "strict":
	default:
		return fmt.Errorf("pin_policy must be 'relaxed' or 'strict', got %q", appCfg.PINPolicy)
	}

	switch appCfg.ChoicePolicy {
	case "relaxed", "strict":
	default:
		return fmt.Errorf("choice_policy must be 'relaxed' or 'strict', got %q", appCfg.ChoicePolicy)
	}

	if appCfg.DebugPageSize <= 0 {
		return fmt.Errorf("debug_page_size must be positive, got %d", appCfg.DebugPageSize)
	}

	return nil
}
