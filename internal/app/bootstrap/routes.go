// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"

	debugfeature "github.com/dalemusser/hirehub/internal/app/features/debug"
	healthfeature "github.com/dalemusser/hirehub/internal/app/features/health"
	submitfeature "github.com/dalemusser/hirehub/internal/app/features/submit"
	submissionstore "github.com/dalemusser/hirehub/internal/app/store/submissions"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, and schema setup have
// completed. HireHub mounts exactly three routes: /health, /debug, /submit.
// When Mongo is not configured the store is nil and the submit/debug handlers
// answer with a service error on their own.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	var store *submissionstore.Store
	if deps.MongoDB != nil {
		store = submissionstore.New(deps.MongoDB, appCfg.MongoCollection, appCfg.AltEmailUnique)
	}

	r := chi.NewRouter()
	r.Use(corsMiddleware(appCfg.AllowedOrigins))

	healthHandler := healthfeature.NewHandler(deps.MongoClient, appCfg.Configured(), logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	debugHandler := debugfeature.NewHandler(store, appCfg.DebugPageSize, logger)
	r.Mount("/debug", debugfeature.Routes(debugHandler))

	submitHandler := submitfeature.NewHandler(store, submitfeature.Policy{
		StrictPIN:     appCfg.PINPolicy == "strict",
		StrictChoices: appCfg.ChoicePolicy == "strict",
	}, logger)
	r.Mount("/submit", submitfeature.Routes(submitHandler))

	return r, nil
}

// corsMiddleware builds the CORS layer from the comma-separated allowlist.
// An empty list disables restrictions (any origin may call the API).
func corsMiddleware(allowed string) func(http.Handler) http.Handler {
	origins := []string{"*"}
	if allowed != "" {
		origins = origins[:0]
		for _, o := range strings.Split(allowed, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: allowed != "",
		MaxAge:           300,
	})
}
