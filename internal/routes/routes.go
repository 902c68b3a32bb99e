// internal/routes/routes.go
package routes

import (
    "database/sql"
    "encoding/json"
    "net/http"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "github.com/go-chi/cors"

    "brandtruth/internal/config"
    "brandtruth/internal/pipeline"
    "brandtruth/internal/repository"
    "brandtruth/internal/services"
    "brandtruth/internal/wizard"
)

func SetupRoutes(db *sql.DB, cfg *config.Config, s3Config *config.S3Config) *chi.Mux {
    r := chi.NewRouter()

    // Middleware
    r.Use(middleware.RequestID)
    r.Use(middleware.RealIP)
    r.Use(middleware.Logger)
    r.Use(middleware.Recoverer)
    r.Use(cors.Handler(cors.Options{
        AllowedOrigins:   cfg.CORSAllowedOrigins,
        AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
        AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
        AllowCredentials: true,
    }))

    r.Get("/", func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "application/json")
        json.NewEncoder(w).Encode(map[string]string{"message": "brandtruth wizard service"})
    })

    // Health check: service plus its database. The pipeline backend has its
    // own probe per wizard session and is deliberately not part of this one.
    r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
        type dbStatus struct {
            Status string `json:"status"`
            Error  string `json:"error,omitempty"`
        }
        resp := struct {
            Status string   `json:"status"`
            DB     dbStatus `json:"db"`
        }{Status: "ok", DB: dbStatus{Status: "ok"}}

        status := http.StatusOK
        if err := db.PingContext(r.Context()); err != nil {
            resp.Status = "degraded"
            resp.DB = dbStatus{Status: "down", Error: err.Error()}
            status = http.StatusServiceUnavailable
        }

        w.Header().Set("Content-Type", "application/json")
        w.WriteHeader(status)
        json.NewEncoder(w).Encode(resp)
    })

    // Shared wiring: one gateway client, one session store, one runner.
    client := pipeline.NewClient(cfg.PipelineAPIURL, cfg.PipelineTimeout)
    store := wizard.NewStore()
    launchRepo := repository.NewLaunchRepository(db)
    runner := wizard.NewRunner(store, client, launchRepo)
    uploader := services.NewBundleUploader(s3Config)

    // API v1 routes
    r.Route("/api/v1", func(r chi.Router) {
        RegisterWizardRoutes(r, store, runner, client, cfg.ForceDemo)
        RegisterToolRoutes(r, client)
        RegisterLaunchRoutes(r, launchRepo)
        RegisterExportRoutes(r, client, uploader)
    })

    RegisterSwaggerRoutes(r)

    return r
}
