// internal/routes/export_routes.go
package routes

import (
    "github.com/go-chi/chi/v5"

    "brandtruth/internal/handlers"
    "brandtruth/internal/pipeline"
    "brandtruth/internal/services"
)

func RegisterExportRoutes(router chi.Router, client *pipeline.Client, uploader *services.BundleUploader) {
    h := handlers.NewExportHandler(client, uploader)

    router.Post("/exports", h.CreateExport)
    router.Post("/proofs", h.CreateProof)
}
