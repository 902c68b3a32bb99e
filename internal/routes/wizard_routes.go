// internal/routes/wizard_routes.go
package routes

import (
    "github.com/go-chi/chi/v5"

    "brandtruth/internal/handlers"
    "brandtruth/internal/pipeline"
    "brandtruth/internal/wizard"
)

func RegisterWizardRoutes(router chi.Router, store *wizard.Store, runner *wizard.Runner, client *pipeline.Client, forceDemo bool) {
    h := handlers.NewWizardHandler(store, runner, client, forceDemo)

    router.Route("/wizard/sessions", func(r chi.Router) {
        r.Post("/", h.CreateSession)

        r.Route("/{id}", func(r chi.Router) {
            r.Get("/", h.GetSession)
            r.Delete("/", h.DeleteSession)
            r.Post("/submit", h.Submit)
            r.Post("/publish", h.Publish)
            r.Post("/reset", h.Reset)

            r.Route("/variants", func(r chi.Router) {
                r.Post("/approve-all", h.ApproveAll)
                r.Post("/{variantID}/approve", h.ApproveVariant)
                r.Post("/{variantID}/reject", h.RejectVariant)
                r.Post("/{variantID}/reset", h.ResetVariant)
            })
        })
    })
}
