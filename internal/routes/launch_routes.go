// internal/routes/launch_routes.go
package routes

import (
    "github.com/go-chi/chi/v5"

    "brandtruth/internal/handlers"
    "brandtruth/internal/interfaces"
)

func RegisterLaunchRoutes(router chi.Router, repo interfaces.LaunchRepository) {
    h := handlers.NewLaunchHandler(repo)

    router.Route("/launches", func(r chi.Router) {
        r.Get("/", h.ListLaunches)
        // Registered before /{id} so "summary" is not read as an ID.
        r.Get("/summary", h.GetSummary)
        r.Get("/{id}", h.GetLaunch)
    })
}
