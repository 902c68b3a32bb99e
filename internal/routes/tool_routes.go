// internal/routes/tool_routes.go
package routes

import (
    "github.com/go-chi/chi/v5"

    "brandtruth/internal/handlers"
    "brandtruth/internal/pipeline"
)

func RegisterToolRoutes(router chi.Router, client *pipeline.Client) {
    h := handlers.NewToolsHandler(client)

    router.Post("/tools/{tool}", h.Invoke)
}
