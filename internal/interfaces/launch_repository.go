// internal/interfaces/launch_repository.go
package interfaces

import (
    "context"
    "time"

    "brandtruth/internal/models"
)

// LaunchFilter defines the filter criteria for listing launches
type LaunchFilter struct {
    Status        string
    Demo          *bool
    PublishedFrom time.Time
    PublishedTo   time.Time
    Limit         int
    Offset        int
}

// LaunchRepository defines the interface for launch archive operations
type LaunchRepository interface {
    Create(ctx context.Context, launch *models.Launch) error
    GetByID(ctx context.Context, id string) (*models.Launch, error)
    List(ctx context.Context, filter LaunchFilter) ([]*models.Launch, error)
    Summary(ctx context.Context, filter LaunchFilter) (*models.LaunchSummary, error)
}
