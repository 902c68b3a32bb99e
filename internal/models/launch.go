// internal/models/launch.go
package models

import "time"

type LaunchStatus string

const (
    LaunchStatusLive   LaunchStatus = "live"
    LaunchStatusPaused LaunchStatus = "paused"
    LaunchStatusEnded  LaunchStatus = "ended"
)

// Launch is the durable record of a published campaign. Wizard sessions are
// ephemeral; this is what the dashboard history lists after a publish
// succeeds.
type Launch struct {
    ID             string       `json:"id"`
    SessionID      string       `json:"session_id"`
    URL            string       `json:"url" validate:"required,url"`
    BrandName      string       `json:"brand_name"`
    VariantID      string       `json:"variant_id"`
    Headline       string       `json:"headline"`
    MetaCampaignID string       `json:"meta_campaign_id"`
    DailyBudget    float64      `json:"daily_budget"`
    Status         LaunchStatus `json:"status"`
    Demo           bool         `json:"demo"`
    PublishedAt    time.Time    `json:"published_at"`
    CreatedAt      time.Time    `json:"created_at"`
    UpdatedAt      time.Time    `json:"updated_at"`
}

type LaunchSummary struct {
    LiveLaunchCount  int     `json:"live_launch_count"`
    TotalDailyBudget float64 `json:"total_daily_budget"`
    DemoLaunchCount  int     `json:"demo_launch_count"`
}
