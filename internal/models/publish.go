// internal/models/publish.go
package models

// PublishResult is the outcome of pushing the primary approved variant to
// Meta Ads. Demo is true when the result was fabricated by the fixture
// fallback rather than the live backend.
type PublishResult struct {
    Success    bool   `json:"success"`
    CampaignID string `json:"campaign_id"`
    AdSetID    string `json:"adset_id,omitempty"`
    AdID       string `json:"ad_id,omitempty"`
    Status     string `json:"status"`
    Demo       bool   `json:"demo"`
    Message    string `json:"message,omitempty"`
}
