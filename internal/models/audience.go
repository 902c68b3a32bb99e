// internal/models/audience.go
package models

// AudienceProfile is the suggested targeting snapshot for a campaign.
type AudienceProfile struct {
    Name        string   `json:"name"`
    Description string   `json:"description"`
    AgeMin      int      `json:"age_min"`
    AgeMax      int      `json:"age_max"`
    Countries   []string `json:"countries"`
    Interests   []string `json:"interests"`
}
