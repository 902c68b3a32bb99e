// internal/models/brand.go
package models

type RiskLevel string

const (
    RiskLevelLow    RiskLevel = "LOW"
    RiskLevelMedium RiskLevel = "MEDIUM"
    RiskLevelHigh   RiskLevel = "HIGH"
)

// Claim is a single marketing claim extracted from the target website,
// tagged with where it came from and how risky it is to repeat in an ad.
type Claim struct {
    Text      string    `json:"text"`
    Source    string    `json:"source"`
    RiskLevel RiskLevel `json:"risk_level"`
}

type BrandProfile struct {
    BrandName       string   `json:"brand_name"`
    Tagline         string   `json:"tagline"`
    ValueProps      []string `json:"value_props"`
    Claims          []Claim  `json:"claims"`
    ConfidenceScore float64  `json:"confidence_score"`
}
