// internal/models/variant.go
package models

type VariantStatus string

const (
    VariantStatusPending  VariantStatus = "pending"
    VariantStatusApproved VariantStatus = "approved"
    VariantStatusRejected VariantStatus = "rejected"
)

// AdVariant is one generated ad creative. Status is the only field the user
// mutates after generation; list membership is fixed once a session reaches
// results. Degraded marks a score substituted after a failed prediction call.
type AdVariant struct {
    ID          string        `json:"id"`
    Headline    string        `json:"headline"`
    PrimaryText string        `json:"primary_text"`
    CTA         string        `json:"cta"`
    Angle       string        `json:"angle"`
    Emotion     string        `json:"emotion"`
    Score       float64       `json:"score"`
    Degraded    bool          `json:"degraded"`
    ImageURL    string        `json:"image_url"`
    Status      VariantStatus `json:"status"`
}
