// internal/pipeline/types.go
package pipeline

import (
    "brandtruth/internal/models"
)

// RunRequest starts an end-to-end pipeline run: brand extraction, copy
// generation and image matching happen backend-side in one opaque call.
type RunRequest struct {
    URL          string `json:"url"`
    Industry     string `json:"industry,omitempty"`
    VariantCount int    `json:"variant_count,omitempty"`
}

type RunResponse struct {
    Brand    models.BrandProfile `json:"brand"`
    Variants []RunVariant        `json:"variants"`
}

// RunVariant is an ad variant as the backend returns it: no score and no
// review status yet. Scoring happens per variant via Predict.
type RunVariant struct {
    ID          string `json:"id"`
    Headline    string `json:"headline"`
    PrimaryText string `json:"primary_text"`
    CTA         string `json:"cta"`
    Angle       string `json:"angle"`
    Emotion     string `json:"emotion"`
    ImageURL    string `json:"image_url"`
}

type BudgetSimulateRequest struct {
    Industry    string  `json:"industry"`
    DailyBudget float64 `json:"daily_budget,omitempty"`
    TargetCPA   float64 `json:"target_cpa,omitempty"`
}

type AudienceSuggestRequest struct {
    URL      string `json:"url"`
    Industry string `json:"industry"`
}

type AudienceSuggestResponse struct {
    Audiences []models.AudienceProfile `json:"audiences"`
}

type PredictRequest struct {
    Headline    string `json:"headline"`
    PrimaryText string `json:"primary_text"`
    CTA         string `json:"cta"`
    Angle       string `json:"angle"`
    Emotion     string `json:"emotion"`
    Industry    string `json:"industry"`
}

type PredictResponse struct {
    Score float64 `json:"score"`
}

type MetaPublishRequest struct {
    Headline    string                  `json:"headline"`
    PrimaryText string                  `json:"primary_text"`
    CTA         string                  `json:"cta"`
    ImageURL    string                  `json:"image_url"`
    LandingURL  string                  `json:"landing_url"`
    DailyBudget float64                 `json:"daily_budget"`
    Audience    *models.AudienceProfile `json:"audience,omitempty"`
}
