// internal/wizard/state.go
package wizard

import (
    "time"

    "brandtruth/internal/models"
)

// Step is the wizard's top-level state. Progression is forward-only except
// for the two failure fallbacks: processing returns to input and publishing
// returns to results.
type Step string

const (
    StepInput      Step = "input"
    StepProcessing Step = "processing"
    StepResults    Step = "results"
    StepPublishing Step = "publishing"
    StepLive       Step = "live"
)

// Stage is the logical phase in flight while Step is processing. The five
// stages always run in this order, strictly sequentially, because each
// consumes the previous one's output.
type Stage string

const (
    StageExtracting Stage = "extracting"
    StageAnalyzing  Stage = "analyzing"
    StageGenerating Stage = "generating"
    StageScoring    Stage = "scoring"
    StageOptimizing Stage = "optimizing"
)

// Stages in execution order. Progress advances a fixed 20% per stage
// boundary; it is UI feedback, not a measure of real work.
var Stages = []Stage{StageExtracting, StageAnalyzing, StageGenerating, StageScoring, StageOptimizing}

const progressPerStage = 20

// Session is one wizard run. It lives only in memory: the record is created
// when the client opens the wizard and discarded on reset or expiry, never
// persisted. Only successful publishes leave a durable trace (the launch
// archive).
type Session struct {
    ID       string `json:"id"`
    Step     Step   `json:"step"`
    URL      string `json:"url"`
    Industry string `json:"industry"`

    Brand    *models.BrandProfile    `json:"brand,omitempty"`
    Variants []models.AdVariant      `json:"variants,omitempty"`
    Budget   *models.BudgetPlan      `json:"budget,omitempty"`
    Audience *models.AudienceProfile `json:"audience,omitempty"`

    Error    string `json:"error,omitempty"`
    Stage    Stage  `json:"processing_stage,omitempty"`
    Progress int    `json:"processing_progress"`

    APIAvailable bool `json:"api_available"`
    DemoMode     bool `json:"demo_mode"`

    PublishResult *models.PublishResult `json:"publish_result,omitempty"`

    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}

// ApprovedCount is derived, never stored.
func (s Session) ApprovedCount() int {
    n := 0
    for _, v := range s.Variants {
        if v.Status == models.VariantStatusApproved {
            n++
        }
    }
    return n
}

func (s Session) variantIndex(id string) int {
    for i, v := range s.Variants {
        if v.ID == id {
            return i
        }
    }
    return -1
}

// clone returns a session whose variant slice is independent of the
// original, so reducer output never aliases stored state.
func (s Session) clone() Session {
    if s.Variants != nil {
        vs := make([]models.AdVariant, len(s.Variants))
        copy(vs, s.Variants)
        s.Variants = vs
    }
    return s
}

func stageIndex(st Stage) int {
    for i, s := range Stages {
        if s == st {
            return i
        }
    }
    return -1
}
