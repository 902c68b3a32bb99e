// internal/wizard/events.go
package wizard

import (
    "errors"
    "fmt"
    "strings"
    "time"

    "brandtruth/internal/models"
)

var (
    ErrInvalidTransition  = errors.New("invalid wizard transition")
    ErrURLRequired        = errors.New("url is required")
    ErrVariantNotFound    = errors.New("variant not found")
    ErrNoApprovedVariants = errors.New("at least one approved variant is required to publish")
)

// Event is a wizard state-machine input. Apply is the single reducer for all
// of them; everything that performs I/O lives in the Runner and feeds its
// outcomes back through events.
type Event interface {
    eventName() string
}

type Submitted struct {
    URL      string
    Industry string
}

type StageStarted struct {
    Stage Stage
}

type RunCompleted struct {
    Brand    models.BrandProfile
    Variants []models.AdVariant
    Budget   models.BudgetPlan
    Audience models.AudienceProfile
}

type RunFailed struct {
    Message string
}

type VariantApproved struct{ ID string }
type VariantRejected struct{ ID string }
type VariantStatusCleared struct{ ID string }
type AllVariantsApproved struct{}

type PublishStarted struct{}

type PublishSucceeded struct {
    Result models.PublishResult
}

type PublishFailed struct {
    Message string
}

type SessionReset struct{}

func (Submitted) eventName() string            { return "submitted" }
func (StageStarted) eventName() string         { return "stage_started" }
func (RunCompleted) eventName() string         { return "run_completed" }
func (RunFailed) eventName() string            { return "run_failed" }
func (VariantApproved) eventName() string      { return "variant_approved" }
func (VariantRejected) eventName() string      { return "variant_rejected" }
func (VariantStatusCleared) eventName() string { return "variant_status_cleared" }
func (AllVariantsApproved) eventName() string  { return "all_variants_approved" }
func (PublishStarted) eventName() string       { return "publish_started" }
func (PublishSucceeded) eventName() string     { return "publish_succeeded" }
func (PublishFailed) eventName() string        { return "publish_failed" }
func (SessionReset) eventName() string         { return "session_reset" }

// Apply is the pure reducer: no I/O, no clock reads beyond UpdatedAt, and an
// error for any event that is illegal in the current step. Callers get back
// a new session value; the input is never mutated.
func Apply(s Session, ev Event) (Session, error) {
    s = s.clone()

    switch e := ev.(type) {
    case Submitted:
        if s.Step != StepInput {
            return s, transitionErr(s.Step, ev)
        }
        if strings.TrimSpace(e.URL) == "" {
            return s, ErrURLRequired
        }
        s.Step = StepProcessing
        s.URL = strings.TrimSpace(e.URL)
        s.Industry = e.Industry
        if s.Industry == "" {
            s.Industry = "saas"
        }
        s.Error = ""
        s.Stage = ""
        s.Progress = 0

    case StageStarted:
        if s.Step != StepProcessing {
            return s, transitionErr(s.Step, ev)
        }
        idx := stageIndex(e.Stage)
        if idx < 0 {
            return s, fmt.Errorf("%w: unknown stage %q", ErrInvalidTransition, e.Stage)
        }
        s.Stage = e.Stage
        s.Progress = idx * progressPerStage

    case RunCompleted:
        if s.Step != StepProcessing {
            return s, transitionErr(s.Step, ev)
        }
        if len(e.Variants) == 0 {
            return s, fmt.Errorf("%w: run completed with no variants", ErrInvalidTransition)
        }
        s.Step = StepResults
        brand := e.Brand
        budget := e.Budget
        audience := e.Audience
        s.Brand = &brand
        s.Variants = append([]models.AdVariant(nil), e.Variants...)
        s.Budget = &budget
        s.Audience = &audience
        s.Stage = ""
        s.Progress = 100
        s.Error = ""

    case RunFailed:
        if s.Step != StepProcessing {
            return s, transitionErr(s.Step, ev)
        }
        // No partial results survive a failed run.
        s.Step = StepInput
        s.Brand = nil
        s.Variants = nil
        s.Budget = nil
        s.Audience = nil
        s.Stage = ""
        s.Progress = 0
        s.Error = e.Message

    case VariantApproved:
        return s.setVariantStatus(e.ID, models.VariantStatusApproved)

    case VariantRejected:
        return s.setVariantStatus(e.ID, models.VariantStatusRejected)

    case VariantStatusCleared:
        return s.setVariantStatus(e.ID, models.VariantStatusPending)

    case AllVariantsApproved:
        if s.Step != StepResults {
            return s, transitionErr(s.Step, ev)
        }
        for i := range s.Variants {
            s.Variants[i].Status = models.VariantStatusApproved
        }

    case PublishStarted:
        if s.Step != StepResults {
            return s, transitionErr(s.Step, ev)
        }
        // Fails closed: the precondition lives here, not in a disabled
        // button.
        if s.ApprovedCount() == 0 {
            return s, ErrNoApprovedVariants
        }
        s.Step = StepPublishing
        s.Error = ""

    case PublishSucceeded:
        if s.Step != StepPublishing {
            return s, transitionErr(s.Step, ev)
        }
        s.Step = StepLive
        result := e.Result
        s.PublishResult = &result

    case PublishFailed:
        if s.Step != StepPublishing {
            return s, transitionErr(s.Step, ev)
        }
        s.Step = StepResults
        s.Error = e.Message

    case SessionReset:
        // Full replacement; only identity and the probed availability flag
        // survive a "Start Over" / "Launch Another".
        fresh := Session{
            ID:           s.ID,
            Step:         StepInput,
            APIAvailable: s.APIAvailable,
            DemoMode:     s.DemoMode,
            CreatedAt:    s.CreatedAt,
        }
        s = fresh

    default:
        return s, fmt.Errorf("%w: unknown event %T", ErrInvalidTransition, ev)
    }

    s.UpdatedAt = time.Now().UTC()
    return s, nil
}

func (s Session) setVariantStatus(id string, status models.VariantStatus) (Session, error) {
    if s.Step != StepResults {
        return s, fmt.Errorf("%w: variant review is only available in results (step=%s)", ErrInvalidTransition, s.Step)
    }
    idx := s.variantIndex(id)
    if idx < 0 {
        return s, fmt.Errorf("%w: %s", ErrVariantNotFound, id)
    }
    s.Variants[idx].Status = status
    s.UpdatedAt = time.Now().UTC()
    return s, nil
}

func transitionErr(step Step, ev Event) error {
    return fmt.Errorf("%w: %s not allowed in step %s", ErrInvalidTransition, ev.eventName(), step)
}
