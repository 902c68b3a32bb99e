// internal/wizard/runner.go
package wizard

import (
    "context"
    "errors"
    "log"
    "math/rand"
    "time"

    "brandtruth/internal/interfaces"
    "brandtruth/internal/models"
    "brandtruth/internal/pipeline"
)

// Runner is the effect executor for the wizard state machine. It performs
// the awaited I/O for the processing and publishing transitions and feeds
// every outcome back through the reducer; it never touches session fields
// directly.
type Runner struct {
    store      *Store
    live       Provider
    demo       *demoProvider
    launchRepo interfaces.LaunchRepository
}

func NewRunner(store *Store, client *pipeline.Client, launchRepo interfaces.LaunchRepository) *Runner {
    return &Runner{
        store:      store,
        live:       &liveProvider{client: client},
        demo:       &demoProvider{delay: 1200 * time.Millisecond},
        launchRepo: launchRepo,
    }
}

// SetDemoDelay overrides the per-stage fixture latency. Tests set 0.
func (r *Runner) SetDemoDelay(d time.Duration) {
    r.demo.delay = d
}

func (r *Runner) provider(s Session) Provider {
    if s.DemoMode || !s.APIAvailable {
        return r.demo
    }
    return r.live
}

// Submit moves a session from input to processing. The caller decides
// whether Run happens on this goroutine or a background one.
func (r *Runner) Submit(id, url, industry string) (Session, error) {
    return r.store.Dispatch(id, Submitted{URL: url, Industry: industry})
}

// Run executes the five processing stages strictly in order: each stage
// consumes the previous one's output, so nothing runs concurrently. Any
// unrecoverable error rolls the session back to input via RunFailed;
// per-variant scoring failures are absorbed with a degraded fallback score.
func (r *Runner) Run(ctx context.Context, id string) {
    s, err := r.store.Get(id)
    if err != nil {
        log.Printf("wizard: run for unknown session %s", id)
        return
    }
    if s.Step != StepProcessing {
        log.Printf("wizard: run skipped, session %s is in step %s", id, s.Step)
        return
    }
    p := r.provider(s)

    if !r.startStage(id, StageExtracting) {
        return
    }
    brand, variants, err := p.Run(ctx, s.URL, s.Industry)
    if err != nil {
        r.fail(id, err)
        return
    }
    if len(variants) == 0 {
        r.fail(id, errors.New("the pipeline returned no ad variants"))
        return
    }

    if !r.startStage(id, StageAnalyzing) {
        return
    }
    budget, err := p.SimulateBudget(ctx, s.Industry)
    if err != nil {
        r.fail(id, err)
        return
    }

    if !r.startStage(id, StageGenerating) {
        return
    }
    audience, err := p.SuggestAudience(ctx, s.URL, s.Industry)
    if err != nil {
        r.fail(id, err)
        return
    }

    if !r.startStage(id, StageScoring) {
        return
    }
    // One variant at a time: a failed prediction is substituted without
    // affecting its neighbors, and the list length never changes.
    for i := range variants {
        score, err := p.Score(ctx, variants[i], s.Industry)
        if err != nil {
            variants[i].Score = fallbackScore()
            variants[i].Degraded = true
            log.Printf("wizard: scoring failed for variant %s, using fallback: %v", variants[i].ID, err)
            continue
        }
        variants[i].Score = score
    }

    if !r.startStage(id, StageOptimizing) {
        return
    }

    if _, err := r.store.Dispatch(id, RunCompleted{
        Brand:    brand,
        Variants: variants,
        Budget:   budget,
        Audience: audience,
    }); err != nil {
        log.Printf("wizard: completing run for session %s: %v", id, err)
    }
}

// Publish pushes the primary approved variant. PublishStarted fails closed
// when nothing is approved, so a caller bypassing the UI guard gets an error
// instead of an empty campaign.
func (r *Runner) Publish(ctx context.Context, id string) (Session, error) {
    s, err := r.store.Dispatch(id, PublishStarted{})
    if err != nil {
        return s, err
    }

    primary, err := SelectPrimaryVariant(s.Variants)
    if err != nil {
        // Unreachable after PublishStarted, but fail the step cleanly
        // rather than panic.
        return r.store.Dispatch(id, PublishFailed{Message: err.Error()})
    }

    var budget models.BudgetPlan
    if s.Budget != nil {
        budget = *s.Budget
    }
    var audience models.AudienceProfile
    if s.Audience != nil {
        audience = *s.Audience
    }

    result, err := r.provider(s).Publish(ctx, primary, s.URL, budget, audience)
    if err != nil {
        return r.store.Dispatch(id, PublishFailed{Message: userMessage(err)})
    }

    s, err = r.store.Dispatch(id, PublishSucceeded{Result: result})
    if err != nil {
        return s, err
    }

    r.archive(ctx, s, primary, result)
    return s, nil
}

func (r *Runner) archive(ctx context.Context, s Session, primary models.AdVariant, result models.PublishResult) {
    if r.launchRepo == nil || !result.Success {
        return
    }
    brandName := ""
    if s.Brand != nil {
        brandName = s.Brand.BrandName
    }
    dailyBudget := 0.0
    if s.Budget != nil {
        dailyBudget = s.Budget.DailyBudget
    }
    launch := &models.Launch{
        SessionID:      s.ID,
        URL:            s.URL,
        BrandName:      brandName,
        VariantID:      primary.ID,
        Headline:       primary.Headline,
        MetaCampaignID: result.CampaignID,
        DailyBudget:    dailyBudget,
        Status:         models.LaunchStatusLive,
        Demo:           result.Demo,
        PublishedAt:    time.Now().UTC(),
    }
    if err := r.launchRepo.Create(ctx, launch); err != nil {
        // The campaign is live; a failed archive write must not undo that.
        log.Printf("wizard: archiving launch for session %s: %v", s.ID, err)
    }
}

func (r *Runner) startStage(id string, stage Stage) bool {
    if _, err := r.store.Dispatch(id, StageStarted{Stage: stage}); err != nil {
        // Session was reset or abandoned mid-run; stop quietly.
        log.Printf("wizard: stage %s for session %s: %v", stage, id, err)
        return false
    }
    return true
}

func (r *Runner) fail(id string, err error) {
    if _, derr := r.store.Dispatch(id, RunFailed{Message: userMessage(err)}); derr != nil {
        log.Printf("wizard: failing run for session %s: %v", id, derr)
    }
}

// fallbackScore substitutes a plausible score when a prediction call fails.
// Range is 80-95 inclusive, matching what the backend returns for decent
// copy; the variant is flagged Degraded so callers can tell.
func fallbackScore() float64 {
    return float64(80 + rand.Intn(16))
}

func userMessage(err error) string {
    switch {
    case errors.Is(err, pipeline.ErrTimedOut):
        return "The request timed out. The pipeline may still be running; try again in a minute."
    case errors.Is(err, context.Canceled):
        return "The request was cancelled."
    default:
        return err.Error()
    }
}
