// internal/wizard/provider.go
package wizard

import (
    "context"
    "fmt"
    "time"

    "brandtruth/internal/demo"
    "brandtruth/internal/models"
    "brandtruth/internal/pipeline"
)

// Provider supplies the data the processing and publishing transitions need.
// The live implementation calls the pipeline backend; the demo one serves
// fixtures with an artificial delay. Both return identical shapes so the
// rest of the wizard is agnostic to provenance.
type Provider interface {
    Run(ctx context.Context, url, industry string) (models.BrandProfile, []models.AdVariant, error)
    SimulateBudget(ctx context.Context, industry string) (models.BudgetPlan, error)
    SuggestAudience(ctx context.Context, url, industry string) (models.AudienceProfile, error)
    Score(ctx context.Context, v models.AdVariant, industry string) (float64, error)
    Publish(ctx context.Context, v models.AdVariant, landingURL string, budget models.BudgetPlan, audience models.AudienceProfile) (models.PublishResult, error)
}

type liveProvider struct {
    client *pipeline.Client
}

func (p *liveProvider) Run(ctx context.Context, url, industry string) (models.BrandProfile, []models.AdVariant, error) {
    resp, err := p.client.RunPipeline(ctx, pipeline.RunRequest{URL: url, Industry: industry})
    if err != nil {
        return models.BrandProfile{}, nil, err
    }
    variants := make([]models.AdVariant, 0, len(resp.Variants))
    for i, rv := range resp.Variants {
        id := rv.ID
        if id == "" {
            id = fmt.Sprintf("v%d", i+1)
        }
        variants = append(variants, models.AdVariant{
            ID:          id,
            Headline:    rv.Headline,
            PrimaryText: rv.PrimaryText,
            CTA:         rv.CTA,
            Angle:       rv.Angle,
            Emotion:     rv.Emotion,
            ImageURL:    rv.ImageURL,
            Status:      models.VariantStatusPending,
        })
    }
    return resp.Brand, variants, nil
}

func (p *liveProvider) SimulateBudget(ctx context.Context, industry string) (models.BudgetPlan, error) {
    plan, err := p.client.SimulateBudget(ctx, pipeline.BudgetSimulateRequest{Industry: industry})
    if err != nil {
        return models.BudgetPlan{}, err
    }
    return *plan, nil
}

func (p *liveProvider) SuggestAudience(ctx context.Context, url, industry string) (models.AudienceProfile, error) {
    audiences, err := p.client.SuggestAudiences(ctx, pipeline.AudienceSuggestRequest{URL: url, Industry: industry})
    if err != nil {
        return models.AudienceProfile{}, err
    }
    if len(audiences) == 0 {
        return models.AudienceProfile{}, fmt.Errorf("backend returned no audience suggestions")
    }
    return audiences[0], nil
}

func (p *liveProvider) Score(ctx context.Context, v models.AdVariant, industry string) (float64, error) {
    return p.client.PredictPerformance(ctx, pipeline.PredictRequest{
        Headline:    v.Headline,
        PrimaryText: v.PrimaryText,
        CTA:         v.CTA,
        Angle:       v.Angle,
        Emotion:     v.Emotion,
        Industry:    industry,
    })
}

func (p *liveProvider) Publish(ctx context.Context, v models.AdVariant, landingURL string, budget models.BudgetPlan, audience models.AudienceProfile) (models.PublishResult, error) {
    result, err := p.client.PublishToMeta(ctx, pipeline.MetaPublishRequest{
        Headline:    v.Headline,
        PrimaryText: v.PrimaryText,
        CTA:         v.CTA,
        ImageURL:    v.ImageURL,
        LandingURL:  landingURL,
        DailyBudget: budget.DailyBudget,
        Audience:    &audience,
    })
    if err != nil {
        return models.PublishResult{}, err
    }
    return *result, nil
}

// demoProvider serves the fixture dataset. delay simulates backend latency
// per stage so the UI's progress animation stays believable; tests set 0.
type demoProvider struct {
    delay time.Duration
}

func (p *demoProvider) wait(ctx context.Context) error {
    if p.delay <= 0 {
        return ctx.Err()
    }
    select {
    case <-time.After(p.delay):
        return nil
    case <-ctx.Done():
        return ctx.Err()
    }
}

func (p *demoProvider) Run(ctx context.Context, url, industry string) (models.BrandProfile, []models.AdVariant, error) {
    if err := p.wait(ctx); err != nil {
        return models.BrandProfile{}, nil, err
    }
    return demo.BrandFor(url), demo.Variants(), nil
}

func (p *demoProvider) SimulateBudget(ctx context.Context, industry string) (models.BudgetPlan, error) {
    if err := p.wait(ctx); err != nil {
        return models.BudgetPlan{}, err
    }
    return demo.Budget(), nil
}

func (p *demoProvider) SuggestAudience(ctx context.Context, url, industry string) (models.AudienceProfile, error) {
    if err := p.wait(ctx); err != nil {
        return models.AudienceProfile{}, err
    }
    return demo.Audience(), nil
}

func (p *demoProvider) Score(ctx context.Context, v models.AdVariant, industry string) (float64, error) {
    // Fixture variants ship with their scores.
    return v.Score, nil
}

func (p *demoProvider) Publish(ctx context.Context, v models.AdVariant, landingURL string, budget models.BudgetPlan, audience models.AudienceProfile) (models.PublishResult, error) {
    if err := p.wait(ctx); err != nil {
        return models.PublishResult{}, err
    }
    return demo.PublishResult(), nil
}
