// internal/demo/fixtures.go
//
// Single source of truth for demo-mode data. Every canned payload the
// product needs lives here, keyed by scenario, so the wizard and the tool
// proxies fall back to identical shapes instead of hand-rolled copies.
package demo

import (
    "encoding/json"
    "fmt"
    "net/url"
    "strings"

    "brandtruth/internal/models"
)

const DefaultScenario = "default"

// BrandFor builds the demo brand profile for a target URL. The brand name is
// derived from the host so the wizard shows something recognizable for any
// URL a user types ("https://careerfied.ai" -> "Careerfied").
func BrandFor(rawURL string) models.BrandProfile {
    name := brandNameFromURL(rawURL)
    return models.BrandProfile{
        BrandName: name,
        Tagline:   fmt.Sprintf("%s — land your next role faster", name),
        ValueProps: []string{
            "AI-tailored resumes in minutes",
            "Interview prep built from real job postings",
            "Track every application in one place",
        },
        Claims: []models.Claim{
            {Text: "Users get 3x more interview callbacks", Source: "homepage hero", RiskLevel: models.RiskLevelHigh},
            {Text: "Trusted by 10,000+ job seekers", Source: "social proof bar", RiskLevel: models.RiskLevelMedium},
            {Text: "Free resume review included", Source: "pricing page", RiskLevel: models.RiskLevelLow},
        },
        ConfidenceScore: 0.92,
    }
}

func brandNameFromURL(rawURL string) string {
    host := rawURL
    if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
        host = u.Host
    }
    host = strings.TrimPrefix(host, "www.")
    if i := strings.Index(host, "."); i > 0 {
        host = host[:i]
    }
    if host == "" {
        return "Acme"
    }
    return strings.ToUpper(host[:1]) + host[1:]
}

// Variants returns the five demo ad variants. Scores are fixed so tests and
// screenshots are reproducible.
func Variants() []models.AdVariant {
    return []models.AdVariant{
        {
            ID:          "v1",
            Headline:    "Stop Guessing. Start Interviewing.",
            PrimaryText: "Your resume has 6 seconds to make an impression. Ours are built to survive all 6.",
            CTA:         "Get Started",
            Angle:       "pain-point",
            Emotion:     "urgency",
            Score:       92,
            ImageURL:    "https://images.unsplash.com/photo-1586281380349-632531db7ed4",
            Status:      models.VariantStatusPending,
        },
        {
            ID:          "v2",
            Headline:    "The Resume That Recruiters Actually Read",
            PrimaryText: "AI-tailored to every posting. No more one-size-fits-none applications.",
            CTA:         "Try It Free",
            Angle:       "differentiation",
            Emotion:     "confidence",
            Score:       88,
            ImageURL:    "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d",
            Status:      models.VariantStatusPending,
        },
        {
            ID:          "v3",
            Headline:    "10,000 Job Seekers Can't Be Wrong",
            PrimaryText: "Join the community landing offers at companies you actually want to work for.",
            CTA:         "Join Now",
            Angle:       "social-proof",
            Emotion:     "belonging",
            Score:       85,
            ImageURL:    "https://images.unsplash.com/photo-1521737711867-e3b97375f902",
            Status:      models.VariantStatusPending,
        },
        {
            ID:          "v4",
            Headline:    "3x More Callbacks. Zero Extra Effort.",
            PrimaryText: "Paste the job link. We rewrite your resume to match. You book the interview.",
            CTA:         "See How",
            Angle:       "outcome",
            Emotion:     "aspiration",
            Score:       90,
            ImageURL:    "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40",
            Status:      models.VariantStatusPending,
        },
        {
            ID:          "v5",
            Headline:    "Your Next Job Is One Upload Away",
            PrimaryText: "Upload once, apply everywhere. Free resume review included.",
            CTA:         "Upload Resume",
            Angle:       "simplicity",
            Emotion:     "relief",
            Score:       87,
            ImageURL:    "https://images.unsplash.com/photo-1499750310107-5fef28a66643",
            Status:      models.VariantStatusPending,
        },
    }
}

func Budget() models.BudgetPlan {
    return models.BudgetPlan{
        DailyBudget:         30,
        MonthlyBudget:       900,
        ExpectedClicks:      620,
        ExpectedConversions: 31,
        ExpectedCPA:         29.03,
        ExpectedROAS:        3.4,
    }
}

func Audience() models.AudienceProfile {
    return models.AudienceProfile{
        Name:        "Career Switchers 25-44",
        Description: "Professionals actively browsing job boards and career content",
        AgeMin:      25,
        AgeMax:      44,
        Countries:   []string{"US", "CA", "GB"},
        Interests:   []string{"Job hunting", "Resume writing", "Career development", "LinkedIn"},
    }
}

func PublishResult() models.PublishResult {
    return models.PublishResult{
        Success:    true,
        CampaignID: "demo-campaign-001",
        AdSetID:    "demo-adset-001",
        AdID:       "demo-ad-001",
        Status:     "PAUSED",
        Demo:       true,
        Message:    "Demo campaign created. Connect a Meta account to go live.",
    }
}

// ToolPayload returns the canned response for an auxiliary tool proxy. Tools
// not listed fall back to a generic demo envelope.
func ToolPayload(tool string) json.RawMessage {
    if raw, ok := toolPayloads[tool]; ok {
        return json.RawMessage(raw)
    }
    return json.RawMessage(fmt.Sprintf(`{"demo":true,"tool":%q,"status":"ok"}`, tool))
}

var toolPayloads = map[string]string{
    "hooks": `{"demo":true,"hooks":[
        {"text":"What if your resume got read in full, every time?","framework":"curiosity","score":91},
        {"text":"Recruiters spend 6 seconds on your resume. Here's how to win them.","framework":"statistic","score":88},
        {"text":"I applied to 40 jobs before I learned this one trick.","framework":"story","score":84}
    ]}`,
    "attention": `{"demo":true,"heatmap":{"focus_regions":[{"x":0.32,"y":0.18,"weight":0.81},{"x":0.5,"y":0.62,"weight":0.64}],"clarity_score":78}}`,
    "landing":   `{"demo":true,"message_match_score":72,"issues":["Headline promise not repeated above the fold","CTA copy differs from ad CTA"]}`,
    "intel":     `{"demo":true,"competitors":[{"name":"RivalHire","active_ads":12,"top_angle":"social-proof"},{"name":"JobJet","active_ads":7,"top_angle":"urgency"}]}`,
    "fatigue":   `{"demo":true,"fatigue_risk":"medium","projected_ctr_decay_days":11}`,
    "abtest":    `{"demo":true,"plan":{"variants":2,"split":[50,50],"min_days":7,"primary_metric":"ctr"}}`,
    "social":    `{"demo":true,"mentions":18,"sentiment":0.74,"top_quote":"Careerfied rewrote my resume and I got two interviews in a week."}`,
    "video":     `{"demo":true,"video_url":"https://cdn.example.com/demo/ad-preview.mp4","duration_seconds":15}`,
    "iterate":   `{"demo":true,"recommendations":[{"change":"Shorten headline to under 40 chars","expected_lift":0.06},{"change":"Swap CTA to 'Get Started'","expected_lift":0.03}]}`,
    "proof":     `{"demo":true,"proof_pack_id":"demo-proof-001","claims_checked":3,"flagged":1}`,
    "export":    `{"demo":true,"export_id":"demo-export-001","assets":5,"format":"json"}`,
}
