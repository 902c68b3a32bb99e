package demo

import (
	"encoding/json"
	"testing"

	"brandtruth/internal/models"
)

func TestBrandForDerivesNameFromHost(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://careerfied.ai", "Careerfied"},
		{"https://www.careerfied.ai/pricing", "Careerfied"},
		{"http://stripe.com", "Stripe"},
		{"https://www.notion.so", "Notion"},
		{"", "Acme"},
	}
	for _, tt := range tests {
		brand := BrandFor(tt.url)
		if brand.BrandName != tt.want {
			t.Errorf("BrandFor(%q) = %q, want %q", tt.url, brand.BrandName, tt.want)
		}
	}
}

func TestBrandForCarriesRiskAssessedClaims(t *testing.T) {
	brand := BrandFor("https://careerfied.ai")
	if len(brand.Claims) == 0 {
		t.Fatalf("expected claims on the demo brand")
	}
	levels := map[models.RiskLevel]bool{}
	for _, c := range brand.Claims {
		if c.Text == "" || c.Source == "" {
			t.Fatalf("claim missing text or source: %+v", c)
		}
		levels[c.RiskLevel] = true
	}
	if !levels[models.RiskLevelHigh] {
		t.Fatalf("demo claims should include a high-risk example")
	}
}

func TestVariantsFixture(t *testing.T) {
	variants := Variants()
	if len(variants) != 5 {
		t.Fatalf("expected 5 variants, got %d", len(variants))
	}
	seen := map[string]bool{}
	for i, v := range variants {
		if seen[v.ID] {
			t.Fatalf("duplicate variant id %s", v.ID)
		}
		seen[v.ID] = true
		if v.Status != models.VariantStatusPending {
			t.Fatalf("variant %s should start pending, got %s", v.ID, v.Status)
		}
		if v.Score < 80 || v.Score > 95 {
			t.Fatalf("variant %s score %v outside demo range", v.ID, v.Score)
		}
		if v.Headline == "" || v.CTA == "" {
			t.Fatalf("variant %d missing copy", i)
		}
	}
	if variants[0].Score != 92 {
		t.Fatalf("expected v1 score 92, got %v", variants[0].Score)
	}
}

func TestVariantsReturnsFreshSlice(t *testing.T) {
	a := Variants()
	a[0].Status = models.VariantStatusApproved
	b := Variants()
	if b[0].Status != models.VariantStatusPending {
		t.Fatalf("fixture slice must not be shared between callers")
	}
}

func TestBudgetFixture(t *testing.T) {
	b := Budget()
	if b.DailyBudget != 30 {
		t.Fatalf("expected daily budget 30, got %v", b.DailyBudget)
	}
	if b.MonthlyBudget != 900 {
		t.Fatalf("expected monthly budget 900, got %v", b.MonthlyBudget)
	}
}

func TestPublishResultFixtureIsDemoPaused(t *testing.T) {
	r := PublishResult()
	if !r.Success || !r.Demo {
		t.Fatalf("expected a successful demo result, got %+v", r)
	}
	if r.Status != "PAUSED" {
		t.Fatalf("demo campaigns must be created paused, got %s", r.Status)
	}
}

func TestToolPayloadKnownToolsAreValidJSON(t *testing.T) {
	for _, tool := range []string{"hooks", "attention", "landing", "intel", "fatigue", "abtest", "social", "video", "iterate", "proof", "export"} {
		raw := ToolPayload(tool)
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("tool %s payload is not valid JSON: %v", tool, err)
		}
		if demoFlag, ok := body["demo"].(bool); !ok || !demoFlag {
			t.Fatalf("tool %s payload missing demo flag", tool)
		}
	}
}

func TestToolPayloadUnknownToolFallsBack(t *testing.T) {
	raw := ToolPayload("mystery")
	var body struct {
		Demo bool   `json:"demo"`
		Tool string `json:"tool"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("fallback payload invalid: %v", err)
	}
	if !body.Demo || body.Tool != "mystery" {
		t.Fatalf("unexpected fallback payload: %+v", body)
	}
}
