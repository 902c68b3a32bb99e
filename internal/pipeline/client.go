// internal/pipeline/client.go
package pipeline

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "log"
    "net/http"
    "strings"
    "time"

    "brandtruth/internal/models"
)

// DefaultTimeout applies to every call that does not override it. The full
// pipeline run is the one long call and gets RunTimeout.
const (
    DefaultTimeout = 30 * time.Second
    RunTimeout     = 5 * time.Minute
)

// HTTPDoer lets tests swap the transport.
type HTTPDoer interface {
    Do(req *http.Request) (*http.Response, error)
}

// Client talks to the pipeline backend. All methods go through post, which
// applies the timeout, normalizes non-2xx responses and maps context
// deadlines to ErrTimedOut. No retries: the wizard treats any failure as a
// transition back to its previous step.
type Client struct {
    baseURL    string
    httpClient HTTPDoer
    timeout    time.Duration
}

func NewClient(baseURL string, timeout time.Duration) *Client {
    if timeout <= 0 {
        timeout = DefaultTimeout
    }
    return &Client{
        baseURL:    strings.TrimRight(baseURL, "/"),
        httpClient: &http.Client{},
        timeout:    timeout,
    }
}

func (c *Client) SetHTTPClient(d HTTPDoer) {
    if d != nil {
        c.httpClient = d
    }
}

func (c *Client) BaseURL() string {
    return c.baseURL
}

// Health probes GET /health. Any transport error or non-2xx counts as down.
func (c *Client) Health(ctx context.Context) bool {
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
    if err != nil {
        return false
    }
    resp, err := c.httpClient.Do(req)
    if err != nil {
        return false
    }
    defer resp.Body.Close()
    io.Copy(io.Discard, resp.Body)
    return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (c *Client) post(ctx context.Context, path string, body any, out any, timeout time.Duration) error {
    if timeout <= 0 {
        timeout = c.timeout
    }
    ctx, cancel := context.WithTimeout(ctx, timeout)
    defer cancel()

    payload, err := json.Marshal(body)
    if err != nil {
        return fmt.Errorf("marshal request for %s: %w", path, err)
    }

    req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
    if err != nil {
        return err
    }
    req.Header.Set("Content-Type", "application/json")
    req.Header.Set("Accept", "application/json")

    resp, err := c.httpClient.Do(req)
    if err != nil {
        if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
            return ErrTimedOut
        }
        return err
    }
    defer resp.Body.Close()

    respBody, err := io.ReadAll(resp.Body)
    if err != nil {
        return fmt.Errorf("read response for %s: %w", path, err)
    }

    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        apiErr := &APIError{StatusCode: resp.StatusCode}
        var detail struct {
            Detail string `json:"detail"`
        }
        if json.Unmarshal(respBody, &detail) == nil {
            apiErr.Detail = detail.Detail
        }
        return apiErr
    }

    if out == nil {
        return nil
    }
    if err := json.Unmarshal(respBody, out); err != nil {
        return fmt.Errorf("decode response for %s: %w", path, err)
    }
    return nil
}

// RunPipeline invokes the end-to-end brand-extraction and generation run.
// This is the long call; it carries RunTimeout instead of the default.
func (c *Client) RunPipeline(ctx context.Context, req RunRequest) (*RunResponse, error) {
    if strings.TrimSpace(req.URL) == "" {
        return nil, errors.New("url is required")
    }
    if req.Industry == "" {
        req.Industry = "saas"
    }
    var out RunResponse
    if err := c.post(ctx, "/pipeline/run", req, &out, RunTimeout); err != nil {
        return nil, err
    }
    return &out, nil
}

func (c *Client) SimulateBudget(ctx context.Context, req BudgetSimulateRequest) (*models.BudgetPlan, error) {
    if req.Industry == "" {
        req.Industry = "saas"
    }
    var out models.BudgetPlan
    if err := c.post(ctx, "/budget/simulate", req, &out, 0); err != nil {
        return nil, err
    }
    return &out, nil
}

func (c *Client) SuggestAudiences(ctx context.Context, req AudienceSuggestRequest) ([]models.AudienceProfile, error) {
    if req.Industry == "" {
        req.Industry = "saas"
    }
    var out AudienceSuggestResponse
    if err := c.post(ctx, "/audience/suggest", req, &out, 0); err != nil {
        return nil, err
    }
    return out.Audiences, nil
}

func (c *Client) PredictPerformance(ctx context.Context, req PredictRequest) (float64, error) {
    if req.Industry == "" {
        req.Industry = "saas"
    }
    var out PredictResponse
    if err := c.post(ctx, "/predict", req, &out, 0); err != nil {
        return 0, err
    }
    return out.Score, nil
}

func (c *Client) PublishToMeta(ctx context.Context, req MetaPublishRequest) (*models.PublishResult, error) {
    var out models.PublishResult
    if err := c.post(ctx, "/meta/publish", req, &out, 0); err != nil {
        return nil, err
    }
    return &out, nil
}

// GenerateHooks and the other tool calls below proxy auxiliary product
// surfaces. Their payloads are owned by the backend contract, so they pass
// JSON through untyped.

func (c *Client) GenerateHooks(ctx context.Context, payload any) (json.RawMessage, error) {
    return c.postRaw(ctx, "/hooks/generate", payload)
}

func (c *Client) AnalyzeAttention(ctx context.Context, payload any) (json.RawMessage, error) {
    return c.postRaw(ctx, "/attention/analyze", payload)
}

func (c *Client) AnalyzeLanding(ctx context.Context, payload any) (json.RawMessage, error) {
    return c.postRaw(ctx, "/landing/analyze", payload)
}

func (c *Client) AnalyzeIntel(ctx context.Context, payload any) (json.RawMessage, error) {
    return c.postRaw(ctx, "/intel/analyze", payload)
}

func (c *Client) PredictFatigue(ctx context.Context, payload any) (json.RawMessage, error) {
    return c.postRaw(ctx, "/fatigue/predict", payload)
}

func (c *Client) PlanABTest(ctx context.Context, payload any) (json.RawMessage, error) {
    return c.postRaw(ctx, "/abtest/plan", payload)
}

func (c *Client) CollectSocial(ctx context.Context, payload any) (json.RawMessage, error) {
    return c.postRaw(ctx, "/social/collect", payload)
}

func (c *Client) AnalyzeIteration(ctx context.Context, payload any) (json.RawMessage, error) {
    return c.postRaw(ctx, "/iterate/analyze", payload)
}

func (c *Client) GenerateProof(ctx context.Context, payload any) (json.RawMessage, error) {
    return c.postRaw(ctx, "/proof/generate", payload)
}

func (c *Client) ExportAll(ctx context.Context, payload any) (json.RawMessage, error) {
    return c.postRaw(ctx, "/export/all", payload)
}

// GenerateVideo renders a video ad synchronously.
//
// Deprecated: synchronous video generation is being replaced by the async
// workflow service; this blocks the caller for the full render.
func (c *Client) GenerateVideo(ctx context.Context, payload any) (json.RawMessage, error) {
    log.Println("pipeline: GenerateVideo is deprecated; migrate to the async workflow service")
    return c.postRaw(ctx, "/video/generate", payload)
}

func (c *Client) postRaw(ctx context.Context, path string, payload any) (json.RawMessage, error) {
    var out json.RawMessage
    if err := c.post(ctx, path, payload, &out, 0); err != nil {
        return nil, err
    }
    return out, nil
}
