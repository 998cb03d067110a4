package apifootball

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fcz-stats/internal/domain/fixture"
	"github.com/riskibarqy/fcz-stats/internal/domain/standings"
	"github.com/riskibarqy/fcz-stats/internal/platform/logging"
	"github.com/riskibarqy/fcz-stats/internal/platform/resilience"
	"github.com/riskibarqy/fcz-stats/internal/usecase"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"
	apiHostHeader  = "v3.football.api-sports.io"
)

var errAPIFootballTransient = crerr.New("api-football transient failure")

// ErrMissingKey is returned before any network call when no API key is
// configured. Callers treat it like any other fetch failure.
var ErrMissingKey = crerr.New("api-football key is not configured")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Key            string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the API-Football v3 service. Every call is a single
// best-effort attempt: failures surface as errors and the caller decides
// what to show instead.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	key            string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		key:            strings.TrimSpace(cfg.Key),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// HasKey reports whether an API key is configured at all.
func (c *Client) HasKey() bool {
	return c.key != ""
}

// Standings fetches the league table for one league and season.
func (c *Client) Standings(ctx context.Context, leagueID int64, season int) (standings.Table, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("league id must be greater than zero")
	}

	query := map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(season),
	}

	var envelope apiEnvelope
	if err := c.doJSON(ctx, "/standings", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch standings league=%d season=%d: %w", leagueID, season, err)
	}

	rows := standingsRows(envelope.Response)
	if len(rows) == 0 {
		return nil, fmt.Errorf("standings payload has no table for league=%d season=%d", leagueID, season)
	}

	return ShapeStandings(rows), nil
}

// NextFixture fetches the team's next scheduled match. The second return
// value is false when the provider reports no upcoming fixture.
func (c *Client) NextFixture(ctx context.Context, teamID int64) (fixture.Fixture, bool, error) {
	if teamID <= 0 {
		return fixture.Fixture{}, false, fmt.Errorf("team id must be greater than zero")
	}

	query := map[string]string{
		"team": strconv.FormatInt(teamID, 10),
		"next": "1",
	}

	var envelope apiEnvelope
	if err := c.doJSON(ctx, "/fixtures", query, &envelope); err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("fetch next fixture team=%d: %w", teamID, err)
	}
	if len(envelope.Response) == 0 {
		return fixture.Fixture{}, false, nil
	}

	next, ok := ShapeFixture(envelope.Response[0], teamID)
	return next, ok, nil
}

// RecentResults fetches the team's last finished matches, most recent first.
func (c *Client) RecentResults(ctx context.Context, teamID int64, last int) ([]fixture.Result, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("team id must be greater than zero")
	}
	if last <= 0 {
		last = 5
	}

	query := map[string]string{
		"team": strconv.FormatInt(teamID, 10),
		"last": strconv.Itoa(last),
	}

	var envelope apiEnvelope
	if err := c.doJSON(ctx, "/fixtures", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch recent results team=%d: %w", teamID, err)
	}

	return ShapeResults(envelope.Response, teamID), nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if !c.HasKey() {
		return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, ErrMissingKey)
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: football data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

// executeRequest performs exactly one attempt. The page-render path must
// fall back to sample data immediately rather than stack retries on top
// of a user-facing request.
func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-rapidapi-key", c.key)
	req.Header.Set("x-rapidapi-host", apiHostHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		reqErr := fmt.Errorf("%w: send request: %s", errAPIFootballTransient, sanitizeSensitiveText(err.Error(), c.key))
		c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", reqErr)
		return nil, reqErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
	if readErr != nil {
		reqErr := fmt.Errorf("%w: read response body: %v", errAPIFootballTransient, readErr)
		c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", reqErr)
		return nil, reqErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var reqErr error
		if isTransientStatus(resp.StatusCode) {
			reqErr = fmt.Errorf("%w: provider status=%d body=%s", errAPIFootballTransient, resp.StatusCode, abbreviateBody(raw))
		} else {
			reqErr = fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
		}
		c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", reqErr)
		return nil, reqErr
	}

	return raw, nil
}

type apiEnvelope struct {
	Response []map[string]any `json:"response"`
}

// standingsRows digs out the main standings group:
// response[0].league.standings[0].
func standingsRows(response []map[string]any) []map[string]any {
	if len(response) == 0 {
		return nil
	}
	league := childMap(response[0], "league")
	groups, ok := league["standings"].([]any)
	if !ok || len(groups) == 0 {
		return nil
	}
	table, ok := groups[0].([]any)
	if !ok {
		return nil
	}

	out := make([]map[string]any, 0, len(table))
	for _, item := range table {
		row, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, row)
	}
	return out
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" || key == "" {
		return value
	}
	return strings.ReplaceAll(value, key, "REDACTED")
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errAPIFootballTransient)
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
