package nhlstats

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/nhl/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "https://statsapi.web.nhl.com/api/v1"
	DefaultMainCDN = "https://nhl.bamcontent.com/images/"
	DefaultLogoCDN = "https://www-league.nhlstatic.com/nhl.com/builds/site-core/af6a3b2b107fd6b9f8dcca343d039a1e3297f5bc_1678480913/images/logos/team/current/"

	maxResponseBytes = 8 << 20
)

var (
	ErrMalformedResponse = errors.New("malformed nhl stats response")
	ErrUpstreamStatus    = errors.New("unexpected nhl stats response status")
)

type ClientConfig struct {
	// HTTPClient is used as given; the client adds no timeout or retry of its own.
	HTTPClient *http.Client
	BaseURL    string
	MainCDN    string
	LogoCDN    string
	Logger     *logging.Logger
	// TraceHTTP wraps the transport with otelhttp.
	TraceHTTP bool
}

// Client reads the public NHL stats API. It issues exactly one GET per call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	mainCDN    string
	logoCDN    string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.TraceHTTP {
		transport := httpClient.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		traced := *httpClient
		traced.Transport = otelhttp.NewTransport(transport)
		httpClient = &traced
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    withDefault(strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"), DefaultBaseURL),
		mainCDN:    withTrailingSlash(withDefault(strings.TrimSpace(cfg.MainCDN), DefaultMainCDN)),
		logoCDN:    withTrailingSlash(withDefault(strings.TrimSpace(cfg.LogoCDN), DefaultLogoCDN)),
		logger:     logger.Named("nhlstats"),
	}
}

// StatusError is returned for non-2xx responses. It matches ErrUpstreamStatus.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return "nhl stats status=" + strconv.Itoa(e.StatusCode) + " body=" + e.Body
}

func (e *StatusError) Unwrap() error {
	return ErrUpstreamStatus
}

// StatusCode extracts the upstream HTTP status from err, if any.
func StatusCode(err error) (int, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode, true
	}
	return 0, false
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) ([]byte, error) {
	fullURL := c.buildURL(path, query)

	raw, err := c.executeRequest(ctx, fullURL)
	if err != nil {
		return nil, err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return nil, fmt.Errorf("%w: decode payload body=%s: %w", ErrMalformedResponse, abbreviateBody(raw), err)
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")

	c.logger.DebugContext(ctx, "nhl stats request", "url", fullURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "nhl stats request failed", "url", fullURL, "error", err)
		return nil, errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: abbreviateBody(raw)}
		if resp.StatusCode != http.StatusNotFound {
			c.logger.WarnContext(ctx, "nhl stats request failed", "url", fullURL, "status", resp.StatusCode)
		}
		return nil, statusErr
	}

	return raw, nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	if !strings.HasPrefix(path, "/") {
		_ = buf.WriteByte('/')
	}
	_, _ = buf.WriteString(path)
	if encoded := query.Encode(); encoded != "" {
		_ = buf.WriteByte('?')
		_, _ = buf.WriteString(encoded)
	}
	return buf.String()
}

// ImageURL joins path onto the main image CDN.
func (c *Client) ImageURL(path string) string {
	return c.mainCDN + strings.TrimLeft(strings.TrimSpace(path), "/")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func withTrailingSlash(value string) string {
	if strings.HasSuffix(value, "/") {
		return value
	}
	return value + "/"
}
