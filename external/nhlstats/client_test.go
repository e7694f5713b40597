package nhlstats

import (
	"net/http"
	"net/url"
	"testing"
	"time"
)

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{})
	if client.baseURL != DefaultBaseURL {
		t.Fatalf("unexpected base url: %s", client.baseURL)
	}
	if client.httpClient.Timeout != 0 {
		t.Fatalf("expected no client-side timeout, got %s", client.httpClient.Timeout)
	}
	if got := client.ImageURL("/headshots/current/168x168/8478402.jpg"); got != DefaultMainCDN+"headshots/current/168x168/8478402.jpg" {
		t.Fatalf("unexpected image url: %s", got)
	}
}

func TestNewClient_TraceHTTPLeavesCallerClientUntouched(t *testing.T) {
	t.Parallel()

	caller := &http.Client{Timeout: 5 * time.Second}
	client := NewClient(ClientConfig{HTTPClient: caller, TraceHTTP: true})

	if caller.Transport != nil {
		t.Fatalf("caller transport was replaced")
	}
	if client.httpClient == caller {
		t.Fatalf("expected a traced copy of the caller client")
	}
	if client.httpClient.Timeout != 5*time.Second {
		t.Fatalf("expected caller timeout to carry over, got %s", client.httpClient.Timeout)
	}
	if client.httpClient.Transport == nil {
		t.Fatalf("expected traced transport")
	}
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{BaseURL: "http://fixture.local/api/v1/"})

	if got := client.buildURL("/teams/1", nil); got != "http://fixture.local/api/v1/teams/1" {
		t.Fatalf("unexpected url without query: %s", got)
	}
	query := url.Values{}
	query.Set("startDate", "2024-04-01")
	query.Set("endDate", "2024-09-30")
	if got := client.buildURL("schedule", query); got != "http://fixture.local/api/v1/schedule?endDate=2024-09-30&startDate=2024-04-01" {
		t.Fatalf("unexpected url with query: %s", got)
	}
}

func TestAbbreviateBody(t *testing.T) {
	t.Parallel()

	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	if got := abbreviateBody(long); len(got) != 243 {
		t.Fatalf("expected truncated body, got len=%d", len(got))
	}
	if got := abbreviateBody([]byte("  short \n")); got != "short" {
		t.Fatalf("unexpected short body: %q", got)
	}
}
