package observability

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ncecere/judgment-tools/internal/config"
)

func TestSetupDisabledReturnsNil(t *testing.T) {
	provider, err := Setup(context.Background(), config.ObservabilityConfig{})
	require.NoError(t, err)
	require.Nil(t, provider)

	// nil providers are safe to call
	provider.RecordSubmission("constraint-tie-breaker", "A", "only_a_meets")
	provider.RecordHTTPRequest(context.Background(), "GET", "/", 200, time.Millisecond)
	provider.RecordRateLimited("/api")
	require.Nil(t, provider.PrometheusHandler())
	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestMetricsExposeSubmissions(t *testing.T) {
	provider, err := Setup(context.Background(), config.ObservabilityConfig{EnableMetrics: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	provider.RecordSubmission("constraint-validity-check", "B", "no_trigger")
	provider.RecordHTTPRequest(context.Background(), "POST", "/tools/:slug", 200, 2*time.Millisecond)

	rec := httptest.NewRecorder()
	provider.PrometheusHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)

	out := string(body)
	if !strings.Contains(out, `judgment_tools_tool_submissions_total{outcome="B",rule="no_trigger",tool="constraint-validity-check"} 1`) {
		t.Fatalf("submission counter missing from output:\n%s", out)
	}
	require.Contains(t, out, "judgment_tools_http_requests_total")
}
