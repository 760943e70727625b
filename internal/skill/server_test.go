package skill

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/cloudlaunch/internal/config"
	"github.com/imamik/cloudlaunch/internal/lifecycle"
	"github.com/imamik/cloudlaunch/internal/platform/provider"
	cltest "github.com/imamik/cloudlaunch/internal/testing"
)

const launchTurn = `{
  "version": "1.0",
  "session": {"new": false, "sessionId": "s-1", "attributes": {}},
  "request": {"type": "IntentRequest", "requestId": "r-1", "intent": {"name": "CloudIntent"}}
}`

func newTestServer(t *testing.T, fake *cltest.FakeProvider) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewMux(newTestHandler(fake), 5*time.Second))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, contentType, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, contentType, strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestMux_SkillTurnRoundTripsSession(t *testing.T) {
	fake := cltest.NewFakeProvider("203.0.113.5")
	fake.QueueIDs("i-123")
	srv := newTestServer(t, fake)

	resp := post(t, srv.URL+"/", "application/json", launchTurn)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var raw map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	attrs, ok := raw["sessionAttributes"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "i-123", attrs["instance_id"])
	assert.Equal(t, "pending", attrs["status"])

	next, err := json.Marshal(map[string]any{
		"version": "1.0",
		"session": map[string]any{"sessionId": "s-1", "attributes": attrs},
		"request": map[string]any{"type": "IntentRequest", "requestId": "r-2", "intent": map[string]any{"name": "InstanceStatusIntent"}},
	})
	require.NoError(t, err)

	resp = post(t, srv.URL+"/", "application/json", string(next))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var envelope ResponseEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NotNil(t, envelope.SessionAttributes)
	assert.Equal(t, "i-123", envelope.SessionAttributes.InstanceID)
	assert.Contains(t, envelope.Response.OutputSpeech.Text, "Instance status is pending.")
}

func TestMux_AcceptsLegacyNullAttributes(t *testing.T) {
	fake := cltest.NewFakeProvider()
	fake.AddInstance(cltestInstance("i-123"))
	srv := newTestServer(t, fake)

	body := `{"session": {"attributes": {"instance_id": "i-123", "public_ip": null, "status": null}},
	          "request": {"type": "IntentRequest", "intent": {"name": "InstanceStatusIntent"}}}`
	resp := post(t, srv.URL+"/", "application/json", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope ResponseEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Contains(t, envelope.Response.OutputSpeech.Text, "New instance status is pending.")
}

func TestMux_RejectsBadRequests(t *testing.T) {
	srv := newTestServer(t, cltest.NewFakeProvider())

	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
	}{
		{name: "wrong content type", contentType: "text/plain", body: launchTurn, status: http.StatusUnsupportedMediaType},
		{name: "invalid json", contentType: "application/json", body: "{", status: http.StatusBadRequest},
		{name: "missing type", contentType: "application/json", body: `{"request": {}}`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv.URL+"/", tt.contentType, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestMux_HealthAndMetrics(t *testing.T) {
	srv := newTestServer(t, cltest.NewFakeProvider())

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))

	post(t, srv.URL+"/", "application/json", `{"request": {"type": "LaunchRequest"}}`)

	metrics, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metrics.Body.Close()
	assert.Equal(t, http.StatusOK, metrics.StatusCode)

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(metrics.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "cloudlaunch_http_requests_total")
	assert.Contains(t, buf.String(), "cloudlaunch_skill_intents_total")
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	timeouts := &config.Timeouts{Request: time.Second, Read: time.Second, Shutdown: time.Second}

	done := make(chan error, 1)
	go func() {
		done <- ListenAndServe(ctx, "127.0.0.1:0", http.NotFoundHandler(), timeouts, testLogger(t))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

// stalledProvider never answers GetInstance before the caller gives up.
type stalledProvider struct {
	*cltest.FakeProvider
}

func (p stalledProvider) GetInstance(ctx context.Context, _ string) (*provider.Instance, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestMux_SlowTurnAnswersWithRetryPrompt(t *testing.T) {
	p := stalledProvider{FakeProvider: cltest.NewFakeProvider()}
	h := NewHandler(lifecycle.NewOrchestrator(p, testTemplate), p, "Hetzner Cloud")
	srv := httptest.NewServer(NewMux(h, 50*time.Millisecond))
	t.Cleanup(srv.Close)

	body, err := json.Marshal(intentRequest(IntentInstanceStatus, lifecycle.Session{
		InstanceID:     "i-123",
		LastKnownState: provider.StatePending,
	}))
	require.NoError(t, err)

	resp := post(t, srv.URL+"/", "application/json", string(body))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope ResponseEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Contains(t, envelope.Response.OutputSpeech.Text, "There was a problem reaching the cloud.")
	require.NotNil(t, envelope.SessionAttributes)
	assert.Equal(t, "i-123", envelope.SessionAttributes.InstanceID)
}
