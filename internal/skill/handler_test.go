package skill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/cloudlaunch/internal/lifecycle"
	"github.com/imamik/cloudlaunch/internal/platform/provider"
	cltest "github.com/imamik/cloudlaunch/internal/testing"
)

var testTemplate = lifecycle.LaunchTemplate{
	Image:      "img-1",
	Size:       "small",
	NamePrefix: "galaxy",
}

func intentRequest(name string, attrs lifecycle.Session) RequestEnvelope {
	return RequestEnvelope{
		Version: "1.0",
		Session: Session{SessionID: "session-1", Attributes: attrs},
		Request: Request{Type: RequestTypeIntent, RequestID: "req-1", Intent: &Intent{Name: name}},
	}
}

func newTestHandler(fake *cltest.FakeProvider) *Handler {
	return NewHandler(lifecycle.NewOrchestrator(fake, testTemplate), fake, "Hetzner Cloud")
}

func TestHandle_LaunchRequest(t *testing.T) {
	h := newTestHandler(cltest.NewFakeProvider())

	resp := h.Handle(context.Background(), RequestEnvelope{Request: Request{Type: RequestTypeLaunch}})
	assert.Equal(t, "Would you like to list instances or launch a new one?", resp.Response.OutputSpeech.Text)
	assert.False(t, resp.Response.ShouldEndSession)
}

func TestHandle_LaunchIntentAsksForCloud(t *testing.T) {
	h := newTestHandler(cltest.NewFakeProvider())

	resp := h.Handle(context.Background(), intentRequest(IntentLaunch, lifecycle.Session{}))
	assert.Contains(t, resp.Response.OutputSpeech.Text, "On which cloud")
	assert.Contains(t, resp.Response.OutputSpeech.Text, "Hetzner Cloud")
	require.NotNil(t, resp.Response.Reprompt)
	assert.False(t, resp.Response.ShouldEndSession)
}

func TestHandle_ConversationToEndpoint(t *testing.T) {
	ctx := cltest.TestContext(t)
	fake := cltest.NewFakeProvider("203.0.113.5")
	fake.QueueIDs("i-123")
	h := newTestHandler(fake)

	resp := h.Handle(ctx, intentRequest(IntentCloud, lifecycle.Session{}))
	require.NotNil(t, resp.SessionAttributes)
	assert.Equal(t, "i-123", resp.SessionAttributes.InstanceID)
	assert.Contains(t, resp.Response.OutputSpeech.Text, "instance is starting")
	assert.Contains(t, resp.Response.OutputSpeech.Text, "Would you like to check its status?")
	assert.False(t, resp.Response.ShouldEndSession)

	resp = h.Handle(ctx, intentRequest(IntentYes, *resp.SessionAttributes))
	require.NotNil(t, resp.SessionAttributes)
	assert.Contains(t, resp.Response.OutputSpeech.Text, "Instance status is pending.")
	assert.Equal(t, "Would you like to check the status again?", resp.Response.Reprompt.OutputSpeech.Text)

	fake.SetState("i-123", provider.StateRunning)
	resp = h.Handle(ctx, intentRequest(IntentInstanceStatus, *resp.SessionAttributes))
	assert.True(t, resp.Response.ShouldEndSession)
	assert.Contains(t, resp.Response.OutputSpeech.Text, "New instance status is running.")
	require.NotNil(t, resp.Response.Card)
	assert.Equal(t, "Simple", resp.Response.Card.Type)
	assert.Regexp(t, `^Instance galaxy-\d{8}-\d{6} was launched\.$`, resp.Response.Card.Title)
	assert.Equal(t, "Access your instance at http://203.0.113.5", resp.Response.Card.Content)
}

func TestHandle_CloudIntentRejectsOtherCloud(t *testing.T) {
	fake := cltest.NewFakeProvider()
	h := newTestHandler(fake)

	req := intentRequest(IntentCloud, lifecycle.Session{})
	req.Request.Intent.Slots = map[string]Slot{SlotCloud: {Name: SlotCloud, Value: "Jetstream"}}

	resp := h.Handle(context.Background(), req)
	assert.Contains(t, resp.Response.OutputSpeech.Text, "I can't launch on Jetstream")
	assert.Empty(t, fake.Creates())

	req.Request.Intent.Slots[SlotCloud] = Slot{Name: SlotCloud, Value: "hetzner cloud"}
	h.Handle(context.Background(), req)
	assert.Len(t, fake.Creates(), 1)
}

func TestHandle_LaunchRejected(t *testing.T) {
	fake := cltest.NewFakeProvider()
	fake.FailCreate(errors.New("quota"))

	resp := newTestHandler(fake).Handle(context.Background(), intentRequest(IntentCloud, lifecycle.Session{}))
	assert.True(t, resp.Response.ShouldEndSession)
	assert.Nil(t, resp.SessionAttributes)
	assert.Contains(t, resp.Response.OutputSpeech.Text, "rejected")
}

func TestHandle_StatusErrors(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*cltest.FakeProvider)
		attrs       lifecycle.Session
		wantText    string
		wantEnd     bool
		wantSession *lifecycle.Session
	}{
		{
			name:        "no active instance",
			attrs:       lifecycle.Session{},
			wantText:    "You have no instance starting.",
			wantSession: &lifecycle.Session{},
		},
		{
			name:     "instance gone",
			attrs:    lifecycle.Session{InstanceID: "i-404"},
			wantText: "no longer exists",
			wantEnd:  true,
		},
		{
			name:        "provider unavailable",
			setup:       func(f *cltest.FakeProvider) { f.FailGet(errors.New("connection reset")) },
			attrs:       lifecycle.Session{InstanceID: "i-123", LastKnownState: provider.StatePending},
			wantText:    "There was a problem reaching the cloud.",
			wantSession: &lifecycle.Session{InstanceID: "i-123", LastKnownState: provider.StatePending},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := cltest.NewFakeProvider()
			if tt.setup != nil {
				tt.setup(fake)
			}

			resp := newTestHandler(fake).Handle(context.Background(), intentRequest(IntentInstanceStatus, tt.attrs))
			assert.Contains(t, resp.Response.OutputSpeech.Text, tt.wantText)
			assert.Equal(t, tt.wantEnd, resp.Response.ShouldEndSession)
			assert.Equal(t, tt.wantSession, resp.SessionAttributes)
		})
	}
}

func TestHandle_ListIntent(t *testing.T) {
	now := time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC)
	fake := cltest.NewFakeProvider()
	fake.AddInstance(provider.Instance{ID: "1", Name: "oldest", PublicIPs: []string{"198.51.100.1"}, Created: now.Add(-72 * time.Hour)})
	fake.AddInstance(provider.Instance{ID: "2", Name: "newest", PublicIPs: []string{"198.51.100.2"}, Created: now.Add(-5 * time.Minute)})
	fake.AddInstance(provider.Instance{ID: "3", Name: "private", PrivateIPs: []string{"10.0.0.3"}, Created: now.Add(-2 * time.Hour)})
	fake.AddInstance(provider.Instance{ID: "4", Name: "middle", PublicIPs: []string{"198.51.100.4"}, Created: now.Add(-24 * time.Hour)})

	h := NewHandler(lifecycle.NewOrchestrator(fake, testTemplate), fake, "Hetzner Cloud", WithClock(func() time.Time { return now }))
	resp := h.Handle(context.Background(), intentRequest(IntentList, lifecycle.Session{}))

	assert.True(t, resp.Response.ShouldEndSession)
	assert.Equal(t, "You have 4 instances available. Here are up to 3 most recent: newest, private, middle.",
		resp.Response.OutputSpeech.Text)
	require.NotNil(t, resp.Response.Card)
	assert.Equal(t, "newest (198.51.100.2) launched 5 minutes ago\n"+
		"private (10.0.0.3) launched 2 hours ago\n"+
		"middle (198.51.100.4) launched 1 day ago\n", resp.Response.Card.Content)
}

func TestHandle_ListIntentEmptyAndFailure(t *testing.T) {
	fake := cltest.NewFakeProvider()
	h := newTestHandler(fake)

	resp := h.Handle(context.Background(), intentRequest(IntentList, lifecycle.Session{}))
	assert.Equal(t, "You don't have any instances available.", resp.Response.OutputSpeech.Text)

	fake.FailList(errors.New("unauthorized"))
	resp = h.Handle(context.Background(), intentRequest(IntentList, lifecycle.Session{}))
	assert.Equal(t, "There was a problem. Please retry your command.", resp.Response.OutputSpeech.Text)
}

func TestHandle_SimpleIntents(t *testing.T) {
	h := newTestHandler(cltest.NewFakeProvider())

	for _, name := range []string{IntentCancel, IntentStop, IntentNo} {
		resp := h.Handle(context.Background(), intentRequest(name, lifecycle.Session{}))
		assert.Equal(t, "OK", resp.Response.OutputSpeech.Text, name)
		assert.True(t, resp.Response.ShouldEndSession, name)
	}

	resp := h.Handle(context.Background(), intentRequest(IntentHelp, lifecycle.Session{}))
	assert.Equal(t, "You can say a name of the target cloud. Currently, only Hetzner Cloud is available.",
		resp.Response.OutputSpeech.Text)

	resp = h.Handle(context.Background(), intentRequest("WeatherIntent", lifecycle.Session{InstanceID: "i-1"}))
	assert.False(t, resp.Response.ShouldEndSession)
	assert.Equal(t, &lifecycle.Session{InstanceID: "i-1"}, resp.SessionAttributes, "unknown intents keep the session")
}

func TestHandle_SessionEnded(t *testing.T) {
	h := newTestHandler(cltest.NewFakeProvider())

	resp := h.Handle(context.Background(), RequestEnvelope{Request: Request{Type: RequestTypeSessionEnded, Reason: "USER_INITIATED"}})
	assert.Nil(t, resp.Response.OutputSpeech)
	assert.Nil(t, resp.SessionAttributes)
}
