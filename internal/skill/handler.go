package skill

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"

	"github.com/imamik/cloudlaunch/internal/lifecycle"
	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

const (
	welcomeText     = "Would you like to list instances or launch a new one?"
	checkAgainText  = "Would you like to check the status again?"
	checkStatusText = "Would you like to check its status?"
	retryText       = "There was a problem. Please retry your command."
	byeText         = "OK"

	// recentInstances is how many instances ListIntent reads out.
	recentInstances = 3
)

// Orchestrator is the lifecycle surface the handler drives.
type Orchestrator interface {
	RequestLaunch(ctx context.Context) (lifecycle.Report, lifecycle.Session, error)
	RequestStatus(ctx context.Context, s lifecycle.Session) (lifecycle.Report, lifecycle.Session, error)
}

// InstanceLister lists instances for ListIntent.
type InstanceLister interface {
	ListInstances(ctx context.Context) ([]*provider.Instance, error)
}

// Handler answers one voice turn at a time.
type Handler struct {
	orchestrator Orchestrator
	lister       InstanceLister
	cloud        string
	logger       logr.Logger
	now          func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the handler logger.
func WithLogger(logger logr.Logger) Option {
	return func(h *Handler) { h.logger = logger }
}

// WithClock overrides the clock used for instance ages.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// NewHandler creates a Handler that launches on the named cloud.
func NewHandler(o Orchestrator, lister InstanceLister, cloud string, opts ...Option) *Handler {
	h := &Handler{
		orchestrator: o,
		lister:       lister,
		cloud:        cloud,
		logger:       logr.Discard(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle routes a request to its intent handler.
func (h *Handler) Handle(ctx context.Context, req RequestEnvelope) ResponseEnvelope {
	switch req.Request.Type {
	case RequestTypeLaunch:
		intentsTotal.WithLabelValues(RequestTypeLaunch).Inc()
		return question(welcomeText, req.Session.Attributes)
	case RequestTypeSessionEnded:
		h.logger.V(1).Info("Session ended", "session", req.Session.SessionID, "reason", req.Request.Reason)
		return ResponseEnvelope{Version: "1.0", Response: Response{ShouldEndSession: true}}
	case RequestTypeIntent:
	default:
		h.logger.Info("Unsupported request type", "type", req.Request.Type)
		return statement(retryText)
	}

	name := ""
	if req.Request.Intent != nil {
		name = req.Request.Intent.Name
	}
	intentsTotal.WithLabelValues(intentLabel(name)).Inc()
	h.logger.V(1).Info("Handling intent", "intent", name, "session", req.Session.SessionID)

	switch name {
	case IntentLaunch:
		return question(fmt.Sprintf("On which cloud would you like to launch an instance? Currently, only %s is available.", h.cloud),
			req.Session.Attributes).withReprompt(h.helpText())
	case IntentCloud:
		return h.launch(ctx, req.Request.Intent.slot(SlotCloud), req.Session.Attributes)
	case IntentInstanceStatus, IntentYes:
		return h.status(ctx, req.Session.Attributes)
	case IntentList:
		return h.list(ctx)
	case IntentCancel, IntentStop, IntentNo:
		return statement(byeText)
	case IntentHelp:
		return statement(h.helpText())
	default:
		return question(h.helpText(), req.Session.Attributes)
	}
}

func (h *Handler) helpText() string {
	return fmt.Sprintf("You can say a name of the target cloud. Currently, only %s is available.", h.cloud)
}

func (h *Handler) launch(ctx context.Context, cloud string, current lifecycle.Session) ResponseEnvelope {
	if cloud != "" && !strings.EqualFold(cloud, h.cloud) {
		return question(fmt.Sprintf("I can't launch on %s. Currently, only %s is available.", cloud, h.cloud), current).
			withReprompt(h.helpText())
	}

	report, s, err := h.orchestrator.RequestLaunch(ctx)
	if err != nil {
		h.logger.Error(err, "Launch failed", "cloud", h.cloud)
		return statement("The launch was rejected. Please try again later.")
	}
	return question(report.Message+" "+checkStatusText, s).withReprompt(checkStatusText)
}

func (h *Handler) status(ctx context.Context, current lifecycle.Session) ResponseEnvelope {
	report, s, err := h.orchestrator.RequestStatus(ctx, current)
	switch {
	case err == nil:
	case errors.Is(err, lifecycle.ErrNoActiveInstance):
		return question("You have no instance starting. Would you like to launch a new one?", lifecycle.Session{})
	case lifecycle.IsTerminal(err):
		h.logger.Info("Instance vanished", "instance", current.InstanceID)
		return statement("The instance no longer exists. Please launch a new one.")
	case lifecycle.IsRetryable(err):
		h.logger.Error(err, "Status check failed", "instance", current.InstanceID)
		return question("There was a problem reaching the cloud. "+checkAgainText, current).withReprompt(checkAgainText)
	default:
		h.logger.Error(err, "Status check failed", "instance", current.InstanceID)
		return question(retryText, current)
	}

	if !report.Done() {
		return question(report.Message+" "+checkAgainText, s).withReprompt(checkAgainText)
	}
	if report.Endpoint == "" {
		return statement(report.Message)
	}
	return statement(report.Message).withCard(
		fmt.Sprintf("Instance %s was launched.", report.Name),
		fmt.Sprintf("Access your instance at %s", report.Endpoint),
	)
}

func (h *Handler) list(ctx context.Context) ResponseEnvelope {
	instances, err := h.lister.ListInstances(ctx)
	if err != nil {
		h.logger.Error(err, "Listing instances failed")
		return statement(retryText)
	}
	if len(instances) == 0 {
		return statement("You don't have any instances available.")
	}

	slices.SortStableFunc(instances, func(a, b *provider.Instance) int {
		return b.Created.Compare(a.Created)
	})

	title := fmt.Sprintf("You have %d instances available. Here are up to %d most recent:", len(instances), recentInstances)
	var names []string
	var content strings.Builder
	now := h.now()
	for _, inst := range instances[:min(len(instances), recentInstances)] {
		names = append(names, inst.Name)
		fmt.Fprintf(&content, "%s (%s)", inst.Name, orNone(inst.PrimaryAddress()))
		if !inst.Created.IsZero() {
			fmt.Fprintf(&content, " launched %s", humanize.RelTime(inst.Created, now, "ago", "from now"))
		}
		content.WriteString("\n")
	}

	return statement(title+" "+strings.Join(names, ", ")+".").withCard(title, content.String())
}

func orNone(address string) string {
	if address == "" {
		return "no address"
	}
	return address
}

// intentLabel bounds metric cardinality to known intents.
func intentLabel(name string) string {
	switch name {
	case IntentLaunch, IntentCloud, IntentInstanceStatus, IntentList,
		IntentYes, IntentNo, IntentCancel, IntentStop, IntentHelp:
		return name
	default:
		return "unknown"
	}
}
