package skill

import "github.com/imamik/cloudlaunch/internal/lifecycle"

// Request types.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Intent names.
const (
	IntentLaunch         = "LaunchIntent"
	IntentCloud          = "CloudIntent"
	IntentInstanceStatus = "InstanceStatusIntent"
	IntentList           = "ListIntent"
	IntentYes            = "AMAZON.YesIntent"
	IntentNo             = "AMAZON.NoIntent"
	IntentCancel         = "AMAZON.CancelIntent"
	IntentStop           = "AMAZON.StopIntent"
	IntentHelp           = "AMAZON.HelpIntent"
)

// SlotCloud is the CloudIntent slot carrying the spoken cloud name.
const SlotCloud = "cloud"

// RequestEnvelope is the body the voice platform posts for every turn.
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Request `json:"request"`
}

// Session carries the conversation identity and the attributes returned
// with the previous response.
type Session struct {
	New        bool              `json:"new"`
	SessionID  string            `json:"sessionId"`
	Attributes lifecycle.Session `json:"attributes"`
}

// Request is the turn payload.
type Request struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp,omitempty"`
	Locale    string  `json:"locale,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

// Intent is the recognized user intent.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot is one intent parameter.
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// ResponseEnvelope is returned for every turn.
type ResponseEnvelope struct {
	Version           string             `json:"version"`
	SessionAttributes *lifecycle.Session `json:"sessionAttributes,omitempty"`
	Response          Response           `json:"response"`
}

// Response is the speech, card and reprompt for one turn.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// OutputSpeech is plain text spoken to the user.
type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Card is a simple card shown in the companion app.
type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Reprompt is spoken when the user does not answer a question.
type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech"`
}

func (i *Intent) slot(name string) string {
	if i == nil {
		return ""
	}
	return i.Slots[name].Value
}

func speech(text string) *OutputSpeech {
	return &OutputSpeech{Type: "PlainText", Text: text}
}

// statement ends the session after speaking text.
func statement(text string) ResponseEnvelope {
	return ResponseEnvelope{
		Version:  "1.0",
		Response: Response{OutputSpeech: speech(text), ShouldEndSession: true},
	}
}

// question keeps the session open and carries the session attributes forward.
func question(text string, s lifecycle.Session) ResponseEnvelope {
	return ResponseEnvelope{
		Version:           "1.0",
		SessionAttributes: &s,
		Response:          Response{OutputSpeech: speech(text)},
	}
}

func (r ResponseEnvelope) withReprompt(text string) ResponseEnvelope {
	r.Response.Reprompt = &Reprompt{OutputSpeech: speech(text)}
	return r
}

func (r ResponseEnvelope) withCard(title, content string) ResponseEnvelope {
	r.Response.Card = &Card{Type: "Simple", Title: title, Content: content}
	return r
}
