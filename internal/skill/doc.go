// Package skill is the voice-skill front end. It accepts Alexa-style JSON
// requests, routes intents to the lifecycle orchestrator and returns speech,
// cards and the session attributes the voice platform hands back on the next
// turn.
package skill
