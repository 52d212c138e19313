// Package connector implements the outbound integrations of the service:
// the Groq and OpenRouter chat-completion clients and the Google Sheets
// connector backed by service-account credentials.
package connector
