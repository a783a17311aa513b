// Package gemini implements generation.Generator on top of Google's Gemini
// API through the google.golang.org/genai client.
//
// Each Generate call issues exactly one GenerateContent request with a single
// candidate. Failures are translated into *generation.ExternalServiceError so
// callers never see provider-specific error types.
package gemini
