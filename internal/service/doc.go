// Package service contains the application's use case: turning one form
// submission into one completion. ComposeService validates the submitted
// fields, renders the prompt, derives the token budget and delegates to a
// generation.Generator. It depends on the generation port only, never on a
// specific provider.
package service
