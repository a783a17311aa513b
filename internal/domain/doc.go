// Package domain contains the core entities and validation errors of the
// application: the per-submission GenerationRequest and the errors raised
// when a submitted field set cannot be turned into one. It is independent of
// any specific infrastructure or delivery mechanism.
package domain
