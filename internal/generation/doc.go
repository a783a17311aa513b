// Package generation defines the boundary between the application and an
// external text-completion provider: the Generator interface and the error
// taxonomy every provider adapter must report failures in. The Gemini
// adapter lives in internal/platform/gemini.
package generation
