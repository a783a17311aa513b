// Package redact scrubs credentials and other sensitive values from strings
// before they are logged or returned in error responses. Provider errors can
// echo request URLs and headers, so everything that reaches a log line from
// the generation client passes through here first.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

type rule struct {
	re   *regexp.Regexp
	repl string
}

// rules run in order; specific shapes come before the generic ones.
var rules = []rule{
	// Google API keys.
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},
	// Keys passed as query parameters.
	{regexp.MustCompile(`(?i)([?&](?:key|api_key|access_token)=)[^&\s"']+`), "${1}" + RedactedKeyPlaceholder},
	// Credential headers.
	{
		regexp.MustCompile(`(?i)(x-goog-api-key|authorization)(["']?\s*[:=]\s*["']?)(?:bearer\s+)?[^\s"',}]+`),
		"${1}${2}" + RedactedCredentialPlaceholder,
	},
	{regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9._\-~+/]+=*`), "Bearer " + RedactedCredentialPlaceholder},
	// Generic assignments such as api_key=..., token: ..., secret=...
	{
		regexp.MustCompile(`(?i)\b(api[_-]?key|token|secret|password)(\s*[=:]\s*['"]?)[A-Za-z0-9_\-.~+/]{8,}`),
		"${1}${2}" + RedactedKeyPlaceholder,
	},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	// Absolute filesystem paths outside URLs.
	{regexp.MustCompile(`(^|[\s"'(=])(/(?:[\w.-]+/)+[\w.-]+)`), "${1}" + RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.re.ReplaceAllString(result, r.repl)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
