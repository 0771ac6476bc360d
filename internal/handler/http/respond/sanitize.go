package respond

import "regexp"

var (
	// The Anthropic pattern must run before the OpenAI one: both start
	// with "sk-" and the more specific prefix has to win.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	openaiKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// Credentials embedded in URLs (user:password@host).
	urlCredentialsPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
)

// SanitizeError returns the error message with API keys and URL-embedded
// credentials masked, so errors from the AI providers or the content
// fetcher can be logged without leaking secrets.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = urlCredentialsPattern.ReplaceAllString(msg, "://$1:****@")
	return msg
}
