package llm

// ChatMessage represents a single message in a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest represents the request payload for chat completions.
type CompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// errorEnvelope is the subset of the provider response inspected by the
// client. The full body is passed through verbatim; only the error field
// is decoded.
type errorEnvelope struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UpstreamError is returned when the provider responds at the transport
// level but reports an error inside its payload.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return "upstream provider reported an error"
	}
	return "upstream provider reported an error: " + e.Message
}
