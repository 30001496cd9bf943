package response

// Resp is the standard JSON envelope for system and error responses.
// Catalog routes reply with their exact payloads directly and do not
// use this envelope.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
