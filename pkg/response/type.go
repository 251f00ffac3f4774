package response

// Resp is the standard JSON response body for system routes.
// The decision endpoint returns the raw Decision record instead — the
// automation platform reads action/reply_text at the top level.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	MessageSuccess          = "success"
	DefaultErrorMessage     = "internal server error"
	InternalServerErrorCode = 500
)
