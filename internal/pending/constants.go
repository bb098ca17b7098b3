package pending

// Error Messages
const (
	ErrMsgDuplicateRequest = "request id already pending"
	ErrMsgEmptyRequestID   = "request id is empty"
)
