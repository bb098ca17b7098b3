package handler

// Generic HTTP error messages for client responses. They never carry internal
// error details; handlers and tests both reference them.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgNotAResponse          = "Envelope is not a response"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError       = "Something went wrong"
	ErrMsgUnknownError             = "Unknown error"
	ErrMsgInvalidInputError        = "Invalid request. Please check your inputs."
	ErrMsgVentureNotFoundError     = "Venture not found"
	ErrMsgVentureDisabledError     = "Venture is disabled"
	ErrMsgVentureFailedError       = "Venture has failed. Reset it to start again"
	ErrMsgTurnAlreadyResolvedError = "Turn already resolved"
	ErrMsgStaleTurnError           = "That turn is over. Refresh the venture and try again"
	ErrMsgNotCoordinatorError      = "This participant does not coordinate turns"
	ErrMsgBoonNotFoundError        = "Boon not found"
	ErrMsgInsufficientTreasuryErr  = "Not enough gold in the treasury"
	ErrMsgBoonLimitReachedError    = "That boon was already bought this turn"
	ErrMsgGroupLimitReachedError   = "That boon group is exhausted this turn"
	ErrMsgWindowClosedError        = "That boon cannot be bought after this turn's result"
	ErrMsgRewardGrantError         = "The boon reward could not be granted"
	ErrMsgInsufficientFundsError   = "Not enough funds"
	ErrMsgRequestTimeoutError      = "The participant did not answer in time"
	ErrMsgQueueFullError           = "Turn queue is full. Try again shortly"
	ErrMsgQueueStoppedError        = "Turn processing is shutting down"
)

// Success messages for API responses
const (
	MsgTurnQueued       = "Turn queued"
	MsgResponseAccepted = "Response accepted"
)

// Log messages
const (
	LogMsgDecodeFailed        = "Failed to decode request"
	LogMsgRequestDecoded      = "Request decoded"
	LogMsgServiceError        = "Service call failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgTurnQueued          = "Turn trigger queued"
	LogMsgResponseDelivered   = "Session response delivered"
	LogMsgParticipantUpserted = "Participant upserted"
	LogMsgOwnersSet           = "Actor owners set"
)

// Route parameters and query keys
const (
	URLParamFacilityID    = "facilityID"
	URLParamParticipantID = "participantID"
	URLParamActorID       = "actorID"
	QueryParamLimit       = "limit"
)
