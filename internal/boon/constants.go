package boon

// Field markers
const (
	FieldSeparator    = "|"
	GroupPrefix       = "group="
	GroupLimitPrefix  = "grouplimit="
	LimitUnlimited    = "unlimited"
	DescriptionJoiner = " | "
	DefaultLimit      = 1
)

// Rejection reasons for dropped lines
const (
	RejectMissingName  = "missing name"
	RejectMissingCost  = "missing cost"
	RejectInvalidCost  = "cost must be a non-negative integer"
	RejectTooFewFields = "expected at least name and cost"
)

// Log messages
const (
	LogMsgBoonLinesDropped = "Dropped malformed boon lines"
)
