package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Venture errors
	ErrMsgVentureNotFound     = "venture not found"
	ErrMsgVentureDisabled     = "venture is disabled"
	ErrMsgVentureFailed       = "venture has failed"
	ErrMsgTurnAlreadyResolved = "turn already resolved"
	ErrMsgStaleTurn           = "stale turn"
	ErrMsgNotCoordinator      = "not the turn coordinator"

	// Boon errors
	ErrMsgBoonNotFound         = "boon not found"
	ErrMsgInsufficientTreasury = "insufficient treasury"
	ErrMsgBoonLimitReached     = "boon turn limit reached"
	ErrMsgGroupLimitReached    = "boon group limit reached"
	ErrMsgPurchaseWindowClosed = "boon purchase window closed"
	ErrMsgRewardGrant          = "reward grant failed"
	ErrMsgDocumentNotFound     = "document not found"
	ErrMsgUnsupportedDocument  = "unsupported document"

	// Funds errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Session errors
	ErrMsgRequestTimeout  = "request timed out"
	ErrMsgUnknownRequest  = "unknown request"
	ErrMsgNoDecisionMaker = "no decision maker available"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Persistence errors
	ErrMsgNotFound = "not found"
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrVentureNotFound     = errors.New(ErrMsgVentureNotFound)
	ErrVentureDisabled     = errors.New(ErrMsgVentureDisabled)
	ErrVentureFailed       = errors.New(ErrMsgVentureFailed)
	ErrTurnAlreadyResolved = errors.New(ErrMsgTurnAlreadyResolved)
	ErrStaleTurn           = errors.New(ErrMsgStaleTurn)
	ErrNotCoordinator      = errors.New(ErrMsgNotCoordinator)

	ErrBoonNotFound         = errors.New(ErrMsgBoonNotFound)
	ErrInsufficientTreasury = errors.New(ErrMsgInsufficientTreasury)
	ErrBoonLimitReached     = errors.New(ErrMsgBoonLimitReached)
	ErrGroupLimitReached    = errors.New(ErrMsgGroupLimitReached)
	ErrPurchaseWindowClosed = errors.New(ErrMsgPurchaseWindowClosed)
	ErrRewardGrant          = errors.New(ErrMsgRewardGrant)
	ErrDocumentNotFound     = errors.New(ErrMsgDocumentNotFound)
	ErrUnsupportedDocument  = errors.New(ErrMsgUnsupportedDocument)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrRequestTimeout  = errors.New(ErrMsgRequestTimeout)
	ErrUnknownRequest  = errors.New(ErrMsgUnknownRequest)
	ErrNoDecisionMaker = errors.New(ErrMsgNoDecisionMaker)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
	ErrNotFound     = errors.New(ErrMsgNotFound)
	ErrTxClosed     = errors.New(ErrMsgTxClosed)
)

// BlockReasonError maps a boon block reason onto its sentinel error.
func BlockReasonError(reason BoonBlockReason) error {
	switch reason {
	case BoonBlockInsufficientTreasury:
		return ErrInsufficientTreasury
	case BoonBlockLimitReached:
		return ErrBoonLimitReached
	case BoonBlockGroupLimitReached:
		return ErrGroupLimitReached
	case BoonBlockWindowClosed:
		return ErrPurchaseWindowClosed
	case BoonBlockVentureFailed:
		return ErrVentureFailed
	default:
		return nil
	}
}
