package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrUnsupportedSchema   = errors.New("Unsupported schema")
	ErrInvalidJsonFormat   = errors.New("invalid JSON format")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrMissingConfig       = errors.New("missing required configuration")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrMissingFields    = errors.New("Please fill in all fields")
	ErrUnauthorized     = errors.New("Only the connected account may sign in")

	// transaction error
	ErrUserRejected           = errors.New("Transaction was rejected by user")
	ErrInsufficientFunds      = errors.New("Insufficient funds")
	ErrContractRevert         = errors.New("Contract call reverted")
	ErrConstructorRequirement = errors.New("Contract deployment failed: Constructor requirements not met")
	ErrTxFailed               = errors.New("Transaction failed")
	ErrEventNotFound          = errors.New("Transaction confirmed but expected event not found")
	ErrReadFailed             = errors.New("Failed to read contract state")

	// marketplace error
	ErrNotApproved         = errors.New("Marketplace is not approved to transfer this NFT")
	ErrListingInactive     = errors.New("Listing is not active")
	ErrUnsupportedCurrency = errors.New("Only native token (HBAR) purchases are supported")
	ErrNotListingCreator   = errors.New("Only the listing creator can cancel this listing")
	ErrContractNotFound    = errors.New("No contract found at this address")
)

// UserError carries the message shown to the user next to the sentinel it
// is classified as. errors.Is matches the sentinel.
type UserError struct {
	Kind    error
	Message string
	Cause   error
}

func NewUserError(kind error, message string, cause error) error {
	return &UserError{Kind: kind, Message: message, Cause: cause}
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Kind
}

// UserMessage renders err for display. Unclassified errors surface raw.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Message
	}
	return err.Error()
}

// IsValidationError reports whether err was caused by caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrBadParamInput) ||
		errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrInvalidAddress) ||
		errors.Is(err, ErrInvalidNumberFormat)
}

