package service

import "errors"

// BusinessRuleError reports a request that breaks a domain rule: a missing or
// malformed field, a duplicate email, an unknown owner. Callers may show the
// message to the client as is.
type BusinessRuleError struct {
	Msg string
}

func (e *BusinessRuleError) Error() string { return e.Msg }

// Is lets errors.Is match two rule errors carrying the same message.
func (e *BusinessRuleError) Is(target error) bool {
	t, ok := target.(*BusinessRuleError)
	return ok && t.Msg == e.Msg
}

// AuthenticationError reports a failed credential check.
type AuthenticationError struct {
	Msg string
}

func (e *AuthenticationError) Error() string { return e.Msg }

func (e *AuthenticationError) Is(target error) bool {
	t, ok := target.(*AuthenticationError)
	return ok && t.Msg == e.Msg
}

func ruleError(msg string) error { return &BusinessRuleError{Msg: msg} }

var (
	ErrDuplicateEmail = &BusinessRuleError{Msg: "an account with this email already exists"}
	ErrMissingID      = &BusinessRuleError{Msg: "entry has not been saved yet"}
	ErrUnknownAccount = &BusinessRuleError{Msg: "account not found for the given id"}

	ErrAccountNotFoundForEmail = &AuthenticationError{Msg: "account not found"}
	ErrInvalidPassword         = &AuthenticationError{Msg: "invalid password"}

	ErrAccountNotFound = errors.New("account not found")
	ErrEntryNotFound   = errors.New("entry not found")
)

// Validation messages, in the order Validate checks them.
const (
	MsgInvalidDescription = "invalid description"
	MsgInvalidMonth       = "invalid month"
	MsgInvalidYear        = "invalid year"
	MsgInvalidAccount     = "invalid account"
	MsgInvalidAmount      = "invalid amount"
	MsgInvalidType        = "invalid type"
	MsgInvalidStatus      = "invalid status"
	MsgInvalidName        = "invalid name"
	MsgInvalidPassword    = "invalid password"
)
