package utils

// ErrorExplained is an error that carries a longer explanation with
// remediation hints, printed after the error message itself.
type ErrorExplained interface {
	error
	ExplainError() string
}
