package domain

// Classification is the taxonomy bucket assigned to a raw failure message.
// It drives the branch resolver's continue-vs-abort decision.
type Classification string

const (
	ClassNotFound        Classification = "not_found"
	ClassForbidden       Classification = "forbidden"
	ClassRateLimited     Classification = "rate_limited"
	ClassTimeout         Classification = "timeout"
	ClassMalformedOutput Classification = "malformed_output"
	ClassUnknown         Classification = "unknown"
)

// Retryable reports whether the failure is worth presenting to the user as
// transient. Used only for user-facing hints, never for control flow.
func (c Classification) Retryable() bool {
	return c == ClassRateLimited || c == ClassTimeout
}
