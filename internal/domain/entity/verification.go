package entity

// VerificationOutcome is the result of evaluating a verification attempt.
type VerificationOutcome int

const (
	// VerificationOK means the token matched, was fresh, and the user is now verified.
	VerificationOK VerificationOutcome = iota
	// VerificationAlreadyVerified means the user was verified before this attempt.
	VerificationAlreadyVerified
	// VerificationInvalidToken means no pending token matched the submission.
	VerificationInvalidToken
	// VerificationExpired means the token matched but is older than the expiry window.
	VerificationExpired
)

// String returns the string representation of the VerificationOutcome.
func (o VerificationOutcome) String() string {
	switch o {
	case VerificationOK:
		return "ok"
	case VerificationAlreadyVerified:
		return "already_verified"
	case VerificationInvalidToken:
		return "invalid"
	case VerificationExpired:
		return "expired"
	default:
		return "unknown"
	}
}
