package stego

import (
	"fmt"
	"strings"
)

// MinPasswordLength is the shortest password [CheckPassword] accepts.
const MinPasswordLength = 8

const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

// CheckPassword applies the advisory strength policy: at least
// [MinPasswordLength] characters with an upper-case letter, a lower-case
// letter, a digit and one of !@#$%^&*(),.?":{}|<>.
//
// The returned error wraps [ErrWeakPassword] and lists what is missing.
// Encode does not enforce the policy.
func CheckPassword(password string) error {
	var missing []string
	if len([]rune(password)) < MinPasswordLength {
		missing = append(missing, fmt.Sprintf("at least %d characters", MinPasswordLength))
	}
	if !strings.ContainsFunc(password, isASCIIUpper) {
		missing = append(missing, "an upper-case letter")
	}
	if !strings.ContainsFunc(password, isASCIILower) {
		missing = append(missing, "a lower-case letter")
	}
	if !strings.ContainsFunc(password, isASCIIDigit) {
		missing = append(missing, "a digit")
	}
	if !strings.ContainsAny(password, passwordSpecials) {
		missing = append(missing, "a special character")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: needs %s", ErrWeakPassword, strings.Join(missing, ", "))
	}
	return nil
}

// IsStrongPassword reports whether password passes [CheckPassword].
func IsStrongPassword(password string) bool {
	return CheckPassword(password) == nil
}

func isASCIIUpper(r rune) bool { return 'A' <= r && r <= 'Z' }
func isASCIILower(r rune) bool { return 'a' <= r && r <= 'z' }
func isASCIIDigit(r rune) bool { return '0' <= r && r <= '9' }
