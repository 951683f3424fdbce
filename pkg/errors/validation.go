package errors

import (
	"regexp"
	"unicode"
)

// maxIdentityLength bounds actor identities so labels stay renderable.
const maxIdentityLength = 256

// ValidateIdentity validates an actor identity.
//
// The identity doubles as the actor id and as the visible lane label, so the
// rules are conservative:
//   - No empty identities
//   - No control characters (labels are single-line SVG text)
//   - Maximum length of 256 characters
func ValidateIdentity(identity string) error {
	if identity == "" {
		return New(ErrCodeInvalidInput, "actor identity cannot be empty")
	}

	if len(identity) > maxIdentityLength {
		return New(ErrCodeInvalidInput, "actor identity too long (max %d characters)", maxIdentityLength)
	}

	for _, r := range identity {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "actor identity contains invalid control characters")
		}
	}

	return nil
}

// attrNameRegex matches names that are safe to emit as SVG attribute names.
var attrNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.:-]*$`)

// ValidateFieldKey validates an event field key.
// Field keys are written verbatim as attributes on the rendered shape, so a
// key that is not a valid XML name would corrupt the artifact.
func ValidateFieldKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "field key cannot be empty")
	}

	if !attrNameRegex.MatchString(key) {
		return New(ErrCodeInvalidInput, "invalid field key: %q", key)
	}

	return nil
}
