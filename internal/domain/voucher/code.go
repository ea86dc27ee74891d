package voucher

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidCode = errors.New("invalid voucher code format")

var codeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

// Code is a normalized voucher code. Codes are matched case-insensitively,
// so the canonical form is upper case with surrounding whitespace removed.
type Code string

func NewCode(raw string) (Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !codeRegex.MatchString(normalized) {
		return Code(""), ErrInvalidCode
	}
	return Code(normalized), nil
}

func (c Code) String() string {
	return string(c)
}

// Equals compares codes case-insensitively without requiring the other
// side to be normalized first.
func (c Code) Equals(other string) bool {
	return strings.EqualFold(string(c), strings.TrimSpace(other))
}
