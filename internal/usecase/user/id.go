package user

import (
	"strconv"
	"strings"
	"unicode"
)

// UserID is the result of parsing a user ID path parameter. It is either a
// valid integer or invalid; an invalid ID matches no record.
type UserID struct {
	value int64
	valid bool
}

// ValidUserID wraps an already-known integer ID.
func ValidUserID(id int64) UserID {
	return UserID{value: id, valid: true}
}

// InvalidUserID is the ID produced by unparseable input.
func InvalidUserID() UserID {
	return UserID{}
}

// Value returns the integer ID and whether it is valid.
func (id UserID) Value() (int64, bool) {
	return id.value, id.valid
}

// String implements fmt.Stringer for logging.
func (id UserID) String() string {
	if !id.valid {
		return "invalid"
	}
	return strconv.FormatInt(id.value, 10)
}

// ParseUserID reads the leading integer from s the way a JavaScript
// parseInt without a radix does. Leading whitespace (including NBSP and the
// byte order mark) and a single sign are accepted, a 0x or 0X prefix selects
// hexadecimal, and anything after the digits is ignored, so "2abc" parses as
// 2 and "0x5" as 5. Input without leading digits, or out of int64 range, is
// invalid. Parsing never fails.
func ParseUserID(s string) UserID {
	s = strings.TrimLeftFunc(s, isLeadingSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base, isDigit := 10, isDecimalDigit
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHexDigit
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return InvalidUserID()
	}

	digits := s[:end]
	if neg {
		digits = "-" + digits
	}
	n, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return InvalidUserID()
	}
	return ValidUserID(n)
}

// isLeadingSpace matches the characters JavaScript strips before a number:
// Unicode white space and line terminators plus U+FEFF, but not U+0085.
func isLeadingSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\ufeff' || unicode.IsSpace(r)
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
