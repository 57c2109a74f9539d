package waitlist

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/imsurajj/amsoft/pkg/apperror"
)

// Client-facing validation messages.
const (
	MsgInvalidJSON  = "Invalid JSON body"
	MsgNotStrings   = "Name and email must be strings"
	MsgEmpty        = "Name and email cannot be empty"
	MsgInvalidEmail = "Invalid email format"
)

// whitespaceClass is the body of a character class matching every
// whitespace and line-terminator rune, NBSP and the byte order mark
// included. RE2's \s alone is ASCII only.
const whitespaceClass = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

// emailPattern accepts local@domain.tld where no part contains whitespace or
// another "@".
var emailPattern = regexp.MustCompile(
	`^[^` + whitespaceClass + `@]+@[^` + whitespaceClass + `@]+\.[^` + whitespaceClass + `@]+$`,
)

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// blank reports whether s is empty once surrounding whitespace is removed.
func blank(s string) bool {
	return strings.TrimFunc(s, isWhitespace) == ""
}

// ValidEmail reports whether email has the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Validate checks a decoded request in order: presence and type, emptiness,
// email shape. Errors are 400 *apperror.Error values.
func Validate(req SubmitRequest) (Signup, error) {
	if req.Name == nil || req.Email == nil {
		return Signup{}, apperror.NewBadRequest(MsgNotStrings)
	}

	name, email := *req.Name, *req.Email
	if blank(name) || blank(email) {
		return Signup{}, apperror.NewBadRequest(MsgEmpty)
	}

	if !ValidEmail(email) {
		return Signup{}, apperror.NewBadRequest(MsgInvalidEmail)
	}

	return Signup{Name: name, Email: email}, nil
}
