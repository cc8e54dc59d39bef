package sqm

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	newlineRegex = regexp.MustCompile(`" ?\\n ?"`)
	numberRegex  = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
)

// Coerce converts a raw token (the right hand side of an assignment or an
// array element) into a [Number] or a [String].
//
// A trailing comma or semicolon is dropped, as are surrounding double quotes.
// Doubled quotes ("") become \", and the "..." \n "..." line continuation
// becomes a newline. If what remains is a decimal number it is returned as a
// Number; everything else, including the empty string, is a String.
func Coerce(token string) Value {
	s := strings.TrimSpace(token)
	if strings.HasSuffix(s, ",") || strings.HasSuffix(s, ";") {
		s = s[:len(s)-1]
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, `""`, `\"`)
	s = newlineRegex.ReplaceAllLiteralString(s, "\n")

	if n := strings.TrimSpace(s); numberRegex.MatchString(n) {
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return Number(f)
		}
	}
	return String(s)
}
