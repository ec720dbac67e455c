package app

import (
	"errors"
	"strings"
)

var errNoJSONObject = errors.New("no JSON object found in text")
var errUnbalancedJSON = errors.New("unbalanced JSON object (truncated reply?)")

// FirstJSONObject returns the first brace-balanced JSON object embedded
// in s. Model replies often wrap the object in prose or markdown
// fencing, so this is a character scan with an explicit
// outside-string / inside-string / escape-pending state machine: braces
// inside string literals do not affect depth, and an escaped quote does
// not terminate a string.
func FirstJSONObject(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", errNoJSONObject
	}
	depth := 0
	inStr := false
	esc := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inStr {
			switch {
			case esc:
				esc = false
			case ch == '\\':
				esc = true
			case ch == '"':
				inStr = false
			}
			continue
		}
		switch ch {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", errUnbalancedJSON
}
