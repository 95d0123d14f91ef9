package domain

import (
	"encoding/json"
	"strings"
)

// EnumSentinel is a deliberately invalid identifier used to make the API echo
// an enumeration in its validation error.
const EnumSentinel = "DEADBEEF"

// enumDelimiter precedes the JSON array of valid values in a parameter
// error message.
const enumDelimiter = "Does not have a value in the enumeration"

// ExtractEnumeration recovers valid values from a problem body's
// "parameterErrors". Every error whose message contains the enumeration
// delimiter contributes the JSON array following it, in encounter order and
// without deduplication. It reports false when no values were found.
func ExtractEnumeration(body Object) ([]string, bool) {
	var values []string
	for _, perr := range body.Objects("parameterErrors") {
		msg := perr.String("message")
		if msg == nil {
			continue
		}
		_, rest, found := strings.Cut(*msg, enumDelimiter)
		if !found {
			continue
		}
		var list []string
		if err := json.Unmarshal([]byte(strings.TrimSpace(rest)), &list); err != nil {
			continue
		}
		values = append(values, list...)
	}
	if len(values) == 0 {
		return nil, false
	}
	return values, true
}
