package time

import (
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	ftime "github.com/viant/tagly/format/time"
)

// phpLayoutFragments maps single letter date format characters to Go time layout fragments
var phpLayoutFragments = map[rune]string{
	'd': "02",
	'D': "Mon",
	'j': "2",
	'l': "Monday",
	'm': "01",
	'n': "1",
	'M': "Jan",
	'F': "January",
	'Y': "2006",
	'y': "06",
	'a': "pm",
	'A': "PM",
	'g': "3",
	'G': "15",
	'h': "03",
	'H': "15",
	'i': "04",
	's': "05",
	'u': "000000",
	'v': "000",
	'e': "MST",
	'T': "MST",
	'P': "-07:00",
	'O': "-0700",
	'c': "2006-01-02T15:04:05-07:00",
	'r': time.RFC1123Z,
}

// relaxedFragments replaces zero padded fragments with ones accepting one or two digits when parsing
var relaxedFragments = map[rune]string{
	'd': "2",
	'm': "1",
	'h': "3",
	'i': "4",
	's': "5",
}

// isoTokens are multi letter tokens identifying ISO style date format
var isoTokens = []string{"YYYY", "MM", "DD", "HH", "hh", "mm", "ss"}

// Layout resolves date format notation into Go time layout used for formatting.
// Supported notations: Go reference layout (any format containing a digit),
// ISO style date format (any format containing YYYY, MM, DD, HH, hh, mm or ss, i.e. YYYY-MM-DD, HH:mm)
// and single letter date format (Y-m-d H:i:s) for everything else.
func Layout(format string) string {
	switch {
	case format == "":
		return time.RFC3339
	case strings.IndexFunc(format, unicode.IsDigit) != -1:
		return format
	case isISOFormat(format):
		return ftime.DateFormatToTimeLayout(strings.ReplaceAll(format, "HH", "hh"))
	}
	return LetterFormatToTimeLayout(format)
}

// ParseLayout resolves date format notation into Go time layout used for parsing,
// single letter day, month, hour, minute and second accept one or two digits.
func ParseLayout(format string) string {
	if format == "" || strings.IndexFunc(format, unicode.IsDigit) != -1 || isISOFormat(format) {
		return Layout(format)
	}
	return letterFormatToTimeLayout(format, relaxedFragments)
}

func isISOFormat(format string) bool {
	for _, token := range isoTokens {
		if strings.Contains(format, token) {
			return true
		}
	}
	return false
}

// LetterFormatToTimeLayout converts single letter date format (i.e. m/d/Y) to Go time layout,
// backslash escapes the following character
func LetterFormatToTimeLayout(format string) string {
	return letterFormatToTimeLayout(format, nil)
}

func letterFormatToTimeLayout(format string, overrides map[rune]string) string {
	var result = strings.Builder{}
	result.Grow(2 * len(format))
	escaped := false
	for _, r := range format {
		if escaped {
			result.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if fragment, ok := overrides[r]; ok {
			result.WriteString(fragment)
			continue
		}
		if fragment, ok := phpLayoutFragments[r]; ok {
			result.WriteString(fragment)
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// Parse parses value with supplied layout, the whole value has to match the layout
func Parse(layout, value string) (time.Time, error) {
	if layout == "" {
		layout = time.RFC3339
	}
	return time.ParseInLocation(layout, value, time.UTC)
}

// ParseAny parses value detecting its layout, ambiguous slash dates are read month first
func ParseAny(value string) (time.Time, error) {
	return dateparse.ParseIn(strings.TrimSpace(value), time.UTC)
}
