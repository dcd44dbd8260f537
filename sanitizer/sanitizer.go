// FILE: lixenwraith/daylog/sanitizer/sanitizer.go
// Package sanitizer provides a fluent and composable interface for sanitizing
// strings based on configurable rules using bitwise filter flags and transforms.
// The same filters back the path and file name validators.
package sanitizer

import (
	"encoding/hex"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching
const (
	FilterNonPrintable uint64 = 1 << iota // Matches runes not classified as printable by strconv.IsPrint
	FilterControl                         // Matches control characters (unicode.IsControl)
	FilterWhitespace                      // Matches whitespace characters (unicode.IsSpace)
	FilterPathInvalid                     // Matches runes no portable file system accepts in a path
	FilterNameInvalid                     // Matches runes no portable file system accepts in a file name
)

// Transform flags for character transformation
const (
	TransformStrip     uint64 = 1 << iota // Removes the character
	TransformHexEncode                    // Encodes the character's UTF-8 bytes as "<XXYY>"
	TransformEscape                       // Escapes the character with backslashes (e.g., '\n', '\u0000')
)

// PolicyPreset defines pre-configured sanitization policies
type PolicyPreset string

const (
	PolicyRaw  PolicyPreset = "raw"  // Raw is a no-op (passthrough)
	PolicyTxt  PolicyPreset = "txt"  // Policy for text written to log files, keeps one entry per line
	PolicyPath PolicyPreset = "path" // Strips characters illegal in a path
	PolicyName PolicyPreset = "name" // Strips characters illegal in a file name
)

// rule represents a single sanitization rule
type rule struct {
	filter    uint64
	transform uint64
}

// policyRules contains pre-configured rules for each policy
var policyRules = map[PolicyPreset][]rule{
	PolicyRaw:  {},
	PolicyTxt:  {{filter: FilterNonPrintable, transform: TransformHexEncode}},
	PolicyPath: {{filter: FilterPathInvalid, transform: TransformStrip}},
	PolicyName: {{filter: FilterNameInvalid, transform: TransformStrip}},
}

// filterCheckers maps individual filter flags to their check functions
var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return !strconv.IsPrint(r) },
	FilterControl:      unicode.IsControl,
	FilterWhitespace:   unicode.IsSpace,
	FilterPathInvalid:  isPathInvalid,
	FilterNameInvalid:  isNameInvalid,
}

// isPathInvalid covers the union of Windows and POSIX reserved path characters
func isPathInvalid(r rune) bool {
	if r < 0x20 {
		return true
	}
	switch r {
	case '"', '<', '>', '|', '*', '?':
		return true
	}
	return false
}

// isNameInvalid adds separators and the drive colon to the path set
func isNameInvalid(r rune) bool {
	if isPathInvalid(r) {
		return true
	}
	switch r {
	case ':', '/', '\\':
		return true
	}
	return false
}

// Sanitizer provides chainable text sanitization
// A Sanitizer reuses an internal buffer and is not safe for concurrent use
type Sanitizer struct {
	rules []rule
	buf   []byte
}

// New creates a new Sanitizer instance
func New() *Sanitizer {
	return &Sanitizer{
		rules: []rule{},
		buf:   make([]byte, 0, 256),
	}
}

// Rule adds a custom rule to the sanitizer (appended, earliest rule applies first)
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy applies a pre-configured policy to the sanitizer (appended)
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Sanitize applies all configured rules to the input string
func (s *Sanitizer) Sanitize(data string) string {
	s.buf = s.AppendSanitized(s.buf[:0], data)
	return string(s.buf)
}

// AppendSanitized appends the sanitized form of data to dst and returns the extended buffer
func (s *Sanitizer) AppendSanitized(dst []byte, data string) []byte {
	if len(s.rules) == 0 {
		return append(dst, data...)
	}

	for _, r := range data {
		matched := false
		// Check rules in order (first match wins)
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				dst = applyTransform(dst, r, rl.transform)
				matched = true
				break
			}
		}
		if !matched {
			dst = utf8.AppendRune(dst, r)
		}
	}
	return dst
}

// Matches reports whether any rune of data is caught by a configured rule
func (s *Sanitizer) Matches(data string) bool {
	for _, r := range data {
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				return true
			}
		}
	}
	return false
}

// matchesFilter checks if a rune matches any filter in the mask
func matchesFilter(r rune, filterMask uint64) bool {
	for flag, checker := range filterCheckers {
		if (filterMask&flag) != 0 && checker(r) {
			return true
		}
	}
	return false
}

// applyTransform applies the specified transform to the buffer
func applyTransform(buf []byte, r rune, transformMask uint64) []byte {
	switch {
	case (transformMask & TransformStrip) != 0:
		// Do nothing (strip)

	case (transformMask & TransformHexEncode) != 0:
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		buf = append(buf, '<')
		buf = append(buf, hex.EncodeToString(runeBytes[:n])...)
		buf = append(buf, '>')

	case (transformMask & TransformEscape) != 0:
		switch r {
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\\':
			buf = append(buf, '\\', '\\')
		default:
			if r < 0x20 || r == 0x7f {
				buf = append(buf, '\\', 'u')
				buf = append(buf, hexDigits4(r)...)
			} else {
				buf = utf8.AppendRune(buf, r)
			}
		}

	default:
		buf = utf8.AppendRune(buf, r)
	}
	return buf
}

// hexDigits4 renders r as four lowercase hex digits
func hexDigits4(r rune) string {
	s := strconv.FormatInt(int64(r), 16)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
