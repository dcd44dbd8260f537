// FILE: encoding.go
package daylog

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// resolveEncoding maps a WHATWG label ("utf-8", "gbk", "windows-1252", ...) to an encoding.
// A nil encoding means UTF-8 and no conversion.
func resolveEncoding(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, &ConfigError{Field: "encoding", Value: label, Reason: "unknown character set"}
	}
	if name, err := htmlindex.Name(enc); err == nil && name == "utf-8" {
		return nil, nil
	}
	return enc, nil
}

// encodeLine converts a UTF-8 line into enc, substituting unsupported runes
func encodeLine(enc encoding.Encoding, line []byte) ([]byte, error) {
	if enc == nil {
		return line, nil
	}
	return encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes(line)
}
