// FILE: lixenwraith/daylog/xmlfile/xmlfile.go
// Package xmlfile loads and saves settings objects as indented XML documents.
package xmlfile

import (
	"encoding/xml"
	"fmt"
	"os"
)

const indent = "    "

// Load decodes the XML document at path into a new T.
// A missing file or malformed document returns nil and an error.
func Load[T any](path string) (*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xmlfile: failed to open '%s': %w", path, err)
	}
	defer f.Close()

	v := new(T)
	if err := xml.NewDecoder(f).Decode(v); err != nil {
		return nil, fmt.Errorf("xmlfile: failed to decode '%s': %w", path, err)
	}
	return v, nil
}

// Save writes v to path with an XML declaration and four-space indentation,
// replacing any existing file.
func Save(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("xmlfile: failed to create '%s': %w", path, err)
	}

	if err := encode(f, v); err != nil {
		_ = f.Close()
		return fmt.Errorf("xmlfile: failed to encode '%s': %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("xmlfile: failed to close '%s': %w", path, err)
	}
	return nil
}

func encode(f *os.File, v any) error {
	if _, err := f.WriteString(xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(f)
	enc.Indent("", indent)
	if err := enc.Encode(v); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := f.WriteString("\n")
	return err
}
