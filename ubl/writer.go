package ubl

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Marshal renders doc as an indented XML document with declaration
func Marshal(doc Document) ([]byte, error) {
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling UBL %s: %w", doc.Kind(), err)
	}
	return append([]byte(xml.Header), out...), nil
}

// Write marshals doc to w
func Write(w io.Writer, doc Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
