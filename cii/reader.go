package cii

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html/charset"
)

// ErrNotCII is returned when the input is well-formed XML but its root is not
// a Cross Industry Invoice.
var ErrNotCII = errors.New("not a Cross Industry Invoice document")

const rootElement = "CrossIndustryInvoice"

// Sniff checks that data is XML whose root element is rsm:CrossIndustryInvoice
func Sniff(data []byte) error {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing XML: %w", err)
	}

	var root *xmlquery.Node
	for child := doc.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			root = child
			break
		}
	}
	if root == nil {
		return fmt.Errorf("%w: no root element", ErrNotCII)
	}

	if root.Data != rootElement || root.NamespaceURI != NamespaceRSM {
		return fmt.Errorf("%w: root element is {%s}%s", ErrNotCII, root.NamespaceURI, root.Data)
	}
	return nil
}

// Parse binds a CII document held in memory
func Parse(data []byte) (*CrossIndustryInvoice, error) {
	if err := Sniff(data); err != nil {
		return nil, err
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel
	// No entity expansion
	decoder.Entity = map[string]string{}

	var doc CrossIndustryInvoice
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("binding CII document: %w", err)
	}
	return &doc, nil
}

// Read binds a CII document from r
func Read(r io.Reader) (*CrossIndustryInvoice, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading CII document: %w", err)
	}
	return Parse(data)
}

// ReadFile binds the CII document stored at path
func ReadFile(path string) (*CrossIndustryInvoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}
	return doc, nil
}
