// Package xmlutils provides XML navigation helpers used by the CAMT.053
// extractors. Lookups are expressed as paths relative to a context node, with
// explicit optional vs mandatory semantics.
package xmlutils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wax13003/CAMT53-parser/internal/parsererror"

	"gopkg.in/xmlpath.v2"
)

// camt053Namespace is the schema namespace declaration stripped before
// parsing, so that qualified and unqualified documents extract identically.
var camt053Namespace = []byte(`xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02"`)

// LoadDocument parses raw XML bytes into a navigable root node.
func LoadDocument(data []byte) (*xmlpath.Node, error) {
	data = bytes.ReplaceAll(data, camt053Namespace, nil)
	root, err := xmlpath.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML document: %w", err)
	}
	return root, nil
}

// FindNode returns the first node matching expr relative to node, or false
// when node is nil or nothing matches.
func FindNode(node *xmlpath.Node, expr string) (*xmlpath.Node, bool) {
	if node == nil {
		return nil, false
	}
	iter := xmlpath.MustCompile(expr).Iter(node)
	if !iter.Next() {
		return nil, false
	}
	return iter.Node(), true
}

// FindAll returns every node matching expr relative to node, in document
// order. A nil node yields an empty slice.
func FindAll(node *xmlpath.Node, expr string) []*xmlpath.Node {
	if node == nil {
		return nil
	}
	var nodes []*xmlpath.Node
	iter := xmlpath.MustCompile(expr).Iter(node)
	for iter.Next() {
		nodes = append(nodes, iter.Node())
	}
	return nodes
}

// OptionalText returns the trimmed text at expr relative to node, or an
// empty string when the node, the path, or the text itself is absent.
// An empty expr reads the text of node itself.
func OptionalText(node *xmlpath.Node, expr string) string {
	if node == nil {
		return ""
	}
	if expr != "" {
		found, ok := FindNode(node, expr)
		if !ok {
			return ""
		}
		node = found
	}
	return strings.TrimSpace(node.String())
}

// MandatoryText is OptionalText with a MissingFieldError when the result
// would be empty.
func MandatoryText(node *xmlpath.Node, expr string) (string, error) {
	text := OptionalText(node, expr)
	if text == "" {
		return "", &parsererror.MissingFieldError{Path: expr}
	}
	return text, nil
}

// Attribute returns the value of the named attribute on node, failing with
// a MissingAttributeError when the attribute is not present.
func Attribute(node *xmlpath.Node, attr string) (string, error) {
	value, ok := FindNode(node, "@"+attr)
	if !ok {
		return "", &parsererror.MissingAttributeError{Attr: attr}
	}
	return value.String(), nil
}
