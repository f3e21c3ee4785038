// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package pubsub

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrInvalidItemNamespace is returned when an item is found in a namespace that
// is not one of the known item namespaces.
var ErrInvalidItemNamespace = errors.New("pubsub: invalid item namespace")

// ItemNamespace selects the element an item is rendered as.
// The zero value is ItemPubSub.
type ItemNamespace uint8

// A list of item namespaces.
const (
	// ItemPubSub is used for items that are published to a node or returned
	// when fetching items.
	ItemPubSub ItemNamespace = iota // pubsub

	// ItemEvent is used for items delivered in event notifications.
	ItemEvent // event
)

// itemNamespaces is the declaration order used when resolving a namespace.
var itemNamespaces = [...]ItemNamespace{ItemPubSub, ItemEvent}

// Name returns the element name used for items in the namespace.
// Unknown values return the zero xml.Name.
func (n ItemNamespace) Name() xml.Name {
	switch n {
	case ItemPubSub:
		return xml.Name{Space: NS, Local: "item"}
	case ItemEvent:
		return xml.Name{Space: NSEvent, Local: "item"}
	}
	return xml.Name{}
}

// ItemNamespaceFromXMLNS returns the item namespace that uses the XML namespace
// xmlns.
// The comparison is exact and case sensitive.
// If no item namespace matches, an error wrapping ErrInvalidItemNamespace is
// returned and the result must not be used.
func ItemNamespaceFromXMLNS(xmlns string) (ItemNamespace, error) {
	for _, n := range itemNamespaces {
		if n.Name().Space == xmlns {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidItemNamespace, xmlns)
}
