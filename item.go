// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package pubsub

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"mellium.im/pubsub/internal/attr"
	"mellium.im/xmlstream"
)

// nodeExtension is the part of an element that may name the node it belongs
// to.
type nodeExtension struct {
	node string
}

// Node returns the ID of the node the element belongs to, if known.
func (e nodeExtension) Node() string {
	return e.node
}

// start returns a start element with the given name and attributes followed by
// the node attribute (if any).
func (e nodeExtension) start(name xml.Name, attrs []xml.Attr) xml.StartElement {
	return xml.StartElement{
		Name: name,
		Attr: attr.Opt(attrs, "node", e.node),
	}
}

// Item is a single unit of content on a pubsub node.
//
// The zero value is an item in the pubsub namespace with no ID, the server will
// assign one when it is published.
// This is only valid for nodes that neither deliver payloads nor persist items.
// An ID should be set when it is meaningful to the node: it must be unique
// within the node and publishing a second item with the same ID overwrites the
// first if items are persisted.
//
// Items are immutable, so "updating" an item means publishing a new Item with
// the same ID.
type Item struct {
	nodeExtension

	ns ItemNamespace
	id string
}

// NewItem returns an item in the pubsub namespace with the given ID.
// An empty id is the same as using the zero value.
func NewItem(id string) Item {
	return NewNodeItemNS(ItemPubSub, id, "")
}

// NewItemNS is like NewItem except that it lets the namespace be selected.
func NewItemNS(ns ItemNamespace, id string) Item {
	return NewNodeItemNS(ns, id, "")
}

// NewNodeItem returns an item in the pubsub namespace that records the node it
// was published to.
//
// This is meant for items received from a node.
// Items with a node set are not valid when publishing and the server may reject
// them, but this is not checked.
func NewNodeItem(id, node string) Item {
	return NewNodeItemNS(ItemPubSub, id, node)
}

// NewNodeItemNS is like NewNodeItem except that it lets the namespace be
// selected.
// ns must be ItemPubSub or ItemEvent; items created with any other value fail
// to encode.
func NewNodeItemNS(ns ItemNamespace, id, node string) Item {
	return Item{
		nodeExtension: nodeExtension{node: node},
		ns:            ns,
		id:            id,
	}
}

// ID returns the item ID, or an empty string if none was set.
// IDs are only unique within the node the item belongs to.
func (i Item) ID() string {
	return i.id
}

// Namespace returns the namespace the item is rendered in.
func (i Item) Namespace() ItemNamespace {
	return i.ns
}

// wrap returns a reader over the item element with payload as its content.
// The id attribute is always written before the node attribute.
func (i Item) wrap(payload xml.TokenReader) xml.TokenReader {
	return xmlstream.Wrap(
		payload,
		i.start(i.ns.Name(), attr.Opt(nil, "id", i.id)),
	)
}

// TokenReader satisfies the xmlstream.Marshaler interface.
// The item is always encoded as an empty element.
func (i Item) TokenReader() xml.TokenReader {
	return i.wrap(nil)
}

// WriteXML satisfies the xmlstream.WriterTo interface.
// It is like MarshalXML except it writes tokens to w.
func (i Item) WriteXML(w xmlstream.TokenWriter) (n int, err error) {
	return xmlstream.Copy(w, i.TokenReader())
}

// MarshalXML implements xml.Marshaler.
func (i Item) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	_, err := i.WriteXML(e)
	return err
}

// String returns a description of the item and its encoded form for use in
// logs.
func (i Item) String() string {
	var buf bytes.Buffer
	e := xml.NewEncoder(&buf)
	_, err := i.WriteXML(e)
	if err == nil {
		err = e.Flush()
	}
	if err != nil {
		return fmt.Sprintf("%T | Error [%v]", i, err)
	}
	return fmt.Sprintf("%T | Content [%s]", i, buf.String())
}
