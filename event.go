// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package pubsub

import (
	"encoding/xml"

	"mellium.im/xmlstream"
)

// Event is a notification that items were published to a node.
// It is normally sent as the payload of a message stanza.
type Event struct {
	Node  string
	Items []Item
}

// TokenReader satisfies the xmlstream.Marshaler interface.
// Items are always encoded in the event namespace regardless of the namespace
// they were created with.
func (e Event) TokenReader() xml.TokenReader {
	items := make([]xml.TokenReader, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, NewNodeItemNS(ItemEvent, item.id, item.node).TokenReader())
	}
	return xmlstream.Wrap(
		xmlstream.Wrap(
			xmlstream.MultiReader(items...),
			xml.StartElement{Name: xml.Name{Local: "items"}, Attr: []xml.Attr{{Name: xml.Name{Local: "node"}, Value: e.Node}}},
		),
		xml.StartElement{Name: xml.Name{Space: NSEvent, Local: "event"}},
	)
}

// WriteXML satisfies the xmlstream.WriterTo interface.
// It is like MarshalXML except it writes tokens to w.
func (e Event) WriteXML(w xmlstream.TokenWriter) (n int, err error) {
	return xmlstream.Copy(w, e.TokenReader())
}

// MarshalXML implements xml.Marshaler.
func (e Event) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	_, err := e.WriteXML(enc)
	return err
}
