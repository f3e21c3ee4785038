// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package pubsub

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"

	"mellium.im/xmlstream"
	"mellium.im/xmpp"
	"mellium.im/xmpp/stanza"
)

type publishResponse struct {
	XMLName xml.Name `xml:"http://jabber.org/protocol/pubsub pubsub"`
	Publish struct {
		Item struct {
			ID string `xml:"id,attr"`
		} `xml:"item"`
	} `xml:"publish"`
}

// Publish copies the first element from payload into item and publishes it to
// node.
// If payload is nil an item with no payload is published.
//
// The returned item has the ID that the server assigned to it or, if the server
// did not report one, the ID of the original item.
// The item is sent as-is: a node set on the item is not removed even though
// the server may reject it.
func Publish(ctx context.Context, s *xmpp.Session, node string, item Item, payload xml.TokenReader) (Item, error) {
	return PublishIQ(ctx, s, stanza.IQ{}, node, item, payload)
}

// PublishIQ is like Publish except that it allows modifying the IQ.
// Changes to the IQ type will have no effect.
func PublishIQ(ctx context.Context, s *xmpp.Session, iq stanza.IQ, node string, item Item, payload xml.TokenReader) (Item, error) {
	iq.Type = stanza.SetIQ
	req, err := publishPayload(node, item, payload)
	if err != nil {
		return item, err
	}
	resp := publishResponse{}
	err = s.UnmarshalIQElement(ctx, req, iq, &resp)
	if err != nil || resp.Publish.Item.ID == "" {
		return item, err
	}
	return NewNodeItemNS(item.ns, resp.Publish.Item.ID, item.node), nil
}

// publishPayload builds the pubsub element of a publish request.
func publishPayload(node string, item Item, payload xml.TokenReader) (xml.TokenReader, error) {
	var inner xml.TokenReader
	if payload != nil {
		tok, err := payload.Token()
		switch {
		case err == io.EOF && tok == nil:
		case err != nil && err != io.EOF:
			return nil, err
		default:
			start, ok := tok.(xml.StartElement)
			if !ok {
				return nil, fmt.Errorf("pubsub: expected payload start element, got %T %[1]v", tok)
			}
			inner = xmlstream.MultiReader(xmlstream.Token(start), xmlstream.InnerElement(payload))
		}
	}
	return xmlstream.Wrap(
		xmlstream.Wrap(
			item.wrap(inner),
			xml.StartElement{Name: xml.Name{Local: "publish"}, Attr: []xml.Attr{{Name: xml.Name{Local: "node"}, Value: node}}},
		),
		xml.StartElement{Name: xml.Name{Space: NS, Local: "pubsub"}},
	), nil
}
