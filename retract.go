// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package pubsub

import (
	"context"
	"encoding/xml"

	"mellium.im/xmlstream"
	"mellium.im/xmpp"
	"mellium.im/xmpp/stanza"
)

// Delete removes an item from the pubsub node.
// If notify is true the server is asked to send a retraction notification to
// subscribers.
func Delete(ctx context.Context, s *xmpp.Session, node string, item Item, notify bool) error {
	return DeleteIQ(ctx, s, stanza.IQ{}, node, item, notify)
}

// DeleteIQ is like Delete except that it allows modifying the IQ.
// Changes to the IQ type will have no effect.
func DeleteIQ(ctx context.Context, s *xmpp.Session, iq stanza.IQ, node string, item Item, notify bool) error {
	iq.Type = stanza.SetIQ
	return s.UnmarshalIQElement(ctx, retractPayload(node, item, notify), iq, nil)
}

func retractPayload(node string, item Item, notify bool) xml.TokenReader {
	retractAttrs := []xml.Attr{{Name: xml.Name{Local: "node"}, Value: node}}
	if notify {
		retractAttrs = append(retractAttrs, xml.Attr{
			Name:  xml.Name{Local: "notify"},
			Value: "true",
		})
	}
	return xmlstream.Wrap(
		xmlstream.Wrap(
			item.TokenReader(),
			xml.StartElement{Name: xml.Name{Local: "retract"}, Attr: retractAttrs},
		),
		xml.StartElement{Name: xml.Name{Space: NS, Local: "pubsub"}},
	)
}
