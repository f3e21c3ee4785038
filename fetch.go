// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package pubsub

import (
	"context"
	"encoding/xml"
	"strconv"

	"mellium.im/pubsub/internal/attr"
	"mellium.im/xmlstream"
	"mellium.im/xmpp"
	"mellium.im/xmpp/stanza"
)

// Query represents the options for fetching and iterating over pubsub items.
type Query struct {
	// Node is the ID of a node to query.
	Node string

	// Item is a specific item to fetch by its ID.
	// Most users should use one of the methods specifically for fetching
	// individual items instead of filtering the results and using an iterator
	// over 0 or 1 items.
	Item string

	// MaxItems can be used to restrict results to the most recent items.
	MaxItems uint64
}

// Fetch requests all items in a node and returns an iterator over each item.
//
// Processing the session will become blocked until the iterator is closed.
// Any errors encountered while creating the iter are deferred until the iter is
// used.
func Fetch(ctx context.Context, s *xmpp.Session, q Query) *Iter {
	return FetchIQ(ctx, stanza.IQ{}, s, q)
}

// FetchIQ is like Fetch but it allows you to customize the IQ.
// Changing the type of the provided IQ has no effect.
func FetchIQ(ctx context.Context, iq stanza.IQ, s *xmpp.Session, q Query) *Iter {
	iq.Type = stanza.GetIQ
	iter, _, err := s.IterIQElement(ctx, fetchPayload(q), iq)
	if err != nil {
		return &Iter{err: err}
	}
	return newIter(iter)
}

func fetchPayload(q Query) xml.TokenReader {
	queryAttrs := []xml.Attr{{
		Name:  xml.Name{Local: "node"},
		Value: q.Node,
	}}
	if q.MaxItems > 0 {
		queryAttrs = append(queryAttrs, xml.Attr{
			Name:  xml.Name{Local: "max_items"},
			Value: strconv.FormatUint(q.MaxItems, 10),
		})
	}
	queryAttrs = attr.Opt(queryAttrs, "item", q.Item)
	return xmlstream.Wrap(
		xmlstream.Wrap(
			nil,
			xml.StartElement{Name: xml.Name{Local: "items"}, Attr: queryAttrs},
		),
		xml.StartElement{Name: xml.Name{Space: NS, Local: "pubsub"}},
	)
}

// Iter is an iterator over the items in a response.
// Only the item element itself is decoded, the payload is left to the caller.
type Iter struct {
	iter    *xmlstream.Iter
	items   *xmlstream.Iter
	node    string
	item    Item
	current xml.TokenReader
	err     error
}

// newIter returns an iterator over the children of the pubsub element already
// consumed from the underlying stream.
func newIter(iter *xmlstream.Iter) *Iter {
	return &Iter{iter: iter}
}

// Next returns true if there are more items to decode.
// If an item is found in an unknown namespace iteration stops and Err returns
// an error wrapping ErrInvalidItemNamespace.
func (i *Iter) Next() bool {
	if i.err != nil || i.iter == nil {
		return false
	}
	for {
		if i.items == nil {
			if !i.iter.Next() {
				return false
			}
			start, r := i.iter.Current()
			// Paging information or other unrelated children are skipped.
			if start == nil || start.Name.Local != "items" {
				continue
			}
			i.node = attr.Get(start.Attr, "node")
			i.items = xmlstream.NewIter(r)
		}

		if !i.items.Next() {
			if err := i.items.Err(); err != nil {
				i.err = err
				return false
			}
			i.items = nil
			continue
		}
		start, r := i.items.Current()
		// If we encounter a lone token that doesn't begin with a start element
		// (eg. a comment) skip it.
		if start == nil || start.Name.Local != "item" {
			continue
		}
		ns, err := ItemNamespaceFromXMLNS(start.Name.Space)
		if err != nil {
			i.err = err
			return false
		}
		node := attr.Get(start.Attr, "node")
		if node == "" {
			node = i.node
		}
		i.item = NewNodeItemNS(ns, attr.Get(start.Attr, "id"), node)
		i.current = r
		return true
	}
}

// Err returns the last error encountered by the iterator (if any).
func (i *Iter) Err() error {
	if i.err != nil {
		return i.err
	}
	if i.iter == nil {
		return nil
	}
	return i.iter.Err()
}

// Item returns the last item parsed by the iterator and a reader over its
// payload.
// If no payloads were delivered the reader will not return any tokens.
func (i *Iter) Item() (Item, xml.TokenReader) {
	return i.item, i.current
}

// Close indicates that we are finished with the given iterator and processing
// the stream may continue.
// Calling it multiple times has no effect.
func (i *Iter) Close() error {
	if i.iter == nil {
		return nil
	}
	return i.iter.Close()
}
