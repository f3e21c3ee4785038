// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

//go:generate go run -tags=tools golang.org/x/tools/cmd/stringer -output=string.go -type=ItemNamespace -linecomment

// Package pubsub implements items published to and received from
// publish-subscribe nodes.
//
// An Item is the unit of content stored on a node.
// Items that are being published are rendered in the pubsub namespace and
// items delivered as part of an event notification are rendered in the event
// namespace:
//
//	<item xmlns="http://jabber.org/protocol/pubsub" id="item-1"></item>
//	<item xmlns="http://jabber.org/protocol/pubsub#event" id="item-1" node="node-A"></item>
//
// Items are immutable values and may be shared between goroutines.
package pubsub // import "mellium.im/pubsub"

// Various namespaces used by this package, provided as a convenience.
const (
	NS      = `http://jabber.org/protocol/pubsub`
	NSEvent = `http://jabber.org/protocol/pubsub#event`
)
