// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package pubsub_test

import (
	"encoding/xml"
	"errors"
	"strconv"
	"testing"

	"mellium.im/pubsub"
)

var fromXMLNSTestCases = []struct {
	xmlns string
	ns    pubsub.ItemNamespace
	err   error
}{
	0: {xmlns: pubsub.NS, ns: pubsub.ItemPubSub},
	1: {xmlns: pubsub.NSEvent, ns: pubsub.ItemEvent},
	2: {xmlns: "urn:unknown", err: pubsub.ErrInvalidItemNamespace},
	3: {xmlns: "", err: pubsub.ErrInvalidItemNamespace},
	4: {xmlns: "http://jabber.org/protocol/pubsub#owner", err: pubsub.ErrInvalidItemNamespace},
	5: {xmlns: "HTTP://jabber.org/protocol/pubsub", err: pubsub.ErrInvalidItemNamespace},
	6: {xmlns: pubsub.NS + " ", err: pubsub.ErrInvalidItemNamespace},
}

func TestItemNamespaceFromXMLNS(t *testing.T) {
	for i, tc := range fromXMLNSTestCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			ns, err := pubsub.ItemNamespaceFromXMLNS(tc.xmlns)
			if !errors.Is(err, tc.err) {
				t.Fatalf("unexpected error: want=%v, got=%v", tc.err, err)
			}
			if err == nil && ns != tc.ns {
				t.Errorf("wrong namespace: want=%v, got=%v", tc.ns, ns)
			}
		})
	}
}

func TestItemNamespaceName(t *testing.T) {
	for _, tc := range []struct {
		ns   pubsub.ItemNamespace
		name xml.Name
		str  string
	}{
		{ns: pubsub.ItemPubSub, name: xml.Name{Space: pubsub.NS, Local: "item"}, str: "pubsub"},
		{ns: pubsub.ItemEvent, name: xml.Name{Space: pubsub.NSEvent, Local: "item"}, str: "event"},
		{ns: pubsub.ItemNamespace(2), str: "ItemNamespace(2)"},
	} {
		t.Run(tc.str, func(t *testing.T) {
			if name := tc.ns.Name(); name != tc.name {
				t.Errorf("wrong name: want=%v, got=%v", tc.name, name)
			}
			if s := tc.ns.String(); s != tc.str {
				t.Errorf("wrong string: want=%q, got=%q", tc.str, s)
			}
			if tc.name.Space == "" {
				return
			}
			ns, err := pubsub.ItemNamespaceFromXMLNS(tc.name.Space)
			if err != nil {
				t.Fatalf("error resolving own namespace: %v", err)
			}
			if ns != tc.ns {
				t.Errorf("namespace did not round trip: want=%v, got=%v", tc.ns, ns)
			}
		})
	}
}
