// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package pubsub

import (
	"encoding/xml"
	"strconv"
	"strings"
	"testing"

	"mellium.im/pubsub/internal/xmpptest"
	"mellium.im/xmlstream"
)

func encode(t *testing.T, r xml.TokenReader) string {
	t.Helper()
	var buf strings.Builder
	e := xml.NewEncoder(&buf)
	if _, err := xmlstream.Copy(e, r); err != nil {
		t.Fatalf("error encoding: %v", err)
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("error flushing: %v", err)
	}
	return buf.String()
}

var publishTestCases = []struct {
	node    string
	item    Item
	payload string
	out     string
}{
	0: {
		node: "princely_musings",
		out:  `<pubsub xmlns="http://jabber.org/protocol/pubsub"><publish node="princely_musings"><item xmlns="http://jabber.org/protocol/pubsub"></item></publish></pubsub>`,
	},
	1: {
		node:    "princely_musings",
		item:    NewItem("ae890ac52d0df67ed7cfdf51b644e901"),
		payload: `<foo a="b"><bar>baz</bar></foo><ignored/>`,
		out:     `<pubsub xmlns="http://jabber.org/protocol/pubsub"><publish node="princely_musings"><item xmlns="http://jabber.org/protocol/pubsub" id="ae890ac52d0df67ed7cfdf51b644e901"><foo a="b"><bar>baz</bar></foo></item></publish></pubsub>`,
	},
	2: {
		node:    "n",
		item:    NewItem("1"),
		payload: `<foo/>`,
		out:     `<pubsub xmlns="http://jabber.org/protocol/pubsub"><publish node="n"><item xmlns="http://jabber.org/protocol/pubsub" id="1"><foo></foo></item></publish></pubsub>`,
	},
	3: {
		node:    "n",
		item:    NewNodeItem("1", "other"),
		payload: ``,
		out:     `<pubsub xmlns="http://jabber.org/protocol/pubsub"><publish node="n"><item xmlns="http://jabber.org/protocol/pubsub" id="1" node="other"></item></publish></pubsub>`,
	},
}

func TestPublishPayload(t *testing.T) {
	for i, tc := range publishTestCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			var payload xml.TokenReader
			if tc.payload != "" {
				payload = xml.NewDecoder(strings.NewReader(tc.payload))
			}
			r, err := publishPayload(tc.node, tc.item, payload)
			if err != nil {
				t.Fatalf("error building payload: %v", err)
			}
			if out := encode(t, r); out != tc.out {
				t.Errorf("wrong XML:\nwant=%s\n got=%s", tc.out, out)
			}
		})
	}
}

func TestPublishEmptyPayload(t *testing.T) {
	r, err := publishPayload("n", Item{}, xmlstream.MultiReader())
	if err != nil {
		t.Fatalf("error building payload: %v", err)
	}
	const expected = `<pubsub xmlns="http://jabber.org/protocol/pubsub"><publish node="n"><item xmlns="http://jabber.org/protocol/pubsub"></item></publish></pubsub>`
	if out := encode(t, r); out != expected {
		t.Errorf("wrong XML:\nwant=%s\n got=%s", expected, out)
	}
}

func TestPublishBadPayload(t *testing.T) {
	_, err := publishPayload("n", Item{}, &xmpptest.Tokens{xml.CharData("foo")})
	if err == nil {
		t.Errorf("expected error when payload does not start with an element")
	}
}

var retractTestCases = []struct {
	node   string
	item   Item
	notify bool
	out    string
}{
	0: {
		node: "n",
		item: NewItem("1"),
		out:  `<pubsub xmlns="http://jabber.org/protocol/pubsub"><retract node="n"><item xmlns="http://jabber.org/protocol/pubsub" id="1"></item></retract></pubsub>`,
	},
	1: {
		node:   "n",
		item:   NewItem("1"),
		notify: true,
		out:    `<pubsub xmlns="http://jabber.org/protocol/pubsub"><retract node="n" notify="true"><item xmlns="http://jabber.org/protocol/pubsub" id="1"></item></retract></pubsub>`,
	},
}

func TestRetractPayload(t *testing.T) {
	for i, tc := range retractTestCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if out := encode(t, retractPayload(tc.node, tc.item, tc.notify)); out != tc.out {
				t.Errorf("wrong XML:\nwant=%s\n got=%s", tc.out, out)
			}
		})
	}
}

var fetchTestCases = []struct {
	q   Query
	out string
}{
	0: {
		out: `<pubsub xmlns="http://jabber.org/protocol/pubsub"><items node=""></items></pubsub>`,
	},
	1: {
		q:   Query{Node: "n", MaxItems: 2},
		out: `<pubsub xmlns="http://jabber.org/protocol/pubsub"><items node="n" max_items="2"></items></pubsub>`,
	},
	2: {
		q:   Query{Node: "n", Item: "1", MaxItems: 2},
		out: `<pubsub xmlns="http://jabber.org/protocol/pubsub"><items node="n" max_items="2" item="1"></items></pubsub>`,
	},
}

func TestFetchPayload(t *testing.T) {
	for i, tc := range fetchTestCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if out := encode(t, fetchPayload(tc.q)); out != tc.out {
				t.Errorf("wrong XML:\nwant=%s\n got=%s", tc.out, out)
			}
		})
	}
}
