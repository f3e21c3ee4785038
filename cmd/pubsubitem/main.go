// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// The pubsubitem command renders pubsub items as they would appear on the wire.
//
// It is a debugging aid for checking what an item will look like before it is
// published, or which item namespace a URI resolves to:
//
//	pubsubitem render --id item-1 --node node-A --ns event
//	pubsubitem resolve http://jabber.org/protocol/pubsub#event
//	pubsubitem batch --event princely_musings items.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pubsubitem: %v\n", err)
		os.Exit(1)
	}
}
