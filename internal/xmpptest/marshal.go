// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package xmpptest provides utilities for testing the wire encoding of
// protocol elements.
package xmpptest // import "mellium.im/pubsub/internal/xmpptest"

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strconv"
	"testing"

	"mellium.im/xmlstream"
)

// EncodingTestCase is a test that marshals Value and checks that the result
// matches XML.
// If Value is also an xmlstream.Marshaler the tokens from its TokenReader are
// encoded as well and must produce the same output.
type EncodingTestCase struct {
	Value interface{}
	XML   string
	Err   error
}

// RunEncodingTests iterates over the test cases and runs each one.
// Every value is marshaled twice to ensure that the output is stable.
func RunEncodingTests(t *testing.T, testCases []EncodingTestCase) {
	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				for n := 0; n < 2; n++ {
					x, err := xml.Marshal(tc.Value)
					if !errors.Is(err, tc.Err) {
						t.Fatalf("unexpected error on pass %d: want=%v, got=%v", n, tc.Err, err)
					}
					if out := string(x); out != tc.XML {
						t.Fatalf("unexpected output on pass %d:\nwant=%q,\n got=%q", n, tc.XML, out)
					}
				}
			})
			m, ok := tc.Value.(xmlstream.Marshaler)
			if !ok {
				return
			}
			t.Run("tokenreader", func(t *testing.T) {
				var buf bytes.Buffer
				e := xml.NewEncoder(&buf)
				_, err := xmlstream.Copy(e, m.TokenReader())
				if err == nil {
					err = e.Flush()
				}
				if !errors.Is(err, tc.Err) {
					t.Fatalf("unexpected error: want=%v, got=%v", tc.Err, err)
				}
				if out := buf.String(); out != tc.XML {
					t.Fatalf("unexpected output:\nwant=%q,\n got=%q", tc.XML, out)
				}
			})
		})
	}
}
