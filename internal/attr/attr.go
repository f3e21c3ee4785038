// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package attr contains helpers for building and reading element attributes.
package attr // import "mellium.im/pubsub/internal/attr"

import (
	"encoding/xml"
)

// Get returns the value of the first attribute with the provided local name
// from a list of attributes or an empty string if no such attribute exists.
// Attributes in a namespace other than the elements default are ignored.
func Get(attr []xml.Attr, local string) string {
	for _, a := range attr {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// Opt appends an attribute with the provided local name to attrs if value is
// not empty.
// An empty value is treated as absent and the attribute is never emitted.
func Opt(attrs []xml.Attr, local, value string) []xml.Attr {
	if value == "" {
		return attrs
	}
	return append(attrs, xml.Attr{
		Name:  xml.Name{Local: local},
		Value: value,
	})
}
