// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmpptest

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"strings"

	"mellium.im/xmpp"
	"mellium.im/xmpp/jid"
	"mellium.im/xmpp/stanza"
	"mellium.im/xmpp/stream"
)

// nopNegotiator marks the state as ready and pops the stream header without
// validating it or writing anything to the wire.
func nopNegotiator(state xmpp.SessionState, streamNS string) xmpp.Negotiator {
	return func(ctx context.Context, in, out *stream.Info, s *xmpp.Session, data interface{}) (xmpp.SessionState, io.ReadWriter, interface{}, error) {
		rc := s.TokenReader()
		defer rc.Close()

		tok, err := rc.Token()
		if err != nil {
			return state | xmpp.Ready, nil, nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			return state | xmpp.Ready, nil, nil, fmt.Errorf("xmpptest: expected stream header, got %T %[1]v", tok)
		}
		err = in.FromStartElement(start)
		out.XMLNS = streamNS
		return state | xmpp.Ready, nil, nil, err
	}
}

func newSession(finalState xmpp.SessionState, rw io.ReadWriter, streamNS string) *xmpp.Session {
	location := jid.MustParse("example.net")
	origin := jid.MustParse("test@example.net")

	to, from := origin, location
	if finalState&xmpp.Received == xmpp.Received {
		to, from = from, to
	}

	s, err := xmpp.NewSession(
		context.Background(), location, origin,
		struct {
			io.Reader
			io.Writer
		}{
			Reader: io.MultiReader(
				strings.NewReader(`<stream:stream from="`+from.String()+`" to="`+to.String()+`" id="123" version="1.0" xmlns="`+streamNS+`" xmlns:stream="`+stream.NS+`">`),
				rw,
				strings.NewReader(`</stream:stream>`),
			),
			Writer: rw,
		},
		0,
		nopNegotiator(finalState, streamNS),
	)
	if err != nil {
		panic(err)
	}
	return s
}

// ClientServer is a pair of connected sessions for testing requests against a
// scripted server.
type ClientServer struct {
	Client *xmpp.Session
	Server *xmpp.Session
}

// NewClientServer returns a ClientServer with both sessions serving.
// Stanzas sent by the client are passed to handler on the server side.
// Call Close to shut both sessions down.
func NewClientServer(handler xmpp.Handler) *ClientServer {
	clientConn, serverConn := net.Pipe()
	cs := &ClientServer{
		Client: newSession(0, clientConn, stanza.NSClient),
		Server: newSession(xmpp.Received, serverConn, stanza.NSServer),
	}
	/* #nosec */
	go cs.Client.Serve(nil)
	/* #nosec */
	go cs.Server.Serve(handler)
	return cs
}

// Close calls the client and server sessions' close methods.
func (cs *ClientServer) Close() error {
	err := cs.Client.Close()
	if err != nil {
		return err
	}
	return cs.Server.Close()
}
