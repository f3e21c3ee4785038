// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package main

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mellium.im/pubsub"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var logLevel string
	logger := zerolog.Nop()

	root := &cobra.Command{
		Use:           "pubsubitem",
		Short:         "Render publish-subscribe items",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
				Level(level).
				With().Timestamp().Logger()
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	root.AddCommand(
		newRenderCmd(&logger),
		newResolveCmd(&logger),
		newBatchCmd(&logger),
	)
	return root
}

// parseNamespace accepts either the name of an item namespace or its URI.
func parseNamespace(s string) (pubsub.ItemNamespace, error) {
	switch s {
	case "", pubsub.ItemPubSub.String():
		return pubsub.ItemPubSub, nil
	case pubsub.ItemEvent.String():
		return pubsub.ItemEvent, nil
	}
	return pubsub.ItemNamespaceFromXMLNS(s)
}

// writeLine marshals v followed by a newline.
func writeLine(w io.Writer, v interface{}) error {
	out, err := xml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}
