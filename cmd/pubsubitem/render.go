// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package main

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mellium.im/pubsub"
)

func newRenderCmd(logger *zerolog.Logger) *cobra.Command {
	var (
		id       string
		node     string
		ns       string
		randomID bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a single item",
		Long: `Print a single item as it would be sent on the wire.

Without an ID the server is expected to assign one when the item is published.
Setting a node is only meaningful for items received from a node.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			itemNS, err := parseNamespace(ns)
			if err != nil {
				return err
			}
			if randomID {
				id = uuid.NewString()
			}
			item := pubsub.NewNodeItemNS(itemNS, id, node)
			logger.Debug().Stringer("item", item).Msg("rendering item")
			return writeLine(cmd.OutOrStdout(), item)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "item ID (omitted when empty)")
	cmd.Flags().StringVar(&node, "node", "", "ID of the node the item belongs to (omitted when empty)")
	cmd.Flags().StringVar(&ns, "ns", pubsub.ItemPubSub.String(), "item namespace: pubsub, event, or a namespace URI")
	cmd.Flags().BoolVar(&randomID, "random-id", false, "generate a random item ID")
	cmd.MarkFlagsMutuallyExclusive("id", "random-id")
	return cmd
}
