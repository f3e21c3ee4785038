// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mellium.im/pubsub"
)

func newResolveCmd(logger *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve URI",
		Short: "Print the item namespace used by a namespace URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := pubsub.ItemNamespaceFromXMLNS(args[0])
			if err != nil {
				logger.Warn().Err(err).Str("xmlns", args[0]).Msg("unknown item namespace")
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ns)
			return err
		},
	}
}
