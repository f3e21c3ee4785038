// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mellium.im/pubsub"
)

// batchItem is a single entry in a batch file.
type batchItem struct {
	ID        string `yaml:"id"`
	Node      string `yaml:"node"`
	Namespace string `yaml:"namespace"`
}

// loadBatch reads a YAML list of items from path.
func loadBatch(path string) ([]pubsub.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []batchItem
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	items := make([]pubsub.Item, 0, len(entries))
	for i, e := range entries {
		ns, err := parseNamespace(e.Namespace)
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i, err)
		}
		items = append(items, pubsub.NewNodeItemNS(ns, e.ID, e.Node))
	}
	return items, nil
}

func newBatchCmd(logger *zerolog.Logger) *cobra.Command {
	var eventNode string
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Print every item listed in a YAML file",
		Long: `Print every item listed in a YAML file, one per line.

Each entry may set id, node, and namespace (pubsub, event, or a namespace URI):

  - id: item-1
  - id: item-2
    node: node-A
    namespace: event

With --event the items are wrapped in an event notification for the given
node instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadBatch(args[0])
			if err != nil {
				return err
			}
			logger.Debug().Int("items", len(items)).Str("file", args[0]).Msg("loaded batch")

			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("event") {
				return writeLine(out, pubsub.Event{Node: eventNode, Items: items})
			}
			for _, item := range items {
				logger.Debug().Stringer("item", item).Msg("rendering item")
				if err := writeLine(out, item); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&eventNode, "event", "", "wrap the items in an event notification for this node")
	return cmd
}
