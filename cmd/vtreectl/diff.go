package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viewtree-dev/viewtree/pkg/metrics"
	"github.com/viewtree-dev/viewtree/pkg/vtree"
	"github.com/viewtree-dev/viewtree/pkg/wire"
)

func diffCmd() *cobra.Command {
	var strictKeys bool
	var matchByID bool

	cmd := &cobra.Command{
		Use:   "diff OLD.json NEW.json",
		Short: "Compute the patch list between two tree snapshots",
		Long: `Diff loads two JSON tree snapshots, computes the minimal patch
list that transforms the first into the second, and prints one patch
per line.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prev, err := loadSnapshot(args[0])
			if err != nil {
				return err
			}
			next, err := loadSnapshot(args[1])
			if err != nil {
				return err
			}

			patches, err := vtree.DiffWithOptions(prev, next, vtree.Options{
				StrictKeys: strictKeys,
				MatchByID:  matchByID,
			})
			if err != nil {
				return err
			}
			metrics.ObserveDiff(len(patches))

			if len(patches) == 0 {
				fmt.Println("trees are identical")
				return nil
			}
			for _, p := range patches {
				fmt.Println(p.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strictKeys, "strict-keys", false, "Fail on duplicate sibling keys")
	cmd.Flags().BoolVar(&matchByID, "match-by-id", false, "Match children by node ID before key")

	return cmd
}

func loadSnapshot(path string) (*vtree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	node, err := wire.UnmarshalNode(data)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return node, nil
}
