package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viewtree-dev/viewtree/pkg/render"
)

func renderCmd() *cobra.Command {
	var pretty bool
	var document bool
	var title string

	cmd := &cobra.Command{
		Use:   "render TREE.json",
		Short: "Render a tree snapshot to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := loadSnapshot(args[0])
			if err != nil {
				return err
			}

			r := render.New(render.Config{Pretty: pretty})

			if document {
				html, err := r.Document(title, node)
				if err != nil {
					return err
				}
				fmt.Print(html)
				return nil
			}

			html, err := r.RenderToString(node)
			if err != nil {
				return err
			}
			fmt.Println(html)
			if css := r.Stylesheet(); css != "" {
				fmt.Println()
				fmt.Println(css)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent nested elements")
	cmd.Flags().BoolVar(&document, "document", false, "Emit a full HTML document with inline styles")
	cmd.Flags().StringVar(&title, "title", "viewtree", "Document title (with --document)")

	return cmd
}
