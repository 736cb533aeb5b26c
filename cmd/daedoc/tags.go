package main

import (
	"fmt"

	"github.com/pablor21/daedoc/annotations"
	"github.com/spf13/cobra"
)

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the annotations understood in documentation blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, spec := range annotations.GetCoreAnnotations() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-32s %s\n", spec.Usage, spec.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
