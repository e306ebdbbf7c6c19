package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// newListCmd prints every category and its images.
func newListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the images found for each category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, w, err := loadWardrobe(flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range w.Categories() {
				r, err := w.Rotation(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (%d):\n", name, r.Len())
				for _, item := range r.Items() {
					fmt.Fprintf(out, "  %s\n", filepath.Base(item))
				}
			}
			return nil
		},
	}
}
