package main

import (
	"fmt"

	"wardrobe/internal/wardrobe"

	"github.com/spf13/cobra"
)

// newOutfitCmd prints one random outfit.
func newOutfitCmd(flags *globalFlags) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "outfit",
		Short: "Print a random outfit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []wardrobe.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, wardrobe.WithRand(seededRand(seed)))
			}
			_, w, err := loadWardrobe(flags, opts...)
			if err != nil {
				return err
			}
			for _, piece := range w.CreateOutfit() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", piece.Category, piece.Path)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible outfit")
	return cmd
}
