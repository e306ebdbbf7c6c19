package main

import (
	"wardrobe/internal/gui"
	"wardrobe/internal/imageload"

	"github.com/spf13/cobra"
)

func runGUI(flags *globalFlags) error {
	cfg, w, err := loadWardrobe(flags)
	if err != nil {
		return err
	}
	loader := imageload.New(cfg.Image.Width, cfg.Image.Height)
	return gui.NewApp(cfg, w, loader).Run()
}

// newGUICmd creates the GUI command for the CLI
func newGUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical user interface",
		Long:  `Open the wardrobe window with Prev/Next buttons per category and a Create Outfit button.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(flags)
		},
	}
}
