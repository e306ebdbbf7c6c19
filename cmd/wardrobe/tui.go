package main

import (
	"wardrobe/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// newTUICmd represents the TUI command
func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal user interface",
		Long:  `Browse the same wardrobe in the terminal: arrows cycle items, r creates an outfit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, w, err := loadWardrobe(flags)
			if err != nil {
				return err
			}
			p := tea.NewProgram(tui.New(cfg.Window.Title, w))
			_, err = p.Run()
			return err
		},
	}
}
