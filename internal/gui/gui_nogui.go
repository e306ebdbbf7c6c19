//go:build nogui

package gui

import (
	"fmt"

	"wardrobe/internal/config"
	"wardrobe/internal/imageload"
	"wardrobe/internal/wardrobe"
)

var _ Interface = (*App)(nil)

// App is a stub for builds with the GUI disabled.
type App struct{}

func NewApp(cfg *config.Config, w *wardrobe.Wardrobe, loader *imageload.Loader) *App {
	return &App{}
}

func (a *App) Run() error {
	return fmt.Errorf("GUI not available in this build; use the tui, list or outfit commands")
}

func (a *App) ShowError(title string, err error) {
	fmt.Printf("[%s] %v\n", title, err)
}

func (a *App) ShowInfo(message string) {
	fmt.Println(message)
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
