//go:build !nogui

package gui

import (
	"wardrobe/internal/config"
	"wardrobe/internal/imageload"
	"wardrobe/internal/log"
	"wardrobe/internal/wardrobe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

var _ Interface = (*App)(nil)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	wardrobe   *wardrobe.Wardrobe
	loader     *imageload.Loader

	frames       []*categoryFrame
	outfitButton *widget.Button
}

// NewApp creates a new GUI application
func NewApp(cfg *config.Config, w *wardrobe.Wardrobe, loader *imageload.Loader) *App {
	return newApp(app.NewWithID("io.github.wardrobe"), cfg, w, loader)
}

func newApp(fyneApp fyne.App, cfg *config.Config, w *wardrobe.Wardrobe, loader *imageload.Loader) *App {
	a := &App{
		fyneApp:  fyneApp,
		cfg:      cfg,
		wardrobe: w,
		loader:   loader,
	}
	a.mainWindow = a.fyneApp.NewWindow(cfg.Window.Title)
	a.setupMainWindow()
	return a
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() error {
	a.mainWindow.Show()
	a.fyneApp.Run()
	return nil
}

// setupMainWindow stacks one frame per category over the background colour.
func (a *App) setupMainWindow() {
	a.mainWindow.Resize(fyne.NewSize(a.cfg.Window.Width, a.cfg.Window.Height))

	a.outfitButton = widget.NewButton("Create Outfit", a.createOutfit)

	rows := make([]fyne.CanvasObject, 0, len(a.wardrobe.Categories()))
	for i, name := range a.wardrobe.Categories() {
		var extra *widget.Button
		// The first frame carries the outfit button, next to its Prev button.
		if i == 0 {
			extra = a.outfitButton
		}
		f := a.newCategoryFrame(name, extra)
		a.frames = append(a.frames, f)
		rows = append(rows, f.content)

		path, err := a.wardrobe.Current(name)
		if err != nil {
			log.LogError(err, "no current selection")
			continue
		}
		a.show(f, path)
	}

	background := canvas.NewRectangle(a.cfg.BackgroundColor())
	a.mainWindow.SetContent(container.NewStack(
		background,
		container.NewGridWithRows(len(rows), rows...),
	))
}

// createOutfit randomises every category and redraws all frames.
func (a *App) createOutfit() {
	outfit := a.wardrobe.CreateOutfit()
	for _, f := range a.frames {
		a.show(f, outfit.Path(f.name))
	}
}

// show loads path into the frame. The frame is blanked when loading fails.
func (a *App) show(f *categoryFrame, path string) {
	f.path = path
	img, err := a.loader.Load(path)
	if err != nil {
		log.LogError(err, "failed to load image")
		f.image.Image = nil
		f.image.Refresh()
		a.ShowError("Cannot display image", err)
		return
	}
	f.image.Image = img
	f.image.Refresh()
}

// ShowError displays an error dialog
func (a *App) ShowError(title string, err error) {
	if err == nil {
		return
	}
	log.LogWithError(err).Warn(title)
	dialog.ShowError(err, a.mainWindow)
}

// ShowInfo displays an information dialog
func (a *App) ShowInfo(message string) {
	dialog.ShowInformation("Information", message, a.mainWindow)
}
