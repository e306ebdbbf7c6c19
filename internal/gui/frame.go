//go:build !nogui

package gui

import (
	"wardrobe/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// categoryFrame is the image and Prev/Next buttons of one category.
type categoryFrame struct {
	name    string
	path    string
	image   *canvas.Image
	prev    *widget.Button
	next    *widget.Button
	content fyne.CanvasObject
}

func (a *App) newCategoryFrame(name string, extra *widget.Button) *categoryFrame {
	f := &categoryFrame{name: name}

	w, h := a.loader.Size()
	f.image = canvas.NewImageFromImage(nil)
	f.image.FillMode = canvas.ImageFillContain
	f.image.SetMinSize(fyne.NewSize(float32(w), float32(h)))

	f.prev = widget.NewButton("Prev", func() {
		a.step(f, a.wardrobe.Prev)
	})
	f.next = widget.NewButton("Next", func() {
		a.step(f, a.wardrobe.Next)
	})

	buttons := []fyne.CanvasObject{f.prev}
	if extra != nil {
		buttons = append(buttons, extra)
	}
	buttons = append(buttons, layout.NewSpacer(), f.next)

	f.content = container.NewVBox(
		container.NewCenter(f.image),
		container.NewHBox(buttons...),
	)
	return f
}

// step moves the frame's category with move and redraws it.
func (a *App) step(f *categoryFrame, move func(string) (string, error)) {
	path, err := move(f.name)
	if err != nil {
		a.ShowError("Cannot change "+f.name, err)
		return
	}
	log.LogWithFields(log.F("category", f.name), log.F("path", path)).Debug("selection changed")
	a.show(f, path)
}
