// GridDash — Dashboard Grid Arranger
//
// A cross-platform desktop application for arranging uniform dashboard
// tiles on a balanced grid.
//
// Build:
//   go build -o griddash ./cmd/griddash
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o griddash.exe ./cmd/griddash
//   GOOS=darwin  GOARCH=amd64 go build -o griddash-darwin ./cmd/griddash
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/GridDash/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.griddash")
	window := application.NewWindow("GridDash — Dashboard Grid Arranger")

	appUI := ui.NewApp(window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1000, 700))
	window.CenterOnScreen()
	window.ShowAndRun()
}
