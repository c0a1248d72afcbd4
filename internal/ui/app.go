package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/GridDash/internal/engine"
	"github.com/piwi3910/GridDash/internal/export"
	tileimporter "github.com/piwi3910/GridDash/internal/importer"
	"github.com/piwi3910/GridDash/internal/model"
	"github.com/piwi3910/GridDash/internal/project"
	"github.com/piwi3910/GridDash/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window  fyne.Window
	board   model.Board
	config  model.AppConfig
	presets model.PresetStore
	tabs    *container.AppTabs

	// UI references for dynamic updates
	tilesContainer   *fyne.Container
	previewContainer *fyne.Container
	liveContainer    *fyne.Container
}

func NewApp(window fyne.Window) *App {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		config = model.DefaultAppConfig()
	}
	presets, err := project.LoadDefaultPresets()
	if err != nil {
		presets = model.NewPresetStore()
	}

	board := model.NewBoard()
	config.ApplyToBoard(&board)

	return &App{
		window:  window,
		board:   board,
		config:  config,
		presets: presets,
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Board", func() {
			a.board = model.NewBoard()
			a.config.ApplyToBoard(&a.board)
			a.refreshTilesList()
			a.refreshPreview()
			a.refreshLive()
		}),
		fyne.NewMenuItem("Open Board...", func() {
			a.loadBoard()
		}),
		fyne.NewMenuItem("Save Board...", func() {
			a.saveBoard()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Tiles from CSV...", func() {
			a.importCSV()
		}),
		fyne.NewMenuItem("Import Tiles from Excel...", func() {
			a.importExcel()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Layout PDF...", func() {
			a.exportPDF()
		}),
		fyne.NewMenuItem("Export Tile Labels...", func() {
			a.exportLabels()
		}),
		fyne.NewMenuItem("Export Workbook...", func() {
			a.exportWorkbook()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Clear All Tiles", func() {
			a.board.Tiles = nil
			a.refreshTilesList()
			a.refreshPreview()
			a.refreshLive()
		}),
		fyne.NewMenuItem("Show All Tiles", func() {
			for i := range a.board.Tiles {
				a.board.Tiles[i].Hidden = false
			}
			a.refreshTilesList()
			a.refreshPreview()
			a.refreshLive()
		}),
	)

	presetsMenu := fyne.NewMenu("Presets", a.buildPresetMenuItems()...)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Arrange", func() {
			a.refreshPreview()
			a.tabs.SelectIndex(1) // Switch to Preview tab
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	mainMenu := fyne.NewMainMenu(
		fileMenu,
		editMenu,
		presetsMenu,
		toolsMenu,
		helpMenu,
	)
	a.window.SetMainMenu(mainMenu)
}

func (a *App) buildPresetMenuItems() []*fyne.MenuItem {
	items := []*fyne.MenuItem{
		fyne.NewMenuItem("Save Board as Preset...", func() {
			a.showSavePresetDialog()
		}),
	}
	if len(a.presets.Presets) > 0 {
		items = append(items, fyne.NewMenuItemSeparator())
	}
	for _, p := range a.presets.Presets {
		preset := p // capture
		items = append(items, fyne.NewMenuItem(preset.Name, func() {
			a.board = preset.ToBoard(preset.Name)
			a.refreshTilesList()
			a.refreshPreview()
			a.refreshLive()
		}))
	}
	return items
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About GridDash",
		"GridDash — Dashboard Grid Arranger\n\n"+
			"A cross-platform desktop application for arranging\n"+
			"uniform tiles on a balanced dashboard grid.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	tilesTab := container.NewTabItem("Tiles", a.buildTilesPanel())
	previewTab := container.NewTabItem("Preview", a.buildPreviewPanel())
	liveTab := container.NewTabItem("Live", a.buildLivePanel())
	settingsTab := container.NewTabItem("Settings", a.buildSettingsPanel())

	a.tabs = container.NewAppTabs(tilesTab, previewTab, liveTab, settingsTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return a.tabs
}

// ─── Tiles Panel ───────────────────────────────────────────

func (a *App) buildTilesPanel() fyne.CanvasObject {
	a.tilesContainer = container.NewVBox()
	a.refreshTilesList()

	addBtn := widget.NewButtonWithIcon("Add Tile", theme.ContentAddIcon(), func() {
		a.showAddTileDialog()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Dashboard Tiles", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			addBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.tilesContainer),
	)
}

func (a *App) refreshTilesList() {
	a.tilesContainer.RemoveAll()

	if len(a.board.Tiles) == 0 {
		a.tilesContainer.Add(widget.NewLabel("No tiles added yet. Click 'Add Tile' to begin."))
		return
	}

	// Header
	header := container.NewGridWithColumns(7,
		widget.NewLabelWithStyle("Label", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Width (px)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Height (px)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Link", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Visible", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.tilesContainer.Add(header)
	a.tilesContainer.Add(widget.NewSeparator())

	for i := range a.board.Tiles {
		idx := i // capture
		t := a.board.Tiles[idx]

		visibleCheck := widget.NewCheck("", func(checked bool) {
			a.board.Tiles[idx].Hidden = !checked
			a.refreshPreview()
			a.refreshLive()
		})
		visibleCheck.Checked = !t.Hidden

		row := container.NewGridWithColumns(7,
			widget.NewLabel(t.Label),
			widget.NewLabel(fmt.Sprintf("%d", t.Width)),
			widget.NewLabel(fmt.Sprintf("%d", t.Height)),
			widget.NewLabel(t.Link),
			visibleCheck,
			widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				a.showEditTileDialog(idx)
			}),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.board.Tiles = append(a.board.Tiles[:idx], a.board.Tiles[idx+1:]...)
				a.refreshTilesList()
				a.refreshPreview()
				a.refreshLive()
			}),
		)
		a.tilesContainer.Add(row)
	}
}

func (a *App) showAddTileDialog() {
	labelEntry := widget.NewEntry()
	labelEntry.SetPlaceHolder("Tile name")
	labelEntry.SetText(fmt.Sprintf("Tile %d", len(a.board.Tiles)+1))

	linkEntry := widget.NewEntry()
	linkEntry.SetPlaceHolder("Optional link or app URI")

	widthEntry := widget.NewEntry()
	widthEntry.SetText(fmt.Sprintf("%d", a.config.DefaultTileWidth))

	heightEntry := widget.NewEntry()
	heightEntry.SetText(fmt.Sprintf("%d", a.config.DefaultTileHeight))

	form := dialog.NewForm("Add Tile", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Label", labelEntry),
			widget.NewFormItem("Link", linkEntry),
			widget.NewFormItem("Width (px)", widthEntry),
			widget.NewFormItem("Height (px)", heightEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.Atoi(widthEntry.Text)
			h, _ := strconv.Atoi(heightEntry.Text)
			if w <= 0 || h <= 0 {
				dialog.ShowError(fmt.Errorf("width and height must be > 0"), a.window)
				return
			}

			a.board.Tiles = append(a.board.Tiles, model.NewTile(labelEntry.Text, linkEntry.Text, w, h))
			a.refreshTilesList()
			a.refreshPreview()
			a.refreshLive()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 300))
	form.Show()
}

func (a *App) showEditTileDialog(idx int) {
	t := a.board.Tiles[idx]

	labelEntry := widget.NewEntry()
	labelEntry.SetText(t.Label)

	linkEntry := widget.NewEntry()
	linkEntry.SetText(t.Link)

	widthEntry := widget.NewEntry()
	widthEntry.SetText(fmt.Sprintf("%d", t.Width))

	heightEntry := widget.NewEntry()
	heightEntry.SetText(fmt.Sprintf("%d", t.Height))

	form := dialog.NewForm("Edit Tile", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Label", labelEntry),
			widget.NewFormItem("Link", linkEntry),
			widget.NewFormItem("Width (px)", widthEntry),
			widget.NewFormItem("Height (px)", heightEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.Atoi(widthEntry.Text)
			h, _ := strconv.Atoi(heightEntry.Text)
			if w <= 0 || h <= 0 {
				dialog.ShowError(fmt.Errorf("width and height must be > 0"), a.window)
				return
			}
			a.board.Tiles[idx].Label = labelEntry.Text
			a.board.Tiles[idx].Link = linkEntry.Text
			a.board.Tiles[idx].Width = w
			a.board.Tiles[idx].Height = h
			a.refreshTilesList()
			a.refreshPreview()
			a.refreshLive()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 300))
	form.Show()
}

// ─── Preview Panel ─────────────────────────────────────────

func (a *App) buildPreviewPanel() fyne.CanvasObject {
	a.previewContainer = container.NewStack(
		widget.NewLabel("No tiles yet. Add tiles on the Tiles tab, then open Preview."),
	)
	a.refreshPreview()
	return a.previewContainer
}

func (a *App) refreshPreview() {
	if a.previewContainer == nil {
		return
	}
	a.previewContainer.RemoveAll()
	a.previewContainer.Add(widgets.RenderBoardPreview(a.board))
	a.previewContainer.Refresh()
}

// ─── Live Panel ────────────────────────────────────────────

// buildLivePanel hosts real widgets inside the dashboard layout so resizing
// the window rebalances the grid interactively.
func (a *App) buildLivePanel() fyne.CanvasObject {
	a.liveContainer = container.New(NewDashboardLayout())
	a.refreshLive()
	return a.liveContainer
}

func (a *App) refreshLive() {
	if a.liveContainer == nil {
		return
	}
	a.liveContainer.RemoveAll()

	for i, t := range a.board.VisibleTiles() {
		col := tileFillColors[i%len(tileFillColors)]

		bg := canvas.NewRectangle(col)
		bg.SetMinSize(fyne.NewSize(float32(t.Width), float32(t.Height)))

		label := widget.NewLabelWithStyle(t.Label, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

		a.liveContainer.Add(container.NewStack(bg, container.NewCenter(label)))
	}
	a.liveContainer.Refresh()
}

// tileFillColors mirrors the preview palette at full opacity.
var tileFillColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 255},
	{R: 33, G: 150, B: 243, A: 255},
	{R: 255, G: 152, B: 0, A: 255},
	{R: 156, G: 39, B: 176, A: 255},
	{R: 0, G: 188, B: 212, A: 255},
	{R: 244, G: 67, B: 54, A: 255},
	{R: 255, G: 235, B: 59, A: 255},
	{R: 121, G: 85, B: 72, A: 255},
}

// ─── Settings Panel ────────────────────────────────────────

func (a *App) buildSettingsPanel() fyne.CanvasObject {
	intEntry := func(val *int, onChange func()) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%d", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil && v > 0 {
				*val = v
				if onChange != nil {
					onChange()
				}
			}
		}
		return e
	}

	refreshBoard := func() {
		a.board.Container = model.Size{
			Width:  a.config.DefaultContainerWidth,
			Height: a.config.DefaultContainerHeight,
		}
		a.refreshPreview()
	}

	boardSection := widget.NewCard("Board", "", container.NewGridWithColumns(2,
		widget.NewLabel("Container Width (px)"), intEntry(&a.config.DefaultContainerWidth, refreshBoard),
		widget.NewLabel("Container Height (px)"), intEntry(&a.config.DefaultContainerHeight, refreshBoard),
	))

	tileSection := widget.NewCard("New Tile Defaults", "", container.NewGridWithColumns(2,
		widget.NewLabel("Tile Width (px)"), intEntry(&a.config.DefaultTileWidth, nil),
		widget.NewLabel("Tile Height (px)"), intEntry(&a.config.DefaultTileHeight, nil),
	))

	saveBtn := widget.NewButtonWithIcon("Save Preferences", theme.DocumentSaveIcon(), func() {
		if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Preferences Saved", "Defaults will apply to new boards.", a.window)
	})

	return container.NewVScroll(container.NewVBox(
		boardSection,
		tileSection,
		saveBtn,
	))
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) arrangedLayout() (model.Layout, bool) {
	layout := engine.ArrangeBoard(a.board)
	if len(layout.Placements) == 0 {
		dialog.ShowInformation("Nothing to arrange", "Add at least one visible tile first.", a.window)
		return model.Layout{}, false
	}
	return layout, true
}

func (a *App) saveBoard() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SaveBoard(path, a.board); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		project.RememberBoard(&a.config, path)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName(a.board.Name + project.BoardExtension)
	d.Show()
}

func (a *App) loadBoard() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		path := reader.URI().Path()
		board, err := project.LoadBoard(path)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.board = board
		project.RememberBoard(&a.config, path)
		a.refreshTilesList()
		a.refreshPreview()
		a.refreshLive()
	}, a.window)
	d.Show()
}

func (a *App) showSavePresetDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(a.board.Name)

	descEntry := widget.NewEntry()
	descEntry.SetPlaceHolder("Optional description")

	form := dialog.NewForm("Save Preset", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			preset := model.NewBoardPreset(nameEntry.Text, descEntry.Text, a.board.Tiles, a.board.Container)
			a.presets.Add(preset)
			if err := project.SaveDefaultPresets(a.presets); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.SetupMenus() // rebuild preset menu entries
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 250))
	form.Show()
}

func (a *App) exportPDF() {
	layout, ok := a.arrangedLayout()
	if !ok {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.ExportPDF(writer.URI().Path(), a.board, layout); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Layout saved to %s", writer.URI().Path()), a.window)
		}
	}, a.window)
	d.SetFileName(a.board.Name + ".pdf")
	d.Show()
}

func (a *App) exportLabels() {
	layout, ok := a.arrangedLayout()
	if !ok {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.ExportLabels(writer.URI().Path(), a.board, layout); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Labels saved to %s", writer.URI().Path()), a.window)
		}
	}, a.window)
	d.SetFileName(a.board.Name + "-labels.pdf")
	d.Show()
}

func (a *App) exportWorkbook() {
	layout, ok := a.arrangedLayout()
	if !ok {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.ExportWorkbook(writer.URI().Path(), a.board, layout); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Workbook saved to %s", writer.URI().Path()), a.window)
		}
	}, a.window)
	d.SetFileName(a.board.Name + ".xlsx")
	d.Show()
}

// ─── Import Functions ───────────────────────────────────────

func (a *App) importCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := tileimporter.ImportCSV(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) importExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := tileimporter.ImportExcel(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) handleImportResult(result tileimporter.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	if len(result.Warnings) > 0 {
		// Just log warnings, don't block
		fmt.Printf("Import warnings: %v\n", result.Warnings)
	}

	if len(result.Tiles) > 0 {
		a.board.Tiles = append(a.board.Tiles, result.Tiles...)
		a.refreshTilesList()
		a.refreshPreview()
		a.refreshLive()

		msg := fmt.Sprintf("Successfully imported %d tiles.", len(result.Tiles))
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}
