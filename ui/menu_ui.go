package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// StartMenuUI is the player count picker shown before a session starts
type StartMenuUI struct {
	UI   *ebitenui.UI
	Menu *components.MenuData

	// OnSelect receives the chosen player count
	OnSelect func(numPlayers int)

	buttons []*widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewStartMenuUI builds one button per menu option
func NewStartMenuUI(menu *components.MenuData, onSelect func(numPlayers int)) (*StartMenuUI, error) {
	ui := &StartMenuUI{
		Menu:     menu,
		OnSelect: onSelect,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	ui.Refresh()
	return ui, nil
}

func (ui *StartMenuUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("failed to load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 64}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 36}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 20}
	return nil
}

func (ui *StartMenuUI) buildUI() {
	// No background so the sky shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(18),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("DREAM RUNNER", &ui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Choose Player Mode", &ui.normalFace, &widget.LabelColor{
			Idle: cfg.UIText,
		}),
	))

	for i, n := range ui.Menu.Options {
		contentContainer.AddChild(ui.buildOptionButton(i, n))
	}

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Use UP/DOWN arrows and ENTER to select", &ui.smallFace, &widget.LabelColor{
			Idle: cfg.UIText,
		}),
	))

	rootContainer.AddChild(contentContainer)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *StartMenuUI) buildOptionButton(index, numPlayers int) *widget.Button {
	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 56)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.UIBackground),
			Hover:   image.NewNineSliceColor(color.RGBA{64, 86, 110, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 44, 58, 255}),
		}),
		widget.ButtonOpts.Text(optionLabel(numPlayers, false), &ui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.UIText,
			Hover:   cfg.Yellow,
			Pressed: cfg.Orange,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.Menu.SelectedIndex = index
			ui.Refresh()
			if ui.OnSelect != nil {
				ui.OnSelect(numPlayers)
			}
		}),
	)
	ui.buttons = append(ui.buttons, btn)
	return btn
}

func optionLabel(numPlayers int, selected bool) string {
	label := fmt.Sprintf("%d Players", numPlayers)
	if selected {
		return "> " + label + " <"
	}
	return label
}

// Refresh marks the keyboard selection on the option buttons
func (ui *StartMenuUI) Refresh() {
	for i, btn := range ui.buttons {
		btn.Text().Label = optionLabel(ui.Menu.Options[i], i == ui.Menu.SelectedIndex)
	}
}

func (ui *StartMenuUI) Update() {
	ui.UI.Update()
}
