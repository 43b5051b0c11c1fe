package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/rocketjump/common"
	"golang.org/x/image/font/basicfont"
)

const controlsHelp = "Left click: rocket\nHold right click: charge recoil, release to fire\nMiddle click / Q: cancel recoil\nR: restart    Esc / P: pause"

var (
	pauseTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	pauseHelpColor = color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
)

// NewPauseUI builds the pause panel: Resume, Restart and a reminder of the
// controls. Buttons are plain color nine-slices labelled with the basic font,
// so no theme fonts need loading.
func NewPauseUI(g *Game) *ebitenui.UI {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: pauseTextColor}),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Paused", &face, pauseTextColor),
		widget.TextOpts.WidgetOpts(centered),
	))
	panel.AddChild(button("Resume", func() { g.setPaused(false) }))
	panel.AddChild(button("Restart", g.Restart))
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(controlsHelp, &face, pauseHelpColor),
		widget.TextOpts.WidgetOpts(centered),
	))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
