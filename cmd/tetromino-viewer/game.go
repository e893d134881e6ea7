package main

import (
	"fmt"
	"image/color"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetrimino/internal/viewer"
	"github.com/plus3/tetrimino/tetromino"
	"go.uber.org/zap"
)

var keyActions = []struct {
	key    ebiten.Key
	action viewer.Action
}{
	{ebiten.KeyArrowLeft, viewer.ActionLeft},
	{ebiten.KeyArrowRight, viewer.ActionRight},
	{ebiten.KeyArrowUp, viewer.ActionUp},
	{ebiten.KeyArrowDown, viewer.ActionDown},
	{ebiten.KeyX, viewer.ActionRotateCW},
	{ebiten.KeyZ, viewer.ActionRotateCCW},
	{ebiten.KeySpace, viewer.ActionLock},
	{ebiten.KeyC, viewer.ActionClear},
	{ebiten.KeyR, viewer.ActionReset},
}

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x14, 0xff}
	outlineColor    = color.RGBA{0x80, 0x80, 0x80, 0xff}
	boxColor        = color.RGBA{0xff, 0xff, 0xff, 0x40}
)

// Game implements ebiten.Game on top of a Session.
type Game struct {
	cfg     viewer.Config
	session *viewer.Session
	log     *zap.Logger

	// imgui is nil when the inspector is disabled.
	imgui     *ebitenbackend.EbitenBackend
	inspector *Inspector
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
		defer g.imgui.EndFrame()
		g.inspector.Render()
		if imgui.CurrentIO().WantCaptureKeyboard() {
			return nil
		}
	}

	for _, binding := range keyActions {
		if !inpututil.IsKeyJustPressed(binding.key) {
			continue
		}
		g.dispatch(binding.action)
	}
	return nil
}

func (g *Game) dispatch(action viewer.Action) {
	if !g.session.Apply(action) {
		return
	}
	active := g.session.Active()
	g.log.Debug("action applied",
		zap.Stringer("action", action),
		zap.Stringer("kind", active.Piece.Kind()),
		zap.Int("rotation", active.Piece.Rotation()),
		zap.Stringer("anchor", *active.Anchor),
	)
	if action == viewer.ActionLock {
		g.log.Info("piece locked", zap.Int("locks", g.session.Locks()))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	size := float32(g.cfg.CellSize)
	vector.StrokeRect(screen, viewer.MarginX-2, viewer.MarginY-2,
		float32(g.cfg.Field.Width)*size+4, float32(g.cfg.Field.Height)*size+4,
		1, outlineColor, false)

	for cell := range g.session.World.Locked() {
		g.drawCell(screen, *cell.Cell, cell.Dropped.Color())
	}

	active := g.session.Active()
	anchor := *active.Anchor
	vector.StrokeRect(screen,
		viewer.MarginX+float32(anchor.Col)*size, viewer.MarginY+float32(anchor.Row)*size,
		tetromino.BoxSize*size, tetromino.BoxSize*size,
		1, boxColor, false)

	c := active.Piece.Kind().Color()
	for pos := range active.Piece.Cells(anchor) {
		g.drawCell(screen, pos, c)
	}

	textX := viewer.MarginX + g.cfg.Field.Width*g.cfg.CellSize + 20
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PIECE  %s", active.Piece.Kind()), textX, viewer.MarginY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ROT    %d", active.Piece.Rotation()), textX, viewer.MarginY+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ANCHOR %s", anchor), textX, viewer.MarginY+40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LOCKED %d", g.session.Locks()), textX, viewer.MarginY+60)
	ebitenutil.DebugPrintAt(screen, "arrows move  Z/X rotate\nspace lock  C clear\nR reset  Q quit", textX, viewer.MarginY+100)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) drawCell(screen *ebiten.Image, pos tetromino.Position, c color.Color) {
	size := float32(g.cfg.CellSize)
	x := viewer.MarginX + float32(pos.Col)*size
	y := viewer.MarginY + float32(pos.Row)*size
	vector.DrawFilledRect(screen, x, y, size, size, c, false)
	vector.StrokeRect(screen, x, y, size, size, 1, color.Black, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
