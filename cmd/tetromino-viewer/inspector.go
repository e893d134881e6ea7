package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrimino/internal/viewer"
)

// Inspector draws a Dear ImGui window describing the active piece and the
// contents of the world. Buttons feed the same actions as the keyboard.
type Inspector struct {
	game *Game
}

func (i *Inspector) Render() {
	if action := i.window(); action != viewer.ActionNone {
		i.game.dispatch(action)
	}
}

// window draws the inspector and returns the action of any button pressed.
// Actions are applied only after the window is finished.
func (i *Inspector) window() viewer.Action {
	session := i.game.session
	active := session.Active()
	action := viewer.ActionNone

	if !imgui.Begin("Piece Inspector") {
		imgui.End()
		return action
	}

	imgui.Text(fmt.Sprintf("Entity: %d", active.Id))
	imgui.Text(fmt.Sprintf("Kind: %s", active.Piece.Kind()))
	imgui.Text(fmt.Sprintf("Rotation: %d", active.Piece.Rotation()))
	imgui.Text(fmt.Sprintf("Mask: 0x%04x", uint16(active.Piece.Shape())))
	imgui.Text(fmt.Sprintf("Anchor: %s", *active.Anchor))

	if imgui.Button("CCW") {
		action = viewer.ActionRotateCCW
	}
	imgui.SameLine()
	if imgui.Button("CW") {
		action = viewer.ActionRotateCW
	}
	imgui.SameLine()
	if imgui.Button("Lock") {
		action = viewer.ActionLock
	}

	imgui.Separator()
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("FilledCells", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Row")
		imgui.TableSetupColumn("Col")
		imgui.TableHeadersRow()

		for n, pos := range active.Piece.FilledPositions(*active.Anchor) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", n))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", pos.Row))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", pos.Col))
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("World") {
		stats := session.World.Stats()
		imgui.BulletText(fmt.Sprintf("Entities: %d", stats.Entities))
		imgui.BulletText(fmt.Sprintf("Pieces: %d", stats.Pieces))
		imgui.BulletText(fmt.Sprintf("Positions: %d", stats.Positions))
		imgui.BulletText(fmt.Sprintf("Dropped: %d", stats.Dropped))
		imgui.BulletText(fmt.Sprintf("Locks: %d", session.Locks()))
		imgui.TreePop()
	}

	imgui.End()
	return action
}
