package gemswap

import (
	"fmt"

	"github.com/vovakirdan/tui-gemfall/internal/board"
	"github.com/vovakirdan/tui-gemfall/internal/core"
)

const (
	cellWidth  = 4 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
)

// kindColor maps a gem kind to its display color.
func kindColor(k board.Kind) core.Color {
	switch k {
	case board.KindRuby:
		return core.ColorBrightRed
	case board.KindEmerald:
		return core.ColorBrightGreen
	case board.KindSapphire:
		return core.ColorBrightBlue
	case board.KindTopaz:
		return core.ColorBrightYellow
	case board.KindAmethyst:
		return core.ColorBrightMagenta
	case board.KindPearl:
		return core.ColorBrightWhite
	default:
		return core.ColorDefault
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.topo.Cols*cellWidth + 1
	boardH := g.topo.Rows*cellHeight + 1
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the score and move info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	// Title
	title := g.Title()
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	// Score
	scoreStr := fmt.Sprintf("Gems: %d", g.score)
	dst.DrawText(boardX, 1, scoreStr)

	// Moves used, against the budget in classic mode
	var infoStr string
	if g.mode == ModeClassic && g.movesLimit > 0 {
		infoStr = fmt.Sprintf("Moves: %d/%d", g.moves, g.movesLimit)
	} else {
		infoStr = fmt.Sprintf("Moves: %d", g.moves)
	}

	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)

	// Best combo
	if g.largestCombo > 0 {
		comboStr := fmt.Sprintf("Best combo: %d", g.largestCombo)
		comboX := boardX + (boardW-len(comboStr))/2
		dst.DrawText(comboX, 2, comboStr)
	}

	// Cascade chain indicator
	if g.chainDepth > 0 && g.busy() {
		chainStr := fmt.Sprintf("Chain x%d", g.chainDepth+1)
		dst.DrawTextColored(boardX, 2, chainStr, core.ColorBrightYellow)
	}
}

// renderBoard draws the grid with gems.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	rows := g.topo.Rows
	cols := g.topo.Cols

	// Draw grid borders
	for y := 0; y <= rows; y++ {
		for x := 0; x <= cols; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}

			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw gems
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := g.topo.Index(row, col)
			tile := g.store.ReadTile(idx)

			cellX := boardX + col*cellWidth + 1
			cellY := boardY + row*cellHeight + 1
			centerX := cellX + (cellWidth-2)/2

			if !tile.Hidden {
				dst.SetColored(centerX, cellY, tile.Kind.Char(), kindColor(tile.Kind))
			}

			// Selection and cursor markers around the gem
			picked := g.sel.HasPicked() && g.sel.Picked() == idx
			underCursor := row == g.cursorRow && col == g.cursorCol

			switch {
			case picked:
				dst.SetColored(centerX-1, cellY, '[', core.ColorYellow)
				dst.SetColored(centerX+1, cellY, ']', core.ColorYellow)
			case underCursor:
				dst.Set(centerX-1, cellY, '>')
				dst.Set(centerX+1, cellY, '<')
			}
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		scoreStr := fmt.Sprintf("Gems cleared: %d", g.score)
		g.drawOverlay(dst, centerX, centerY, "OUT OF MOVES", scoreStr, "Press R to restart")
		return
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD: Move | Space/Enter: Select | X: Cancel | P: Pause | R: Restart | Q: Quit"
}
