package triad

import (
	"fmt"
	"strconv"

	"github.com/avolkhin/hextriad/internal/core"
	"github.com/avolkhin/hextriad/internal/engine"
	"github.com/avolkhin/hextriad/internal/hexgrid"
)

const (
	// Spacing between cell centers on screen. One q step moves a full
	// cell right; one r step moves half a cell right and one row down,
	// which lays the axial grid out as a proper hexagon.
	colsPerQ = 8
	colsPerR = 4
	rowsPerR = 2

	hudHeight = 3
)

// valueColors maps each progression rank to a display color.
var valueColors = []core.Color{
	core.ColorWhite,         // 2
	core.ColorBrightCyan,    // 6
	core.ColorCyan,          // 18
	core.ColorBrightGreen,   // 54
	core.ColorGreen,         // 162
	core.ColorBrightYellow,  // 486
	core.ColorYellow,        // 1458
	core.ColorOrange,        // 4374
	core.ColorBrightRed,     // 13122
	core.ColorRed,           // 39366
	core.ColorBrightMagenta, // 118098
	core.ColorMagenta,       // 354294
	core.ColorBrightBlue,    // 1062882
}

// colorFor picks the display color for a tile.
func colorFor(t engine.Tile) core.Color {
	if t.IsNew {
		return core.ColorBrightWhite
	}
	for i, v := range engine.Progression {
		if v == t.Value {
			return valueColors[i]
		}
	}
	return core.ColorDefault
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	cx := g.screenW / 2
	cy := hudHeight + 1 + g.eng.Grid().Radius()*rowsPerR

	g.renderHUD(dst)
	g.renderBoard(dst, cx, cy)
	g.renderControls(dst)
	g.renderOverlays(dst, cx, cy)
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

// renderHUD draws the score, best score and mode info.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "H E X T R I A D")

	scoreStr := fmt.Sprintf("Score: %d", g.st.Score)
	dst.DrawText(2, 1, scoreStr)

	bestStr := fmt.Sprintf("Best: %d", g.st.BestScore)
	dst.DrawText(g.screenW-len(bestStr)-2, 1, bestStr)

	info := fmt.Sprintf("%s | Undos: %d", g.policy.Title, g.st.UndosLeft)
	if g.policy.TimerSeconds > 0 {
		left := g.TimeLeftSeconds()
		info += fmt.Sprintf(" | Time: %d:%02d", left/60, left%60)
	}
	dst.DrawTextCentered(2, info)
}

// renderBoard draws every grid cell, empty or occupied.
func (g *Game) renderBoard(dst *core.Screen, cx, cy int) {
	for _, c := range g.eng.Grid().Coords() {
		x, y := g.cellScreenPos(c, cx, cy)
		dst.SetCell(x, y, '·', core.ColorGray)
	}

	for _, t := range g.st.Board {
		x, y := g.cellScreenPos(t.Pos, cx, cy)
		valStr := strconv.Itoa(t.Value)
		dst.DrawTextColor(x-len(valStr)/2, y, valStr, colorFor(t))
	}
}

// cellScreenPos converts a hex coordinate to screen coordinates.
func (g *Game) cellScreenPos(h hexgrid.Hex, cx, cy int) (int, int) {
	return cx + h.Q*colsPerQ + h.R*colsPerR, cy + h.R*rowsPerR
}

// renderControls draws the key hints at the bottom of the screen.
func (g *Game) renderControls(dst *core.Screen) {
	dst.DrawTextCentered(g.screenH-1, g.Controls())
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, cx, cy int) {
	switch {
	case g.paused:
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case g.st.Won:
		topStr := fmt.Sprintf("You reached %d!", engine.WinningValue)
		g.drawOverlay(dst, cx, cy, "YOU WIN", topStr, "Press R to restart")
	case g.timeUp:
		scoreStr := fmt.Sprintf("Final score: %d", g.st.Score)
		g.drawOverlay(dst, cx, cy, "TIME UP", scoreStr, "Press R to restart")
	case g.st.GameOver:
		maxStr := fmt.Sprintf("Highest tile: %d", g.st.Board.MaxValue())
		g.drawOverlay(dst, cx, cy, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay, kept inside the screen.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := core.Clamp(centerX-boxW/2, 0, core.Max(g.screenW-boxW, 0))
	boxY := core.Clamp(centerY-boxH/2, 0, core.Max(g.screenH-boxH, 0))
	box := core.NewRect(boxX, boxY, boxW, boxH)

	// Clear area behind overlay
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(box)

	for i, line := range lines {
		x := boxX + (boxW-len(line))/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Q/E: up-left/right | A/D: left/right | Z/C: down-left/right | U: Undo | P: Pause | R: Restart"
}
