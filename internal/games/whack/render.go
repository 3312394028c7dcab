package whack

import (
	"fmt"

	"github.com/vovakirdan/whack-arcade/internal/core"
)

// Layout constants
const (
	maxHoleW  = 13 // Widest hole box
	maxHoleH  = 5  // Tallest hole box
	minHoleW  = 5
	minHoleH  = 3
	hudLines  = 3 // Title, stats, gap
	footLines = 3 // Gap, message, help
)

// Visual elements
const (
	moleSprite      = "(o.o)"
	moleSpriteSmall = "o"
	holeFloor       = '_'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout == nil || g.layoutW != dst.Width() || g.layoutH != dst.Height() {
		g.layout = holeLayout(g.cfg.Game.Holes, g.cfg.Game.Columns, dst.Width(), dst.Height())
		g.layoutW = dst.Width()
		g.layoutH = dst.Height()
	}

	g.drawHUD(dst)
	for i, r := range g.layout {
		g.drawHole(dst, r, g.ctrl.Field().At(i))
	}
	g.drawFooter(dst)
}

// holeLayout places n holes in rows of cols, centered below the HUD.
func holeLayout(n, cols, screenW, screenH int) []core.Rect {
	if n <= 0 {
		return nil
	}
	cols = core.Clamp(cols, 1, n)
	rows := (n + cols - 1) / cols

	boxW := core.Clamp((screenW-2)/cols-1, minHoleW, maxHoleW)
	boxH := core.Clamp((screenH-hudLines-footLines)/rows, minHoleH, maxHoleH)

	gridW := cols*boxW + (cols - 1)
	startX := core.Max(0, (screenW-gridW)/2)
	startY := hudLines

	rects := make([]core.Rect, n)
	for i := range rects {
		col := i % cols
		row := i / cols
		rects[i] = core.NewRect(startX+col*(boxW+1), startY+row*boxH, boxW, boxH)
	}
	return rects
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, " WHACK-A-MOLE ", core.ColorBrightYellow)

	stats := fmt.Sprintf("Score: %s   Time: %s   Level: %s   Best: %d",
		g.hud.ScoreText(), g.hud.TimeText(), g.cfg.Difficulty.Level.Title(), g.best)
	dst.DrawTextCentered(1, stats, core.ColorWhite)
}

func (g *Game) drawHole(dst *core.Screen, r core.Rect, l *Location) {
	border := core.ColorGray
	if l != nil && l.Visible() {
		border = core.ColorBrightGreen
	}
	dst.DrawBox(r, border)

	if l != nil && l.Index < 9 {
		dst.DrawTextColored(r.X+1, r.Y, fmt.Sprintf("%d", l.Index+1), core.ColorCyan)
	}

	// Floor of the hole along the last interior row
	floorY := r.Bottom() - 2
	for x := r.X + 1; x < r.Right()-1; x++ {
		dst.SetColored(x, floorY, holeFloor, core.ColorBrown)
	}

	if l == nil || !l.Visible() {
		return
	}
	sprite := moleSprite
	if r.W-2 < len(sprite) {
		sprite = moleSpriteSmall
	}
	cx, cy := r.Center()
	if cy >= floorY && r.H > minHoleH {
		cy = floorY - 1
	}
	dst.DrawTextColored(cx-len(sprite)/2, cy, sprite, core.ColorBrown)
}

func (g *Game) drawFooter(dst *core.Screen) {
	msgY := dst.Height() - 2
	helpY := dst.Height() - 1

	switch {
	case g.paused:
		dst.DrawTextCentered(msgY, "PAUSED - press P to resume", core.ColorBrightYellow)
	case g.gameOver:
		msg := fmt.Sprintf("Time's up! Final score: %d  |  Press ENTER to play again", g.last.Score)
		dst.DrawTextCentered(msgY, msg, core.ColorBrightRed)
	case g.button.Enabled():
		dst.DrawTextCentered(msgY, "Press ENTER to start", core.ColorBrightGreen)
	}

	dst.DrawTextCentered(helpY, "1-9/click: whack   P: pause   Q: quit", core.ColorGray)
}
