package codebreaker

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-codebreaker/internal/core"
	"github.com/vovakirdan/tui-codebreaker/internal/engine"
)

const (
	pegStep   = 2  // Columns per guess peg (peg + gap)
	minBoardW = 36 // Wide enough for the button hints
	fixedRows = 11 // Everything except the history rows
	minRows   = 1  // History rows that must fit

	lowTime = 30 * time.Second // The clock turns red below this
)

const (
	pegRune      = '●'
	emptyRune    = '·'
	hiddenRune   = '?'
	cursorRune   = '▲'
	blackPegRune = '●'
	whitePegRune = '○'
)

var pegColors = map[engine.Color]core.Color{
	engine.ColorRed:    core.ColorRed,
	engine.ColorGreen:  core.ColorGreen,
	engine.ColorBlue:   core.ColorBlue,
	engine.ColorYellow: core.ColorYellow,
	engine.ColorPurple: core.ColorMagenta,
	engine.ColorOrange: core.ColorOrange,
	engine.ColorCyan:   core.ColorCyan,
	engine.ColorWhite:  core.ColorBrightWhite,
}

// layout holds the column positions for one frame.
type layout struct {
	boardX, boardW int
	numW           int
	pegX, fbX      int
	rows           int
}

const legendLabel = "Colors:"

// labeledX is where pegs start on the rows below the board.
func (l layout) labeledX() int {
	return max(l.pegX, l.boardX+len(legendLabel)+2)
}

func (g *Game) layout(dst *core.Screen) (layout, bool) {
	numW := len(strconv.Itoa(g.rules.MaxAttempts))
	pegsW := g.rules.Pegs*pegStep - 1
	innerW := numW + 2 + pegsW + 3 + g.rules.Pegs
	boardW := max(innerW+4, minBoardW)

	rows := dst.Height() - fixedRows
	if dst.Width() < boardW || rows < minRows {
		return layout{}, false
	}

	l := layout{
		boardX: (dst.Width() - boardW) / 2,
		boardW: boardW,
		numW:   numW,
		rows:   rows,
	}
	l.pegX = l.boardX + 2 + numW + 2
	l.fbX = l.pegX + pegsW + 3
	return l, true
}

// Render draws the board, HUD, and hints.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}

	l, ok := g.layout(dst)
	if !ok {
		renderTooSmall(dst)
		return
	}

	snap := g.Snapshot()

	g.renderHUD(dst, l, snap)

	// Only the most recent attempts that fit are listed
	history := snap.History
	if len(history) > l.rows {
		history = history[len(history)-l.rows:]
	}
	first := snap.AttemptsUsed - len(history)
	rows := max(len(history), minRows)

	boxY := 2
	dst.DrawBox(core.NewRect(l.boardX, boxY, l.boardW, rows+5))

	// Current guess with the latest feedback next to it
	drawPegs(dst, l.pegX, boxY+1, snap.Guess)
	if last, ok := snap.Last(); ok {
		drawFeedback(dst, l.fbX, boxY+1, last.Feedback())
	}
	if snap.Phase == engine.PhasePlaying {
		dst.SetColored(l.pegX+snap.Cursor*pegStep, boxY+2, cursorRune, core.ColorBrightYellow)
	}

	sepY := boxY + 3
	dst.Set(l.boardX, sepY, '├')
	dst.DrawHLine(l.boardX+1, sepY, l.boardW-2, '─')
	dst.Set(l.boardX+l.boardW-1, sepY, '┤')

	for i, a := range history {
		y := sepY + 1 + i
		num := fmt.Sprintf("%*d", l.numW, first+i+1)
		dst.DrawTextColored(l.boardX+2, y, num, core.ColorGray)
		drawPegs(dst, l.pegX, y, a.Guess())
		drawFeedback(dst, l.fbX, y, a.Feedback())
	}
	if len(history) == 0 {
		dst.DrawTextColored(l.pegX, sepY+1, "no attempts yet", core.ColorGray)
	}

	codeY := boxY + rows + 5
	g.renderCode(dst, l, codeY, snap)
	g.renderLegend(dst, l, codeY+1)
	renderStatus(dst, l, codeY+2, snap)
	renderHints(dst, l, codeY+3, snap)
}

// renderHUD draws the title, elapsed time, and attempt counter.
func (g *Game) renderHUD(dst *core.Screen, l layout, snap engine.Snapshot) {
	title := g.title
	dst.DrawTextColored(l.boardX+(l.boardW-utf8.RuneCountInString(title))/2, 0, title, core.ColorBrightWhite)

	clockColor := core.ColorDefault
	if snap.Phase == engine.PhasePlaying && snap.TimeLimit > 0 && snap.Remaining() <= lowTime {
		clockColor = core.ColorRed
	}
	dst.DrawTextColored(l.boardX, 1, "T: "+core.FormatClock(snap.Elapsed), clockColor)

	attempts := fmt.Sprintf("A: %d(%d)", snap.AttemptsUsed, snap.MaxAttempts)
	dst.DrawText(l.boardX+l.boardW-len(attempts), 1, attempts)
}

// renderCode draws the secret when the phase allows it, placeholders otherwise.
func (g *Game) renderCode(dst *core.Screen, l layout, y int, snap engine.Snapshot) {
	dst.DrawText(l.boardX+1, y, "Code:")
	x := l.labeledX()

	if snap.Secret != nil {
		drawPegs(dst, x, y, snap.Secret)
		return
	}
	for i := range g.rules.Pegs {
		dst.SetColored(x+i*pegStep, y, hiddenRune, core.ColorGray)
	}
}

// renderLegend lists the colors this variant draws from.
func (g *Game) renderLegend(dst *core.Screen, l layout, y int) {
	dst.DrawTextColored(l.boardX+1, y, legendLabel, core.ColorGray)
	drawPegs(dst, l.labeledX(), y, engine.Palette(g.rules.Colors))
}

func renderStatus(dst *core.Screen, l layout, y int, snap engine.Snapshot) {
	var msg string
	var color core.Color
	switch snap.Phase {
	case engine.PhasePaused:
		msg, color = "PAUSED", core.ColorYellow
	case engine.PhaseRevealing:
		msg, color = "CODE REVEALED", core.ColorCyan
	case engine.PhaseWon:
		msg, color = fmt.Sprintf("YOU WON in %d attempts!", snap.AttemptsUsed), core.ColorGreen
	case engine.PhaseLost:
		color = core.ColorRed
		if snap.LossReason == engine.LossTimeout {
			msg = "GAME OVER: time is up"
		} else {
			msg = "GAME OVER: out of attempts"
		}
	default:
		return
	}
	x := l.boardX + (l.boardW-utf8.RuneCountInString(msg))/2
	dst.DrawTextColored(x, y, msg, color)
}

// renderHints draws the navigation, OK, and cancel button hints.
func renderHints(dst *core.Screen, l layout, y int, snap engine.Snapshot) {
	left := "←→↑↓ Move"
	if snap.Phase.Terminal() {
		left = "R New game"
	}
	dst.DrawTextColored(l.boardX, y, left, core.ColorGray)

	var button string
	switch {
	case snap.Phase == engine.PhasePlaying && snap.CanSubmit:
		button = "[ OK ]"
	case snap.Phase == engine.PhasePaused:
		button = "[ Resume ]"
	case snap.Phase == engine.PhaseRevealing:
		button = "[ Hide ]"
	}
	if button != "" {
		dst.DrawTextColored(l.boardX+(l.boardW-len(button))/2, y, button, core.ColorBrightWhite)
	}

	right := "Esc Pause"
	switch {
	case snap.Phase == engine.PhasePaused:
		right = "Esc Exit"
	case snap.Phase.Terminal():
		right = "Q Quit"
	}
	dst.DrawTextColored(l.boardX+l.boardW-len(right), y, right, core.ColorGray)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func drawPegs(dst *core.Screen, x, y int, pegs []engine.Color) {
	for i, c := range pegs {
		if c == engine.ColorNone {
			dst.SetColored(x+i*pegStep, y, emptyRune, core.ColorGray)
			continue
		}
		dst.SetColored(x+i*pegStep, y, pegRune, pegColors[c])
	}
}

func drawFeedback(dst *core.Screen, x, y int, fb []engine.Feedback) {
	for i, f := range fb {
		switch f {
		case engine.FeedbackBlack:
			dst.SetColored(x+i, y, blackPegRune, core.ColorBrightWhite)
		case engine.FeedbackWhite:
			dst.SetColored(x+i, y, whitePegRune, core.ColorBrightWhite)
		default:
			dst.SetColored(x+i, y, emptyRune, core.ColorGray)
		}
	}
}
