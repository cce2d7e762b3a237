package game

import "fmt"

// StartButtonRect returns the menu start button area: roughly a third of the
// screen wide, centred a little below the middle.
func StartButtonRect(fbW, fbH int) Rect {
	w := float64(fbW) * 0.32
	h := float64(fbH) * 0.12
	return Rect{
		X: float64(fbW)/2 - w/2,
		Y: float64(fbH)/2 + 80 - h/2,
		W: w, H: h,
	}
}

// RenderHUD draws the text layer for the current page. Background art, the
// start button and the camera preview are drawn by the caller; menuBg/endBg
// report whether a background image is present, since the fallback screens
// carry their own titles.
func RenderHUD(r *Renderer, s *Session, fbW, fbH int, menuBg, endBg bool) {
	switch s.Page {
	case PageMenu:
		if !menuBg {
			title := "Finger Snake"
			r.DrawString(title, fbW/2-TextWidth(title, 2.0)/2, 120, 2.0, Palette.UI)
		}
		btn := StartButtonRect(fbW, fbH)
		hint := "Click START or press S to begin"
		r.DrawString(hint, fbW/2-TextWidth(hint, 0.75)/2, int(btn.Bottom())+18, 0.75, Palette.Hint)

	case PageGame:
		scoreStr := fmt.Sprintf("Score: %d", s.Score)
		r.DrawString(scoreStr, fbW/2-TextWidth(scoreStr, 1.0)/2, 10, 1.0, Palette.UI)

		timeStr := fmt.Sprintf("Time Left: %d", s.TimeLeft())
		r.DrawString(timeStr, fbW/2-TextWidth(timeStr, 1.0)/2, 44, 1.0, Palette.Timer)

	case PageEnd:
		if !endBg {
			congrats := "CONGRATULATIONS!"
			r.DrawString(congrats, fbW/2-TextWidth(congrats, 2.0)/2, 140, 2.0, RGB{R: 240, G: 220, B: 220})
		}

		scoreStr := fmt.Sprintf("YOU COLLECTED %d POINTS!", s.Score)
		r.DrawString(scoreStr, fbW/2-TextWidth(scoreStr, 1.6)/2, fbH/2-40, 1.6, RGB{R: 255, G: 255, B: 255})

		if s.BestScore > 0 {
			bestStr := fmt.Sprintf("BEST: %d", s.BestScore)
			r.DrawString(bestStr, fbW/2-TextWidth(bestStr, 1.0)/2, fbH/2+20, 1.0, Palette.Timer)
		}

		hint := "Press R to play again or Esc to quit"
		r.DrawString(hint, fbW/2-TextWidth(hint, 0.75)/2, fbH/2+60, 0.75, Palette.Hint)
	}

	r.FlushText(fbW, fbH)
}
