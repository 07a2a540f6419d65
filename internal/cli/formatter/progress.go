package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// ConfidenceBar renders a confidence bar like [████░░░░] 0.45, colored by the
// confidence band.
func ConfidenceBar(confidence float64, width int) string {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(confidence * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %.2f", ConfidenceColor(confidence).Render(bar), confidence)
}

// ScoreBar renders a 0-100 quality score bar, green at or above the passing
// threshold and red below it.
func ScoreBar(score int, passing int, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if width < 2 {
		width = 2
	}

	filled := score * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if score < passing {
		style = StyleRed
	}
	return fmt.Sprintf("[%s] %d/100", style.Render(bar), score)
}
