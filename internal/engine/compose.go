package engine

import (
	"github.com/username/goviet-ime/internal/chartable"
	"github.com/username/goviet-ime/internal/phonology"
)

func compose(base rune, caps bool, tone phonology.Tone, mark phonology.Mark) (rune, bool) {
	return chartable.Compose(base, caps, tone, mark)
}

func composeStroke(caps bool) rune {
	return chartable.ComposeStroke(caps)
}
