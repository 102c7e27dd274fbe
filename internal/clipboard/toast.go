package clipboard

import (
	"github.com/rs/zerolog/log"
)

type Kind int

const (
	KindInfo Kind = iota
	KindError
)

// Toast is a transient notification. It starts fully transparent.
type Toast struct {
	ID      uint64
	Message string
	Kind    Kind
}

// Display renders toasts. Calls for a toast arrive in order Show, SetOpacity(1),
// SetOpacity(0), Remove, possibly from a goroutine other than the UI's.
type Display interface {
	Show(t Toast)
	SetOpacity(id uint64, opacity float64)
	Remove(id uint64)
}

// LogDisplay shows toasts as log lines, for front-ends without a screen to draw on.
type LogDisplay struct{}

func (LogDisplay) Show(t Toast) {
	if t.Kind == KindError {
		log.Warn().Msg(t.Message)
		return
	}
	log.Info().Msg(t.Message)
}

func (LogDisplay) SetOpacity(uint64, float64) {}

func (LogDisplay) Remove(uint64) {}
