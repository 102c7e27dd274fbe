// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package evaluator

import (
	"github.com/alvinbaena/pwd-strength/internal/generator"
	"github.com/rs/zerolog/log"
)

// Copier copies text somewhere the user can paste it from. The returned channel
// is closed once any notification about the copy is gone.
type Copier interface {
	Copy(text string) <-chan struct{}
}

// Widget wires the password field and its buttons (show/hide, generate, copy)
// to an Evaluator.
type Widget struct {
	eval   *Evaluator
	input  Input
	sink   Sink
	copier Copier
	// Generate is swapped in tests.
	generate func(length int) (string, error)
}

func NewWidget(eval *Evaluator, input Input, sink Sink, copier Copier) *Widget {
	return &Widget{
		eval:     eval,
		input:    input,
		sink:     sink,
		copier:   copier,
		generate: generator.Generate,
	}
}

// Changed must be called whenever the user edits the input.
func (w *Widget) Changed() {
	w.eval.Input(w.input.Value())
}

// ToggleMask shows or hides the password.
func (w *Widget) ToggleMask() {
	masked := !w.input.Masked()
	w.input.SetMasked(masked)
	if masked {
		setText(w.sink, ElementToggle, "Show")
	} else {
		setText(w.sink, ElementToggle, "Hide")
	}
}

// Generate fills the input with a new random password and evaluates it right away.
func (w *Widget) Generate() error {
	password, err := w.generate(generator.DefaultLength)
	if err != nil {
		return err
	}

	w.input.SetValue(password)
	w.eval.EvaluateNow(password)
	return nil
}

// Copy puts the current password on the clipboard. It returns nil when there is nothing to copy.
func (w *Widget) Copy() <-chan struct{} {
	value := w.input.Value()
	if value == "" {
		return nil
	}
	if w.copier == nil {
		log.Error().Msg("no clipboard available")
		return nil
	}
	return w.copier.Copy(value)
}
