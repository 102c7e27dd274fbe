// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package clipboard copies text to the system clipboard and reports the outcome
// with a short-lived toast.
package clipboard

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"
)

const (
	CopiedMessage = "Password copied to clipboard!"
	FailedMessage = "Failed to copy password!"
)

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// System is the host clipboard.
var System Writer = systemClipboard{}

// Timing of a toast, measured from the moment it is added.
type Timing struct {
	FadeInDelay time.Duration
	Visible     time.Duration
	FadeOut     time.Duration
}

var DefaultTiming = Timing{
	FadeInDelay: 10 * time.Millisecond,
	Visible:     2500 * time.Millisecond,
	FadeOut:     400 * time.Millisecond,
}

type Helper struct {
	writer  Writer
	display Display
	timing  Timing
	nextID  atomic.Uint64
}

func NewHelper(writer Writer, display Display, timing Timing) *Helper {
	if writer == nil {
		writer = System
	}
	return &Helper{writer: writer, display: display, timing: timing}
}

// Copy writes text to the clipboard in the background and shows one toast with
// the outcome. The returned channel is closed when the toast has been removed.
func (h *Helper) Copy(text string) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Error().Msgf("clipboard copy panicked: %v", r)
			}
		}()

		if err := h.write(text); err != nil {
			log.Error().Err(err).Msg("could not copy text")
			h.toast(FailedMessage, KindError)
			return
		}
		h.toast(CopiedMessage, KindInfo)
	}()

	return done
}

func (h *Helper) write(text string) (err error) {
	// Some clipboard backends panic when no display is available.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard unavailable: %v", r)
		}
	}()
	return h.writer.WriteAll(text)
}

func (h *Helper) toast(message string, kind Kind) {
	if h.display == nil {
		return
	}

	t := Toast{ID: h.nextID.Add(1), Message: message, Kind: kind}
	h.display.Show(t)

	time.Sleep(h.timing.FadeInDelay)
	h.display.SetOpacity(t.ID, 1)

	if rest := h.timing.Visible - h.timing.FadeInDelay; rest > 0 {
		time.Sleep(rest)
	}
	h.display.SetOpacity(t.ID, 0)

	time.Sleep(h.timing.FadeOut)
	h.display.Remove(t.ID)
}
