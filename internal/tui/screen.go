// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package tui

import (
	"sync"

	"github.com/alvinbaena/pwd-strength/internal/clipboard"
	"github.com/alvinbaena/pwd-strength/internal/evaluator"
)

// NoteText is shown instead of a crack time that rounds to nothing.
const NoteText = "This password can be cracked almost instantly."

var layout = []evaluator.ElementID{
	evaluator.ElementLength,
	evaluator.ElementUppercase,
	evaluator.ElementLowercase,
	evaluator.ElementSpecial,
	evaluator.ElementNumbers,
	evaluator.ElementStrength,
	evaluator.ElementTimeToCrack,
	evaluator.ElementNote,
	evaluator.ElementToggle,
}

type element struct {
	screen  *Screen
	text    string
	color   evaluator.Color
	visible bool
}

func (e *element) SetText(text string) {
	e.screen.update(func() { e.text = text })
}

func (e *element) SetColor(color evaluator.Color) {
	e.screen.update(func() { e.color = color })
}

func (e *element) SetVisible(visible bool) {
	e.screen.update(func() { e.visible = visible })
}

type toast struct {
	clipboard.Toast
	opacity float64
}

// Screen holds what the evaluator and the clipboard helper draw. It is written
// from their goroutines and read by the bubbletea program, so every access locks.
type Screen struct {
	mu       sync.Mutex
	elements map[evaluator.ElementID]*element
	toasts   []toast
	// notify asks the program for a redraw. It must not block.
	notify func()
}

func NewScreen() *Screen {
	s := &Screen{elements: make(map[evaluator.ElementID]*element, len(layout))}
	for _, id := range layout {
		s.elements[id] = &element{screen: s, color: evaluator.ColorNeutral, visible: true}
	}

	s.elements[evaluator.ElementNote].text = NoteText
	s.elements[evaluator.ElementToggle].text = "Show"
	evaluator.ResetCriteria(s)
	evaluator.ResetVerdict(s)
	return s
}

func (s *Screen) SetNotify(notify func()) {
	s.mu.Lock()
	s.notify = notify
	s.mu.Unlock()
}

func (s *Screen) update(fn func()) {
	s.mu.Lock()
	fn()
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

func (s *Screen) Element(id evaluator.ElementID) (evaluator.Element, bool) {
	el, ok := s.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

func (s *Screen) Show(t clipboard.Toast) {
	s.update(func() { s.toasts = append(s.toasts, toast{Toast: t}) })
}

func (s *Screen) SetOpacity(id uint64, opacity float64) {
	s.update(func() {
		for i := range s.toasts {
			if s.toasts[i].ID == id {
				s.toasts[i].opacity = opacity
			}
		}
	})
}

func (s *Screen) Remove(id uint64) {
	s.update(func() {
		kept := s.toasts[:0]
		for _, t := range s.toasts {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		s.toasts = kept
	})
}

// line is a copy of an element taken for rendering.
type line struct {
	text    string
	color   evaluator.Color
	visible bool
}

func (s *Screen) snapshot() (map[evaluator.ElementID]line, []toast) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make(map[evaluator.ElementID]line, len(s.elements))
	for id, el := range s.elements {
		lines[id] = line{text: el.text, color: el.color, visible: el.visible}
	}
	return lines, append([]toast(nil), s.toasts...)
}
