package cli

import (
	"fmt"
	"io"

	"github.com/alvinbaena/pwd-strength/internal/evaluator"
	"github.com/alvinbaena/pwd-strength/internal/tui"
)

type consoleElement struct {
	text    string
	color   evaluator.Color
	visible bool
}

func (e *consoleElement) SetText(text string) { e.text = text }
func (e *consoleElement) SetColor(color evaluator.Color) { e.color = color }
func (e *consoleElement) SetVisible(visible bool) { e.visible = visible }

// consoleSink collects one evaluation and prints it. Single goroutine only.
type consoleSink struct {
	elements map[evaluator.ElementID]*consoleElement
}

var consoleLayout = []evaluator.ElementID{
	evaluator.ElementLength,
	evaluator.ElementUppercase,
	evaluator.ElementLowercase,
	evaluator.ElementSpecial,
	evaluator.ElementNumbers,
	evaluator.ElementStrength,
	evaluator.ElementTimeToCrack,
	evaluator.ElementNote,
}

func newConsoleSink() *consoleSink {
	s := &consoleSink{elements: make(map[evaluator.ElementID]*consoleElement, len(consoleLayout))}
	for _, id := range consoleLayout {
		s.elements[id] = &consoleElement{color: evaluator.ColorNeutral, visible: true}
	}
	s.elements[evaluator.ElementNote].text = tui.NoteText
	evaluator.ResetCriteria(s)
	evaluator.ResetVerdict(s)
	return s
}

func (s *consoleSink) Element(id evaluator.ElementID) (evaluator.Element, bool) {
	el, ok := s.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

func (s *consoleSink) print(w io.Writer) {
	for _, id := range consoleLayout {
		el := s.elements[id]
		if !el.visible || el.text == "" {
			continue
		}
		_, _ = fmt.Fprintln(w, tui.ColorStyle(el.color).Render(el.text))
	}
}
