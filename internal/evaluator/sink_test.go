package evaluator

import (
	"sync"
	"testing"
	"time"
)

type elementState struct {
	text    string
	color   Color
	visible bool
}

type fakeElement struct {
	mu    *sync.Mutex
	state elementState
}

func (e *fakeElement) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.text = text
}

func (e *fakeElement) SetColor(color Color) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.color = color
}

func (e *fakeElement) SetVisible(visible bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.visible = visible
}

// recordingSink holds every element unless a subset is given.
type recordingSink struct {
	mu       sync.Mutex
	elements map[ElementID]*fakeElement
}

func newRecordingSink(only ...ElementID) *recordingSink {
	ids := only
	if len(ids) == 0 {
		ids = []ElementID{
			ElementLength, ElementUppercase, ElementLowercase, ElementSpecial, ElementNumbers,
			ElementStrength, ElementTimeToCrack, ElementNote, ElementToggle,
		}
	}

	s := &recordingSink{elements: make(map[ElementID]*fakeElement)}
	for _, id := range ids {
		s.elements[id] = &fakeElement{mu: &s.mu}
	}
	return s
}

func (s *recordingSink) Element(id ElementID) (Element, bool) {
	el, ok := s.elements[id]
	return el, ok
}

func (s *recordingSink) get(id ElementID) elementState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.elements[id]; ok {
		return el.state
	}
	return elementState{}
}

type fakeInput struct {
	value  string
	masked bool
}

func (i *fakeInput) Value() string { return i.value }

func (i *fakeInput) SetValue(value string) { i.value = value }

func (i *fakeInput) Masked() bool { return i.masked }

func (i *fakeInput) SetMasked(masked bool) { i.masked = masked }

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %s", what)
}
