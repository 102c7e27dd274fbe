package evaluator

// ElementID names one of the display elements the evaluator writes to.
type ElementID string

const (
	ElementLength      ElementID = "length"
	ElementUppercase   ElementID = "uppercase"
	ElementLowercase   ElementID = "lowercase"
	ElementSpecial     ElementID = "specialChars"
	ElementNumbers     ElementID = "numbers"
	ElementStrength    ElementID = "strength"
	ElementTimeToCrack ElementID = "time_to_crack"
	ElementNote        ElementID = "note"
	ElementToggle      ElementID = "togglePassword"
)

// Color is a display color, either a named color or a hex value.
type Color string

const (
	ColorPass    Color = "green"
	ColorFail    Color = "red"
	ColorNeutral Color = "#555555"
)

// Element is a single piece of the presentation layer.
type Element interface {
	SetText(text string)
	SetColor(color Color)
	SetVisible(visible bool)
}

// Sink gives the evaluator access to the presentation layer. Layouts may omit
// any element; a missing element turns every update on it into a no-op.
type Sink interface {
	Element(id ElementID) (Element, bool)
}

// Input is the password field.
type Input interface {
	Value() string
	SetValue(value string)
	Masked() bool
	SetMasked(masked bool)
}

func setText(s Sink, id ElementID, text string) {
	if el, ok := s.Element(id); ok {
		el.SetText(text)
	}
}

func setColor(s Sink, id ElementID, color Color) {
	if el, ok := s.Element(id); ok {
		el.SetColor(color)
	}
}

func setVisible(s Sink, id ElementID, visible bool) {
	if el, ok := s.Element(id); ok {
		el.SetVisible(visible)
	}
}
