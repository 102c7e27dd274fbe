// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package evaluator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alvinbaena/pwd-strength/internal/remote"
)

// Strength tiers as returned by the evaluation service.
const (
	VeryWeak   = "Very Weak"
	Weak       = "Weak"
	Moderate   = "Moderate"
	Good       = "Good"
	Strong     = "Strong"
	VeryStrong = "Very Strong"
)

var strengthColors = map[string]Color{
	VeryWeak:   "#9c0a0a",
	Weak:       "#c04e0c",
	Moderate:   "#b1b70e",
	Good:       "#0ba410",
	Strong:     "#1844a2",
	VeryStrong: "#821b9c",
}

var subSecond = regexp.MustCompile(`^0(\.\d+)? seconds$`)

// StrengthColor maps a strength label to its display color. Unknown labels are neutral.
func StrengthColor(strength string) Color {
	if c, ok := strengthColors[strength]; ok {
		return c
	}
	return ColorNeutral
}

// NearZero reports whether a crack time is too small to be worth showing.
func NearZero(timeToCrack string) bool {
	t := strings.TrimSpace(timeToCrack)
	if t == "" || t == "instant" {
		return true
	}
	return strings.HasPrefix(t, "0 years, 0 days") || subSecond.MatchString(t)
}

// RenderVerdict writes a remote verdict to the sink.
func RenderVerdict(sink Sink, v remote.Verdict) {
	setText(sink, ElementStrength, fmt.Sprintf("Password strength: %s", v.Strength))
	setColor(sink, ElementStrength, StrengthColor(v.Strength))

	// crack time and note are updated together or not at all
	timeEl, ok := sink.Element(ElementTimeToCrack)
	if !ok {
		return
	}
	noteEl, ok := sink.Element(ElementNote)
	if !ok {
		return
	}

	if NearZero(v.TimeToCrack) {
		timeEl.SetText("")
		noteEl.SetVisible(true)
		noteEl.SetColor(ColorFail)
	} else {
		timeEl.SetText(fmt.Sprintf("Estimated time to crack: %s", v.TimeToCrack))
		timeEl.SetColor(ColorPass)
		noteEl.SetVisible(false)
	}
}

// ResetVerdict clears the strength and crack time and hides the note.
func ResetVerdict(sink Sink) {
	setText(sink, ElementStrength, "")
	setColor(sink, ElementStrength, ColorNeutral)
	setText(sink, ElementTimeToCrack, "")
	setColor(sink, ElementTimeToCrack, ColorNeutral)
	setVisible(sink, ElementNote, false)
}
