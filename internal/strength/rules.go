package strength

import (
	"unicode"
	"unicode/utf8"
)

// Tiers produced by the strategies in this package.
const (
	VeryWeak   = "Very Weak"
	Weak       = "Weak"
	Moderate   = "Moderate"
	Strong     = "Strong"
	VeryStrong = "Very Strong"
)

// Properties are the character classes found in a password.
type Properties struct {
	Length       int  `json:"length"`
	HasNumbers   bool `json:"has_numbers"`
	HasLowercase bool `json:"has_lowercase"`
	HasUppercase bool `json:"has_uppercase"`
	HasSpecial   bool `json:"has_special"`
}

// Inspect reports the character classes of a password. Classes follow Unicode,
// so "É" counts as uppercase and "٣" as a number.
func Inspect(password string) Properties {
	p := Properties{Length: utf8.RuneCountInString(password)}
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			p.HasNumbers = true
		case unicode.IsLower(r):
			p.HasLowercase = true
		case unicode.IsUpper(r):
			p.HasUppercase = true
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			p.HasSpecial = true
		}
	}
	return p
}

// RulesChecker awards a point for each of: 8+ characters, a digit, a lowercase
// letter, an uppercase letter and a symbol.
type RulesChecker struct{}

func (RulesChecker) Evaluate(password string) string {
	p := Inspect(password)

	score := 0
	for _, ok := range []bool{p.Length >= 8, p.HasNumbers, p.HasLowercase, p.HasUppercase, p.HasSpecial} {
		if ok {
			score++
		}
	}

	switch {
	case score >= 4:
		return Strong
	case score == 3:
		return Moderate
	default:
		return Weak
	}
}
