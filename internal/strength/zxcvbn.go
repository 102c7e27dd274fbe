package strength

import (
	"github.com/nbutton23/zxcvbn-go"
)

var zxcvbnTiers = [...]string{VeryWeak, Weak, Moderate, Strong, VeryStrong}

// ZxcvbnChecker maps the zxcvbn score (0-4) to a strength tier.
type ZxcvbnChecker struct {
	UserInputs []string
}

func (z ZxcvbnChecker) Evaluate(password string) string {
	score := zxcvbn.PasswordStrength(password, z.UserInputs).Score
	if score < 0 {
		score = 0
	}
	if score >= len(zxcvbnTiers) {
		score = len(zxcvbnTiers) - 1
	}
	return zxcvbnTiers[score]
}

// ZxcvbnCrackTime reports zxcvbn's crack time display ("instant", "3 hours", "centuries").
type ZxcvbnCrackTime struct {
	UserInputs []string
}

func (z ZxcvbnCrackTime) Evaluate(password string) string {
	return zxcvbn.PasswordStrength(password, z.UserInputs).CrackTimeDisplay
}
