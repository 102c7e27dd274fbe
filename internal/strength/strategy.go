// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package strength scores passwords for the evaluation service.
package strength

import (
	"errors"
	"fmt"
)

// Strategy turns a password into a display string: a strength tier or a crack time.
type Strategy interface {
	Evaluate(password string) string
}

// Strategy names known to Get.
const (
	NameStrength        = "strength"
	NameTimeToCrack     = "time_to_crack"
	NameZxcvbn          = "zxcvbn"
	NameZxcvbnCrackTime = "zxcvbn_time"
	NameHybrid          = "hybrid"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Settings configure the strategies that need outside data.
type Settings struct {
	// CommonPasswordsFile lists one known password per line. A missing file
	// means an empty list.
	CommonPasswordsFile string
}

// Get returns the strategy registered under name.
func Get(name string, settings Settings) (Strategy, error) {
	switch name {
	case NameStrength:
		return RulesChecker{}, nil
	case NameTimeToCrack:
		return BruteForceCalculator{AttemptsPerSecond: DefaultAttemptsPerSecond}, nil
	case NameZxcvbn:
		return ZxcvbnChecker{}, nil
	case NameZxcvbnCrackTime:
		return ZxcvbnCrackTime{}, nil
	case NameHybrid:
		return NewHybridChecker(settings.CommonPasswordsFile)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
}

// Pair is the strength and crack time strategies used together for a verdict.
type Pair struct {
	Strength    Strategy
	TimeToCrack Strategy
}

// Mode selects the pair of strategies backing the evaluation service.
type Mode string

const (
	ModeRules  Mode = "rules"
	ModeZxcvbn Mode = "zxcvbn"
	ModeHybrid Mode = "hybrid"
)

// ForMode returns the strategy pair for a service mode.
func ForMode(mode Mode, settings Settings) (Pair, error) {
	var names [2]string
	switch mode {
	case ModeRules:
		names = [2]string{NameStrength, NameTimeToCrack}
	case ModeZxcvbn:
		names = [2]string{NameZxcvbn, NameZxcvbnCrackTime}
	case ModeHybrid:
		names = [2]string{NameHybrid, NameTimeToCrack}
	default:
		return Pair{}, fmt.Errorf("%w: mode %s", ErrUnknownStrategy, mode)
	}

	s, err := Get(names[0], settings)
	if err != nil {
		return Pair{}, err
	}
	t, err := Get(names[1], settings)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Strength: s, TimeToCrack: t}, nil
}
