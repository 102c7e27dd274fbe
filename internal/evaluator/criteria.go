// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package evaluator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// MinLength is the shortest password that passes the length criterion.
const MinLength = 8

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	specialRegex   = regexp.MustCompile(`[!@#$%^&*()_\-+=\[\]{};:'"\\|,.<>/?]`)
	numbersRegex   = regexp.MustCompile(`\d`)
)

// Criterion is one of the local checks run against the password.
type Criterion struct {
	ID      ElementID
	Default string
	match   func(password string) bool
}

// Result is the outcome of a Criterion against a given password.
type Result struct {
	ID     ElementID
	Label  string
	Passed bool
}

// Criteria lists the local checks in display order.
var Criteria = []Criterion{
	{
		ID:      ElementLength,
		Default: "Length: at least 8 characters",
		match: func(password string) bool {
			return utf8.RuneCountInString(password) >= MinLength
		},
	},
	{ID: ElementUppercase, Default: "Contains uppercase letters", match: uppercaseRegex.MatchString},
	{ID: ElementLowercase, Default: "Contains lowercase letters", match: lowercaseRegex.MatchString},
	{ID: ElementSpecial, Default: "Contains special characters", match: specialRegex.MatchString},
	{ID: ElementNumbers, Default: "Contains numbers", match: numbersRegex.MatchString},
}

// Check runs every criterion against the password.
func Check(password string) []Result {
	results := make([]Result, 0, len(Criteria))
	for _, c := range Criteria {
		label := c.Default
		if c.ID == ElementLength {
			label = fmt.Sprintf("Length: %d", utf8.RuneCountInString(password))
		}
		results = append(results, Result{ID: c.ID, Label: label, Passed: c.match(password)})
	}
	return results
}

// RenderCriteria writes the local check results to the sink.
func RenderCriteria(sink Sink, password string) []Result {
	results := Check(password)
	for _, r := range results {
		if r.Passed {
			setColor(sink, r.ID, ColorPass)
		} else {
			setColor(sink, r.ID, ColorFail)
		}
		setText(sink, r.ID, r.Label)
	}
	return results
}

// ResetCriteria puts every indicator back to its default text and color.
func ResetCriteria(sink Sink) {
	for _, c := range Criteria {
		setColor(sink, c.ID, ColorNeutral)
		setText(sink, c.ID, c.Default)
	}
}
