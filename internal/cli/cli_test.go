package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alvinbaena/pwd-strength/internal/remote"
	"github.com/alvinbaena/pwd-strength/internal/strength"
	"github.com/alvinbaena/pwd-strength/internal/tui"
)

type stubClient struct {
	verdict remote.Verdict
	err     error
}

func (s stubClient) Evaluate(context.Context, string) (remote.Verdict, error) {
	return s.verdict, s.err
}

func TestCheckPassword(t *testing.T) {
	client := stubClient{verdict: remote.Verdict{Strength: "Strong", TimeToCrack: "5 years, 3 days"}}

	var out bytes.Buffer
	checkPassword(context.Background(), client, "Abcdefg1").print(&out)

	for _, want := range []string{"Length: 8", "Password strength: Strong", "Estimated time to crack: 5 years, 3 days"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Output should contain %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), tui.NoteText) {
		t.Errorf("Note should be hidden for a real crack time")
	}
}

func TestCheckPassword_NearZero(t *testing.T) {
	client := stubClient{verdict: remote.Verdict{Strength: "Weak", TimeToCrack: "0 years, 0 days"}}

	var out bytes.Buffer
	checkPassword(context.Background(), client, "abc").print(&out)

	if !strings.Contains(out.String(), tui.NoteText) {
		t.Errorf("Note should be shown:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Estimated time to crack") {
		t.Errorf("Crack time should be suppressed:\n%s", out.String())
	}
}

func TestCheckPassword_Failure(t *testing.T) {
	client := stubClient{err: errors.New("connection refused")}

	var out bytes.Buffer
	checkPassword(context.Background(), client, "abc").print(&out)

	if !strings.Contains(out.String(), "Length: 3") {
		t.Errorf("Criteria should render without the service:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Password strength") {
		t.Errorf("There should be no verdict:\n%s", out.String())
	}
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("one\n\ntwo\nthree"))
	if err != nil {
		t.Fatalf("Should not fail reading lines: %s", err)
	}
	if len(lines) != 3 || lines[2] != "three" {
		t.Errorf("Empty lines should be skipped, got %v", lines)
	}
}

func TestPrintReport(t *testing.T) {
	report := strength.Report{
		Total:              1234,
		Tiers:              map[string]int{strength.Weak: 1000, strength.Strong: 234},
		MinLog10Seconds:    -5,
		MedianLog10Seconds: 0,
		MaxLog10Seconds:    30,
	}

	var out bytes.Buffer
	printReport(&out, report, strength.ModeRules)

	for _, want := range []string{"Evaluated 1,234 passwords", "1,000", "median  0 years, 0 days, 0 hours, 0 minutes, 1 seconds", "about 10^"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Report should contain %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), strength.Moderate) {
		t.Errorf("Empty tiers should be left out:\n%s", out.String())
	}
}
