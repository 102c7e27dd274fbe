// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package evaluator

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alvinbaena/pwd-strength/internal/remote"
	"github.com/rs/zerolog"
)

type call struct {
	password string
	ctx      context.Context
	reply    chan reply
}

type reply struct {
	verdict remote.Verdict
	err     error
}

// fakeClient parks every call until the test replies to it. With honorCtx the
// call also returns as soon as its context is done.
type fakeClient struct {
	mu       sync.Mutex
	calls    []*call
	honorCtx bool
}

func (c *fakeClient) Evaluate(ctx context.Context, password string) (remote.Verdict, error) {
	cl := &call{password: password, ctx: ctx, reply: make(chan reply, 1)}
	c.mu.Lock()
	c.calls = append(c.calls, cl)
	c.mu.Unlock()

	if c.honorCtx {
		select {
		case r := <-cl.reply:
			return r.verdict, r.err
		case <-ctx.Done():
			return remote.Verdict{}, ctx.Err()
		}
	}
	r := <-cl.reply
	return r.verdict, r.err
}

func (c *fakeClient) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func (c *fakeClient) call(i int) *call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[i]
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type harness struct {
	eval      *Evaluator
	client    *fakeClient
	sink      *recordingSink
	logs      *syncBuffer
	responses chan struct{}
}

func newHarness(t *testing.T, honorCtx bool, opts Options) *harness {
	h := &harness{
		client:    &fakeClient{honorCtx: honorCtx},
		sink:      newRecordingSink(),
		logs:      &syncBuffer{},
		responses: make(chan struct{}, 16),
	}

	logger := zerolog.New(h.logs)
	opts.Logger = &logger
	if opts.Debounce == 0 {
		opts.Debounce = 10 * time.Millisecond
	}

	h.eval = New(h.client, h.sink, opts)
	h.eval.responded = func() { h.responses <- struct{}{} }
	t.Cleanup(h.eval.Close)
	return h
}

func (h *harness) waitResponse(t *testing.T) {
	t.Helper()
	select {
	case <-h.responses:
	case <-time.After(2 * time.Second):
		t.Fatalf("Timed out waiting for a response to be handled")
	}
}

func TestEvaluator_RendersVerdict(t *testing.T) {
	h := newHarness(t, false, Options{})

	h.eval.EvaluateNow("Abcdefgh1!")
	waitFor(t, "the remote call", func() bool { return h.client.count() == 1 })
	h.client.call(0).reply <- reply{verdict: remote.Verdict{Strength: Strong, TimeToCrack: "5 years, 3 days"}}
	h.waitResponse(t)

	if got := h.sink.get(ElementStrength); got.text != "Password strength: Strong" || got.color != "#1844a2" {
		t.Errorf("Strength should be rendered with its tier color, was %+v", got)
	}
	if got := h.sink.get(ElementTimeToCrack); got.text != "Estimated time to crack: 5 years, 3 days" || got.color != ColorPass {
		t.Errorf("Crack time should be rendered, was %+v", got)
	}
	if h.sink.get(ElementNote).visible {
		t.Errorf("Note should be hidden")
	}
	if got := h.sink.get(ElementLength); got.text != "Length: 10" || got.color != ColorPass {
		t.Errorf("Length should pass, was %+v", got)
	}
}

func TestEvaluator_NearZeroCrackTime(t *testing.T) {
	h := newHarness(t, false, Options{})

	h.eval.EvaluateNow("abc")
	waitFor(t, "the remote call", func() bool { return h.client.count() == 1 })
	h.client.call(0).reply <- reply{verdict: remote.Verdict{Strength: Weak, TimeToCrack: "0 years, 0 days"}}
	h.waitResponse(t)

	if got := h.sink.get(ElementStrength); got.text != "Password strength: Weak" {
		t.Errorf("Strength should still be rendered, was %+v", got)
	}
	if got := h.sink.get(ElementTimeToCrack); got.text != "" {
		t.Errorf("Crack time should be suppressed, was %+v", got)
	}
	if got := h.sink.get(ElementNote); !got.visible || got.color != ColorFail {
		t.Errorf("Note should be shown in red, was %+v", got)
	}
}

func TestEvaluator_Debounce(t *testing.T) {
	h := newHarness(t, true, Options{Debounce: 30 * time.Millisecond})

	for _, p := range []string{"a", "ab", "abc", "abcd"} {
		h.eval.Input(p)
		time.Sleep(2 * time.Millisecond)
	}

	if got := h.sink.get(ElementLength); got.text != "" {
		t.Errorf("Nothing should render before typing pauses, got %+v", got)
	}

	waitFor(t, "the remote call", func() bool { return h.client.count() == 1 })
	time.Sleep(60 * time.Millisecond)

	if n := h.client.count(); n != 1 {
		t.Fatalf("Rapid typing should collapse into one call, got %d", n)
	}
	if p := h.client.call(0).password; p != "abcd" {
		t.Errorf("The call should carry the latest input, carried %q", p)
	}
	if got := h.sink.get(ElementLength); got.text != "Length: 4" {
		t.Errorf("Criteria should reflect the latest input, got %+v", got)
	}
}

func TestEvaluator_Supersession(t *testing.T) {
	// The client ignores cancellation so the stale reply really arrives.
	h := newHarness(t, false, Options{})

	h.eval.EvaluateNow("first-password")
	waitFor(t, "the first call", func() bool { return h.client.count() == 1 })
	first := h.client.call(0)

	h.eval.EvaluateNow("second-password")
	waitFor(t, "the second call", func() bool { return h.client.count() == 2 })
	second := h.client.call(1)

	if !errors.Is(first.ctx.Err(), context.Canceled) {
		t.Errorf("The first call should be cancelled, ctx error is %v", first.ctx.Err())
	}
	if second.ctx.Err() != nil {
		t.Errorf("The second call should be live")
	}

	first.reply <- reply{verdict: remote.Verdict{Strength: VeryWeak, TimeToCrack: "1 years, 0 days"}}
	h.waitResponse(t)
	if got := h.sink.get(ElementStrength); got.text != "" {
		t.Errorf("A superseded reply should not render, got %+v", got)
	}

	second.reply <- reply{verdict: remote.Verdict{Strength: Strong, TimeToCrack: "9 years, 1 days"}}
	h.waitResponse(t)
	if got := h.sink.get(ElementStrength); got.text != "Password strength: Strong" {
		t.Errorf("Only the latest reply should render, got %+v", got)
	}
	if logs := h.logs.String(); logs != "" {
		t.Errorf("Nothing should be logged, got %s", logs)
	}
}

func TestEvaluator_SupersededFailureIsSilent(t *testing.T) {
	h := newHarness(t, false, Options{})

	h.eval.EvaluateNow("first-password")
	waitFor(t, "the first call", func() bool { return h.client.count() == 1 })
	h.eval.EvaluateNow("second-password")
	waitFor(t, "the second call", func() bool { return h.client.count() == 2 })

	h.client.call(0).reply <- reply{err: errors.New("connection refused")}
	h.waitResponse(t)

	if logs := h.logs.String(); logs != "" {
		t.Errorf("A superseded failure should not be logged, got %s", logs)
	}
}

func TestEvaluator_ClearCancelsAndResets(t *testing.T) {
	h := newHarness(t, true, Options{})

	h.eval.EvaluateNow("Abcdefgh1!")
	waitFor(t, "the remote call", func() bool { return h.client.count() == 1 })

	h.eval.Input("   ")

	// Reset is synchronous, no waiting on the debounce window.
	for _, c := range Criteria {
		if got := h.sink.get(c.ID); got.text != c.Default || got.color != ColorNeutral {
			t.Errorf("%s should be back to its default, was %+v", c.ID, got)
		}
	}
	if got := h.sink.get(ElementStrength); got.text != "" || got.color != ColorNeutral {
		t.Errorf("Strength should be cleared, was %+v", got)
	}
	if h.sink.get(ElementNote).visible {
		t.Errorf("Note should be hidden")
	}

	h.waitResponse(t)
	if !errors.Is(h.client.call(0).ctx.Err(), context.Canceled) {
		t.Errorf("Clearing should cancel the in-flight call")
	}
	if got := h.sink.get(ElementStrength); got.text != "" {
		t.Errorf("A cancelled call should not render, got %+v", got)
	}
	if logs := h.logs.String(); logs != "" {
		t.Errorf("A cancelled call should not be logged, got %s", logs)
	}
}

func TestEvaluator_ClearStopsPendingDebounce(t *testing.T) {
	h := newHarness(t, true, Options{Debounce: 20 * time.Millisecond})

	h.eval.Input("abc")
	h.eval.Input("")
	time.Sleep(60 * time.Millisecond)

	if n := h.client.count(); n != 0 {
		t.Errorf("Clearing should drop the pending evaluation, got %d calls", n)
	}
}

func TestEvaluator_FailureLeavesDisplay(t *testing.T) {
	h := newHarness(t, false, Options{})

	h.eval.EvaluateNow("Abcdefgh1!")
	waitFor(t, "the first call", func() bool { return h.client.count() == 1 })
	h.client.call(0).reply <- reply{verdict: remote.Verdict{Strength: Moderate, TimeToCrack: "3 years, 2 days"}}
	h.waitResponse(t)

	h.eval.EvaluateNow("Abcdefgh1!?")
	waitFor(t, "the second call", func() bool { return h.client.count() == 2 })
	h.client.call(1).reply <- reply{err: remote.ErrUnexpectedStatus}
	h.waitResponse(t)

	if got := h.sink.get(ElementStrength); got.text != "Password strength: Moderate" {
		t.Errorf("A failure should leave the last verdict, got %+v", got)
	}
	if logs := h.logs.String(); !bytes.Contains([]byte(logs), []byte("there was a problem evaluating the password")) {
		t.Errorf("A failure should be logged, got %q", logs)
	}
}

func TestEvaluator_Timeout(t *testing.T) {
	h := newHarness(t, true, Options{Timeout: 10 * time.Millisecond})

	h.eval.EvaluateNow("abc")
	h.waitResponse(t)

	if logs := h.logs.String(); !bytes.Contains([]byte(logs), []byte("deadline exceeded")) {
		t.Errorf("A timed out call should be logged, got %q", logs)
	}
}

func TestEvaluator_Close(t *testing.T) {
	h := newHarness(t, true, Options{})

	h.eval.EvaluateNow("abc")
	waitFor(t, "the remote call", func() bool { return h.client.count() == 1 })
	h.eval.Close()
	h.waitResponse(t)

	h.eval.EvaluateNow("abcd")
	time.Sleep(20 * time.Millisecond)
	if n := h.client.count(); n != 1 {
		t.Errorf("A closed evaluator should ignore input, got %d calls", n)
	}
}

func TestStrengthColor(t *testing.T) {
	tests := map[string]Color{
		VeryWeak:   "#9c0a0a",
		Weak:       "#c04e0c",
		Moderate:   "#b1b70e",
		Good:       "#0ba410",
		Strong:     "#1844a2",
		VeryStrong: "#821b9c",
		"Unknown":  ColorNeutral,
		"":         ColorNeutral,
	}

	for strength, want := range tests {
		if got := StrengthColor(strength); got != want {
			t.Errorf("Color for %q should be %s, is %s", strength, want, got)
		}
	}

	// annotated labels are not in the palette
	if got := StrengthColor("Very Weak (common password)"); got != ColorNeutral {
		t.Errorf("Annotated labels should be neutral, got %s", got)
	}
}

func TestNearZero(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"instant", true},
		{"0.000001 seconds", true},
		{"0 seconds", true},
		{"45 seconds", false},
		{"59 seconds", false},
		{"1.5 seconds", false},
		{"0 years, 0 days, 3 hours, 0 minutes, 1 seconds", true},
		{"5 years, 3 days", false},
		{"10 years, 0 days", false},
		{"3 hours", false},
		{"centuries", false},
	}

	for _, tt := range tests {
		if got := NearZero(tt.in); got != tt.want {
			t.Errorf("NearZero(%q) should be %v", tt.in, tt.want)
		}
	}
}

func TestRenderVerdict_NeedsBothTimeAndNote(t *testing.T) {
	sink := newRecordingSink(ElementStrength, ElementTimeToCrack)
	RenderVerdict(sink, remote.Verdict{Strength: Strong, TimeToCrack: "5 years, 3 days"})

	if got := sink.get(ElementStrength); got.text != "Password strength: Strong" {
		t.Errorf("Strength should render on its own, got %+v", got)
	}
	if got := sink.get(ElementTimeToCrack); got.text != "" {
		t.Errorf("Crack time should not render without the note element, got %+v", got)
	}
}
