// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package tui is a terminal front-end for the password strength widget.
package tui

import (
	"strings"

	"github.com/alvinbaena/pwd-strength/internal/clipboard"
	"github.com/alvinbaena/pwd-strength/internal/evaluator"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

type keyMap struct {
	Toggle   key.Binding
	Generate key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Generate, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var defaultKeyMap = keyMap{
	Toggle:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "show/hide")),
	Generate: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),
	Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
	Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

// redrawMsg is sent when the screen changed outside of Update.
type redrawMsg struct{}

// Model is the bubbletea model of the widget. Evaluations and toasts arrive
// through the Screen, the rest through key presses.
type Model struct {
	input  textinput.Model
	screen *Screen
	eval   *evaluator.Evaluator
	widget *evaluator.Widget
	keys   keyMap
	help   help.Model
}

// passwordInput exposes the text input to the widget. Only Update calls it.
type passwordInput struct {
	m *Model
}

func (p passwordInput) Value() string { return p.m.input.Value() }

func (p passwordInput) SetValue(value string) {
	p.m.input.SetValue(value)
	p.m.input.CursorEnd()
}

func (p passwordInput) Masked() bool { return p.m.input.EchoMode == textinput.EchoPassword }

func (p passwordInput) SetMasked(masked bool) {
	if masked {
		p.m.input.EchoMode = textinput.EchoPassword
	} else {
		p.m.input.EchoMode = textinput.EchoNormal
	}
}

func NewModel(client evaluator.Client, screen *Screen, copier evaluator.Copier, opts evaluator.Options) *Model {
	input := textinput.New()
	input.Placeholder = "Enter a password"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()

	m := &Model{
		input:  input,
		screen: screen,
		keys:   defaultKeyMap,
		help:   help.New(),
	}
	m.eval = evaluator.New(client, screen, opts)
	m.widget = evaluator.NewWidget(m.eval, passwordInput{m: m}, screen, copier)
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case redrawMsg:
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.eval.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.widget.ToggleMask()
			return m, nil
		case key.Matches(msg, m.keys.Generate):
			if err := m.widget.Generate(); err != nil {
				log.Error().Err(err).Msg("could not generate a password")
			}
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.widget.Copy()
			return m, nil
		}
	}

	previous := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != previous {
		m.widget.Changed()
	}
	return m, cmd
}

func (m *Model) View() string {
	lines, toasts := m.screen.snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Password strength"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("  ")
	b.WriteString(hintStyle.Render("[" + lines[evaluator.ElementToggle].text + "]"))
	b.WriteString("\n\n")

	for _, c := range evaluator.Criteria {
		l := lines[c.ID]
		b.WriteString(ColorStyle(l.color).Render("• " + l.text))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, id := range []evaluator.ElementID{evaluator.ElementStrength, evaluator.ElementTimeToCrack, evaluator.ElementNote} {
		l := lines[id]
		if !l.visible || l.text == "" {
			continue
		}
		b.WriteString(ColorStyle(l.color).Render(l.text))
		b.WriteString("\n")
	}

	for _, t := range toasts {
		b.WriteString("\n")
		b.WriteString(toastView(t))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Close stops the evaluator. The program may already be gone.
func (m *Model) Close() {
	m.eval.Close()
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(client evaluator.Client, opts evaluator.Options) error {
	screen := NewScreen()
	copier := clipboard.NewHelper(clipboard.System, screen, clipboard.DefaultTiming)
	m := NewModel(client, screen, copier, opts)
	defer m.Close()

	p := tea.NewProgram(m)
	screen.SetNotify(func() {
		// Send blocks until Update runs, which may be waiting on the evaluator lock.
		go p.Send(redrawMsg{})
	})

	_, err := p.Run()
	return err
}
