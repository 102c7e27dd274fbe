package tui

import (
	"strings"

	"github.com/alvinbaena/pwd-strength/internal/clipboard"
	"github.com/alvinbaena/pwd-strength/internal/evaluator"
	"github.com/charmbracelet/lipgloss"
)

var namedColors = map[evaluator.Color]lipgloss.Color{
	evaluator.ColorPass: lipgloss.Color("10"),
	evaluator.ColorFail: lipgloss.Color("9"),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	toastStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("230"))
)

// ColorStyle is a foreground style for an evaluator color.
func ColorStyle(c evaluator.Color) lipgloss.Style {
	if named, ok := namedColors[c]; ok {
		return lipgloss.NewStyle().Foreground(named)
	}
	if strings.HasPrefix(string(c), "#") {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return lipgloss.NewStyle()
}

func toastView(t toast) string {
	style := toastStyle.Background(lipgloss.Color("22"))
	if t.Kind == clipboard.KindError {
		style = toastStyle.Background(lipgloss.Color("52"))
	}
	// faded in or out
	if t.opacity < 1 {
		style = style.Faint(true)
	}
	return style.Render(t.Message)
}
