package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/VoxDroid/pokedex/internal/pokedex"
)

func (m *TuiModel) View() string {
	p := m.palette
	width := m.width
	if width == 0 {
		width = 80
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Title).
		Background(p.TitleBg).
		Padding(0, 1).
		Width(width).
		Render(listTitle + "  " + m.themeName.Icon())

	if m.fatal != "" {
		msg := lipgloss.NewStyle().Foreground(p.Error).Bold(true).Padding(1, 2).Render(m.fatal)
		hint := lipgloss.NewStyle().Italic(true).Foreground(p.Muted).Render("(q) Quit")
		return lipgloss.JoinVertical(lipgloss.Left, title, msg, hint)
	}

	inputBorder := p.Border
	if m.focusInput {
		inputBorder = p.BorderFocus
	}
	search := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(inputBorder).
		Width(width - 2).
		Render(m.input.View())

	sideBorder, rightBorder := p.BorderFocus, p.Border
	if m.focusInput {
		sideBorder = p.Border
	}
	var left string
	switch {
	case m.loading:
		left = lipgloss.NewStyle().Foreground(p.Muted).Render(pokedex.LoadingMessage)
	case m.frame.ListMsg != "":
		st := lipgloss.NewStyle().Foreground(p.Muted)
		if m.frame.ListErr {
			st = st.Foreground(p.Error)
		}
		left = st.Width(m.list.Width()).Render(m.frame.ListMsg)
	default:
		left = m.list.View()
	}
	sideStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(sideBorder).
		Width(m.list.Width()).
		Height(m.list.Height())
	rightStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(rightBorder).
		Width(m.vp.Width).
		Height(m.vp.Height)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sideStyle.Render(left), rightStyle.Render(m.vp.View()))

	footer := lipgloss.NewStyle().
		Italic(true).
		Foreground(p.Muted).
		Render("(/) Search • (Enter) Select • (p) Cry • (T) Theme • (Tab) Focus • (q) Quit")

	statusFg := p.StatusFg
	if m.statusErr {
		statusFg = p.Error
	}
	status := lipgloss.NewStyle().
		Background(p.StatusBg).
		Foreground(statusFg).
		Padding(0, 1).
		Width(width).
		Render(m.status)

	return lipgloss.JoinVertical(lipgloss.Left, title, search, body, footer, status)
}
