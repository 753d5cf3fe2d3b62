package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VoxDroid/pokedex/internal/cry"
	"github.com/VoxDroid/pokedex/internal/pokedex"
	"github.com/VoxDroid/pokedex/internal/theme"
	modelpkg "github.com/VoxDroid/pokedex/internal/tui/model"
)

func (m *TuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.dispatchKey(msg)

	case startDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.fatal = pokedex.InitFailureMessage
			return m, nil
		}
		m.applyTheme(m.uiModel.Theme())
		m.sync()
		m.setStatus(fmt.Sprintf("%d Pokémon loaded", len(m.frame.Records)), false)
		return m, nil

	case searchDoneMsg:
		m.searching = false
		m.sync()
		if errors.Is(msg.err, pokedex.ErrBusy) {
			m.setStatus("A search is already running", true)
			return m, nil
		}
		switch msg.out.State {
		case pokedex.Found:
			rec := msg.out.Records[0]
			m.setStatus("Found "+pokedex.DisplayName(rec.Name), false)
			m.focusList()
			return m, m.describeCmd(rec)
		case pokedex.NotFound:
			m.setStatus("", false)
		case pokedex.LocalMatch:
			m.setStatus(fmt.Sprintf("%d shown", len(msg.out.Records)), false)
		}
		return m, nil

	case detailMsg:
		if msg.err == nil {
			m.details[msg.id] = msg.detail
		}
		m.synced = false
		m.sync()
		return m, nil

	case cryDoneMsg:
		switch {
		case errors.Is(msg.err, cry.ErrNoPlayer):
			m.setStatus("No cry player configured (set cry.player)", true)
		case errors.Is(msg.err, modelpkg.ErrNoSelection):
			m.setStatus("Select a Pokémon first", true)
		case msg.err != nil:
			m.setStatus("Could not play cry: "+msg.err.Error(), true)
		default:
			m.setStatus("Played "+pokedex.DisplayName(msg.name)+"'s cry", false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refreshDetail()
		return m, nil
	}
	return m, nil
}

// dispatchKey routes a KeyMsg based on which widget has focus.
func (m *TuiModel) dispatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.fatal != "" {
		if s := msg.String(); s == "q" || s == "esc" {
			return m, tea.Quit
		}
		return m, nil
	}
	if msg.Type == tea.KeyTab {
		if m.focusInput {
			m.focusList()
		} else {
			m.focusSearch()
		}
		return m, nil
	}
	if m.focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *TuiModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.focusList()
		return m, nil
	case tea.KeyEnter:
		if m.searching || m.loading {
			return m, nil
		}
		m.searching = true
		m.setStatus(pokedex.SearchingMessage, false)
		return m, m.searchCmd(m.input.Value())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	v := m.input.Value()
	if v == "" && m.lastQuery != "" && !m.searching && !m.loading {
		m.uiModel.ClearSearch()
		m.sync()
		m.setStatus("", false)
	}
	m.lastQuery = v
	return m, cmd
}

func (m *TuiModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "/":
		m.focusSearch()
		return m, nil
	case "enter":
		it, ok := m.list.SelectedItem().(pokeItem)
		if !ok || !m.uiModel.Choose(it.rec.ID) {
			return m, nil
		}
		m.sync()
		return m, m.describeCmd(it.rec)
	case "p":
		name := ""
		if r, ok := m.uiModel.Selected(); ok {
			name = r.Name
		}
		return m, m.cryCmd(name)
	case "T", "t":
		m.applyTheme(m.uiModel.ToggleTheme())
		m.refreshDetail()
		return m, nil
	case "pgup":
		m.vp.HalfViewUp()
		return m, nil
	case "pgdown":
		m.vp.HalfViewDown()
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *TuiModel) focusSearch() {
	m.focusInput = true
	m.input.Focus()
}

func (m *TuiModel) focusList() {
	m.focusInput = false
	m.input.Blur()
}

func (m *TuiModel) applyTheme(n theme.Name) {
	m.themeName = n
	m.palette = theme.PaletteFor(n)
}

// layout sizes the panes for the current window.
func (m *TuiModel) layout() {
	headH := 3 // title + search box
	footerH := 2
	bodyH := m.height - headH - footerH - 2
	if bodyH < 3 {
		bodyH = 3
	}

	sideW := int(float64(m.width) * 0.35)
	if sideW > 36 {
		sideW = 36
	}
	if sideW < 20 {
		sideW = 20
	}
	innerSideW := sideW - 2
	if innerSideW < 10 {
		innerSideW = 10
	}
	rightW := m.width - sideW - 4
	if rightW < 12 {
		rightW = 12
	}
	innerRightW := rightW - 2
	if innerRightW < 10 {
		innerRightW = 10
	}
	innerBodyH := bodyH - 2
	if innerBodyH < 1 {
		innerBodyH = 1
	}

	m.list.SetSize(innerSideW, innerBodyH)
	m.ensureViewportSize(innerRightW, innerBodyH)
	m.input.Width = m.width - 8
}
