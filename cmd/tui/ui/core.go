package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VoxDroid/pokedex/internal/pokedex"
	"github.com/VoxDroid/pokedex/internal/theme"
	"github.com/VoxDroid/pokedex/internal/tui/adapters"
)

const listTitle = "Pokédex"

// TuiModel is the Bubble Tea model used by cmd/tui.
type TuiModel struct {
	uiModel Model
	sink    *RenderSink

	list  list.Model
	vp    viewport.Model
	input textinput.Model

	width  int
	height int

	// focusInput: true = search box, false = list
	focusInput bool
	lastQuery  string

	frame   Frame
	synced  bool
	details map[int]adapters.Detail

	loading   bool
	searching bool
	fatal     string
	status    string
	statusErr bool

	themeName theme.Name
	palette   theme.Palette
}

// Messages
type startDoneMsg struct{ err error }
type searchDoneMsg struct {
	out pokedex.Outcome
	err error
}
type detailMsg struct {
	id     int
	detail adapters.Detail
	err    error
}
type cryDoneMsg struct {
	name string
	err  error
}

// NewModel constructs the TUI model. sink must be the renderer the
// session behind ui was built with.
func NewModel(ui Model, sink *RenderSink) *TuiModel {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = listTitle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	in := textinput.New()
	in.Placeholder = "Search by name, number or type"
	in.Prompt = "🔍 "
	in.CharLimit = 64

	name := ui.Theme()
	return &TuiModel{
		uiModel:   ui,
		sink:      sink,
		list:      l,
		vp:        viewport.New(0, 0),
		input:     in,
		details:   map[int]adapters.Detail{},
		loading:   true,
		themeName: name,
		palette:   theme.PaletteFor(name),
	}
}

// NewProgram constructs the tea.Program for the TUI.
func NewProgram(ui Model, sink *RenderSink) *tea.Program {
	return tea.NewProgram(NewModel(ui, sink), tea.WithAltScreen())
}

// Init loads the roster in the background.
func (m *TuiModel) Init() tea.Cmd {
	return func() tea.Msg {
		return startDoneMsg{err: m.uiModel.Start(context.Background())}
	}
}

func (m *TuiModel) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.uiModel.Search(context.Background(), query)
		return searchDoneMsg{out: out, err: err}
	}
}

func (m *TuiModel) describeCmd(r pokedex.Record) tea.Cmd {
	if _, ok := m.details[r.ID]; ok {
		return nil
	}
	return func() tea.Msg {
		d, err := m.uiModel.Describe(context.Background(), r)
		return detailMsg{id: r.ID, detail: d, err: err}
	}
}

func (m *TuiModel) cryCmd(name string) tea.Cmd {
	return func() tea.Msg {
		return cryDoneMsg{name: name, err: m.uiModel.PlayCry(context.Background())}
	}
}

// sync pulls the latest frame from the sink into the widgets.
func (m *TuiModel) sync() {
	f := m.sink.Snapshot()
	if m.synced && f.Seq == m.frame.Seq {
		return
	}
	m.frame = f
	m.synced = true

	items := make([]list.Item, 0, len(f.Records))
	activeIdx := -1
	for i, r := range f.Records {
		items = append(items, pokeItem{rec: r, active: r.ID == f.Active})
		if r.ID == f.Active {
			activeIdx = i
		}
	}
	m.list.SetItems(items)
	if activeIdx >= 0 {
		m.list.Select(activeIdx)
	} else if len(items) > 0 && m.list.Index() >= len(items) {
		m.list.Select(0)
	}
	m.refreshDetail()
}

func (m *TuiModel) refreshDetail() {
	if m.vp.Width == 0 || m.vp.Height == 0 {
		m.vp = viewport.New(40, 12)
	}
	if m.frame.Detail == nil {
		m.vp.SetContent(formatPlaceholder(m.frame.DetailMsg, m.frame.DetailErr, m.vp.Width, m.palette))
		return
	}
	d, ok := m.details[m.frame.Detail.ID]
	m.vp.SetContent(formatDetail(*m.frame.Detail, d, ok, m.vp.Width, m.palette))
}

func (m *TuiModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}
