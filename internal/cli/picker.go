package cli

import (
	"errors"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ErrNotTTY is returned when an interactive picker is requested without a
// terminal.
var ErrNotTTY = errors.New("interactive picker requires a terminal")

// PickItem is one choice in a picker.
type PickItem struct {
	ID   string
	Name string
	Desc string
}

type pickItem struct {
	PickItem
	active bool
}

func (i pickItem) Title() string {
	if i.active {
		return i.Name + " *"
	}
	return i.Name
}
func (i pickItem) Description() string {
	if i.Desc != "" {
		return i.Desc
	}
	return i.ID
}
func (i pickItem) FilterValue() string { return i.Name + " " + i.ID }

type pickModel struct {
	list     list.Model
	selected string
	quitting bool
}

func newPickModel(title string, items []PickItem, activeID string) pickModel {
	listItems := make([]list.Item, len(items))
	initial := 0
	for i, it := range items {
		listItems[i] = pickItem{PickItem: it, active: it.ID == activeID}
		if it.ID == activeID {
			initial = i
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("#7c3aed")).
		Bold(true)
	delegate.Styles.DimmedDesc = delegate.Styles.DimmedDesc.
		Foreground(lipgloss.Color("#888888"))

	l := list.New(listItems, delegate, 40, min(len(items)*3+6, 20))
	l.SetShowTitle(true)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(len(items) > 8)
	l.Select(initial)

	return pickModel{list: l}
}

func (m pickModel) Init() tea.Cmd { return nil }

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if m.list.FilterState() == list.Filtering && msg.String() == "q" {
				break
			}
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.list.FilterState() == list.Filtering {
				break
			}
			if item, ok := m.list.SelectedItem().(pickItem); ok {
				m.selected = item.ID
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickModel) View() tea.View {
	if m.quitting && m.selected == "" {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

// Pick runs an interactive list and returns the chosen ID, or "" when the
// user cancels. out must be a terminal.
func Pick(out *Output, title string, items []PickItem, activeID string) (string, error) {
	if !out.TTY() {
		return "", ErrNotTTY
	}
	if len(items) == 0 {
		return "", nil
	}
	p := tea.NewProgram(newPickModel(title, items, activeID), tea.WithOutput(out.Writer()))
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	return final.(pickModel).selected, nil
}
