package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/chartr/pkg/event"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ActorListModel - Interactive actor selection
// =============================================================================

// ActorItem is one row of the actor picker.
type ActorItem struct {
	ID      event.ActorID
	Tooltip string
	Events  int
}

// ActorListModel is the bubbletea model for interactive actor selection.
type ActorListModel struct {
	Actors   []ActorItem
	Cursor   int
	Selected *ActorItem
	Height   int
	Offset   int
}

// NewActorListModel creates a new actor list model.
func NewActorListModel(actors []ActorItem) ActorListModel {
	return ActorListModel{
		Actors: actors,
		Height: 15,
	}
}

// actorItems lists the actors of s in identity order.
func actorItems(s *event.Store) []ActorItem {
	var items []ActorItem
	for id := range s.Actors() {
		a, _ := s.Actor(id)
		n := 0
		if events, err := s.EventsFor(id); err == nil {
			for range events {
				n++
			}
		}
		items = append(items, ActorItem{ID: id, Tooltip: a.Tooltip, Events: n})
	}
	return items
}

func (m ActorListModel) Init() tea.Cmd {
	return nil
}

func (m ActorListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Actors)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Actors) == 0 {
				return m, tea.Quit
			}
			item := m.Actors[m.Cursor]
			m.Selected = &item
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ActorListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Actor"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Actors))
	for i := m.Offset; i < end; i++ {
		a := m.Actors[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-20s %s", cursor, a.ID, listDimStyle.Render(fmt.Sprintf("%d events", a.Events)))
		if a.Tooltip != "" {
			line += "  " + listDimStyle.Render(a.Tooltip)
		}

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.Actors)), len(m.Actors))))

	return b.String()
}

// pickActor runs the actor picker. It returns "" when the user quits
// without choosing.
func pickActor(items []ActorItem) (event.ActorID, error) {
	final, err := tea.NewProgram(NewActorListModel(items)).Run()
	if err != nil {
		return "", fmt.Errorf("actor picker: %w", err)
	}
	m, ok := final.(ActorListModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return m.Selected.ID, nil
}
