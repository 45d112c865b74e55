package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/bloodline/pkg/lineage"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PairPickerModel - Interactive selection of two vampires
// =============================================================================

// PairPickerModel is the bubbletea model for choosing two vampires.
// Vampires are listed in family order, indented by generation.
type PairPickerModel struct {
	Tree     *lineage.Tree
	Order    []lineage.ID
	Cursor   int
	Chosen   []lineage.ID
	Height   int
	Offset   int
	Canceled bool
}

// NewPairPickerModel creates a picker listing every line in t.
func NewPairPickerModel(t *lineage.Tree) PairPickerModel {
	var order []lineage.ID
	for _, root := range t.Originals() {
		order = slices.AppendSeq(order, t.Walk(root))
	}
	return PairPickerModel{
		Tree:   t,
		Order:  order,
		Height: 15,
	}
}

// Done reports whether two vampires have been chosen.
func (m PairPickerModel) Done() bool { return len(m.Chosen) == 2 }

func (m PairPickerModel) Init() tea.Cmd {
	return nil
}

func (m PairPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Canceled = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Order)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			if len(m.Order) == 0 {
				return m, nil
			}
			id := m.Order[m.Cursor]
			if i := slices.Index(m.Chosen, id); i >= 0 {
				m.Chosen = slices.Delete(slices.Clone(m.Chosen), i, i+1)
				return m, nil
			}
			m.Chosen = append(slices.Clone(m.Chosen), id)
			if m.Done() {
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PairPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Pick Two Vampires"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ pick/unpick  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Order))
	for i := m.Offset; i < end; i++ {
		id := m.Order[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := " "
		if slices.Contains(m.Chosen, id) {
			mark = StyleBlood.Render("●")
		}

		v, _ := m.Tree.Vampire(id)
		indent := strings.Repeat("  ", m.Tree.Generation(id))
		line := fmt.Sprintf("%s%s %s%s %s", cursor, mark, indent, v.Name,
			listDimStyle.Render(fmt.Sprintf("(%d)", v.YearConverted)))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  picked %d/2", m.Cursor+1, len(m.Order), len(m.Chosen))))
	return b.String()
}
