// Package tui is the built-in fallback picker: a fuzzy-filtered candidate
// list in the terminal, for sessions without fuzzel or bemenu.
package tui

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"gomoji/internal/emoji"
)

var (
	docStyle      = lipgloss.NewStyle().Margin(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	focusedStyle  = lipgloss.NewStyle().PaddingLeft(0).Foreground(lipgloss.Color("75")).Bold(true)
	itemStyle     = lipgloss.NewStyle().PaddingLeft(0)
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// item adapts a candidate line to the bubbles list component.
type item struct {
	line string
}

func (i item) Title() string       { return i.line }
func (i item) Description() string { return "" }
func (i item) FilterValue() string { return i.line }

// delegate renders one candidate per row.
type delegate struct{}

func (d delegate) Height() int                               { return 1 }
func (d delegate) Spacing() int                              { return 0 }
func (d delegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d delegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}
	if index == m.Index() {
		fmt.Fprint(w, focusedStyle.Render("> "+i.line))
		return
	}
	fmt.Fprint(w, itemStyle.Render("  "+i.line))
}

// Model holds the picker state. Typing always filters; enter confirms, esc
// cancels (equivalent to an external picker exiting with no output).
type Model struct {
	list   list.Model
	all    []string
	query  string
	choice string
}

func newModel(lines []string) Model {
	l := list.New(toItems(lines), delegate{}, 0, 0)
	l.Title = "Pick an emoji:"
	l.Styles.Title = titleStyle
	// The component's own filtering is replaced by fuzzy search on every
	// keystroke, fuzzel style.
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)

	return Model{list: l, all: lines}
}

func toItems(lines []string) []list.Item {
	items := make([]list.Item, len(lines))
	for i, line := range lines {
		items[i] = item{line: line}
	}
	return items
}

// filterLines ranks the candidate lines against a fuzzy query, best match
// first. An empty query keeps the original (ranked) order.
func filterLines(query string, all []string) []string {
	if query == "" {
		return all
	}
	ranks := fuzzy.RankFindFold(query, all)
	sort.Sort(ranks)
	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.Target
	}
	return out
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-1)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEnter:
			if it, ok := m.list.SelectedItem().(item); ok {
				m.choice = it.line
			}
			return m, tea.Quit

		case tea.KeyBackspace:
			if len(m.query) > 0 {
				runes := []rune(m.query)
				m.query = string(runes[:len(runes)-1])
				m.applyFilter()
			}
			return m, nil

		case tea.KeyUp, tea.KeyCtrlK:
			m.list.CursorUp()
			return m, nil

		case tea.KeyDown, tea.KeyCtrlJ:
			m.list.CursorDown()
			return m, nil

		case tea.KeyRunes, tea.KeySpace:
			m.query += string(msg.Runes)
			m.applyFilter()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) applyFilter() {
	m.list.SetItems(toItems(filterLines(m.query, m.all)))
	m.list.Select(0)
}

func (m Model) View() string {
	prompt := promptStyle.Render("Filter: ") + m.query + helpStyle.Render("_")
	return docStyle.Render(m.list.View() + "\n" + prompt)
}

// Pick runs the built-in picker over the merged candidates and returns the
// chosen candidate line, or "" when the user cancels. The icon annotation
// is a preview hint for graphical pickers and is not rendered here; the
// display line alone round-trips through the resolver.
func Pick(cands []emoji.Candidate) (string, error) {
	lines := make([]string, len(cands))
	for i, c := range cands {
		lines[i] = c.Display
	}

	res, err := tea.NewProgram(newModel(lines), tea.WithAltScreen()).Run()
	if err != nil {
		return "", err
	}
	final, ok := res.(Model)
	if !ok {
		return "", nil
	}
	return final.choice, nil
}
