package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// MenuActionQuit is returned by RunMenu when the menu is closed without a
// selection.
const MenuActionQuit = "__quit__"

// ErrNotInteractive is returned by RunMenu when stdin/stdout is not a terminal.
var ErrNotInteractive = errors.New("non-interactive terminal")

type MenuOption func(*menuConfig)

type menuConfig struct {
	info []InfoLine
}

// InfoLine is a label/value pair shown beside the menu.
type InfoLine struct {
	Label string
	Value string
}

// WithInfo shows label/value pairs in the side panel.
func WithInfo(lines ...InfoLine) MenuOption {
	return func(cfg *menuConfig) {
		cfg.info = append(cfg.info, lines...)
	}
}

type menuKeyMap struct {
	Select key.Binding
	Quit   key.Binding
	Jump   key.Binding
}

func newMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Jump:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "quick launch")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Jump, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// MenuItem represents a selectable item in a TUI list.
type MenuItem struct {
	ID        string
	TitleText string
	Details   string
}

// Title returns the menu label.
func (m MenuItem) Title() string { return m.TitleText }

// Description returns the menu details.
func (m MenuItem) Description() string { return m.Details }

// FilterValue returns the filterable text.
func (m MenuItem) FilterValue() string { return m.TitleText + " " + m.Details + " " + m.ID }

type menuModel struct {
	list     list.Model
	title    string
	subtitle string
	choice   string
	quitting bool
	help     help.Model
	keys     menuKeyMap
	info     []InfoLine

	width  int
	height int
}

type launcherDelegate struct {
	slot     lipgloss.Style
	title    lipgloss.Style
	selected lipgloss.Style
}

func newLauncherDelegate() launcherDelegate {
	return launcherDelegate{
		slot:     lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted))),
		title:    lipgloss.NewStyle().Foreground(lipgloss.Color(string(Foreground))),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color(string(Primary))).Bold(true),
	}
}

func (d launcherDelegate) Height() int { return 1 }

func (d launcherDelegate) Spacing() int { return 0 }

func (d launcherDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d launcherDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok || m.Width() <= 0 {
		return
	}

	slot := fmt.Sprintf("%d.", index+1)
	content := menuItem.TitleText
	if menuItem.Details != "" && m.Width() > 68 {
		content += " - " + menuItem.Details
	}
	content = ansi.Truncate(content, max(14, m.Width()-6), "...")

	if index == m.Index() {
		fmt.Fprint(w, "> "+d.selected.Render(slot)+" "+d.selected.Render(content)) //nolint:errcheck
		return
	}
	fmt.Fprint(w, "  "+d.slot.Render(slot)+" "+d.title.Render(content)) //nolint:errcheck
}

func newMenuModel(title string, subtitle string, items []MenuItem, cfg menuConfig) menuModel {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, newLauncherDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	helpModel := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted)))
	helpModel.Styles.ShortKey = keyStyle
	helpModel.Styles.ShortDesc = hintStyle
	helpModel.Styles.FullKey = keyStyle
	helpModel.Styles.FullDesc = hintStyle

	return menuModel{
		list:     l,
		title:    title,
		subtitle: subtitle,
		help:     helpModel,
		keys:     newMenuKeyMap(),
		info:     cfg.info,
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(max(20, m.width-4), max(5, m.height-len(m.info)-10))
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				m.choice = item.ID
				return m, tea.Quit
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if m.selectByNumber(msg.String()) {
				return m, tea.Quit
			}
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.choice = MenuActionQuit
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *menuModel) selectByNumber(keyNum string) bool {
	target := int(keyNum[0] - '1')
	items := m.list.Items()
	if target < 0 || target >= len(items) {
		return false
	}

	m.list.Select(target)
	if item, ok := items[target].(MenuItem); ok {
		m.choice = item.ID
		return true
	}
	return false
}

func (m menuModel) View() tea.View {
	if m.quitting {
		return tea.View{}
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	body := m.list.View()
	if len(m.info) > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", m.renderInfo(width-4))
	}

	v := tea.NewView(Frame(m.title, m.subtitle, body, m.help.View(m.keys)))
	v.AltScreen = true
	return v
}

func (m menuModel) renderInfo(width int) string {
	lines := []string{
		lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true).Render("Preferences"),
	}
	for _, line := range m.info {
		lines = append(lines, menuInfoLine(line.Label, line.Value, width))
	}
	return strings.Join(lines, "\n")
}

func menuInfoLine(label string, value string, width int) string {
	if strings.TrimSpace(value) == "" {
		value = "unknown"
	}
	line := fmt.Sprintf("%-10s %s", strings.ToLower(label)+":", value)
	return MutedStyle.Render(ansi.Truncate(line, max(10, width), "..."))
}

// RunMenu displays a TUI list and returns the selected item ID.
func RunMenu(title string, subtitle string, items []MenuItem, options ...MenuOption) (string, error) {
	if !IsInteractiveTerminal() {
		return "", ErrNotInteractive
	}
	var cfg menuConfig
	for _, opt := range options {
		opt(&cfg)
	}

	result, err := tea.NewProgram(newMenuModel(title, subtitle, items, cfg)).Run()
	if err != nil {
		return "", err
	}
	if finalModel, ok := result.(menuModel); ok {
		return finalModel.choice, nil
	}
	return "", nil
}
