package prompt

import (
	"context"
	"errors"
	"os"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/runmenu/internal/ui/styles"
)

// SelectResult holds the result of a selection prompt.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

type listItem struct {
	title string
	index int
}

func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.title }

type selectModel struct {
	list      list.Model
	done      bool
	cancelled bool
	selected  int
}

func newSelectModel(prompt string, options []string, defaultIndex int) selectModel {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = listItem{title: opt, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = styles.AccentStyle

	l := list.New(items, delegate, 60, min(len(options)+6, 20))
	l.Title = prompt
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	if defaultIndex > 0 && defaultIndex < len(options) {
		l.Select(defaultIndex)
	}

	return selectModel{
		list:     l,
		selected: -1,
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(listItem); ok {
				m.selected = item.index
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

// result converts the final model state into a SelectResult.
func (m selectModel) result(options []string) SelectResult {
	if m.cancelled || m.selected < 0 || m.selected >= len(options) {
		return SelectResult{Cancelled: true}
	}
	return SelectResult{
		Value: options[m.selected],
		Index: m.selected,
	}
}

// Select shows a list selection prompt with the cursor on defaultIndex and
// blocks until the user picks an entry or interrupts.
// The prompt renders to stderr.
func Select(ctx context.Context, prompt string, options []string, defaultIndex int) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	p := tea.NewProgram(
		newSelectModel(prompt, options, defaultIndex),
		tea.WithOutput(os.Stderr),
		tea.WithContext(ctx),
	)
	finalModel, err := p.Run()
	return finish(finalModel, err, options)
}

// finish maps the outcome of the prompt program to a SelectResult.
// SIGINT while the prompt runs counts as a cancel, not a failure.
func finish(finalModel tea.Model, err error, options []string) (SelectResult, error) {
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return SelectResult{Cancelled: true}, nil
		}
		return SelectResult{}, err
	}

	m, ok := finalModel.(selectModel)
	if !ok {
		return SelectResult{Cancelled: true}, nil
	}
	return m.result(options), nil
}

// Selector adapts Select to an interface so callers can swap in a fake.
type Selector struct{}

// Select calls the package-level Select.
func (Selector) Select(ctx context.Context, prompt string, options []string, defaultIndex int) (SelectResult, error) {
	return Select(ctx, prompt, options, defaultIndex)
}
