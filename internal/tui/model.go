package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Janimeister/Taskmaster/internal/engine"
	"github.com/Janimeister/Taskmaster/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	tasks   []engine.Task
	board   []engine.LeaderboardEntry
	stats   engine.CompletionStats
	quote   *engine.Quote
	loading bool

	selected int
	lastLog  string
}

type loadedMsg struct {
	tasks []engine.Task
	board []engine.LeaderboardEntry
	stats engine.CompletionStats
}

type toggledMsg struct {
	res *engine.CompleteResult
	err error
}

type quoteMsg struct {
	quote engine.Quote
	err   error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCmd()}
	if m.svc.Settings().Current().ShowMotivation {
		cmds = append(cmds, m.quoteCmd())
	}
	return tea.Batch(cmds...)
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{
			tasks: m.svc.Catalog().Tasks(),
			board: m.svc.Leaderboard(),
			stats: m.svc.CompletionStats(),
		}
	}
}

func (m boardModel) toggleCmd(taskID string, done bool) tea.Cmd {
	return func() tea.Msg {
		if done {
			res, err := m.svc.Uncomplete(taskID)
			return toggledMsg{res: res, err: err}
		}
		res, err := m.svc.Complete(taskID)
		return toggledMsg{res: res, err: err}
	}
}

func (m boardModel) quoteCmd() tea.Cmd {
	return func() tea.Msg {
		q, err := engine.FetchQuote(m.ctx)
		return quoteMsg{quote: q, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.tasks = msg.tasks
		m.board = msg.board
		m.stats = msg.stats
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		switch {
		case msg.res.AllCompleted:
			m.lastLog = ui.BadgeAllDone + " Every task is checked off!"
		case msg.res.Changed:
			m.lastLog = fmt.Sprintf("Saved at %s.", time.Now().Format("15:04:05"))
		default:
			m.lastLog = "No change."
		}
		return m, m.loadCmd()
	case quoteMsg:
		if msg.err == nil {
			q := msg.quote
			m.quote = &q
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ", "c":
			if m.svc.Progress().CurrentUser() == "" {
				m.lastLog = "Log in first: tc login <nickname>"
				return m, nil
			}
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			t := m.tasks[m.selected]
			done := m.svc.Progress().IsTaskCompleted(t.ID)
			m.lastLog = fmt.Sprintf("Toggling %s…", t.ID)
			return m, m.toggleCmd(t.ID, done)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		r := ""
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(fmt.Sprintf("%-*s  %s\n", leftW, l, r))
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	user := m.svc.Progress().CurrentUser()
	who := ui.Muted.Render("(not logged in)")
	if user != "" {
		who = ui.Key.Render(user)
	}
	return ui.Heading(ui.IconParty, "Taskmaster") + "  " + ui.IconUser + " " + who + "  " + ui.Ring(m.stats.Percentage)
}

func (m boardModel) renderSidebar() string {
	var b strings.Builder
	b.WriteString(ui.PanelTitle.Render(ui.IconTrophy+" Leaderboard") + "\n")
	if len(m.board) == 0 {
		b.WriteString(ui.Muted.Render("nobody yet") + "\n")
		return b.String()
	}
	for i, e := range m.board {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			ui.Rank(i+1),
			e.Nickname,
			ui.Muted.Render(fmt.Sprintf("%d (%.0f%%)", e.CompletedCount, e.CompletionRate))))
	}
	return b.String()
}

func (m boardModel) renderMain() string {
	if m.loading {
		return ui.Muted.Render("Loading…")
	}
	var b strings.Builder
	b.WriteString(ui.PanelTitle.Render("Tasks") + "\n")
	for i, t := range m.tasks {
		line := fmt.Sprintf("%s %s", ui.Checkbox(m.svc.Progress().IsTaskCompleted(t.ID)), t.Title)
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m boardModel) renderFooter() string {
	var b strings.Builder
	if m.quote != nil {
		b.WriteString(ui.IconQuote + " " + ui.Dim.Render(fmt.Sprintf("%q — %s", m.quote.Text, m.quote.Author)) + "\n")
	}
	b.WriteString(ui.Muted.Render("↑/↓ move · space toggle · r refresh · q quit") + "  " + m.lastLog + "\n")
	return b.String()
}
