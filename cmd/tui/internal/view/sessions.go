package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aprovost/studiodesk/internal/session"
)

type SessionsModel struct {
	CommonModel
	svc *session.Service

	table    table.Model
	sessions []*session.Session

	// Filter cycling
	statusFilterIdx int

	loading bool
	err     error
}

var sessionStatusFilters = []session.Status{
	"", // all
	session.StatusUpcoming,
	session.StatusInProgress,
	session.StatusCompleted,
}

func NewSessionsModel(svc *session.Service) SessionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Time", Width: 13},
		{Title: "Type", Width: 16},
		{Title: "Client", Width: 24},
		{Title: "Fee", Width: 10},
		{Title: "Status", Width: 12},
		{Title: "Staff", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return SessionsModel{svc: svc, table: t, loading: true}
}

func (m SessionsModel) Init() tea.Cmd {
	return m.loadSessionsCmd()
}

func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSessionsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.sessions = msg.sessions
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadSessionsCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % len(sessionStatusFilters)
			m.refreshTable()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m SessionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading sessions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	filterLabels := []string{"All", "Upcoming", "In Progress", "Completed"}

	header := fmt.Sprintf("Filter: [s] Status: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(filterLabels[m.statusFilterIdx]),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	help := lipgloss.NewStyle().Faint(true).Render("s: status filter | r: refresh | esc: back")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			tableView,
			help,
		),
	)
}

// refreshTable rebuilds rows, dropping sessions whose derived status
// does not match the active filter.
func (m *SessionsModel) refreshTable() {
	now := time.Now()
	filter := sessionStatusFilters[m.statusFilterIdx]

	rows := make([]table.Row, 0, len(m.sessions))

	for _, s := range m.sessions {
		status := session.DeriveStatus(s.Date, s.StartTime, s.EndTime, now)
		if filter != "" && status != filter {
			continue
		}

		clientName := s.ClientEmail
		if s.Client != nil && s.Client.Name != "" {
			clientName = s.Client.Name
		}

		times := s.StartTime
		if s.EndTime != "" {
			times += "-" + s.EndTime
		}

		rows = append(rows, table.Row{
			FormatDate(s.Date),
			times,
			s.Type,
			clientName,
			FormatCents(s.FeeCents),
			string(status),
			fmt.Sprintf("%d", s.StaffAssigned),
		})
	}

	m.table.SetRows(rows)
}

type loadSessionsMsg struct {
	sessions []*session.Session
	err      error
}

func (m SessionsModel) loadSessionsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sessions, err := m.svc.List(ctx)
		return loadSessionsMsg{sessions: sessions, err: err}
	}
}
