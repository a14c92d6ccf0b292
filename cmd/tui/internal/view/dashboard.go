package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aprovost/studiodesk/internal/analytics"
)

type DashboardModel struct {
	CommonModel
	svc *analytics.Service

	stats   *analytics.DashboardStats
	loading bool
	err     error
}

func NewDashboardModel(svc *analytics.Service) DashboardModel {
	return DashboardModel{svc: svc, loading: true}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadStatsCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadStatsMsg:
		m.loading = false
		m.stats = msg.stats
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadStatsCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	label := lipgloss.NewStyle().Faint(true)
	value := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	row := func(name, val string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			label.Width(24).Render(name),
			value.Render(val),
		)
	}

	panel := lipgloss.JoinVertical(lipgloss.Left,
		row("Total clients", fmt.Sprintf("%d", m.stats.TotalClients)),
		row("Upcoming sessions", fmt.Sprintf("%d", m.stats.UpcomingSessions)),
		row("Revenue this month", FormatCents(m.stats.MonthlyRevenueCents)),
		row("Outstanding balance", FormatCents(m.stats.OutstandingBalanceCents)),
		row("Staff members", fmt.Sprintf("%d", m.stats.TotalStaff)),
		row("Products in stock", fmt.Sprintf("%d", m.stats.ActiveProducts)),
	)

	box := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render("Studio Dashboard\n\n" + panel)

	help := lipgloss.NewStyle().Faint(true).Render("r: refresh | esc: back")

	return lipgloss.NewStyle().Padding(1).Render(box + "\n" + help)
}

type loadStatsMsg struct {
	stats *analytics.DashboardStats
	err   error
}

func (m DashboardModel) loadStatsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		stats, err := m.svc.Dashboard(ctx)
		return loadStatsMsg{stats: stats, err: err}
	}
}
