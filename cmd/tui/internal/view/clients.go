package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/aprovost/studiodesk/internal/client"
	"github.com/aprovost/studiodesk/internal/patch"
)

type clientsState int

const (
	clientsStateBrowse clientsState = iota
	clientsStateEdit
)

type ClientsModel struct {
	CommonModel
	svc *client.Service

	state   clientsState
	table   table.Model
	clients []*client.Client
	form    *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formPhone      string
	formLeadSource string
}

func NewClientsModel(svc *client.Service) ClientsModel {
	columns := []table.Column{
		{Title: "Email", Width: 28},
		{Title: "Name", Width: 22},
		{Title: "Phone", Width: 14},
		{Title: "Status", Width: 10},
		{Title: "Last Session", Width: 12},
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

	return ClientsModel{svc: svc, table: t, loading: true}
}

func (m ClientsModel) Init() tea.Cmd {
	return m.loadClientsCmd()
}

func (m ClientsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadClientsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.clients = msg.clients
		m.refreshTable()

		return m, nil

	case clientSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = "Client updated"
		}

		m.state = clientsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadClientsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case clientsStateBrowse:
		return m.updateBrowse(msg)
	case clientsStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m ClientsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadClientsCmd()
		case "e":
			return m.enterEditMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ClientsModel) enterEditMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.clients) {
		return m, nil
	}

	c := m.clients[idx]
	m.formPhone = c.Phone
	m.formLeadSource = c.LeadSource

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("phone").
				Title("Phone").
				Value(&m.formPhone).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("phone cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("leadSource").
				Title("Lead Source").
				Value(&m.formLeadSource),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = clientsStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m ClientsModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = clientsStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m ClientsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading clients...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	help := lipgloss.NewStyle().Faint(true).Render("e: edit | r: refresh | esc: back")

	content := lipgloss.JoinVertical(lipgloss.Left, tableView, help)

	if m.state == clientsStateEdit && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Edit Client\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ClientsModel) refreshTable() {
	now := time.Now()

	rows := make([]table.Row, 0, len(m.clients))
	for _, c := range m.clients {
		lastSession := "-"
		if c.LastSessionDate != nil {
			lastSession = FormatDate(*c.LastSessionDate)
		}

		rows = append(rows, table.Row{
			c.Email,
			c.FirstName + " " + c.LastName,
			c.Phone,
			string(client.DeriveStatus(c.LastSessionDate, now)),
			lastSession,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadClientsMsg struct {
	clients []*client.Client
	err     error
}

func (m ClientsModel) loadClientsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		clients, err := m.svc.List(ctx)
		return loadClientsMsg{clients: clients, err: err}
	}
}

type clientSaveMsg struct {
	err error
}

func (m ClientsModel) saveCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.clients) {
		return nil
	}

	email := m.clients[idx].Email
	kvs := []patch.KV{
		{Key: "phone", Value: m.formPhone},
		{Key: "leadSource", Value: m.formLeadSource},
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return clientSaveMsg{err: m.svc.Update(ctx, email, kvs)}
	}
}
