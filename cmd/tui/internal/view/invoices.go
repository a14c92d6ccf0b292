package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aprovost/studiodesk/internal/invoice"
)

type invoicesState int

const (
	invoicesStateBrowse invoicesState = iota
	invoicesStatePayment
)

type InvoicesModel struct {
	CommonModel
	svc *invoice.Service

	state    invoicesState
	table    table.Model
	invoices []*invoice.Invoice
	input    textinput.Model

	loading bool
	err     error
	status  string
}

func NewInvoicesModel(svc *invoice.Service) InvoicesModel {
	columns := []table.Column{
		{Title: "Number", Width: 8},
		{Title: "Date", Width: 12},
		{Title: "Client", Width: 26},
		{Title: "Total", Width: 10},
		{Title: "Balance", Width: 10},
		{Title: "Due", Width: 12},
		{Title: "Status", Width: 9},
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

	ti := textinput.New()
	ti.Placeholder = "amount, e.g. 150.00"
	ti.CharLimit = 12
	ti.Width = 20

	return InvoicesModel{svc: svc, table: t, input: ti, loading: true}
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadInvoicesCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInvoicesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.invoices = msg.invoices
		m.refreshTable()

		return m, nil

	case paymentSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error recording payment: %v", msg.err)
		} else {
			m.status = "Payment recorded"
		}

		m.state = invoicesStateBrowse
		m.input.Blur()
		m.table.Focus()

		return m, m.loadInvoicesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case invoicesStateBrowse:
		return m.updateBrowse(msg)
	case invoicesStatePayment:
		return m.updatePayment(msg)
	}

	return m, nil
}

func (m InvoicesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadInvoicesCmd()
		case "p":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.invoices) {
				return m, nil
			}

			m.state = invoicesStatePayment
			m.input.SetValue("")
			m.table.Blur()

			return m, m.input.Focus()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoicesModel) updatePayment(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = invoicesStateBrowse
			m.input.Blur()
			m.table.Focus()

			return m, nil

		case tea.KeyEnter:
			cents, err := parseAmount(m.input.Value())
			if err != nil {
				m.status = err.Error()
				return m, nil
			}

			return m, m.recordPaymentCmd(cents)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// parseAmount converts a "150.00" style input into cents.
func parseAmount(s string) (int64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("enter a positive amount")
	}

	return int64(v*100 + 0.5), nil
}

func (m InvoicesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	help := lipgloss.NewStyle().Faint(true).Render("p: record payment | r: refresh | esc: back")

	content := lipgloss.JoinVertical(lipgloss.Left, tableView, help)

	if m.state == invoicesStatePayment {
		number := int64(0)
		if idx := m.table.Cursor(); idx >= 0 && idx < len(m.invoices) {
			number = m.invoices[idx].Number
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(36).
			Render(fmt.Sprintf("Record Payment for Invoice #%d\n\n%s\n\nEnter: save | Esc: cancel", number, m.input.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *InvoicesModel) refreshTable() {
	now := time.Now()

	rows := make([]table.Row, 0, len(m.invoices))
	for _, inv := range m.invoices {
		clientName := inv.ClientEmail
		if inv.Client != nil && inv.Client.Name != "" {
			clientName = inv.Client.Name
		}

		due := "-"
		if inv.DueDate != nil {
			due = FormatDate(*inv.DueDate)
		}

		rows = append(rows, table.Row{
			fmt.Sprintf("%d", inv.Number),
			FormatDate(inv.Date),
			clientName,
			FormatCents(inv.TotalDueCents),
			FormatCents(inv.BalanceDueCents),
			due,
			string(invoice.DeriveStatus(inv.BalanceDueCents, inv.DueDate, now)),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadInvoicesMsg struct {
	invoices []*invoice.Invoice
	err      error
}

func (m InvoicesModel) loadInvoicesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		invoices, err := m.svc.List(ctx)
		return loadInvoicesMsg{invoices: invoices, err: err}
	}
}

type paymentSavedMsg struct {
	err error
}

func (m InvoicesModel) recordPaymentCmd(cents int64) tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.invoices) {
		return nil
	}

	number := m.invoices[idx].Number

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return paymentSavedMsg{err: m.svc.RecordPayment(ctx, number, cents)}
	}
}
