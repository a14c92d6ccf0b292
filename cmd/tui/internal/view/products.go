package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aprovost/studiodesk/internal/product"
)

type productsState int

const (
	productsStateBrowse productsState = iota
	productsStateAdjust
)

type ProductsModel struct {
	CommonModel
	svc *product.Service

	state    productsState
	table    table.Model
	products []*product.Product
	input    textinput.Model

	lowStockOnly bool

	loading bool
	err     error
	status  string
}

func NewProductsModel(svc *product.Service) ProductsModel {
	columns := []table.Column{
		{Title: "SKU", Width: 12},
		{Title: "Name", Width: 28},
		{Title: "Sale Price", Width: 10},
		{Title: "Stock", Width: 7},
		{Title: "Level", Width: 8},
		{Title: "Reorder", Width: 12},
		{Title: "Supplier", Width: 18},
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
	ti.Placeholder = "delta, e.g. 25 or -3"
	ti.CharLimit = 6
	ti.Width = 20

	return ProductsModel{svc: svc, table: t, input: ti, loading: true}
}

func (m ProductsModel) Init() tea.Cmd {
	return m.loadProductsCmd()
}

func (m ProductsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadProductsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.products = msg.products
		m.refreshTable()

		return m, nil

	case stockAdjustedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error adjusting stock: %v", msg.err)
		} else {
			m.status = "Stock updated"
		}

		m.state = productsStateBrowse
		m.input.Blur()
		m.table.Focus()

		return m, m.loadProductsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case productsStateBrowse:
		return m.updateBrowse(msg)
	case productsStateAdjust:
		return m.updateAdjust(msg)
	}

	return m, nil
}

func (m ProductsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadProductsCmd()
		case "l":
			m.lowStockOnly = !m.lowStockOnly
			m.loading = true

			return m, m.loadProductsCmd()
		case "a":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.products) {
				return m, nil
			}

			m.state = productsStateAdjust
			m.input.SetValue("")
			m.table.Blur()

			return m, m.input.Focus()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ProductsModel) updateAdjust(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = productsStateBrowse
			m.input.Blur()
			m.table.Focus()

			return m, nil

		case tea.KeyEnter:
			delta, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
			if err != nil || delta == 0 {
				m.status = "enter a non-zero whole number"
				return m, nil
			}

			return m, m.adjustStockCmd(delta)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m ProductsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading products...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	scope := "All products"
	if m.lowStockOnly {
		scope = "Low stock only"
	}

	header := fmt.Sprintf("View: [l] %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(scope),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	help := lipgloss.NewStyle().Faint(true).Render("a: adjust stock | l: low stock | r: refresh | esc: back")

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		help,
	)

	if m.state == productsStateAdjust {
		sku := ""
		if idx := m.table.Cursor(); idx >= 0 && idx < len(m.products) {
			sku = m.products[idx].ID
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(34).
			Render(fmt.Sprintf("Adjust Stock %s\n\n%s\n\nEnter: save | Esc: cancel", sku, m.input.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ProductsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.products))
	for _, p := range m.products {
		rows = append(rows, table.Row{
			p.ID,
			p.Name,
			FormatCents(p.SalePriceCents),
			fmt.Sprintf("%d", p.StockLevel),
			string(product.DeriveStockStatus(p.StockLevel)),
			string(product.DeriveReorderStatus(p.StockLevel)),
			p.Supplier,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadProductsMsg struct {
	products []*product.Product
	err      error
}

func (m ProductsModel) loadProductsCmd() tea.Cmd {
	lowStockOnly := m.lowStockOnly

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var (
			products []*product.Product
			err      error
		)

		if lowStockOnly {
			products, err = m.svc.ListLowStock(ctx)
		} else {
			products, err = m.svc.List(ctx)
		}

		return loadProductsMsg{products: products, err: err}
	}
}

type stockAdjustedMsg struct {
	err error
}

func (m ProductsModel) adjustStockCmd(delta int) tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.products) {
		return nil
	}

	id := m.products[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return stockAdjustedMsg{err: m.svc.AdjustStock(ctx, id, delta)}
	}
}
