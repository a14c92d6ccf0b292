package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/aprovost/studiodesk/cmd/tui/internal/view"
	"github.com/aprovost/studiodesk/internal/analytics"
	analyticsStore "github.com/aprovost/studiodesk/internal/analytics/store"
	"github.com/aprovost/studiodesk/internal/client"
	clientStore "github.com/aprovost/studiodesk/internal/client/store"
	"github.com/aprovost/studiodesk/internal/config"
	"github.com/aprovost/studiodesk/internal/database"
	"github.com/aprovost/studiodesk/internal/invoice"
	invoiceStore "github.com/aprovost/studiodesk/internal/invoice/store"
	"github.com/aprovost/studiodesk/internal/product"
	productStore "github.com/aprovost/studiodesk/internal/product/store"
	"github.com/aprovost/studiodesk/internal/session"
	sessionStore "github.com/aprovost/studiodesk/internal/session/store"
)

type model struct {
	clientService    *client.Service
	sessionService   *session.Service
	invoiceService   *invoice.Service
	productService   *product.Service
	analyticsService *analytics.Service

	currentView View

	dashboardView view.DashboardModel
	clientsView   view.ClientsModel
	sessionsView  view.SessionsModel
	invoicesView  view.InvoicesModel
	productsView  view.ProductsModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewClients   View = 2
	ViewSessions  View = 3
	ViewInvoices  View = 4
	ViewProducts  View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	clientSvc := client.NewService(clientStore.New(db))
	sessionSvc := session.NewService(sessionStore.New(db))
	invoiceSvc := invoice.NewService(invoiceStore.New(db))
	productSvc := product.NewService(productStore.New(db))
	analyticsSvc := analytics.NewService(analyticsStore.New(db))

	return model{
		clientService:    clientSvc,
		sessionService:   sessionSvc,
		invoiceService:   invoiceSvc,
		productService:   productSvc,
		analyticsService: analyticsSvc,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(analyticsSvc),
		clientsView:      view.NewClientsModel(clientSvc),
		sessionsView:     view.NewSessionsModel(sessionSvc),
		invoicesView:     view.NewInvoicesModel(invoiceSvc),
		productsView:     view.NewProductsModel(productSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.analyticsService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewClients
				m.clientsView = view.NewClientsModel(m.clientService)

				return m, m.clientsView.Init()
			case "3":
				m.currentView = ViewSessions
				m.sessionsView = view.NewSessionsModel(m.sessionService)

				return m, m.sessionsView.Init()
			case "4":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.invoiceService)

				return m, m.invoicesView.Init()
			case "5":
				m.currentView = ViewProducts
				m.productsView = view.NewProductsModel(m.productService)

				return m, m.productsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewClients:
		var newModel tea.Model
		newModel, cmd = m.clientsView.Update(msg)
		m.clientsView = newModel.(view.ClientsModel)
	case ViewSessions:
		var newModel tea.Model
		newModel, cmd = m.sessionsView.Update(msg)
		m.sessionsView = newModel.(view.SessionsModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	case ViewProducts:
		var newModel tea.Model
		newModel, cmd = m.productsView.Update(msg)
		m.productsView = newModel.(view.ProductsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"StudioDesk TUI\n\n" +
				"1. Dashboard\n" +
				"2. Clients\n" +
				"3. Photo Sessions\n" +
				"4. Invoices\n" +
				"5. Products\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewClients:
		return m.clientsView.View()
	case ViewSessions:
		return m.sessionsView.View()
	case ViewInvoices:
		return m.invoicesView.View()
	case ViewProducts:
		return m.productsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
