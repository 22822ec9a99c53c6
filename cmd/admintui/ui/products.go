package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shoply/app/dto"
)

type ProductsModel struct {
	Session *Session
	Table   table.Model
	Err     error
}

type productsLoadedMsg struct {
	Resp *dto.ProductListResponse
	Err  error
}

func newTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)
	return t
}

func NewProductsModel(s *Session, height int) ProductsModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 32},
		{Title: "Price", Width: 12},
		{Title: "Stock", Width: 8},
	}
	if height < 5 {
		height = 15
	}
	return ProductsModel{Session: s, Table: newTable(columns, height)}
}

func (m ProductsModel) Init() tea.Cmd {
	return m.loadCmd
}

func (m ProductsModel) loadCmd() tea.Msg {
	resp, err := m.Session.Products()
	return productsLoadedMsg{Resp: resp, Err: err}
}

func (m ProductsModel) Update(msg tea.Msg) (ProductsModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.loadCmd
		}
	case productsLoadedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		rows := []table.Row{}
		for _, p := range msg.Resp.Products {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", p.ID),
				p.Name,
				fmt.Sprintf("$%.2f", float64(p.PriceCents)/100),
				fmt.Sprintf("%d", p.Stock),
			})
		}
		m.Table.SetRows(rows)
	}
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m ProductsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Products") + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("'r' refresh, 'o' orders, 's' posts, 'q' quit"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
