package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"shoply/app/dto"
)

type OrdersModel struct {
	Session *Session
	Table   table.Model
	Err     error
}

type ordersLoadedMsg struct {
	Orders []dto.OrderResponse
	Err    error
}

func NewOrdersModel(s *Session, height int) OrdersModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Reference", Width: 38},
		{Title: "Status", Width: 10},
		{Title: "Total", Width: 12},
	}
	if height < 5 {
		height = 15
	}
	return OrdersModel{Session: s, Table: newTable(columns, height)}
}

func (m OrdersModel) Init() tea.Cmd {
	return m.loadCmd
}

func (m OrdersModel) loadCmd() tea.Msg {
	orders, err := m.Session.Orders()
	return ordersLoadedMsg{Orders: orders, Err: err}
}

func (m OrdersModel) Update(msg tea.Msg) (OrdersModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.loadCmd
		}
	case ordersLoadedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		rows := []table.Row{}
		for _, o := range msg.Orders {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", o.ID),
				o.Reference,
				o.Status,
				fmt.Sprintf("$%.2f", float64(o.TotalCents)/100),
			})
		}
		m.Table.SetRows(rows)
	}
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m OrdersModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Orders") + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("'r' refresh, 'p' products, 's' posts, 'q' quit"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
