package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateProducts
	stateOrders
	statePosts
)

type RootModel struct {
	State    state
	Session  *Session
	Login    LoginModel
	Products ProductsModel
	Orders   OrdersModel
	Posts    PostsModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(defaultURL string) RootModel {
	s := NewSession()
	return RootModel{
		State:   stateLogin,
		Session: s,
		Login:   NewLoginModel(s, defaultURL),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Products.Table.SetHeight(msg.Height - 10)
		m.Orders.Table.SetHeight(msg.Height - 10)
		m.Posts.Table.SetHeight(msg.Height - 10)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.State != stateLogin {
			switch msg.String() {
			case "q":
				m.Quitting = true
				return m, tea.Quit
			case "p":
				m.State = stateProducts
				m.Products = NewProductsModel(m.Session, m.height-10)
				return m, m.Products.Init()
			case "o":
				m.State = stateOrders
				m.Orders = NewOrdersModel(m.Session, m.height-10)
				return m, m.Orders.Init()
			case "s":
				m.State = statePosts
				m.Posts = NewPostsModel(m.Session, m.height-10)
				return m, m.Posts.Init()
			}
		}

	case loginResultMsg:
		if msg.Err != nil {
			m.Login.Err = msg.Err
			return m, nil
		}
		m.State = stateProducts
		m.Products = NewProductsModel(m.Session, m.height-10)
		return m, m.Products.Init()
	}

	switch m.State {
	case stateLogin:
		newLogin, cmd := m.Login.Update(msg)
		m.Login = newLogin
		cmds = append(cmds, cmd)
	case stateProducts:
		newProducts, cmd := m.Products.Update(msg)
		m.Products = newProducts
		cmds = append(cmds, cmd)
	case stateOrders:
		newOrders, cmd := m.Orders.Update(msg)
		m.Orders = newOrders
		cmds = append(cmds, cmd)
	case statePosts:
		newPosts, cmd := m.Posts.Update(msg)
		m.Posts = newPosts
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateProducts:
		return m.Products.View()
	case stateOrders:
		return m.Orders.View()
	case statePosts:
		return m.Posts.View()
	}
	return "Unknown state"
}
