package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"shoply/app/dto"
)

type PostsModel struct {
	Session *Session
	Table   table.Model
	Err     error
}

type postsLoadedMsg struct {
	Posts []dto.ScheduledPostResponse
	Err   error
}

func NewPostsModel(s *Session, height int) PostsModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Publish At", Width: 20},
		{Title: "Status", Width: 10},
		{Title: "Attempts", Width: 9},
		{Title: "Body", Width: 40},
	}
	if height < 5 {
		height = 15
	}
	return PostsModel{Session: s, Table: newTable(columns, height)}
}

func (m PostsModel) Init() tea.Cmd {
	return m.loadCmd
}

func (m PostsModel) loadCmd() tea.Msg {
	posts, err := m.Session.Posts()
	return postsLoadedMsg{Posts: posts, Err: err}
}

func (m PostsModel) Update(msg tea.Msg) (PostsModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.loadCmd
		}
	case postsLoadedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		rows := []table.Row{}
		for _, p := range msg.Posts {
			body := p.Body
			if len(body) > 40 {
				body = body[:37] + "..."
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", p.ID),
				time.Unix(p.PublishAt, 0).Format("2006-01-02 15:04"),
				p.Status,
				fmt.Sprintf("%d", p.Attempts),
				body,
			})
		}
		m.Table.SetRows(rows)
	}
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m PostsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Scheduled Posts") + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("'r' refresh, 'p' products, 'o' orders, 'q' quit"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
