package tui

import (
	"database/sql"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stlscore/pitchchart/internal/session"
	"github.com/stlscore/pitchchart/internal/tui/screens"
)

type App struct {
	db     *sql.DB
	sess   *session.Session
	width  int
	height int

	// Screen models
	selectGame *screens.SelectGame
	entry      *screens.Entry
}

func NewApp(db *sql.DB, sess *session.Session) *App {
	return &App{
		db:   db,
		sess: sess,
	}
}

func (a *App) Init() tea.Cmd {
	a.selectGame = screens.NewSelectGame(a.db, a.sess)
	a.entry = screens.NewEntry(a.db, a.sess)

	return a.selectGame.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.selectGame.SetSize(msg.Width, msg.Height)
		a.entry.SetSize(msg.Width, msg.Height)

	case screens.NavigateMsg:
		return a.handleNavigation(msg)
	}

	// Update the screen for the session's current page
	var cmd tea.Cmd
	switch a.sess.Page() {
	case session.PageSelectGame:
		cmd = a.selectGame.Update(msg)
	case session.PagePitchEntry:
		cmd = a.entry.Update(msg)
	}

	return a, cmd
}

func (a *App) handleNavigation(msg screens.NavigateMsg) (tea.Model, tea.Cmd) {
	switch msg.Screen {
	case "select":
		return a, a.selectGame.Init()
	case "entry":
		return a, a.entry.Init()
	}
	return a, nil
}

func (a *App) View() string {
	var content string

	switch a.sess.Page() {
	case session.PageSelectGame:
		content = a.selectGame.View()
	case session.PagePitchEntry:
		content = a.entry.View()
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height).
		Render(content)
}

func Run(db *sql.DB, sess *session.Session) error {
	app := NewApp(db, sess)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
