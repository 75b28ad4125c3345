package screens

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stlscore/pitchchart/internal/models"
	"github.com/stlscore/pitchchart/internal/repository"
	"github.com/stlscore/pitchchart/internal/session"
)

type selectMode int

const (
	selectModePick selectMode = iota
	selectModeDate
	selectModeAdd
	selectModeAddHand
)

// SelectGame is the first page: pick a pitcher from the roster and a game
// date, then continue into pitch entry.
type SelectGame struct {
	db     *sql.DB
	sess   *session.Session
	width  int
	height int

	pitchers  []string
	cursor    int
	mode      selectMode
	dateInput textinput.Model
	nameInput textinput.Model
	newName   string
	loading   bool
	err       error
	warning   string
	message   string
}

func NewSelectGame(db *sql.DB, sess *session.Session) *SelectGame {
	di := textinput.New()
	di.Placeholder = models.DateLayout
	di.CharLimit = 10
	di.Width = 12

	ni := textinput.New()
	ni.Placeholder = "Pitcher name"
	ni.CharLimit = 100
	ni.Width = 40

	return &SelectGame{
		db:        db,
		sess:      sess,
		dateInput: di,
		nameInput: ni,
	}
}

func (s *SelectGame) SetSize(width, height int) {
	s.width = width
	s.height = height
}

type selectDataMsg struct {
	pitchers []string
	err      error
}

func (s *SelectGame) Init() tea.Cmd {
	s.loading = true
	s.mode = selectModePick
	s.warning = ""
	s.dateInput.SetValue(s.sess.GameDate().Format(models.DateLayout))
	return s.loadData
}

func (s *SelectGame) loadData() tea.Msg {
	repo := repository.NewPitcherRepo(s.db)
	pitchers, err := repo.GetNames()
	return selectDataMsg{pitchers: pitchers, err: err}
}

func (s *SelectGame) Update(msg tea.Msg) tea.Cmd {
	// In input modes, pass messages to the focused text input first
	if s.mode == selectModeDate || s.mode == selectModeAdd {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "enter":
				return s.handleInputEnter()
			case "esc":
				s.mode = selectModePick
				s.dateInput.Blur()
				s.nameInput.Blur()
				return nil
			}
		}
		var cmd tea.Cmd
		if s.mode == selectModeDate {
			s.dateInput, cmd = s.dateInput.Update(msg)
		} else {
			s.nameInput, cmd = s.nameInput.Update(msg)
		}
		return cmd
	}

	switch msg := msg.(type) {
	case selectDataMsg:
		s.loading = false
		s.err = msg.err
		s.pitchers = msg.pitchers
		if s.cursor >= len(s.pitchers) {
			s.cursor = max(0, len(s.pitchers)-1)
		}
		return nil

	case RefreshMsg:
		return s.Init()

	case tea.KeyMsg:
		if s.mode == selectModeAddHand {
			return s.handleHandKey(msg)
		}
		return s.handlePickKey(msg)
	}

	return nil
}

func (s *SelectGame) handlePickKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.pitchers)-1 {
			s.cursor++
		}
	case "d":
		s.mode = selectModeDate
		s.warning = ""
		s.dateInput.Focus()
	case "a":
		s.mode = selectModeAdd
		s.warning = ""
		s.nameInput.SetValue("")
		s.nameInput.Focus()
	case "enter":
		return s.handleContinue()
	}
	return nil
}

func (s *SelectGame) handleContinue() tea.Cmd {
	pitcher := ""
	if len(s.pitchers) > 0 {
		pitcher = s.pitchers[s.cursor]
	}

	if err := s.sess.Continue(pitcher, s.sess.GameDate()); err != nil {
		s.warning = "Please select a pitcher."
		return nil
	}

	return Navigate("entry")
}

func (s *SelectGame) handleInputEnter() tea.Cmd {
	if s.mode == selectModeDate {
		parsed, err := time.Parse(models.DateLayout, strings.TrimSpace(s.dateInput.Value()))
		if err != nil {
			s.warning = "Enter the date as YYYY-MM-DD."
			return nil
		}
		s.sess.SetGameDate(parsed)
		s.warning = ""
		s.mode = selectModePick
		s.dateInput.Blur()
		return nil
	}

	name := strings.TrimSpace(s.nameInput.Value())
	if name == "" {
		s.mode = selectModePick
		s.nameInput.Blur()
		return nil
	}

	s.newName = name
	s.mode = selectModeAddHand
	s.nameInput.Blur()
	return nil
}

func (s *SelectGame) handleHandKey(msg tea.KeyMsg) tea.Cmd {
	var hand models.Hand
	switch msg.String() {
	case "l", "L":
		hand = models.HandLeft
	case "r", "R":
		hand = models.HandRight
	case "esc":
		s.mode = selectModePick
		return nil
	default:
		return nil
	}

	repo := repository.NewPitcherRepo(s.db)
	if err := repo.Add(s.newName, hand); err != nil {
		s.err = err
	} else {
		s.message = fmt.Sprintf("Added pitcher: %s", s.newName)
	}
	s.mode = selectModePick
	return s.loadData
}

func (s *SelectGame) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("PITCH CHART"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Select Pitcher and Date"))
	b.WriteString("\n\n")

	if s.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}

	if s.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", s.err)))
		b.WriteString("\n\n")
		s.err = nil
	}

	if s.message != "" {
		b.WriteString(SuccessStyle.Render(s.message))
		b.WriteString("\n\n")
	}

	if s.warning != "" {
		b.WriteString(WarningStyle.Render(s.warning))
		b.WriteString("\n\n")
	}

	if s.mode == selectModeDate {
		b.WriteString("Game date:\n")
		b.WriteString(s.dateInput.View())
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render("[enter] Save  [esc] Cancel"))
		return b.String()
	}

	if s.mode == selectModeAdd {
		b.WriteString("New pitcher name:\n")
		b.WriteString(s.nameInput.View())
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render("[enter] Save  [esc] Cancel"))
		return b.String()
	}

	if s.mode == selectModeAddHand {
		b.WriteString(fmt.Sprintf("Throws for %s? (l/r)\n", s.newName))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Game date: %s %s\n\n",
		NormalStyle.Render(s.sess.GameDate().Format(models.DateLayout)),
		DimStyle.Render("[d] to change"),
	))

	if len(s.pitchers) == 0 {
		b.WriteString(DimStyle.Render("No pitchers yet. Press 'a' to add one."))
		b.WriteString("\n\n")
	} else {
		for i, name := range s.pitchers {
			cursor := "  "
			style := NormalStyle
			if i == s.cursor {
				cursor = "> "
				style = SelectedStyle
			}
			b.WriteString(style.Render(cursor + name))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	help := "[a] Add pitcher  [d] Date  [enter] Continue  [ctrl+c] Quit"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}
