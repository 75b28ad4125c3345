package screens

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stlscore/pitchchart/internal/models"
	"github.com/stlscore/pitchchart/internal/repository"
	"github.com/stlscore/pitchchart/internal/session"
)

type entryField int

const (
	fieldPitchType entryField = iota
	fieldVelocity
	fieldInning
	fieldResult
	fieldBatterHand
	fieldLocation
	fieldSwing
	fieldGroundBall
	fieldRISP
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Pitch Type",
	"Velocity",
	"Inning",
	"Result",
	"Batter Hand",
	"Location",
	"Swing?",
	"Ground Ball?",
	"RISP",
}

// Entry is the second page: the pitch form plus the running game log for
// the session's fixed pitcher and date.
type Entry struct {
	db     *sql.DB
	sess   *session.Session
	width  int
	height int

	field     entryField
	veloInput textinput.Model
	pitches   []models.Pitch
	loading   bool
	err       error
	warning   string
	message   string
}

func NewEntry(db *sql.DB, sess *session.Session) *Entry {
	vi := textinput.New()
	vi.Placeholder = "mph"
	vi.CharLimit = 3
	vi.Width = 5

	return &Entry{
		db:        db,
		sess:      sess,
		veloInput: vi,
	}
}

func (e *Entry) SetSize(width, height int) {
	e.width = width
	e.height = height
}

type entryDataMsg struct {
	pitches []models.Pitch
	err     error
}

func (e *Entry) Init() tea.Cmd {
	e.loading = true
	e.field = fieldPitchType
	e.warning = ""
	e.message = ""
	e.veloInput.SetValue("")
	return e.loadData
}

func (e *Entry) loadData() tea.Msg {
	repo := repository.NewPitchRepo(e.db)
	pitches, err := repo.GetByGame(e.sess.Pitcher(), e.sess.GameDate())
	return entryDataMsg{pitches: pitches, err: err}
}

func (e *Entry) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case entryDataMsg:
		e.loading = false
		e.err = msg.err
		e.pitches = msg.pitches
		return nil

	case RefreshMsg:
		return e.Init()

	case tea.KeyMsg:
		return e.handleKey(msg)
	}

	if e.field == fieldVelocity {
		var cmd tea.Cmd
		e.veloInput, cmd = e.veloInput.Update(msg)
		return cmd
	}

	return nil
}

func (e *Entry) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "shift+tab":
		e.moveField(-1)
		return nil
	case "down", "tab":
		e.moveField(1)
		return nil
	case "enter":
		return e.handleSubmit()
	case "esc":
		e.sess.Back()
		return Navigate("select")
	}

	if e.field == fieldVelocity {
		var cmd tea.Cmd
		e.veloInput, cmd = e.veloInput.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "left", "h":
		e.cycleField(-1)
	case "right", "l", " ":
		e.cycleField(1)
	}
	return nil
}

func (e *Entry) moveField(delta int) {
	e.field = entryField((int(e.field) + delta + int(fieldCount)) % int(fieldCount))
	if e.field == fieldVelocity {
		e.veloInput.Focus()
	} else {
		e.veloInput.Blur()
	}
}

// cycleField steps the selected field through its closed value set. The
// optional enums include a leading blank meaning "not chosen".
func (e *Entry) cycleField(delta int) {
	d := e.sess.Draft()
	switch e.field {
	case fieldPitchType:
		options := make([]string, 0, len(models.PitchTypes)+1)
		options = append(options, "")
		for _, t := range models.PitchTypes {
			options = append(options, string(t))
		}
		d.PitchType = cycle(options, d.PitchType, delta)
	case fieldInning:
		d.Inning = (d.Inning + delta + models.MaxInning + 1) % (models.MaxInning + 1)
	case fieldResult:
		options := make([]string, 0, len(models.Results)+1)
		options = append(options, "")
		for _, r := range models.Results {
			options = append(options, string(r))
		}
		d.Result = cycle(options, d.Result, delta)
	case fieldBatterHand:
		if d.BatterHand == models.HandRight {
			d.BatterHand = models.HandLeft
		} else {
			d.BatterHand = models.HandRight
		}
	case fieldLocation:
		options := make([]string, 0, len(models.Zones))
		for _, z := range models.Zones {
			options = append(options, string(z))
		}
		d.Location = models.Zone(cycle(options, string(d.Location), delta))
	case fieldSwing:
		d.Swing = !d.Swing
	case fieldGroundBall:
		d.GroundBall = !d.GroundBall
	case fieldRISP:
		d.RISP = !d.RISP
	}
}

func cycle(options []string, current string, delta int) string {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	return options[(idx+delta+len(options))%len(options)]
}

func (e *Entry) handleSubmit() tea.Cmd {
	d := e.sess.Draft()
	d.Velocity = 0
	if v, err := strconv.Atoi(strings.TrimSpace(e.veloInput.Value())); err == nil {
		d.Velocity = v
	}

	pitch, err := e.sess.BuildPitch()
	if err != nil {
		e.warning = "Please select a pitch type."
		return nil
	}

	repo := repository.NewPitchRepo(e.db)
	if _, err := repo.Insert(*pitch); err != nil {
		// Keep the draft so the operator can retry without re-entering
		e.err = err
		return nil
	}

	e.sess.ResetDraft()
	e.veloInput.SetValue("")
	e.field = fieldPitchType
	e.warning = ""
	e.message = "Pitch saved!"
	return e.loadData
}

func (e *Entry) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf(
		"Pitch Entry - %s on %s",
		e.sess.Pitcher(),
		e.sess.GameDate().Format(models.DateLayout),
	)))
	b.WriteString("\n\n")

	if e.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", e.err)))
		b.WriteString("\n\n")
		e.err = nil
	}

	if e.message != "" {
		b.WriteString(SuccessStyle.Render(e.message))
		b.WriteString("\n\n")
	}

	if e.warning != "" {
		b.WriteString(WarningStyle.Render(e.warning))
		b.WriteString("\n\n")
	}

	b.WriteString(e.renderForm())
	b.WriteString("\n")
	b.WriteString(e.renderLog())
	b.WriteString("\n")

	help := "[up/down] Field  [left/right] Value  [enter] Submit pitch  [esc] Back"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}

func (e *Entry) renderForm() string {
	d := e.sess.Draft()

	values := [fieldCount]string{
		orDash(d.PitchType),
		e.veloInput.View(),
		inningLabel(d.Inning),
		orDash(d.Result),
		string(d.BatterHand),
		string(d.Location),
		checkbox(d.Swing),
		checkbox(d.GroundBall),
		checkbox(d.RISP),
	}

	var b strings.Builder
	for f := entryField(0); f < fieldCount; f++ {
		cursor := "  "
		style := NormalStyle
		if f == e.field {
			cursor = "> "
			style = SelectedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-13s %s", cursor, fieldLabels[f], values[f])))
		b.WriteString("\n")
	}
	return b.String()
}

func (e *Entry) renderLog() string {
	if e.loading {
		return "Loading...\n"
	}

	if len(e.pitches) == 0 {
		return DimStyle.Render("No pitches entered for this game yet.") + "\n"
	}

	headers := []string{"Pitch #", "Inning", "Type", "Velo", "Batter", "Location", "Swing", "GB", "RISP", "Result"}
	widths := []int{7, 6, 4, 4, 6, 8, 5, 4, 4, 16}

	var b strings.Builder
	var header strings.Builder
	for i, h := range headers {
		header.WriteString(pad(h, widths[i]))
		header.WriteString("  ")
	}
	b.WriteString(HeaderStyle.Render(strings.TrimRight(header.String(), " ")))
	b.WriteString("\n")

	for i, p := range e.pitches {
		cols := []string{
			strconv.Itoa(i + 1),
			intCol(p.Inning),
			string(p.PitchType),
			intCol(p.Velocity),
			handCol(p.BatterHand),
			zoneCol(p.Location),
			boolCol(p.Swing),
			boolCol(p.GroundBall),
			boolCol(p.RISP),
			resultCol(p.Result),
		}
		var line strings.Builder
		for j, c := range cols {
			line.WriteString(pad(c, widths[j]))
			line.WriteString("  ")
		}
		b.WriteString(NormalStyle.Render(strings.TrimRight(line.String(), " ")))
		b.WriteString("\n")
	}

	return b.String()
}

func pad(s string, width int) string {
	if lipgloss.Width(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func inningLabel(i int) string {
	if i < 1 || i > models.MaxInning {
		return "-"
	}
	return strconv.Itoa(i)
}

func checkbox(v bool) string {
	if v {
		return "[x]"
	}
	return "[ ]"
}

func intCol(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func boolCol(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func handCol(h *models.Hand) string {
	if h == nil {
		return "-"
	}
	return string(*h)
}

func zoneCol(z *models.Zone) string {
	if z == nil {
		return "-"
	}
	return string(*z)
}

func resultCol(r *models.Result) string {
	if r == nil {
		return "-"
	}
	return string(*r)
}
