// Package session owns the charting workflow state for one operator
// session: which page is active, the pitcher and game date fixed by the
// select screen, and the draft pitch being filled in between submissions.
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/stlscore/pitchchart/internal/models"
)

type Page int

const (
	PageSelectGame Page = iota
	PagePitchEntry
)

// Validation failures are routine operator mistakes, warned in place and
// never escalated.
var (
	ErrNoPitcher   = errors.New("no pitcher selected")
	ErrNoPitchType = errors.New("no pitch type selected")
)

// Draft holds the form values for the pitch currently being entered.
// Empty string and zero mean "unset"; normalization turns those into
// absent values before anything is stored.
type Draft struct {
	PitchType  string
	Velocity   int
	Inning     int
	Result     string
	BatterHand models.Hand
	Location   models.Zone
	Swing      bool
	GroundBall bool
	RISP       bool
}

// NewDraft returns the blank form the entry page starts from after every
// successful submission.
func NewDraft() Draft {
	return Draft{
		BatterHand: models.HandRight,
		Location:   models.ZoneMidMiddle,
	}
}

type Session struct {
	page     Page
	pitcher  string
	gameDate time.Time
	draft    Draft
}

// New starts a session on the select page with the game date defaulting to
// today in loc.
func New(now time.Time, loc *time.Location) *Session {
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	return &Session{
		page:     PageSelectGame,
		gameDate: today,
		draft:    NewDraft(),
	}
}

func (s *Session) Page() Page          { return s.page }
func (s *Session) Pitcher() string     { return s.pitcher }
func (s *Session) GameDate() time.Time { return s.gameDate }

func (s *Session) Draft() *Draft { return &s.draft }

// SetGameDate overrides the date default while still on the select page.
func (s *Session) SetGameDate(d time.Time) {
	s.gameDate = d
}

// Continue fixes the pitcher and game date for the rest of the session and
// advances to pitch entry. With no pitcher selected it returns ErrNoPitcher
// and stays on the select page.
func (s *Session) Continue(pitcher string, gameDate time.Time) error {
	if strings.TrimSpace(pitcher) == "" {
		return ErrNoPitcher
	}
	s.pitcher = pitcher
	s.gameDate = gameDate
	s.page = PagePitchEntry
	return nil
}

// Back returns to the select page. The fixed pitcher and date are kept so
// re-entering the same game is one keypress.
func (s *Session) Back() {
	s.page = PageSelectGame
}

// BuildPitch validates and normalizes the draft into a storable pitch.
// Pitch type is the only required field; unset velocity (<= 0 or over the
// cap) and unchosen enums come back as absent, never as zero or "".
// The draft itself is untouched, so a failed insert can be retried
// without re-entering anything.
func (s *Session) BuildPitch() (*models.Pitch, error) {
	if s.draft.PitchType == "" {
		return nil, ErrNoPitchType
	}

	p := models.Pitch{
		Pitcher:    s.pitcher,
		Date:       s.gameDate,
		PitchType:  models.PitchType(s.draft.PitchType),
		Swing:      s.draft.Swing,
		GroundBall: s.draft.GroundBall,
		RISP:       s.draft.RISP,
	}

	if v := s.draft.Velocity; v > 0 && v <= models.MaxVelocity {
		p.Velocity = &v
	}
	if i := s.draft.Inning; i >= 1 && i <= models.MaxInning {
		p.Inning = &i
	}
	if r := models.Result(s.draft.Result); r.Valid() {
		p.Result = &r
	}
	if s.draft.BatterHand.Valid() {
		h := s.draft.BatterHand
		p.BatterHand = &h
	}
	if s.draft.Location.Valid() {
		z := s.draft.Location
		p.Location = &z
	}

	return &p, nil
}

// ResetDraft blanks the form for the next pitch. Called only after a
// successful insert.
func (s *Session) ResetDraft() {
	s.draft = NewDraft()
}
