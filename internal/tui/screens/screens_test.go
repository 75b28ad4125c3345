package screens

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stlscore/pitchchart/internal/db"
	"github.com/stlscore/pitchchart/internal/models"
	"github.com/stlscore/pitchchart/internal/repository"
	"github.com/stlscore/pitchchart/internal/session"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	home := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home) // For Windows

	database, err := db.OpenAndMigrate()
	if err != nil {
		t.Fatalf("OpenAndMigrate: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return database
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	return session.New(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), loc)
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyEnter})
}

// runCmd executes a screen command and feeds its message back, the way the
// bubbletea runtime would.
func runCmd(t *testing.T, update func(tea.Msg) tea.Cmd, cmd tea.Cmd) {
	t.Helper()

	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		cmd = update(msg)
	}
}

func countPitches(t *testing.T, database *sql.DB) int {
	t.Helper()

	var n int
	if err := database.QueryRow("SELECT COUNT(*) FROM pitches").Scan(&n); err != nil {
		t.Fatalf("count pitches: %v", err)
	}
	return n
}

func TestSelectGameContinueWithoutPitcherWarns(t *testing.T) {
	database := openTestDB(t)
	sess := newTestSession(t)

	s := NewSelectGame(database, sess)
	runCmd(t, s.Update, s.Init())

	cmd := s.Update(enterKey())
	if cmd != nil {
		t.Fatal("expected no navigation with an empty roster")
	}
	if s.warning == "" {
		t.Fatal("expected a warning about the missing pitcher")
	}
	if sess.Page() != session.PageSelectGame {
		t.Fatalf("Page = %v, want PageSelectGame", sess.Page())
	}
	if countPitches(t, database) != 0 {
		t.Fatal("failed continue wrote pitch rows")
	}
}

func TestSelectGameContinueAdvancesToEntry(t *testing.T) {
	database := openTestDB(t)
	sess := newTestSession(t)

	if err := repository.NewPitcherRepo(database).Add("Jones", models.HandRight); err != nil {
		t.Fatalf("Add: %v", err)
	}

	s := NewSelectGame(database, sess)
	runCmd(t, s.Update, s.Init())

	cmd := s.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	nav, ok := cmd().(NavigateMsg)
	if !ok || nav.Screen != "entry" {
		t.Fatalf("navigation = %+v, want entry", nav)
	}
	if sess.Page() != session.PagePitchEntry {
		t.Fatalf("Page = %v, want PagePitchEntry", sess.Page())
	}
	if sess.Pitcher() != "Jones" {
		t.Fatalf("Pitcher = %q, want Jones", sess.Pitcher())
	}
}

func TestEntrySubmitWithoutPitchTypeWarnsAndWritesNothing(t *testing.T) {
	database := openTestDB(t)
	sess := newTestSession(t)
	if err := sess.Continue("Jones", sess.GameDate()); err != nil {
		t.Fatalf("Continue: %v", err)
	}

	e := NewEntry(database, sess)
	runCmd(t, e.Update, e.Init())

	if cmd := e.Update(enterKey()); cmd != nil {
		t.Fatal("expected no command after rejected submission")
	}
	if e.warning == "" {
		t.Fatal("expected a warning about the missing pitch type")
	}
	if sess.Page() != session.PagePitchEntry {
		t.Fatalf("Page = %v, want PagePitchEntry", sess.Page())
	}
	if countPitches(t, database) != 0 {
		t.Fatal("rejected submission wrote pitch rows")
	}
}

func TestEntrySubmitAndRenumberLog(t *testing.T) {
	database := openTestDB(t)
	sess := newTestSession(t)
	if err := sess.Continue("Jones", sess.GameDate()); err != nil {
		t.Fatalf("Continue: %v", err)
	}

	e := NewEntry(database, sess)
	runCmd(t, e.Update, e.Init())

	// First pitch: CU 78, Strike, swing
	d := sess.Draft()
	d.PitchType = string(models.PitchCurveball)
	d.Result = string(models.ResultStrike)
	d.Swing = true
	e.veloInput.SetValue("78")
	runCmd(t, e.Update, e.Update(enterKey()))

	if len(e.pitches) != 1 {
		t.Fatalf("log has %d pitches, want 1", len(e.pitches))
	}
	first := e.pitches[0]
	if first.PitchType != models.PitchCurveball || first.Velocity == nil || *first.Velocity != 78 {
		t.Fatalf("first pitch = %+v, want CU at 78", first)
	}
	if first.Result == nil || *first.Result != models.ResultStrike || !first.Swing || first.GroundBall {
		t.Fatalf("first pitch = %+v, want Strike, swing, no ground ball", first)
	}

	// Draft resets to blank for the next pitch
	if sess.Draft().PitchType != "" || e.veloInput.Value() != "" {
		t.Fatal("draft not reset after successful submission")
	}

	// Second pitch: FF with velocity and result left unset
	sess.Draft().PitchType = string(models.PitchFourSeam)
	runCmd(t, e.Update, e.Update(enterKey()))

	if len(e.pitches) != 2 {
		t.Fatalf("log has %d pitches, want 2", len(e.pitches))
	}
	if e.pitches[0].ID != first.ID {
		t.Fatal("first pitch changed after second submission")
	}
	second := e.pitches[1]
	if second.PitchType != models.PitchFourSeam {
		t.Fatalf("second pitch type = %s, want FF", second.PitchType)
	}
	if second.Velocity != nil {
		t.Fatalf("second pitch velocity = %d, want absent", *second.Velocity)
	}
	if second.Result != nil {
		t.Fatalf("second pitch result = %q, want absent", *second.Result)
	}
	if second.ID <= first.ID {
		t.Fatalf("ids not ascending: %d then %d", first.ID, second.ID)
	}
}

func TestEntryEscReturnsToSelect(t *testing.T) {
	database := openTestDB(t)
	sess := newTestSession(t)
	if err := sess.Continue("Jones", sess.GameDate()); err != nil {
		t.Fatalf("Continue: %v", err)
	}

	e := NewEntry(database, sess)
	runCmd(t, e.Update, e.Init())

	cmd := e.Update(tea.KeyMsg(tea.Key{Type: tea.KeyEsc}))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	nav, ok := cmd().(NavigateMsg)
	if !ok || nav.Screen != "select" {
		t.Fatalf("navigation = %+v, want select", nav)
	}
	if sess.Page() != session.PageSelectGame {
		t.Fatalf("Page = %v, want PageSelectGame", sess.Page())
	}
	if sess.Pitcher() != "Jones" {
		t.Fatal("back cleared the fixed pitcher")
	}
}

func TestCycleWrapsBothWays(t *testing.T) {
	options := []string{"", "FF", "FT"}

	if got := cycle(options, "", 1); got != "FF" {
		t.Fatalf("cycle forward = %q, want FF", got)
	}
	if got := cycle(options, "", -1); got != "FT" {
		t.Fatalf("cycle backward = %q, want FT", got)
	}
	if got := cycle(options, "FT", 1); got != "" {
		t.Fatalf("cycle wrap = %q, want blank", got)
	}
}
