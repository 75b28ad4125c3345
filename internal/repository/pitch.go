package repository

import (
	"database/sql"
	"time"

	"github.com/stlscore/pitchchart/internal/models"
)

type PitchRepo struct {
	db *sql.DB
}

func NewPitchRepo(db *sql.DB) *PitchRepo {
	return &PitchRepo{db: db}
}

// Insert appends one pitch and returns the stored row with its assigned id.
// Rows are never updated or merged; the id sequence is the display order.
func (r *PitchRepo) Insert(p models.Pitch) (*models.Pitch, error) {
	result, err := r.db.Exec(`
		INSERT INTO pitches (pitcher, date, pitch_type, velocity, inning, swing, ground_ball, risp, result, batter_hand, location)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.Pitcher,
		p.Date.Format(models.DateLayout),
		string(p.PitchType),
		intOrNil(p.Velocity),
		intOrNil(p.Inning),
		p.Swing,
		p.GroundBall,
		p.RISP,
		stringOrNil((*string)(p.Result)),
		stringOrNil((*string)(p.BatterHand)),
		stringOrNil((*string)(p.Location)),
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

func (r *PitchRepo) GetByID(id int64) (*models.Pitch, error) {
	row := r.db.QueryRow(selectPitch+" WHERE id = ?", id)

	p, err := scanPitch(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByGame returns every pitch charted for one pitcher on one game date,
// in ascending id order (insertion order).
func (r *PitchRepo) GetByGame(pitcher string, date time.Time) ([]models.Pitch, error) {
	rows, err := r.db.Query(
		selectPitch+" WHERE pitcher = ? AND date = ? ORDER BY id ASC",
		pitcher, date.Format(models.DateLayout),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pitches []models.Pitch
	for rows.Next() {
		p, err := scanPitch(rows)
		if err != nil {
			return nil, err
		}
		pitches = append(pitches, *p)
	}
	return pitches, rows.Err()
}

const selectPitch = `
	SELECT id, pitcher, date, pitch_type, velocity, inning, swing, ground_ball, risp, result, batter_hand, location
	FROM pitches`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPitch(row rowScanner) (*models.Pitch, error) {
	var p models.Pitch
	var date string
	var velocity, inning sql.NullInt64
	var result, batterHand, location sql.NullString

	err := row.Scan(
		&p.ID, &p.Pitcher, &date, &p.PitchType,
		&velocity, &inning, &p.Swing, &p.GroundBall, &p.RISP,
		&result, &batterHand, &location,
	)
	if err != nil {
		return nil, err
	}

	p.Date, err = time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, err
	}

	if velocity.Valid {
		v := int(velocity.Int64)
		p.Velocity = &v
	}
	if inning.Valid {
		i := int(inning.Int64)
		p.Inning = &i
	}
	if result.Valid {
		v := models.Result(result.String)
		p.Result = &v
	}
	if batterHand.Valid {
		h := models.Hand(batterHand.String)
		p.BatterHand = &h
	}
	if location.Valid {
		z := models.Zone(location.String)
		p.Location = &z
	}

	return &p, nil
}

func intOrNil(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func stringOrNil(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
