package repository

import (
	"database/sql"

	"github.com/stlscore/pitchchart/internal/models"
)

type PitcherRepo struct {
	db *sql.DB
}

func NewPitcherRepo(db *sql.DB) *PitcherRepo {
	return &PitcherRepo{db: db}
}

// Add inserts a pitcher, doing nothing if the name is already on the
// roster. The first write wins; repeating the call with a different
// handedness leaves the existing row untouched.
func (r *PitcherRepo) Add(name string, handedness models.Hand) error {
	_, err := r.db.Exec(
		"INSERT INTO pitchers (name, handedness) VALUES (?, ?) ON CONFLICT(name) DO NOTHING",
		name, string(handedness),
	)
	return err
}

// GetNames returns every roster name in ascending lexical order.
func (r *PitcherRepo) GetNames() ([]string, error) {
	rows, err := r.db.Query("SELECT name FROM pitchers ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetByName returns the pitcher row, or nil if the name is not on the roster.
func (r *PitcherRepo) GetByName(name string) (*models.Pitcher, error) {
	var p models.Pitcher
	var handedness sql.NullString

	err := r.db.QueryRow(
		"SELECT id, name, handedness, created_at FROM pitchers WHERE name = ?",
		name,
	).Scan(&p.ID, &p.Name, &handedness, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if handedness.Valid {
		h := models.Hand(handedness.String)
		p.Handedness = &h
	}

	return &p, nil
}

// GetHandedness is a point lookup; nil when the pitcher is unknown or the
// row predates the handedness column.
func (r *PitcherRepo) GetHandedness(name string) (*models.Hand, error) {
	p, err := r.GetByName(name)
	if err != nil || p == nil {
		return nil, err
	}
	return p.Handedness, nil
}
