package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/avela/athletiq/internal/criteria"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Evaluation represents one scored analysis stored in the database.
type Evaluation struct {
	ID         string
	Discipline string
	PlayerID   int
	FrameCount int
	Report     *criteria.Report
	CreatedAt  time.Time
}

// EvaluationRepository provides CRUD operations for evaluations.
type EvaluationRepository struct {
	db *sql.DB
}

// Evaluations returns the evaluation repository for this store.
func (s *Store) Evaluations() *EvaluationRepository {
	return &EvaluationRepository{db: s.db}
}

// Create inserts an evaluation and its report into the database.
func (r *EvaluationRepository) Create(e *Evaluation) error {
	e.CreatedAt = time.Now()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO evaluations (id, discipline, player_id, frame_count, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Discipline, e.PlayerID, e.FrameCount, e.CreatedAt,
	)
	if err != nil {
		return err
	}

	for i, name := range e.Report.Names() {
		idx := i + 1
		_, err = tx.Exec(
			`INSERT INTO criterion_scores (evaluation_id, criterion_index, name, score)
			 VALUES (?, ?, ?, ?)`,
			e.ID, idx, name, e.Report.Scores[name],
		)
		if err != nil {
			return err
		}

		for _, frame := range e.Report.Frames[idx] {
			_, err = tx.Exec(
				`INSERT INTO criterion_frames (evaluation_id, criterion_index, frame)
				 VALUES (?, ?, ?)`,
				e.ID, idx, frame,
			)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// GetByID retrieves an evaluation and its report by ID.
func (r *EvaluationRepository) GetByID(id string) (*Evaluation, error) {
	e := &Evaluation{}

	err := r.db.QueryRow(
		`SELECT id, discipline, player_id, frame_count, created_at
		 FROM evaluations WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Discipline, &e.PlayerID, &e.FrameCount, &e.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	report, err := r.loadReport(id)
	if err != nil {
		return nil, err
	}
	e.Report = report

	return e, nil
}

// List retrieves all evaluations without their reports, newest first.
func (r *EvaluationRepository) List() ([]*Evaluation, error) {
	rows, err := r.db.Query(
		`SELECT id, discipline, player_id, frame_count, created_at
		 FROM evaluations ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evaluations []*Evaluation
	for rows.Next() {
		e := &Evaluation{}
		err := rows.Scan(&e.ID, &e.Discipline, &e.PlayerID, &e.FrameCount, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		evaluations = append(evaluations, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return evaluations, nil
}

// Delete removes an evaluation and, via cascade, its report rows.
func (r *EvaluationRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM evaluations WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// loadReport reassembles a criteria.Report from its score and frame rows.
func (r *EvaluationRepository) loadReport(id string) (*criteria.Report, error) {
	rows, err := r.db.Query(
		`SELECT criterion_index, name, score
		 FROM criterion_scores WHERE evaluation_id = ? ORDER BY criterion_index`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	var scores []int
	for rows.Next() {
		var idx, score int
		var name string
		if err := rows.Scan(&idx, &name, &score); err != nil {
			return nil, err
		}
		names = append(names, name)
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	report := criteria.NewReport(names)
	for i, score := range scores {
		if score == 1 {
			report.Pass(i + 1)
		}
	}

	frameRows, err := r.db.Query(
		`SELECT criterion_index, frame
		 FROM criterion_frames WHERE evaluation_id = ? ORDER BY criterion_index, frame`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer frameRows.Close()

	for frameRows.Next() {
		var idx, frame int
		if err := frameRows.Scan(&idx, &frame); err != nil {
			return nil, err
		}
		report.Observe(idx, frame)
	}
	if err := frameRows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
