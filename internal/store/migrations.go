package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Evaluations table - one row per scored video analysis
		`CREATE TABLE IF NOT EXISTS evaluations (
			id TEXT PRIMARY KEY,
			discipline TEXT NOT NULL,
			player_id INTEGER NOT NULL,
			frame_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Criterion scores table - the 0/1 checklist result per criterion
		`CREATE TABLE IF NOT EXISTS criterion_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			evaluation_id TEXT NOT NULL REFERENCES evaluations(id) ON DELETE CASCADE,
			criterion_index INTEGER NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL CHECK(score IN (0, 1))
		)`,

		// Criterion frames table - frames where a criterion condition held
		`CREATE TABLE IF NOT EXISTS criterion_frames (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			evaluation_id TEXT NOT NULL REFERENCES evaluations(id) ON DELETE CASCADE,
			criterion_index INTEGER NOT NULL,
			frame INTEGER NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_criterion_scores_evaluation_id ON criterion_scores(evaluation_id)`,
		`CREATE INDEX IF NOT EXISTS idx_criterion_frames_evaluation_id ON criterion_frames(evaluation_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
