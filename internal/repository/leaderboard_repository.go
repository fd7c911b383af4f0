package repository

import (
	"gorm.io/gorm"
)

// LeaderboardRepository runs the two scoring aggregations. These are
// the only raw-SQL queries in the repo; everything the queries take
// from a request is bound, never interpolated.
type LeaderboardRepository struct {
	DB *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{DB: db}
}

type LevelScoreRow struct {
	PlayerName string
	Total      int
}

// LevelRows computes, per player, the sum over towers of
// (progress level - tower floor level), where the floor is one below
// the tower's minimum level id. Players without progress score 0 and
// sort last.
func (r *LeaderboardRepository) LevelRows() ([]LevelScoreRow, error) {
	var rows []LevelScoreRow
	err := r.DB.Raw(`
		SELECT p.player_name AS player_name, COALESCE(t.total, 0) AS total
		FROM player p
		LEFT JOIN (
			SELECT pr.player_id, SUM(pr.level_id - fl.floor_id) AS total
			FROM progress pr
			JOIN (
				SELECT tower_id, MIN(level_id) - 1 AS floor_id
				FROM level
				GROUP BY tower_id
			) fl ON fl.tower_id = pr.tower_id
			GROUP BY pr.player_id
		) t ON t.player_id = p.player_id
		ORDER BY total DESC, p.player_name ASC`).
		Scan(&rows).Error
	return rows, err
}

type AccuracyScoreRow struct {
	PlayerName string
	Accuracy   float64
}

// AccuracyRows computes, per player, the percentage of logged
// responses whose answer is flagged correct. Zero responses means 0.
func (r *LeaderboardRepository) AccuracyRows() ([]AccuracyScoreRow, error) {
	var rows []AccuracyScoreRow
	err := r.DB.Raw(`
		SELECT p.player_name AS player_name,
		       COALESCE(SUM(CASE WHEN a.correct THEN 1 ELSE 0 END) * 100.0
		                / NULLIF(COUNT(r.response_id), 0), 0) AS accuracy
		FROM player p
		LEFT JOIN response r ON r.player_id = p.player_id
		LEFT JOIN answer a ON a.answer_id = r.answer_id
		GROUP BY p.player_id, p.player_name
		ORDER BY accuracy DESC, p.player_name ASC`).
		Scan(&rows).Error
	return rows, err
}
