package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fcz-stats/internal/domain/snapshot"
	qb "github.com/riskibarqy/fcz-stats/internal/platform/querybuilder"
)

type SnapshotRepository struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save soft-deletes the previous snapshots for the scope and inserts
// the new one, so Latest always resolves to a single live row.
func (r *SnapshotRepository) Save(ctx context.Context, item snapshot.Snapshot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx save stats snapshot: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("stats_snapshots").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("league_id", item.LeagueID),
			qb.Eq("team_id", item.TeamID),
			qb.Eq("season", item.Season),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear stats snapshots query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear stats snapshots: %w", err)
	}

	insertModel := statsSnapshotInsertModel{
		ID:          item.ID,
		LeagueID:    item.LeagueID,
		TeamID:      item.TeamID,
		Season:      item.Season,
		PayloadJSON: item.PayloadJSON,
		FetchedAt:   item.FetchedAt,
	}
	query, args, err := qb.InsertModel("stats_snapshots", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert stats snapshot query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert stats snapshot id=%s: %w", item.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save stats snapshot tx: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) Latest(ctx context.Context, leagueID, teamID int64, season int) (snapshot.Snapshot, bool, error) {
	query, args, err := qb.Select("*").From("stats_snapshots").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("team_id", teamID),
			qb.Eq("season", season),
			qb.IsNull("deleted_at"),
		).
		OrderBy("fetched_at DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return snapshot.Snapshot{}, false, fmt.Errorf("build latest stats snapshot query: %w", err)
	}

	var row statsSnapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return snapshot.Snapshot{}, false, nil
		}
		return snapshot.Snapshot{}, false, fmt.Errorf("get latest stats snapshot: %w", err)
	}

	return snapshot.Snapshot{
		ID:          row.ID,
		LeagueID:    row.LeagueID,
		TeamID:      row.TeamID,
		Season:      row.Season,
		PayloadJSON: row.PayloadJSON,
		FetchedAt:   row.FetchedAt,
	}, true, nil
}
