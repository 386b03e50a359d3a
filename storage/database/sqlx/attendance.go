package sqlxrepos

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"github.com/connectingcampuses/backend/core/attendance"
)

type attendanceRepository struct {
	db *sqlx.DB
}

var _ attendance.Repository = (*attendanceRepository)(nil)

func NewAttendanceRepository(db *sql.DB) *attendanceRepository {
	return &attendanceRepository{db: sqlx.NewDb(db, "postgres")}
}

const sheetColumns = `id, user_id, subject, records, created_at, updated_at`

// UpsertMark merges one date's status into the (user_id, subject) sheet in a
// single statement; concurrent marks on different dates both land.
func (repo attendanceRepository) UpsertMark(ctx context.Context, sheet attendance.Sheet, date string, status attendance.Status) (attendance.Sheet, error) {
	patch, err := json.Marshal(attendance.StatusMap{date: status})
	if err != nil {
		return attendance.Sheet{}, err
	}

	q := `
INSERT INTO attendance (id, user_id, subject, records, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, subject)
DO UPDATE SET records = attendance.records || EXCLUDED.records, updated_at = EXCLUDED.updated_at
RETURNING ` + sheetColumns
	var updated attendance.Sheet
	err = repo.db.GetContext(ctx, &updated, q, sheet.ID, sheet.UserID, sheet.Subject, patch, sheet.CreatedAt, sheet.UpdatedAt)
	if err != nil {
		return attendance.Sheet{}, err
	}
	return updated, nil
}

func (repo attendanceRepository) QuerySheetsByUser(ctx context.Context, userID string) ([]attendance.Sheet, error) {
	sheets := make([]attendance.Sheet, 0)
	q := `SELECT ` + sheetColumns + ` FROM attendance WHERE user_id = $1 ORDER BY subject`
	if err := repo.db.SelectContext(ctx, &sheets, q, userID); err != nil {
		return nil, err
	}
	return sheets, nil
}

func (repo attendanceRepository) GetSheet(ctx context.Context, userID, subject string) (attendance.Sheet, error) {
	var sheet attendance.Sheet
	q := `SELECT ` + sheetColumns + ` FROM attendance WHERE user_id = $1 AND subject = $2`
	if err := repo.db.GetContext(ctx, &sheet, q, userID, subject); err != nil {
		if err == sql.ErrNoRows {
			return attendance.Sheet{}, attendance.ErrNotFound
		}
		return attendance.Sheet{}, err
	}
	return sheet, nil
}

func (repo attendanceRepository) DeleteSheet(ctx context.Context, userID, subject string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM attendance WHERE user_id = $1 AND subject = $2`, userID, subject)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return attendance.ErrNotFound
	}
	return nil
}

func (repo attendanceRepository) DeleteSheetsByUser(ctx context.Context, userID string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM attendance WHERE user_id = $1`, userID)
	return err
}
