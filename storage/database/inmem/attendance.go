package inmemdb

import (
	"context"

	"github.com/connectingcampuses/backend/core/attendance"
)

type attendanceRepository struct {
	db *attendanceTable
}

var _ attendance.Repository = (*attendanceRepository)(nil)

func NewAttendanceRepository(db *DB) *attendanceRepository {
	return &attendanceRepository{db: db.attendance}
}

func key(userID, subject string) string { return userID + "/" + subject }

func (r *attendanceRepository) UpsertMark(_ context.Context, sheet attendance.Sheet, date string, status attendance.Status) (attendance.Sheet, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	k := key(sheet.UserID, sheet.Subject)
	existing, ok := r.db.t[k]
	if !ok {
		sheet.Records[date] = status
		r.db.t[k] = &sheet
		return sheet, nil
	}
	existing.Records[date] = status
	existing.UpdatedAt = sheet.UpdatedAt
	return *existing, nil
}

func (r *attendanceRepository) QuerySheetsByUser(_ context.Context, userID string) ([]attendance.Sheet, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	res := make([]attendance.Sheet, 0)
	for _, s := range r.db.t {
		if s.UserID == userID {
			res = append(res, *s)
		}
	}
	return res, nil
}

func (r *attendanceRepository) GetSheet(_ context.Context, userID, subject string) (attendance.Sheet, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if s, ok := r.db.t[key(userID, subject)]; ok {
		return *s, nil
	}
	return attendance.Sheet{}, attendance.ErrNotFound
}

func (r *attendanceRepository) DeleteSheet(_ context.Context, userID, subject string) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	k := key(userID, subject)
	if _, ok := r.db.t[k]; !ok {
		return attendance.ErrNotFound
	}
	delete(r.db.t, k)
	return nil
}

func (r *attendanceRepository) DeleteSheetsByUser(_ context.Context, userID string) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	for k, s := range r.db.t {
		if s.UserID == userID {
			delete(r.db.t, k)
		}
	}
	return nil
}
