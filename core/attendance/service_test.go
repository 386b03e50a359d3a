package attendance

import (
	"context"
	"sync"
	"testing"
)

type fakeRepository struct {
	mutex  sync.RWMutex
	sheets map[string]*Sheet // key: userID + "/" + subject
}

var _ Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{sheets: make(map[string]*Sheet)}
}

func (r *fakeRepository) key(userID, subject string) string { return userID + "/" + subject }

func (r *fakeRepository) UpsertMark(_ context.Context, sheet Sheet, date string, status Status) (Sheet, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	k := r.key(sheet.UserID, sheet.Subject)
	existing, ok := r.sheets[k]
	if !ok {
		sheet.Records[date] = status
		r.sheets[k] = &sheet
		return sheet, nil
	}
	existing.Records[date] = status
	existing.UpdatedAt = sheet.UpdatedAt
	return *existing, nil
}

func (r *fakeRepository) QuerySheetsByUser(_ context.Context, userID string) ([]Sheet, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	res := make([]Sheet, 0)
	for _, s := range r.sheets {
		if s.UserID == userID {
			res = append(res, *s)
		}
	}
	return res, nil
}

func (r *fakeRepository) GetSheet(_ context.Context, userID, subject string) (Sheet, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if s, ok := r.sheets[r.key(userID, subject)]; ok {
		return *s, nil
	}
	return Sheet{}, ErrNotFound
}

func (r *fakeRepository) DeleteSheet(_ context.Context, userID, subject string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	k := r.key(userID, subject)
	if _, ok := r.sheets[k]; !ok {
		return ErrNotFound
	}
	delete(r.sheets, k)
	return nil
}

func (r *fakeRepository) DeleteSheetsByUser(_ context.Context, userID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for k, s := range r.sheets {
		if s.UserID == userID {
			delete(r.sheets, k)
		}
	}
	return nil
}

func TestServiceMark(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()
	userID := "u1"

	sheet, err := svc.Mark(ctx, userID, Mark{Subject: "maths", Date: "2024-03-01", Status: "present"})
	if err != nil {
		t.Fatalf("Mark() error = %v", err)
	}
	if sheet.Subject != "MATHS" {
		t.Errorf("subject = %q, want %q", sheet.Subject, "MATHS")
	}
	if got := sheet.Records["2024-03-01"]; got != StatusPresent {
		t.Errorf("records[2024-03-01] = %q, want %q", got, StatusPresent)
	}

	// a second date extends the same sheet
	sheet, err = svc.Mark(ctx, userID, Mark{Subject: "MATHS", Date: "2024-03-02", Status: "absent"})
	if err != nil {
		t.Fatalf("Mark() error = %v", err)
	}
	if len(sheet.Records) != 2 {
		t.Fatalf("records length = %d, want 2", len(sheet.Records))
	}
	if got := sheet.Records["2024-03-01"]; got != StatusPresent {
		t.Errorf("earlier date was clobbered: %q", got)
	}

	// re-marking a date overwrites it, last write wins
	sheet, err = svc.Mark(ctx, userID, Mark{Subject: "maths", Date: "2024-03-01", Status: "cancelled"})
	if err != nil {
		t.Fatalf("Mark() error = %v", err)
	}
	if got := sheet.Records["2024-03-01"]; got != StatusCancelled {
		t.Errorf("records[2024-03-01] = %q, want %q", got, StatusCancelled)
	}
	if len(sheet.Records) != 2 {
		t.Errorf("records length = %d, want 2", len(sheet.Records))
	}
}

func TestServiceSubjectCasing(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()
	userID := "u1"

	// "Maths" and "MATHS" address the same sheet
	if _, err := svc.Mark(ctx, userID, Mark{Subject: "Maths", Date: "2024-03-01", Status: "present"}); err != nil {
		t.Fatalf("Mark() error = %v", err)
	}
	sheet, err := svc.Mark(ctx, userID, Mark{Subject: "MATHS", Date: "2024-03-01", Status: "absent"})
	if err != nil {
		t.Fatalf("Mark() error = %v", err)
	}
	if got := sheet.Records["2024-03-01"]; got != StatusAbsent {
		t.Errorf("records[2024-03-01] = %q, want %q", got, StatusAbsent)
	}

	sheets, err := svc.ForUser(ctx, userID)
	if err != nil {
		t.Fatalf("ForUser() error = %v", err)
	}
	if len(sheets) != 1 {
		t.Errorf("sheets = %d, want 1", len(sheets))
	}
}

func TestMarkValidate(t *testing.T) {
	tests := []struct {
		name    string
		mark    Mark
		wantErr bool
	}{
		{name: "valid", mark: Mark{Subject: "maths", Date: "2024-03-01", Status: "present"}},
		{name: "status is lowercased", mark: Mark{Subject: "maths", Date: "2024-03-01", Status: "Present"}},
		{name: "unknown status", mark: Mark{Subject: "maths", Date: "2024-03-01", Status: "late"}, wantErr: true},
		{name: "bad date", mark: Mark{Subject: "maths", Date: "01-03-2024", Status: "present"}, wantErr: true},
		{name: "missing subject", mark: Mark{Date: "2024-03-01", Status: "present"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.mark.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestServiceDelete(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()
	userID := "u1"

	for _, subj := range []string{"maths", "physics"} {
		if _, err := svc.Mark(ctx, userID, Mark{Subject: subj, Date: "2024-03-01", Status: "present"}); err != nil {
			t.Fatalf("Mark() error = %v", err)
		}
	}

	if err := svc.DeleteSubject(ctx, userID, "maths"); err != nil {
		t.Fatalf("DeleteSubject() error = %v", err)
	}
	if _, err := svc.ForSubject(ctx, userID, "maths"); err != ErrNotFound {
		t.Errorf("ForSubject(deleted) error = %v, want %v", err, ErrNotFound)
	}

	if err := svc.ClearAll(ctx, userID); err != nil {
		t.Fatalf("ClearAll() error = %v", err)
	}
	sheets, _ := svc.ForUser(ctx, userID)
	if len(sheets) != 0 {
		t.Errorf("sheets after ClearAll = %d, want 0", len(sheets))
	}
}
