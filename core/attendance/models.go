package attendance

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/connectingcampuses/backend/core"
)

// Status is the closed vocabulary of per-date attendance marks.
type Status string

const (
	StatusPresent   Status = "present"
	StatusAbsent    Status = "absent"
	StatusCancelled Status = "cancelled"
)

const dateLayout = "2006-01-02"

// StatusMap holds the per-date marks of one sheet, keyed by "YYYY-MM-DD".
// It is stored as a single JSONB column so a one-date update can be expressed
// as a jsonb concatenation server-side.
type StatusMap map[string]Status

var _ driver.Valuer = (StatusMap)(nil)

func (m StatusMap) Value() (driver.Value, error) {
	if m == nil {
		m = StatusMap{}
	}
	return json.Marshal(m)
}

func (m *StatusMap) Scan(src interface{}) error {
	if src == nil {
		*m = StatusMap{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return errors.Errorf("scanning status map: unexpected type %T", src)
	}
	return json.Unmarshal(b, m)
}

// Sheet is the attendance record of one user in one subject.
// (UserID, Subject) is unique; Subject is stored uppercased.
type Sheet struct {
	ID        string    `json:"_id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Subject   string    `json:"subject" db:"subject"`
	Records   StatusMap `json:"records" db:"records"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // UTC
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"` // UTC
}

// Mark is the input to record one date's status in one subject.
type Mark struct {
	Subject string `json:"subject" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Status  string `json:"status" validate:"required,oneof=present absent cancelled"`
}

func (m *Mark) Validate() error {
	m.Subject = core.CleanString(m.Subject)
	m.Date = core.CleanString(m.Date)
	m.Status = core.CleanString(m.Status, true /* lower */)
	return core.Validate.Struct(m)
}
