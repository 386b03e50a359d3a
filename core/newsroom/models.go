package newsroom

import (
	"time"

	"github.com/connectingcampuses/backend/core"
)

// Event is a campus news or club event posting.
type Event struct {
	ID          string    `json:"_id" db:"id"`
	Category    string    `json:"category" db:"category"`
	Club        string    `json:"club" db:"club"`
	Title       string    `json:"title" db:"title"`
	Src         string    `json:"src" db:"src"` // poster image URL
	Description string    `json:"description" db:"description"`
	Date        string    `json:"date" db:"date"` // YYYY-MM-DD
	Email       string    `json:"email" db:"email"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"` // UTC
}

// NewEvent contains information needed to publish an Event.
type NewEvent struct {
	Category    string `json:"category" validate:"required"`
	Club        string `json:"club" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Src         string `json:"src" validate:"omitempty,url"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (ne *NewEvent) Validate() error {
	ne.Category = core.CleanString(ne.Category)
	ne.Club = core.CleanString(ne.Club)
	ne.Title = core.CleanString(ne.Title)
	ne.Src = core.CleanString(ne.Src)
	ne.Description = core.CleanString(ne.Description)
	ne.Date = core.CleanString(ne.Date)
	return core.Validate.Struct(ne)
}

// UpdateEvent modifies an existing Event. Zero values leave the original
// field untouched.
type UpdateEvent struct {
	Category    string `json:"category"`
	Club        string `json:"club"`
	Title       string `json:"title"`
	Src         string `json:"src" validate:"omitempty,url"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (ue *UpdateEvent) Validate() error {
	ue.Category = core.CleanString(ue.Category)
	ue.Club = core.CleanString(ue.Club)
	ue.Title = core.CleanString(ue.Title)
	ue.Src = core.CleanString(ue.Src)
	ue.Description = core.CleanString(ue.Description)
	ue.Date = core.CleanString(ue.Date)
	return core.Validate.Struct(ue)
}
