package lostfound

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/connectingcampuses/backend/core"
)

var (
	pastDateTag  = "pastdate"
	pastDateText = "date cannot be in the future"
)

func init() {
	core.Validate.RegisterStructValidation(itemStructValidation, NewItem{})
	core.RegisterCustomTranslation(pastDateTag, pastDateText)
}

// Item is a lost or found item posting.
type Item struct {
	ID          string `json:"_id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`

	Photo            []byte `json:"-" db:"photo"`
	PhotoContentType string `json:"-" db:"photo_content_type"`

	Contact   string    `json:"contact" db:"contact"`
	WhatsApp  string    `json:"whatsapp" db:"whatsapp"`
	Date      string    `json:"date" db:"date"` // YYYY-MM-DD, when lost/found
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // UTC
}

// NewItem contains information needed to post an Item.
type NewItem struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description" validate:"required"`
	Contact     string `json:"contact" form:"contact" validate:"required,phonenum"`
	WhatsApp    string `json:"whatsapp" form:"whatsapp" validate:"omitempty,phonenum"`
	Date        string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`

	Photo            []byte `json:"-"`
	PhotoContentType string `json:"-"`
}

func (ni *NewItem) Validate() error {
	ni.Title = core.CleanString(ni.Title)
	ni.Description = core.CleanString(ni.Description)
	ni.Contact = core.CleanString(ni.Contact)
	ni.WhatsApp = core.CleanString(ni.WhatsApp)
	ni.Date = core.CleanString(ni.Date)
	return core.Validate.Struct(ni)
}

// itemStructValidation rejects postings dated in the future.
func itemStructValidation(sl validator.StructLevel) {
	ni := sl.Current().Interface().(NewItem)
	d, err := time.Parse("2006-01-02", ni.Date)
	if err != nil {
		return // the datetime tag reports the format error
	}
	if d.After(time.Now()) {
		sl.ReportError(ni.Date, "date", "Date", pastDateTag, "")
	}
}
