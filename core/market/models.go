package market

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/connectingcampuses/backend/core"
)

var (
	whatsappTag   = "whatsappnum"
	whatsappText  = "whatsapp number must start with 91 followed by 10 digits"
	whatsappRegex = regexp.MustCompile(`^91\d{10}$`)
)

func init() {
	_ = core.Validate.RegisterValidation(whatsappTag, func(fl validator.FieldLevel) bool {
		return whatsappRegex.MatchString(fl.Field().String())
	})
	core.RegisterCustomTranslation(whatsappTag, whatsappText)
}

// Listing is a second-hand item put up for sale.
type Listing struct {
	ID          string `json:"_id" db:"id"`
	Title       string `json:"title" db:"title"`
	Price       int    `json:"price" db:"price"` // rupees
	Category    string `json:"category" db:"category"`
	Description string `json:"description" db:"description"`

	Photo            []byte `json:"-" db:"photo"`
	PhotoContentType string `json:"-" db:"photo_content_type"`

	WhatsappNumber string    `json:"whatsappNumber" db:"whatsapp_number"`
	Email          string    `json:"email" db:"email"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"` // UTC
}

// NewListing contains information needed to put up a Listing.
type NewListing struct {
	Title          string `json:"title" form:"title" validate:"required"`
	Price          int    `json:"price" form:"price" validate:"min=0"`
	Category       string `json:"category" form:"category" validate:"required"`
	Description    string `json:"description" form:"description" validate:"required"`
	WhatsappNumber string `json:"whatsappNumber" form:"whatsappNumber" validate:"required,whatsappnum"`

	Photo            []byte `json:"-"`
	PhotoContentType string `json:"-"`
}

func (nl *NewListing) Validate() error {
	nl.Title = core.CleanString(nl.Title)
	nl.Category = core.CleanString(nl.Category)
	nl.Description = core.CleanString(nl.Description)
	nl.WhatsappNumber = core.CleanString(nl.WhatsappNumber)
	return core.Validate.Struct(nl)
}
