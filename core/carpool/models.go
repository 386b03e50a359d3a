package carpool

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/connectingcampuses/backend/core"
)

var (
	contactNumTag   = "contactnum"
	contactNumText  = "contact number must be 10 to 15 digits"
	contactNumRegex = regexp.MustCompile(`^\d{10,15}$`)
)

func init() {
	_ = core.Validate.RegisterValidation(contactNumTag, func(fl validator.FieldLevel) bool {
		return contactNumRegex.MatchString(fl.Field().String())
	})
	core.RegisterCustomTranslation(contactNumTag, contactNumText)
}

// Post is a carpool offer or request.
type Post struct {
	ID              string    `json:"_id" db:"id"`
	PickupLocation  string    `json:"pickupLocation" db:"pickup_location"`
	DropLocation    string    `json:"dropLocation" db:"drop_location"`
	TravelDate      string    `json:"travelDate" db:"travel_date"` // YYYY-MM-DD
	DepartureTime   string    `json:"departureTime" db:"departure_time"`
	SeatsAvailable  int       `json:"seatsAvailable" db:"seats_available"`
	AdditionalNotes string    `json:"additionalNotes" db:"additional_notes"`
	ContactNumber   string    `json:"contactNumber" db:"contact_number"`
	Email           string    `json:"email" db:"email"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"` // UTC
}

// NewPost contains information needed to publish a carpool Post.
type NewPost struct {
	PickupLocation  string `json:"pickupLocation" validate:"required"`
	DropLocation    string `json:"dropLocation" validate:"required"`
	TravelDate      string `json:"travelDate" validate:"required,datetime=2006-01-02"`
	DepartureTime   string `json:"departureTime" validate:"required"`
	SeatsAvailable  int    `json:"seatsAvailable" validate:"required,min=1"`
	AdditionalNotes string `json:"additionalNotes"`
	ContactNumber   string `json:"contactNumber" validate:"required,contactnum"`
}

func (np *NewPost) Validate() error {
	np.PickupLocation = core.CleanString(np.PickupLocation)
	np.DropLocation = core.CleanString(np.DropLocation)
	np.TravelDate = core.CleanString(np.TravelDate)
	np.DepartureTime = core.CleanString(np.DepartureTime)
	np.AdditionalNotes = core.CleanString(np.AdditionalNotes)
	np.ContactNumber = core.CleanString(np.ContactNumber)
	return core.Validate.Struct(np)
}
