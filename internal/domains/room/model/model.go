package model

import (
	"math"

	"github.com/lib/pq"

	"basera/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldPrice         = "price"
	FieldType          = "type"
	FieldLocation      = "location"
	FieldAddress       = "address"
	FieldContactNumber = "contact_number"
	FieldFacilities    = "facilities"
	FieldPhotos        = "photos"
	FieldAvailable     = "available"
	FieldGender        = "gender"
	FieldFoodIncluded  = "food_included"
	FieldArea          = "area"
	FieldRating        = "rating"
	FieldDepositAmount = "deposit_amount"
)

const (
	TypePG         = "PG"
	TypeHostel     = "Hostel"
	TypeRoom       = "Room"
	TypeSharedRoom = "Shared Room"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderCoEd   = "Co-ed"
)

const depositMultiplier = 1.5

type Room struct {
	ID            string         `db:"id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	Price         float64        `db:"price"`
	Type          string         `db:"type"`
	Location      string         `db:"location"`
	Address       string         `db:"address"`
	ContactNumber string         `db:"contact_number"`
	Facilities    pq.StringArray `db:"facilities"`
	Photos        pq.StringArray `db:"photos"`
	Available     bool           `db:"available"`
	Gender        string         `db:"gender"`
	FoodIncluded  bool           `db:"food_included"`
	Area          string         `db:"area"`
	Rating        float64        `db:"rating"`
	DepositAmount float64        `db:"deposit_amount"`
	model.Metadata
}

// CalculateDeposit derives the deposit amount from a monthly price. It must
// run on every write path that sets or changes the price; the stored value is
// never accepted from a caller. Rounding is half away from zero.
func CalculateDeposit(price float64) float64 {
	return math.Round(price * depositMultiplier)
}
