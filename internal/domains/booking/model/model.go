package model

import (
	"database/sql"
	"time"

	roomModel "basera/internal/domains/room/model"
	"basera/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldRoomID         = "room_id"
	FieldUserName       = "user_name"
	FieldUserEmail      = "user_email"
	FieldUserPhone      = "user_phone"
	FieldCheckInDate    = "check_in_date"
	FieldDurationMonths = "duration_months"
	FieldMessage        = "message"
	FieldStatus         = "status"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// allowedTransitions is the closed set of status moves. Cancelled is terminal;
// there is no way back to pending.
var allowedTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
}

func CanTransition(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}

	return false
}

// Booking carries the joined room columns on every read so a listing does not
// need a query per row. They are nullable; the room may have been deleted
// after the booking was taken.
type Booking struct {
	ID             string    `db:"id"`
	RoomID         string    `db:"room_id"`
	UserName       string    `db:"user_name"`
	UserEmail      string    `db:"user_email"`
	UserPhone      string    `db:"user_phone"`
	CheckInDate    time.Time `db:"check_in_date"`
	DurationMonths int       `db:"duration_months"`
	Message        string    `db:"message"`
	Status         string    `db:"status"`
	model.Metadata

	RoomTitle    sql.NullString  `db:"room_title"    table:"rooms" column:"title"`
	RoomLocation sql.NullString  `db:"room_location" table:"rooms" column:"location"`
	RoomPrice    sql.NullFloat64 `db:"room_price"    table:"rooms" column:"price"`
	RoomDeposit  sql.NullFloat64 `db:"room_deposit"  table:"rooms" column:"deposit_amount"`
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN " + roomModel.TableName + " ON " + roomModel.TableName + ".id = " + TableName + ".room_id"
}
