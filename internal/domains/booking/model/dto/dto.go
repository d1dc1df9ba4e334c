package dto

import (
	"time"

	"github.com/google/uuid"

	"basera/internal/domains/booking/model"
	"basera/shared"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	gModel "basera/shared/model"
	"basera/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID         string `json:"room_id"         validate:"required,uuid4"`
	UserName       string `json:"user_name"       validate:"required,max=100"`
	UserEmail      string `json:"user_email"      validate:"required,email,max=100"`
	UserPhone      string `json:"user_phone"      validate:"required,max=20"`
	CheckInDate    string `json:"check_in_date"   validate:"required"`
	DurationMonths int    `json:"duration_months" validate:"required,gt=0"`
	Message        string `json:"message"         validate:"omitempty,max=500"`
}

// ToModel always produces a pending booking. The status a caller might send
// is not part of the request shape on purpose.
func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkInDate, err := time.Parse(constant.CheckInDateFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:             uuid.NewString(),
		RoomID:         c.RoomID,
		UserName:       c.UserName,
		UserEmail:      c.UserEmail,
		UserPhone:      c.UserPhone,
		CheckInDate:    checkInDate,
		DurationMonths: c.DurationMonths,
		Message:        c.Message,
		Status:         model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type BookingRoomResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Location      string  `json:"location"`
	Price         float64 `json:"price"`
	DepositAmount float64 `json:"depositAmount"`
}

type BookingResponse struct {
	ID             string               `json:"id"`
	RoomID         string               `json:"room_id"`
	Room           *BookingRoomResponse `json:"room,omitempty"`
	UserName       string               `json:"user_name"`
	UserEmail      string               `json:"user_email"`
	UserPhone      string               `json:"user_phone"`
	CheckInDate    string               `json:"check_in_date"`
	DurationMonths int                  `json:"duration_months"`
	Message        string               `json:"message"`
	Status         string               `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.UserName = model.UserName
	r.UserEmail = model.UserEmail
	r.UserPhone = model.UserPhone
	r.CheckInDate = model.CheckInDate.Format(constant.CheckInDateFormat)
	r.DurationMonths = model.DurationMonths
	r.Message = model.Message
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)

	// A booking can outlive its room; the joined columns are null then and
	// the room block is simply omitted.
	if model.RoomTitle.Valid {
		r.Room = &BookingRoomResponse{
			ID:            model.RoomID,
			Title:         model.RoomTitle.String,
			Location:      model.RoomLocation.String,
			Price:         model.RoomPrice.Float64,
			DepositAmount: model.RoomDeposit.Float64,
		}
	}
}

// BookingEvent is the payload published to Kafka when a booking is created or
// changes status.
type BookingEvent struct {
	BookingID  string `json:"booking_id"`
	RoomID     string `json:"room_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

func NewBookingEvent(booking model.Booking) BookingEvent {
	return BookingEvent{
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		Status:     booking.Status,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
