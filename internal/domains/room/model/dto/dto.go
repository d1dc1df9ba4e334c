package dto

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"basera/internal/domains/room/model"
	gDto "basera/shared/dto"
	gModel "basera/shared/model"
	"basera/shared/timezone"
)

type CreateRoomRequest struct {
	Title         string   `json:"title"         validate:"required,max=200"`
	Description   string   `json:"description"   validate:"required"`
	Price         float64  `json:"price"         validate:"required,gte=0"`
	Type          string   `json:"type"          validate:"required,oneof='PG' 'Hostel' 'Room' 'Shared Room'"`
	Location      string   `json:"location"      validate:"required,max=200"`
	Address       string   `json:"address"       validate:"required"`
	ContactNumber string   `json:"contactNumber" validate:"omitempty,max=20"`
	Facilities    []string `json:"facilities"    validate:"omitempty,dive,max=50"`
	Photos        []string `json:"photos"        validate:"omitempty,dive,url"`
	Available     *bool    `json:"available"     validate:"omitempty"`
	Gender        string   `json:"gender"        validate:"required,oneof=Male Female Co-ed"`
	FoodIncluded  *bool    `json:"foodIncluded"  validate:"omitempty"`
	Area          string   `json:"area"          validate:"required,max=200"`
	Rating        float64  `json:"rating"        validate:"omitempty,gte=0,lte=5"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	foodIncluded := false
	if c.FoodIncluded != nil {
		foodIncluded = *c.FoodIncluded
	}

	return model.Room{
		ID:            uuid.NewString(),
		Title:         c.Title,
		Description:   c.Description,
		Price:         c.Price,
		Type:          c.Type,
		Location:      c.Location,
		Address:       c.Address,
		ContactNumber: c.ContactNumber,
		Facilities:    pq.StringArray(c.Facilities),
		Photos:        pq.StringArray(c.Photos),
		Available:     available,
		Gender:        c.Gender,
		FoodIncluded:  foodIncluded,
		Area:          c.Area,
		Rating:        c.Rating,
		DepositAmount: model.CalculateDeposit(c.Price),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Title         string   `db:"title"          json:"title"         validate:"omitempty,max=200"`
	Description   string   `db:"description"    json:"description"   validate:"omitempty"`
	Price         *float64 `db:"price"          json:"price"         validate:"omitempty,gte=0"`
	Type          string   `db:"type"           json:"type"          validate:"omitempty,oneof='PG' 'Hostel' 'Room' 'Shared Room'"`
	Location      string   `db:"location"       json:"location"      validate:"omitempty,max=200"`
	Address       string   `db:"address"        json:"address"       validate:"omitempty"`
	ContactNumber string   `db:"contact_number" json:"contactNumber" validate:"omitempty,max=20"`
	Facilities    []string `json:"facilities"   validate:"omitempty,dive,max=50"`
	Photos        []string `json:"photos"       validate:"omitempty,dive,url"`
	Available     *bool    `db:"available"      json:"available"     validate:"omitempty"`
	Gender        string   `db:"gender"         json:"gender"        validate:"omitempty,oneof=Male Female Co-ed"`
	FoodIncluded  *bool    `db:"food_included"  json:"foodIncluded"  validate:"omitempty"`
	Area          string   `db:"area"           json:"area"          validate:"omitempty,max=200"`
	Rating        *float64 `db:"rating"         json:"rating"        validate:"omitempty,gte=0,lte=5"`
}

// RoomQuery carries the optional listing filters. Absent dimensions impose no
// constraint; FoodIncluded is tri-state so that absent is not the same as
// false.
type RoomQuery struct {
	MinPrice     *float64 `validate:"omitempty,gte=0"`
	MaxPrice     *float64 `validate:"omitempty,gte=0"`
	Location     string   `validate:"omitempty,max=200"`
	Type         string   `validate:"omitempty,oneof='PG' 'Hostel' 'Room' 'Shared Room'"`
	Gender       string   `validate:"omitempty,oneof=Male Female Co-ed"`
	FoodIncluded *bool    `validate:"omitempty"`
	Facilities   []string `validate:"omitempty,dive,max=50"`
	Search       string   `validate:"omitempty,max=200"`
}

// FromRequest populates the filters from the request query string. Unparsable
// numeric or boolean values are treated as absent, matching the behavior of
// the public listing endpoint.
func (q *RoomQuery) FromRequest(r *http.Request) {
	params := r.URL.Query()

	if raw := params.Get("minPrice"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MinPrice = &value
		}
	}

	if raw := params.Get("maxPrice"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MaxPrice = &value
		}
	}

	q.Location = params.Get("location")
	q.Type = params.Get("type")
	q.Gender = params.Get("gender")
	q.Search = params.Get("search")

	if raw := params.Get("foodIncluded"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			q.FoodIncluded = &value
		}
	}

	if raw := params.Get("facilities"); raw != "" {
		for _, facility := range strings.Split(raw, ",") {
			if facility = strings.TrimSpace(facility); facility != "" {
				q.Facilities = append(q.Facilities, facility)
			}
		}
	}
}

// ToFilter compiles the provided dimensions into a single predicate. All
// dimensions combine with AND; the free-text search expands to an OR group
// over title, description, area and location. Price bounds are both applied
// literally, so minPrice > maxPrice simply matches nothing.
func (q *RoomQuery) ToFilter() gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if q.MinPrice != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "min_price",
			Field:    model.FieldPrice,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    *q.MinPrice,
			Table:    model.TableName,
		})
	}

	if q.MaxPrice != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "max_price",
			Field:    model.FieldPrice,
			Operator: gDto.FilterOperatorLessEq,
			Value:    *q.MaxPrice,
			Table:    model.TableName,
		})
	}

	if q.Location != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    q.Location,
			Table:    model.TableName,
		})
	}

	if q.Type != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    q.Type,
			Table:    model.TableName,
		})
	}

	if q.Gender != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldGender,
			Operator: gDto.FilterOperatorEq,
			Value:    q.Gender,
			Table:    model.TableName,
		})
	}

	if q.FoodIncluded != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldFoodIncluded,
			Operator: gDto.FilterOperatorEq,
			Value:    *q.FoodIncluded,
			Table:    model.TableName,
		})
	}

	if len(q.Facilities) > 0 {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldFacilities,
			Operator: gDto.FilterOperatorContains,
			Value:    pq.Array(q.Facilities),
			Table:    model.TableName,
		})
	}

	if q.Search != "" {
		searchGroup := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters:  []any{},
		}

		searchFields := []struct {
			argName string
			field   string
		}{
			{"search_title", model.FieldTitle},
			{"search_description", model.FieldDescription},
			{"search_area", model.FieldArea},
			{"search_location", model.FieldLocation},
		}

		for _, sf := range searchFields {
			searchGroup.Filters = append(searchGroup.Filters, gDto.Filter{
				ArgName:  sf.argName,
				Field:    sf.field,
				Operator: gDto.FilterOperatorLike,
				Value:    q.Search,
				Table:    model.TableName,
			})
		}

		group.Filters = append(group.Filters, searchGroup)
	}

	return group
}

type UploadPhotoRequest struct {
	Photo     *multipart.FileHeader `json:"photo" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	PhotoFile multipart.File        `json:"-"`
}

type UploadPhotoResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadPhotoResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type RoomResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Type          string   `json:"type"`
	Location      string   `json:"location"`
	Address       string   `json:"address"`
	ContactNumber string   `json:"contactNumber"`
	Facilities    []string `json:"facilities"`
	Photos        []string `json:"photos"`
	Available     bool     `json:"available"`
	Gender        string   `json:"gender"`
	FoodIncluded  bool     `json:"foodIncluded"`
	Area          string   `json:"area"`
	Rating        float64  `json:"rating"`
	DepositAmount float64  `json:"depositAmount"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Price = model.Price
	r.Type = model.Type
	r.Location = model.Location
	r.Address = model.Address
	r.ContactNumber = model.ContactNumber
	r.Facilities = model.Facilities
	r.Photos = model.Photos
	r.Available = model.Available
	r.Gender = model.Gender
	r.FoodIncluded = model.FoodIncluded
	r.Area = model.Area
	r.Rating = model.Rating
	r.DepositAmount = model.DepositAmount
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.TotalData = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
