package dto_test

import (
	"net/http/httptest"
	"testing"

	"basera/internal/domains/room/model"
	"basera/internal/domains/room/model/dto"
	gDto "basera/shared/dto"
	gModel "basera/shared/model"
	"basera/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestCreateRoomRequest_ToModel(t *testing.T) {
	req := dto.CreateRoomRequest{
		Title:         "Kshatriya Pg for boys",
		Description:   "Well-furnished PG",
		Price:         3000,
		Type:          model.TypePG,
		Location:      "Bilaspur",
		Address:       "river view E30",
		ContactNumber: "+91 9876543210",
		Facilities:    []string{"AC", "WiFi"},
		Gender:        model.GenderMale,
		Area:          "River View Colony",
		Rating:        4.5,
	}

	userID := "test-user-id"
	room := req.ToModel(userID)

	assert.NotEmpty(t, room.ID, "expected ID to be generated")
	assert.Equal(t, req.Title, room.Title)
	assert.Equal(t, req.Price, room.Price)
	assert.Equal(t, float64(4500), room.DepositAmount, "deposit is derived from the price")
	assert.True(t, room.Available, "availability defaults to true")
	assert.False(t, room.FoodIncluded, "food defaults to not included")
	assert.Equal(t, userID, room.CreatedBy)
	assert.Equal(t, userID, room.ModifiedBy)
	assert.False(t, room.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateRoomRequest_ToModel_ExplicitFlags(t *testing.T) {
	req := dto.CreateRoomRequest{
		Title:        "Budget Shared Room",
		Description:  "Affordable shared accommodation",
		Price:        4000,
		Type:         model.TypeSharedRoom,
		Location:     "Bilaspur",
		Address:      "sipat road",
		Gender:       model.GenderCoEd,
		Area:         "Sipat Road",
		Available:    boolPtr(false),
		FoodIncluded: boolPtr(true),
	}

	room := req.ToModel("test-user-id")

	assert.False(t, room.Available)
	assert.True(t, room.FoodIncluded)
}

func TestCalculateDeposit(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected float64
	}{
		{name: "whole multiple", price: 3000, expected: 4500},
		{name: "zero price", price: 0, expected: 0},
		{name: "rounds half away from zero", price: 11, expected: 17},
		{name: "rounds down below half", price: 10.2, expected: 15},
		{name: "large price", price: 11000, expected: 16500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.CalculateDeposit(tt.price))
		})
	}
}

func TestRoomQuery_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected dto.RoomQuery
	}{
		{
			name:     "no parameters leaves everything absent",
			target:   "/v1/room",
			expected: dto.RoomQuery{},
		},
		{
			name:   "price bounds parse as floats",
			target: "/v1/room?minPrice=1000&maxPrice=5000",
			expected: dto.RoomQuery{
				MinPrice: floatPtr(1000),
				MaxPrice: floatPtr(5000),
			},
		},
		{
			name:     "unparsable price is treated as absent",
			target:   "/v1/room?minPrice=cheap",
			expected: dto.RoomQuery{},
		},
		{
			name:   "foodIncluded false is not absent",
			target: "/v1/room?foodIncluded=false",
			expected: dto.RoomQuery{
				FoodIncluded: boolPtr(false),
			},
		},
		{
			name:     "unparsable foodIncluded is treated as absent",
			target:   "/v1/room?foodIncluded=maybe",
			expected: dto.RoomQuery{},
		},
		{
			name:   "facilities split on commas and trimmed",
			target: "/v1/room?facilities=WiFi,%20AC%20,",
			expected: dto.RoomQuery{
				Facilities: []string{"WiFi", "AC"},
			},
		},
		{
			name:   "string dimensions pass through",
			target: "/v1/room?location=Bilaspur&type=PG&gender=Male&search=koni",
			expected: dto.RoomQuery{
				Location: "Bilaspur",
				Type:     model.TypePG,
				Gender:   model.GenderMale,
				Search:   "koni",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)

			var query dto.RoomQuery
			query.FromRequest(req)

			assert.Equal(t, tt.expected, query)
		})
	}
}

func TestRoomQuery_ToFilter(t *testing.T) {
	t.Run("empty query produces empty group", func(t *testing.T) {
		query := dto.RoomQuery{}

		group := query.ToFilter()

		assert.Equal(t, gDto.FilterGroupOperatorAnd, group.Operator)
		assert.Empty(t, group.Filters)
	})

	t.Run("all dimensions combine with AND", func(t *testing.T) {
		food := true
		query := dto.RoomQuery{
			MinPrice:     floatPtr(1000),
			MaxPrice:     floatPtr(5000),
			Location:     "Bilaspur",
			Type:         model.TypePG,
			Gender:       model.GenderMale,
			FoodIncluded: &food,
			Facilities:   []string{"WiFi"},
		}

		group := query.ToFilter()

		assert.Equal(t, gDto.FilterGroupOperatorAnd, group.Operator)
		assert.Len(t, group.Filters, 7)
	})

	t.Run("price bounds apply literally", func(t *testing.T) {
		// minPrice > maxPrice is not rejected; the predicate simply matches
		// nothing.
		query := dto.RoomQuery{
			MinPrice: floatPtr(5000),
			MaxPrice: floatPtr(1000),
		}

		group := query.ToFilter()
		assert.Len(t, group.Filters, 2)

		minFilter, ok := group.Filters[0].(gDto.Filter)
		assert.True(t, ok)
		assert.Equal(t, gDto.FilterOperatorGreaterEq, minFilter.Operator)
		assert.Equal(t, 5000.0, minFilter.Value)

		maxFilter, ok := group.Filters[1].(gDto.Filter)
		assert.True(t, ok)
		assert.Equal(t, gDto.FilterOperatorLessEq, maxFilter.Operator)
		assert.Equal(t, 1000.0, maxFilter.Value)
	})

	t.Run("absent foodIncluded imposes no constraint", func(t *testing.T) {
		query := dto.RoomQuery{}
		assert.Empty(t, query.ToFilter().Filters)

		food := false
		query.FoodIncluded = &food
		assert.Len(t, query.ToFilter().Filters, 1)
	})

	t.Run("facilities compile to a contains filter", func(t *testing.T) {
		query := dto.RoomQuery{Facilities: []string{"WiFi", "AC"}}

		group := query.ToFilter()
		assert.Len(t, group.Filters, 1)

		filter, ok := group.Filters[0].(gDto.Filter)
		assert.True(t, ok)
		assert.Equal(t, gDto.FilterOperatorContains, filter.Operator)
		assert.Equal(t, model.FieldFacilities, filter.Field)
	})

	t.Run("search expands to an OR group", func(t *testing.T) {
		query := dto.RoomQuery{Search: "koni"}

		group := query.ToFilter()
		assert.Len(t, group.Filters, 1)

		searchGroup, ok := group.Filters[0].(gDto.FilterGroup)
		assert.True(t, ok)
		assert.Equal(t, gDto.FilterGroupOperatorOr, searchGroup.Operator)
		assert.Len(t, searchGroup.Filters, 4)

		first, ok := searchGroup.Filters[0].(gDto.Filter)
		assert.True(t, ok)
		assert.Equal(t, model.FieldTitle, first.Field)
		assert.Equal(t, gDto.FilterOperatorLike, first.Operator)
	})
}

func TestRoomResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	room := model.Room{
		ID:            "test-id",
		Title:         "Kshatriya Pg for boys",
		Description:   "Well-furnished PG",
		Price:         3000,
		Type:          model.TypePG,
		Location:      "Bilaspur",
		Address:       "river view E30",
		ContactNumber: "+91 9876543210",
		Facilities:    []string{"AC", "WiFi"},
		Photos:        []string{"https://example.com/photo.jpg"},
		Available:     true,
		Gender:        model.GenderMale,
		FoodIncluded:  true,
		Area:          "River View Colony",
		Rating:        4.5,
		DepositAmount: 4500,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.RoomResponse
	response.FromModel(room)

	assert.Equal(t, room.ID, response.ID)
	assert.Equal(t, room.Title, response.Title)
	assert.Equal(t, room.Price, response.Price)
	assert.Equal(t, room.DepositAmount, response.DepositAmount)
	assert.Equal(t, []string{"AC", "WiFi"}, response.Facilities)
	assert.True(t, response.FoodIncluded)
	assert.Equal(t, room.CreatedBy, response.CreatedBy)
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	rooms := []model.Room{
		{ID: "room-1", Title: "First"},
		{ID: "room-2", Title: "Second"},
	}

	var response dto.GetRoomsResponse
	response.FromModels(rooms)

	assert.Equal(t, 2, response.TotalData)
	assert.Len(t, response.Rooms, 2)
	assert.Equal(t, "room-1", response.Rooms[0].ID)
	assert.Equal(t, "room-2", response.Rooms[1].ID)
}
