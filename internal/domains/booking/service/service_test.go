package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"basera/config"
	"basera/infras/kafka"
	kafkaMocks "basera/infras/kafka/mocks"
	"basera/infras/otel/mocks"
	bookingMocks "basera/internal/domains/booking/mocks"
	"basera/internal/domains/booking/model"
	"basera/internal/domains/booking/model/dto"
	"basera/internal/domains/booking/service"
	roomMocks "basera/internal/domains/room/mocks"
	roomModel "basera/internal/domains/room/model"
	cacheMocks "basera/shared/cache/mocks"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/failure"
	gModel "basera/shared/model"
	"basera/shared/timezone"
)

func newTestService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	// Kafka stays disabled so publishing is a no-op in tests.

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, nil)

	return svc, mockRepo, mockRoomRepo, mockCache
}

func availableRoom() roomModel.Room {
	return roomModel.Room{
		ID:        "room-id",
		Title:     "Kshatriya Pg for boys",
		Price:     3000,
		Available: true,
	}
}

func testBooking(status string) model.Booking {
	return model.Booking{
		ID:             "booking-id",
		RoomID:         "room-id",
		UserName:       "Ravi Kumar",
		UserEmail:      "ravi@example.com",
		UserPhone:      "+91 9876543210",
		CheckInDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		DurationMonths: 6,
		Status:         status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:         "room-id",
		UserName:       "Ravi Kumar",
		UserEmail:      "ravi@example.com",
		UserPhone:      "+91 9876543210",
		CheckInDate:    "2026-09-01",
		DurationMonths: 6,
	}
}

func TestBookingService_Create(t *testing.T) {
	svc, mockRepo, mockRoomRepo, mockCache := newTestService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation is forced to pending",
			req:  createRequest(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, model.StatusPending, booking.Status)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "room not found",
			req:  createRequest(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "room not available",
			req:  createRequest(),
			setupMock: func() {
				room := availableRoom()
				room.Available = false

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "invalid check-in date",
			req: func() dto.CreateBookingRequest {
				req := createRequest()
				req.CheckInDate = "01/09/2026"

				return req
			}(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "room lookup error",
			req:  createRequest(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
		{
			name: "insert error",
			req:  createRequest(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, model.StatusPending, res.Status)
			}
		})
	}
}

func TestBookingService_Create_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.Kafka.Enable = true

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockKafka)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockRoomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(availableRoom(), nil)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	published := make(chan string, 1)
	mockKafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, topic string, _ ...kafka.Message) error {
			published <- topic

			return nil
		}).
		AnyTimes()

	_, err := svc.Create(context.Background(), createRequest())
	assert.NoError(t, err)

	select {
	case topic := <-published:
		assert.Equal(t, constant.KafkaTopicBookingCreated, topic)
	case <-time.After(time.Second):
		t.Fatal("expected a booking created event to be published")
	}
}

func TestBookingService_GetAll(t *testing.T) {
	svc, mockRepo, _, mockCache := newTestService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache miss, successful get from db",
			setupMock: func() {
				// First Get misses the list cache, second misses the count cache.
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{testBooking(model.StatusPending)}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			params := gDto.QueryParams{Page: 1, Limit: 10}
			result, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	svc, mockRepo, _, mockCache := newTestService(t)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache miss, successful get from db",
			id:   "booking-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking(model.StatusPending), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, result.ID)
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	svc, mockRepo, _, mockCache := newTestService(t)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		current   string
		target    string
		setupMock func(current string)
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "pending to confirmed",
			current: model.StatusPending,
			target:  model.StatusConfirmed,
			setupMock: func(current string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking(current), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:    "confirmed to cancelled",
			current: model.StatusConfirmed,
			target:  model.StatusCancelled,
			setupMock: func(current string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking(current), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:    "cancelled is terminal",
			current: model.StatusCancelled,
			target:  model.StatusPending,
			setupMock: func(current string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking(current), nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name:    "confirmed cannot go back to pending",
			current: model.StatusConfirmed,
			target:  model.StatusPending,
			setupMock: func(current string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking(current), nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name:    "self transition rejected",
			current: model.StatusPending,
			target:  model.StatusPending,
			setupMock: func(current string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking(current), nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name:    "booking not found",
			current: "",
			target:  model.StatusConfirmed,
			setupMock: func(string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock(tt.current)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, dto.UpdateBookingStatusRequest{Status: tt.target}, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	svc, mockRepo, _, mockCache := newTestService(t)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			id:   "booking-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "delete error",
			id:   "booking-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
