package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"basera/config"
	"basera/infras/otel/mocks"
	"basera/infras/postgres"
	roomModel "basera/internal/domains/room/model"
	roomRepository "basera/internal/domains/room/repository"
	userModel "basera/internal/domains/user/model"
	userRepository "basera/internal/domains/user/repository"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/logger"
	gModel "basera/shared/model"
	"basera/shared/password"
	"basera/shared/timezone"
)

const seededBy = "seeder"

const (
	defaultAdminName     = "Admin Owner"
	defaultAdminEmail    = "admin@basera.com"
	defaultAdminPassword = "adminpassword123"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx := context.Background()
	otl := mocks.NewOtel()
	db := postgres.New(cfg)

	if err := seedAdmin(ctx, cfg, userRepository.New(db, otl)); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin user")
	}

	if err := seedRooms(ctx, roomRepository.New(db, otl)); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed rooms")
	}

	log.Info().Msg("Database seeding completed")
}

func seedAdmin(ctx context.Context, cfg *config.Config, repo userRepository.User) error {
	name := cfg.App.Admin.Name
	if name == constant.Empty {
		name = defaultAdminName
	}

	email := cfg.App.Admin.Email
	if email == constant.Empty {
		email = defaultAdminEmail
	}

	plain := cfg.App.Admin.Password
	if plain == constant.Empty {
		plain = defaultAdminPassword
	}

	emailFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}

	exists, err := repo.Exist(ctx, emailFilter)
	if err != nil {
		return err
	}

	if exists {
		log.Info().Str("email", email).Msg("Admin user already exists, skipping")

		return nil
	}

	hashed, err := password.Hash(plain)
	if err != nil {
		return err
	}

	admin := userModel.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     constant.RoleAdmin,
		Active:   true,
		Metadata: newMetadata(),
	}

	if err := repo.Insert(ctx, admin); err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("Admin user created")

	return nil
}

func seedRooms(ctx context.Context, repo roomRepository.Room) error {
	count, err := repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return err
	}

	if count > 0 {
		log.Info().Int("count", count).Msg("Rooms already present, skipping")

		return nil
	}

	rooms := sampleRooms()
	if err := repo.InsertBulk(ctx, rooms); err != nil {
		return err
	}

	log.Info().Int("count", len(rooms)).Msg("Sample rooms created")

	return nil
}

func newMetadata() gModel.Metadata {
	now := timezone.Now()

	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  seededBy,
		ModifiedBy: seededBy,
	}
}

func newRoom(room roomModel.Room) roomModel.Room {
	room.ID = uuid.NewString()
	room.Available = true
	room.DepositAmount = roomModel.CalculateDeposit(room.Price)
	room.Metadata = newMetadata()

	return room
}

func sampleRooms() []roomModel.Room {
	return []roomModel.Room{
		newRoom(roomModel.Room{
			Title:         "Kshatriya Pg for boys",
			Description:   "Well-furnished PG with AC, wifi, and food facility. Perfect for students and working professionals.",
			Price:         3000,
			Type:          roomModel.TypePG,
			Location:      "Bilaspur",
			Address:       "river view E30",
			ContactNumber: "+91 9876543210",
			Facilities:    pq.StringArray{"AC", "WiFi", "Food", "Laundry", "Parking", "Security", "TV"},
			Photos:        pq.StringArray{"https://images.unsplash.com/photo-1555854877-bab0e564b8d5?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80"},
			Gender:        roomModel.GenderMale,
			FoodIncluded:  true,
			Area:          "River View Colony",
			Rating:        4.5,
		}),
		newRoom(roomModel.Room{
			Title:         "ritu bhawan",
			Description:   "Safe and secure girls hostel with 24/7 security, CCTV, and all modern amenities.",
			Price:         2500,
			Type:          roomModel.TypeHostel,
			Location:      "Bilaspur",
			Address:       "koni riverview",
			ContactNumber: "+91 9876543211",
			Facilities:    pq.StringArray{"WiFi", "Food", "Laundry", "Security", "GYM", "TV", "Geyser"},
			Photos:        pq.StringArray{"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80"},
			Gender:        roomModel.GenderFemale,
			FoodIncluded:  true,
			Area:          "Koni",
			Rating:        4.8,
		}),
		newRoom(roomModel.Room{
			Title:         "Budget Shared Room",
			Description:   "Affordable shared accommodation with basic amenities for students and working professionals.",
			Price:         4000,
			Type:          roomModel.TypeSharedRoom,
			Location:      "Bilaspur",
			Address:       "sipat road",
			ContactNumber: "+91 9876543212",
			Facilities:    pq.StringArray{"WiFi", "Laundry", "Parking"},
			Photos:        pq.StringArray{"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80"},
			Gender:        roomModel.GenderCoEd,
			FoodIncluded:  false,
			Area:          "Sipat Road",
			Rating:        3.9,
		}),
		newRoom(roomModel.Room{
			Title:         "Sahu PG",
			Description:   "Private room with all modern amenities including attached bathroom and kitchen access.",
			Price:         10000,
			Type:          roomModel.TypeRoom,
			Location:      "Bilaspur",
			Address:       "near sai mandir koni",
			ContactNumber: "+91 9876543213",
			Facilities:    pq.StringArray{"AC", "WiFi", "Food", "Laundry", "Parking", "TV", "Geyser", "Kitchen"},
			Photos:        pq.StringArray{"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80"},
			Gender:        roomModel.GenderMale,
			FoodIncluded:  true,
			Area:          "Koni",
			Rating:        4.7,
		}),
		newRoom(roomModel.Room{
			Title:         "raju PG",
			Description:   "Modern PG with gym facility, study room, and high-speed internet.",
			Price:         5000,
			Type:          roomModel.TypePG,
			Location:      "Bilaspur",
			Address:       "nehru chowk",
			ContactNumber: "+91 9876543214",
			Facilities:    pq.StringArray{"AC", "WiFi", "Food", "Laundry", "GYM", "Study Room", "Parking"},
			Photos:        pq.StringArray{"https://images.unsplash.com/photo-1518780664697-55e3ad937233?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80"},
			Gender:        roomModel.GenderCoEd,
			FoodIncluded:  true,
			Area:          "Nehru Chowk",
			Rating:        4.6,
		}),
		newRoom(roomModel.Room{
			Title:         "Single Room for Working Professionals",
			Description:   "Peaceful single room with work desk and high-speed internet for professionals.",
			Price:         11000,
			Type:          roomModel.TypeRoom,
			Location:      "Bilaspur",
			Address:       "koni birkona mod",
			ContactNumber: "+91 9876543215",
			Facilities:    pq.StringArray{"AC", "WiFi", "Laundry", "Parking", "Study Table", "Geyser"},
			Photos:        pq.StringArray{"https://images.unsplash.com/photo-1497366754035-f200968a6e72?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80"},
			Gender:        roomModel.GenderCoEd,
			FoodIncluded:  false,
			Area:          "Birkona",
			Rating:        4.4,
		}),
		newRoom(roomModel.Room{
			Title:         "City Center PG",
			Description:   "Premium accommodation in the heart of Bilaspur with all modern facilities.",
			Price:         8000,
			Type:          roomModel.TypePG,
			Location:      "Bilaspur",
			Address:       "main road, city center",
			ContactNumber: "+91 9876543216",
			Facilities:    pq.StringArray{"AC", "WiFi", "Food", "Laundry", "Parking", "Security", "GYM", "TV"},
			Photos:        pq.StringArray{"https://images.unsplash.com/photo-1555854877-bab0e564b8d5?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80"},
			Gender:        roomModel.GenderMale,
			FoodIncluded:  true,
			Area:          "City Center",
			Rating:        4.3,
		}),
		newRoom(roomModel.Room{
			Title:         "Student Hostel",
			Description:   "Affordable hostel accommodation for students with study facilities and mess.",
			Price:         3500,
			Type:          roomModel.TypeHostel,
			Location:      "Bilaspur",
			Address:       "near government college",
			ContactNumber: "+91 9876543217",
			Facilities:    pq.StringArray{"WiFi", "Food", "Laundry", "Security", "Study Room", "Geyser"},
			Photos:        pq.StringArray{"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80"},
			Gender:        roomModel.GenderCoEd,
			FoodIncluded:  true,
			Area:          "College Area",
			Rating:        4.1,
		}),
	}
}
