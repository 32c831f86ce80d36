package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"dharma/internal/parking"
	"dharma/internal/shared/config"
	"dharma/internal/shared/database"
	"dharma/internal/slots"
	"dharma/internal/temples"
	"dharma/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Dharma Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"tickets",
		"payments",
		"participants",
		"bookings",
		"parking_slots",
		"zones",
		"slots",
		"temples",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if _, err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	templeIDs, err := s.SeedTemples()
	if err != nil {
		return fmt.Errorf("failed to seed temples: %w", err)
	}

	if err := s.SeedSlots(templeIDs); err != nil {
		return fmt.Errorf("failed to seed slots: %w", err)
	}

	if err := s.SeedParking(templeIDs); err != nil {
		return fmt.Errorf("failed to seed parking: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedUsers creates 1 admin and 2 regular users
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		mobile    string
		role      users.Role
	}{
		{"admin", "Admin", "User", "admin@dharma.app", "9000000001", users.RoleAdmin},
		{"user1", "Arjun", "Patil", "arjun.patil@gmail.com", "9876543210", users.RoleUser},
		{"user2", "Meera", "Iyer", "meera.iyer@gmail.com", "9876501234", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:           uuid.New(),
			FirstName:    userData.firstName,
			LastName:     userData.lastName,
			Email:        userData.email,
			MobileNumber: userData.mobile,
			Password:     string(hashedPassword),
			Role:         userData.role,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedTemples creates the demo temples
func (s *Seeder) SeedTemples() ([]uint, error) {
	fmt.Println("  🛕 Seeding temples...")

	templesData := []temples.Temple{
		{Name: "Shri Siddhivinayak Temple", Location: "Mumbai, Maharashtra"},
		{Name: "Kashi Vishwanath Temple", Location: "Varanasi, Uttar Pradesh"},
		{Name: "Meenakshi Amman Temple", Location: "Madurai, Tamil Nadu"},
	}

	var templeIDs []uint
	for i := range templesData {
		if err := s.db.PostgreSQL.Create(&templesData[i]).Error; err != nil {
			return nil, fmt.Errorf("failed to create temple %s: %w", templesData[i].Name, err)
		}
		templeIDs = append(templeIDs, templesData[i].ID)
		fmt.Printf("    ✅ Created temple: %s\n", templesData[i].Name)
	}

	return templeIDs, nil
}

// SeedSlots creates darshan slots for the next two days per temple
func (s *Seeder) SeedSlots(templeIDs []uint) error {
	fmt.Println("  🕐 Seeding slots...")

	windows := []struct {
		start string
		end   string
	}{
		{"06:00", "08:00"},
		{"09:00", "11:00"},
		{"16:00", "18:00"},
	}

	for _, templeID := range templeIDs {
		for day := 0; day < 2; day++ {
			date := time.Now().AddDate(0, 0, day).Format("2006-01-02")
			for i, window := range windows {
				startMinutes, err := slots.ParseClock(window.start)
				if err != nil {
					return err
				}
				endMinutes, err := slots.ParseClock(window.end)
				if err != nil {
					return err
				}

				capacity := 200
				reserved := 40
				slot := slots.Slot{
					TempleID:               templeID,
					Date:                   date,
					StartMinutes:           startMinutes,
					EndMinutes:             endMinutes,
					SlotNumber:             day*len(windows) + i + 1,
					Capacity:               capacity,
					ReservedOfflineTickets: reserved,
					OnlineTickets:          capacity - reserved,
					Remaining:              capacity - reserved,
				}

				if err := s.db.PostgreSQL.Create(&slot).Error; err != nil {
					return fmt.Errorf("failed to create slot for temple %d: %w", templeID, err)
				}
			}
		}
		fmt.Printf("    ✅ Created %d slots for temple %d\n", 2*len(windows), templeID)
	}

	return nil
}

// SeedParking creates one parking zone with bays per temple
func (s *Seeder) SeedParking(templeIDs []uint) error {
	fmt.Println("  🅿️ Seeding parking...")

	for _, templeID := range templeIDs {
		zone := parking.Zone{
			TempleID:    templeID,
			TotalSlots:  50,
			FreeSlots:   50,
			FilledSlots: 0,
			TwoWheeler:  30,
			FourWheeler: 20,
			CCTVCount:   8,
			Active:      true,
		}

		if err := s.db.PostgreSQL.Create(&zone).Error; err != nil {
			return fmt.Errorf("failed to create parking zone for temple %d: %w", templeID, err)
		}

		for i := 0; i < 4; i++ {
			slot := parking.ParkingSlot{
				ZoneID:    zone.ID,
				Available: true,
				Active:    true,
				Capacity:  12 + i,
			}
			if err := s.db.PostgreSQL.Create(&slot).Error; err != nil {
				return fmt.Errorf("failed to create parking slot for zone %d: %w", zone.ID, err)
			}
		}

		fmt.Printf("    ✅ Created parking zone %d for temple %d\n", zone.ID, templeID)
	}

	return nil
}
