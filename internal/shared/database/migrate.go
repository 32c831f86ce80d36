package database

import (
	"dharma/internal/bookings"
	"dharma/internal/parking"
	"dharma/internal/participants"
	"dharma/internal/payments"
	"dharma/internal/slots"
	"dharma/internal/temples"
	"dharma/internal/tickets"
	"dharma/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&temples.Temple{},
		&slots.Slot{},
		&bookings.Booking{},
		&participants.Participant{},
		&parking.Zone{},
		&parking.ParkingSlot{},
		&payments.Payment{},
		&tickets.Ticket{},
	)
}
