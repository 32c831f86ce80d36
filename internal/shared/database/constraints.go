package database

import (
	"strings"

	"gorm.io/gorm"
)

// MigrateConstraints adds database constraints that AutoMigrate cannot express.
// The exclusion constraint is the store-level backstop for the slot engine:
// two slots for the same temple and date must never hold intersecting
// [start, end) ranges, even if two creates race past the application check.
func MigrateConstraints(db *gorm.DB) error {
	// Range exclusion requires btree_gist for the equality columns.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist;`).Error; err != nil {
		return err
	}

	err := db.Exec(`
		ALTER TABLE slots
		ADD CONSTRAINT no_slot_overlap
		EXCLUDE USING gist (
			temple_id WITH =,
			date WITH =,
			int4range(start_minutes, end_minutes) WITH &&
		);
	`).Error
	if err != nil && !isDuplicateConstraint(err) {
		return err
	}

	// Slot listings filter by temple and date, ordered by start time.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_slots_temple_date_start
		ON slots (temple_id, date, start_minutes);
	`).Error
	if err != nil {
		return err
	}

	// Booking lookups by user and by temple.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings (user_id);
	`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_temple_id ON bookings (temple_id);
	`).Error
	if err != nil {
		return err
	}

	// Ticket verification is by token.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_token ON tickets (token);
	`).Error
	if err != nil {
		return err
	}

	// Deleting a temple takes its slots, parking zones and bookings with
	// it; deleting a zone takes its bays; deleting a booking takes its
	// participants. Tickets intentionally carry no FK so they survive
	// booking deletion and render from their snapshot.
	cascades := []struct {
		constraint string
		sql        string
	}{
		{"fk_slots_temple", `
			ALTER TABLE slots
			ADD CONSTRAINT fk_slots_temple
			FOREIGN KEY (temple_id) REFERENCES temples (id) ON DELETE CASCADE;
		`},
		{"fk_zones_temple", `
			ALTER TABLE zones
			ADD CONSTRAINT fk_zones_temple
			FOREIGN KEY (temple_id) REFERENCES temples (id) ON DELETE CASCADE;
		`},
		{"fk_bookings_temple", `
			ALTER TABLE bookings
			ADD CONSTRAINT fk_bookings_temple
			FOREIGN KEY (temple_id) REFERENCES temples (id) ON DELETE CASCADE;
		`},
		{"fk_parking_slots_zone", `
			ALTER TABLE parking_slots
			ADD CONSTRAINT fk_parking_slots_zone
			FOREIGN KEY (zone_id) REFERENCES zones (id) ON DELETE CASCADE;
		`},
		{"fk_participants_booking", `
			ALTER TABLE participants
			ADD CONSTRAINT fk_participants_booking
			FOREIGN KEY (booking_id) REFERENCES bookings (id) ON DELETE CASCADE;
		`},
	}
	for _, c := range cascades {
		if err := db.Exec(c.sql).Error; err != nil && !isDuplicateConstraint(err) {
			return err
		}
	}

	return nil
}

// isDuplicateConstraint reports whether err is Postgres complaining that the
// constraint already exists (SQLSTATE 42710), which happens on every restart.
func isDuplicateConstraint(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 42710") || strings.Contains(msg, "already exists")
}
