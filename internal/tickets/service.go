package tickets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dharma/internal/bookings"
	"dharma/internal/participants"
	"dharma/internal/shared/config"
	"dharma/internal/slots"
	"dharma/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrInvalidToken    = errors.New("invalid ticket token")
	ErrBookingNotFound = errors.New("booking not found")
)

const (
	defaultName       = "Devotee"
	defaultTempleName = "Dharma Temple"
	defaultLocation   = "India"
)

type Service interface {
	// IssueForBooking creates a ticket for a paid booking, snapshotting
	// slot and participant details so the ticket survives booking
	// deletion.
	IssueForBooking(ctx context.Context, bookingID uint, txnID string) (*Ticket, error)
	GetByID(ctx context.Context, id string) (*Ticket, error)
	// View verifies the token and returns the full ticket payload,
	// preferring live booking data over the stored snapshot.
	View(ctx context.Context, id, token string) (*View, error)
}

type service struct {
	repo        Repository
	frontendURL string
	log         *logger.Logger
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:        repo,
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
		log:         logger.GetDefault(),
	}
}

func (s *service) IssueForBooking(ctx context.Context, bookingID uint, txnID string) (*Ticket, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	slotNo, slotTime := s.slotSnapshot(ctx, booking)
	name := s.primaryName(ctx, booking)
	templeName, location := s.templeSnapshot(ctx, booking.TempleID)

	parts, err := s.repo.GetParticipants(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch participants: %w", err)
	}

	count := len(parts)
	if count == 0 {
		count = 1
	}
	names := participantNames(parts)
	if names == "" {
		names = name
	}

	meta := Metadata{
		Count:            count,
		ParticipantNames: names,
		Name:             name,
		TempleName:       templeName,
		Location:         location,
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket metadata: %w", err)
	}

	id := strings.ToUpper(uuid.NewString()[:12])
	token := strings.ReplaceAll(uuid.NewString(), "-", "")

	ticket := &Ticket{
		ID:              id,
		Token:           token,
		BookingID:       bookingID,
		UserID:          booking.UserID,
		TxnID:           txnID,
		SlotNo:          slotNo,
		SlotTime:        slotTime,
		BookingDatetime: booking.BookingDate,
		QRPayload:       fmt.Sprintf("%s/ticket/%s?t=%s", s.frontendURL, id, token),
		MetadataJSON:    string(metaJSON),
	}

	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to persist ticket: %w", err)
	}

	s.log.LogTicketIssued(ctx, ticket.ID, bookingID)

	return ticket, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Ticket, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) View(ctx context.Context, id, token string) (*View, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if token != ticket.Token {
		return nil, ErrInvalidToken
	}

	booking, err := s.repo.GetBooking(ctx, ticket.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return s.fallbackView(ticket), nil
	}

	slotNo, slotTime := s.slotSnapshot(ctx, booking)
	if slotNo == "" {
		slotNo = ticket.SlotNo
		slotTime = ticket.SlotTime
	}

	templeName, location := s.templeSnapshot(ctx, booking.TempleID)
	name := s.primaryName(ctx, booking)

	parts, err := s.repo.GetParticipants(ctx, ticket.BookingID)
	if err != nil {
		return nil, err
	}

	count := len(parts)
	if count == 0 {
		count = 1
	}
	names := participantNames(parts)
	if names == "" {
		names = name
	}

	details := make([]ParticipantDetail, 0, len(parts))
	for _, p := range parts {
		details = append(details, ParticipantDetail{
			Name:   p.Name,
			Age:    p.Age,
			Gender: p.Gender,
			IDType: p.PhotoIDType,
			IDNo:   p.PhotoIDNumber,
		})
	}

	return &View{
		ID:                  ticket.ID,
		BookingID:           booking.ID,
		TxnID:               orDefault(ticket.TxnID, "N/A"),
		SlotNo:              slotNo,
		SlotTime:            slotTime,
		BookingDatetime:     booking.BookingDate,
		TempleName:          templeName,
		Location:            location,
		Name:                name,
		ParticipantCount:    count,
		ParticipantNames:    names,
		ParticipantsDetails: details,
		QRPayload:           ticket.QRPayload,
	}, nil
}

// fallbackView renders from the snapshot stored at issue time
func (s *service) fallbackView(ticket *Ticket) *View {
	var meta Metadata
	if err := json.Unmarshal([]byte(ticket.MetadataJSON), &meta); err != nil {
		meta = Metadata{}
	}

	count := meta.Count
	if count == 0 {
		count = 1
	}

	return &View{
		ID:               ticket.ID,
		BookingID:        ticket.BookingID,
		TxnID:            orDefault(ticket.TxnID, "N/A"),
		SlotNo:           ticket.SlotNo,
		SlotTime:         ticket.SlotTime,
		BookingDatetime:  ticket.BookingDatetime,
		TempleName:       orDefault(meta.TempleName, defaultTempleName),
		Location:         orDefault(meta.Location, defaultLocation),
		Name:             orDefault(meta.Name, defaultName),
		ParticipantCount: count,
		ParticipantNames: orDefault(meta.ParticipantNames, defaultName),
		QRPayload:        ticket.QRPayload,
		IsFallback:       true,
	}
}

func (s *service) slotSnapshot(ctx context.Context, booking *bookings.Booking) (slotNo, slotTime string) {
	if booking.SlotID == nil {
		return "", ""
	}
	slot, err := s.repo.GetSlot(ctx, *booking.SlotID)
	if err != nil || slot == nil {
		return "", ""
	}
	return strconv.Itoa(slot.SlotNumber), slots.FormatClock(slot.StartMinutes)
}

func (s *service) templeSnapshot(ctx context.Context, templeID uint) (name, location string) {
	temple, err := s.repo.GetTemple(ctx, templeID)
	if err != nil || temple == nil {
		return defaultTempleName, defaultLocation
	}
	return orDefault(temple.Name, defaultTempleName), orDefault(temple.Location, defaultLocation)
}

func (s *service) primaryName(ctx context.Context, booking *bookings.Booking) string {
	if booking.UserID != nil {
		user, err := s.repo.GetUser(ctx, booking.UserID.String())
		if err == nil && user != nil {
			full := strings.TrimSpace(user.FirstName + " " + user.LastName)
			if full != "" {
				return full
			}
			if user.Email != "" {
				return user.Email
			}
		}
	}

	parts, err := s.repo.GetParticipants(ctx, booking.ID)
	if err == nil && len(parts) > 0 {
		return parts[0].Name
	}

	return defaultName
}

func participantNames(parts []participants.Participant) string {
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
