package analytics

import (
	"context"
	"errors"
	"fmt"

	"dharma/internal/bookings"
	"dharma/internal/payments"
	"dharma/internal/slots"
	"dharma/internal/temples"

	"gorm.io/gorm"
)

type Repository interface {
	GetTempleAnalytics(ctx context.Context, templeID uint, trendDays int) (*TempleAnalytics, error)
	GetGlobalAnalytics(ctx context.Context, trendDays int) (*GlobalAnalytics, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetTempleAnalytics(ctx context.Context, templeID uint, trendDays int) (*TempleAnalytics, error) {
	var temple temples.Temple
	if err := r.db.WithContext(ctx).First(&temple, templeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTempleNotFound
		}
		return nil, err
	}

	analytics := &TempleAnalytics{
		TempleID:   temple.ID,
		TempleName: temple.Name,
	}

	var totalBookings int64
	if err := r.db.WithContext(ctx).Model(&bookings.Booking{}).
		Where("temple_id = ?", templeID).
		Count(&totalBookings).Error; err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	analytics.TotalBookings = int(totalBookings)

	revenue, err := r.templeRevenue(ctx, templeID)
	if err != nil {
		return nil, err
	}
	analytics.TotalRevenue = revenue

	daily, err := r.dailyBookings(ctx, &templeID, trendDays)
	if err != nil {
		return nil, err
	}
	analytics.BookingsByDay = daily

	utilization, err := r.slotUtilization(ctx, templeID)
	if err != nil {
		return nil, err
	}
	analytics.SlotUtilization = utilization

	return analytics, nil
}

func (r *repository) GetGlobalAnalytics(ctx context.Context, trendDays int) (*GlobalAnalytics, error) {
	analytics := &GlobalAnalytics{}

	var totalTemples int64
	if err := r.db.WithContext(ctx).Model(&temples.Temple{}).Count(&totalTemples).Error; err != nil {
		return nil, fmt.Errorf("failed to count temples: %w", err)
	}
	analytics.TotalTemples = int(totalTemples)

	var totalBookings int64
	if err := r.db.WithContext(ctx).Model(&bookings.Booking{}).Count(&totalBookings).Error; err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	analytics.TotalBookings = int(totalBookings)

	type revenueResult struct {
		TotalRevenue float64
	}
	var rev revenueResult
	if err := r.db.WithContext(ctx).Model(&payments.Payment{}).
		Select("COALESCE(SUM(amount), 0) as total_revenue").
		Where("payment_status = ?", payments.StatusConfirmed).
		Scan(&rev).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	analytics.TotalRevenue = rev.TotalRevenue

	type utilizationResult struct {
		AverageUtilization float64
	}
	var util utilizationResult
	if err := r.db.WithContext(ctx).Model(&slots.Slot{}).
		Select("COALESCE(AVG(CASE WHEN capacity > 0 THEN ((capacity - remaining) * 100.0 / capacity) ELSE 0 END), 0) as average_utilization").
		Where("capacity > 0").
		Scan(&util).Error; err != nil {
		return nil, fmt.Errorf("failed to calculate average utilization: %w", err)
	}
	analytics.AverageUtilization = util.AverageUtilization

	busiest, err := r.busiestTemples(ctx, 5)
	if err != nil {
		return nil, err
	}
	analytics.BusiestTemples = busiest

	trends, err := r.dailyBookings(ctx, nil, trendDays)
	if err != nil {
		return nil, err
	}
	analytics.BookingTrends = trends

	return analytics, nil
}

func (r *repository) templeRevenue(ctx context.Context, templeID uint) (float64, error) {
	type revenueResult struct {
		TotalRevenue float64
	}

	var result revenueResult
	err := r.db.WithContext(ctx).Model(&payments.Payment{}).
		Select("COALESCE(SUM(payments.amount), 0) as total_revenue").
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Where("bookings.temple_id = ? AND payments.payment_status = ?", templeID, payments.StatusConfirmed).
		Scan(&result).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum temple revenue: %w", err)
	}
	return result.TotalRevenue, nil
}

// dailyBookings returns per-day booking counts for the last trendDays
// days, scoped to one temple when templeID is non-nil.
func (r *repository) dailyBookings(ctx context.Context, templeID *uint, trendDays int) ([]DailyBooking, error) {
	query := r.db.WithContext(ctx).Model(&bookings.Booking{}).
		Select("booking_date as date, COUNT(*) as bookings").
		Where("booking_date >= (CURRENT_DATE - ?::integer)", trendDays).
		Group("booking_date").
		Order("booking_date ASC")

	if templeID != nil {
		query = query.Where("temple_id = ?", *templeID)
	}

	var daily []DailyBooking
	if err := query.Scan(&daily).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate daily bookings: %w", err)
	}
	return daily, nil
}

func (r *repository) slotUtilization(ctx context.Context, templeID uint) ([]SlotUtilization, error) {
	var slotRows []slots.Slot
	err := r.db.WithContext(ctx).
		Where("temple_id = ?", templeID).
		Order("date ASC, start_minutes ASC").
		Find(&slotRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load slots: %w", err)
	}

	utilization := make([]SlotUtilization, 0, len(slotRows))
	for _, slot := range slotRows {
		u := SlotUtilization{
			SlotID:     slot.ID,
			SlotNumber: slot.SlotNumber,
			Date:       slot.Date,
			StartTime:  slots.FormatClock(slot.StartMinutes),
			Capacity:   slot.Capacity,
			Remaining:  slot.Remaining,
		}
		if slot.Capacity > 0 {
			u.Utilization = float64(slot.Capacity-slot.Remaining) * 100.0 / float64(slot.Capacity)
		}
		utilization = append(utilization, u)
	}
	return utilization, nil
}

func (r *repository) busiestTemples(ctx context.Context, limit int) ([]TemplePopularity, error) {
	var busiest []TemplePopularity
	err := r.db.WithContext(ctx).Model(&bookings.Booking{}).
		Select("bookings.temple_id, temples.name as temple_name, COUNT(*) as booking_count").
		Joins("JOIN temples ON temples.id = bookings.temple_id").
		Group("bookings.temple_id, temples.name").
		Order("booking_count DESC").
		Limit(limit).
		Scan(&busiest).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank temples: %w", err)
	}
	return busiest, nil
}
