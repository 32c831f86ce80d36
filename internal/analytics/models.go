package analytics

// DailyBooking is one day of booking volume for a temple or the whole
// system.
type DailyBooking struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
}

// SlotUtilization reports how full one darshan slot is
type SlotUtilization struct {
	SlotID      uint    `json:"slot_id"`
	SlotNumber  int     `json:"slot_number"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	Capacity    int     `json:"capacity"`
	Remaining   int     `json:"remaining"`
	Utilization float64 `json:"utilization"`
}

type TempleAnalytics struct {
	TempleID        uint              `json:"temple_id"`
	TempleName      string            `json:"temple_name"`
	TotalBookings   int               `json:"total_bookings"`
	TotalRevenue    float64           `json:"total_revenue"`
	BookingsByDay   []DailyBooking    `json:"bookings_by_day"`
	SlotUtilization []SlotUtilization `json:"slot_utilization"`
}

type TemplePopularity struct {
	TempleID     uint   `json:"temple_id"`
	TempleName   string `json:"temple_name"`
	BookingCount int    `json:"booking_count"`
}

type GlobalAnalytics struct {
	TotalTemples       int                `json:"total_temples"`
	TotalBookings      int                `json:"total_bookings"`
	TotalRevenue       float64            `json:"total_revenue"`
	AverageUtilization float64            `json:"average_utilization"`
	BusiestTemples     []TemplePopularity `json:"busiest_temples"`
	BookingTrends      []DailyBooking     `json:"booking_trends"`
}
