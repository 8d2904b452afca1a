package response

import (
	"courtbook/internal/usecase/queries"
)

type BookingStatsResponse struct {
	TotalCourts      int64            `json:"totalCourts"`
	TotalTimeSlots   int64            `json:"totalTimeSlots"`
	AvailableSlots   int64            `json:"availableSlots"`
	BookingsByStatus map[string]int64 `json:"bookingsByStatus"`
	RevenueCents     int64            `json:"revenueCents"`
}

type AdminStatsResponse struct {
	BookingStatsResponse
	TotalUsers   int64            `json:"totalUsers"`
	BlockedUsers int64            `json:"blockedUsers"`
	UsersByRole  map[string]int64 `json:"usersByRole"`
}

func FromBookingStatsView(rm *queries.BookingStatsView) *BookingStatsResponse {
	return &BookingStatsResponse{
		TotalCourts:      rm.TotalCourts,
		TotalTimeSlots:   rm.TotalTimeSlots,
		AvailableSlots:   rm.AvailableSlots,
		BookingsByStatus: rm.BookingsByStatus,
		RevenueCents:     rm.RevenueCents,
	}
}

func FromAdminStatsView(rm *queries.AdminStatsView) *AdminStatsResponse {
	return &AdminStatsResponse{
		BookingStatsResponse: *FromBookingStatsView(&rm.BookingStatsView),
		TotalUsers:           rm.TotalUsers,
		BlockedUsers:         rm.BlockedUsers,
		UsersByRole:          rm.UsersByRole,
	}
}
