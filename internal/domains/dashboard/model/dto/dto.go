package dto

// MetricsResponse feeds the KPI cards at the top of the dashboard.
type MetricsResponse struct {
	NewLeadsToday  int `json:"new_leads_today"`
	UnreadMessages int `json:"unread_messages"`
	FollowUpsToday int `json:"follow_ups_today"`
	UpcomingTours  int `json:"upcoming_tours"`
}
