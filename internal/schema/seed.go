package schema

import (
	"fmt"
	"strings"
	"time"
)

// Row is one record keyed by column name. Values use Go types, each adapter
// converts them to its dialect's representation when binding.
type Row map[string]any

// SeedTable pairs a table name with its fixture rows.
type SeedTable struct {
	Table string
	Rows  []Row
}

const (
	SeedOrganizationID = "org-default"
	SeedAdminUserID    = "user-admin"
	SeedAdminEmail     = "demo@tourcrm.io"
)

// SeedData returns the demo fixture used to bootstrap a fresh database. The
// same rows feed both adapters so a local install and a hosted install start
// from identical state.
func SeedData(now time.Time, adminPasswordHash string) []SeedTable {
	org := SeedOrganizationID
	return []SeedTable{
		{
			Table: TableOrganizations,
			Rows: []Row{
				{"id": org, "name": "Demo Tour Company", "slug": "demo-tour-company", "primary_color": DefaultPrimaryColor, "created_at": now, "updated_at": now},
			},
		},
		{
			Table: TableUsers,
			Rows: []Row{
				{"id": SeedAdminUserID, "organization_id": org, "email": SeedAdminEmail, "password": adminPasswordHash, "full_name": "Demo Admin", "role": "admin", "created_at": now, "updated_at": now},
			},
		},
		{
			Table: TableTours,
			Rows: []Row{
				{"id": "T001", "organization_id": org, "name": "Sunset City Bike Tour", "description": "Ride through the old town as the sun goes down.", "location": "Old Town", "duration": "3 hours", "price": "89", "currency": DefaultCurrency, "max_participants": 12, "is_active": true, "level": "easy", "created_at": now, "updated_at": now},
				{"id": "T002", "organization_id": org, "name": "Coastal Kayak Adventure", "description": "Paddle along the cliffs with a certified guide.", "location": "North Coast", "duration": "5 hours", "price": "120", "currency": DefaultCurrency, "max_participants": 8, "is_active": true, "level": "moderate", "created_at": now, "updated_at": now},
				{"id": "T003", "organization_id": org, "name": "Mountain Summit Hike", "description": "Full day guided hike to the summit viewpoint.", "location": "Highlands", "duration": "8 hours", "price": "150", "currency": DefaultCurrency, "max_participants": 10, "is_active": true, "level": "hard", "created_at": now, "updated_at": now},
				{"id": "T004", "organization_id": org, "name": "Street Food Walking Tour", "description": "Taste the city's best stalls and markets.", "location": "Market District", "duration": "3 hours", "price": "65", "currency": DefaultCurrency, "max_participants": 15, "is_active": true, "level": "easy", "created_at": now, "updated_at": now},
				{"id": "T005", "organization_id": org, "name": "Vineyard Day Trip", "description": "Visit three family wineries with tastings.", "location": "Wine Valley", "duration": "6 hours", "price": "135", "currency": DefaultCurrency, "max_participants": 14, "is_active": true, "level": "easy", "created_at": now, "updated_at": now},
				{"id": "T006", "organization_id": org, "name": "Snorkeling Reef Trip", "description": "Boat trip to the reef with gear included.", "location": "Blue Bay", "duration": "4 hours", "price": "95", "currency": DefaultCurrency, "max_participants": 12, "is_active": true, "level": "moderate", "created_at": now, "updated_at": now},
				{"id": "T007", "organization_id": org, "name": "Historic Castle Tour", "description": "Skip-the-line entry and guided castle walk.", "location": "Castle Hill", "duration": "2 hours", "price": "45", "currency": DefaultCurrency, "max_participants": 20, "is_active": true, "level": "easy", "created_at": now, "updated_at": now},
				{"id": "T008", "organization_id": org, "name": "Night Photography Walk", "description": "Capture the city lights with a pro photographer.", "location": "Riverside", "duration": "3 hours", "price": "75", "currency": DefaultCurrency, "max_participants": 8, "is_active": false, "level": "easy", "created_at": now, "updated_at": now},
			},
		},
		{
			Table: TableLeads,
			Rows: []Row{
				{"id": "L001", "organization_id": org, "name": "Sarah Jenkins", "email": "sarah.jenkins@example.com", "phone": "+1 555 0101", "status": "new", "channel": "website", "last_contact": now.Add(-30 * time.Minute), "notes": "Asked about the bike tour for 4 people.", "created_at": now, "updated_at": now},
				{"id": "L002", "organization_id": org, "name": "Miguel Torres", "email": "miguel.torres@example.com", "phone": "+34 600 111 222", "status": "contacted", "channel": "whatsapp", "last_contact": now.Add(-3 * time.Hour), "notes": "Wants a private kayak trip.", "created_at": now, "updated_at": now},
				{"id": "L003", "organization_id": org, "name": "Anna Keller", "email": "anna.keller@example.com", "phone": "", "status": "qualified", "channel": "referral", "last_contact": now.Add(-26 * time.Hour), "notes": "Group of 10, corporate outing.", "created_at": now, "updated_at": now},
				{"id": "L004", "organization_id": org, "name": "James O'Neill", "email": "j.oneill@example.com", "phone": "+44 7700 900123", "status": "converted", "channel": "telegram", "last_contact": now.Add(-3 * 24 * time.Hour), "notes": "Booked the summit hike.", "created_at": now, "updated_at": now},
				{"id": "L005", "organization_id": org, "name": "Yuki Tanaka", "email": "yuki.tanaka@example.com", "phone": "", "status": "lost", "channel": "email", "last_contact": now.Add(-10 * 24 * time.Hour), "notes": "Dates did not work out.", "created_at": now, "updated_at": now},
			},
		},
		{
			Table: TableBookings,
			Rows: []Row{
				{"id": "B001", "organization_id": org, "tour_id": "T001", "lead_id": "L001", "client_name": "Sarah Jenkins", "client_email": "sarah.jenkins@example.com", "num_participants": 4, "booking_date": now.AddDate(0, 0, 2).Format("2006-01-02"), "status": "pending", "payment_status": "unpaid", "total_amount": "356", "currency": DefaultCurrency, "created_at": now, "updated_at": now},
				{"id": "B002", "organization_id": org, "tour_id": "T003", "lead_id": "L004", "client_name": "James O'Neill", "client_email": "j.oneill@example.com", "num_participants": 2, "booking_date": now.AddDate(0, 0, 5).Format("2006-01-02"), "status": "confirmed", "payment_status": "paid", "total_amount": "300", "currency": DefaultCurrency, "created_at": now, "updated_at": now},
				{"id": "B003", "organization_id": org, "tour_id": "T004", "client_name": "Laura Petit", "client_email": "laura.petit@example.com", "num_participants": 6, "booking_date": now.AddDate(0, 0, 7).Format("2006-01-02"), "status": "confirmed", "payment_status": "partial", "total_amount": "390", "currency": DefaultCurrency, "created_at": now, "updated_at": now},
				{"id": "B004", "organization_id": org, "tour_id": "T006", "client_name": "Tom Becker", "client_email": "tom.becker@example.com", "num_participants": 3, "booking_date": now.AddDate(0, 0, 10).Format("2006-01-02"), "status": "pending", "payment_status": "unpaid", "total_amount": "285", "currency": DefaultCurrency, "created_at": now, "updated_at": now},
				{"id": "B005", "organization_id": org, "tour_id": "T002", "client_name": "Nina Rossi", "client_email": "nina.rossi@example.com", "num_participants": 2, "booking_date": now.AddDate(0, 0, 1).Format("2006-01-02"), "status": "cancelled", "payment_status": "refunded", "total_amount": "240", "currency": DefaultCurrency, "created_at": now, "updated_at": now},
			},
		},
		{
			Table: TableMessages,
			Rows: []Row{
				{"id": "M001", "organization_id": org, "lead_id": "L001", "channel": "website", "direction": "inbound", "sender_name": "Sarah Jenkins", "content": "Hi, is the sunset bike tour available this Saturday for 4 people?", "is_read": false, "created_at": now.Add(-30 * time.Minute)},
				{"id": "M002", "organization_id": org, "lead_id": "L002", "channel": "whatsapp", "direction": "inbound", "sender_name": "Miguel Torres", "content": "Can we do the kayak trip as a private group?", "is_read": true, "created_at": now.Add(-3 * time.Hour)},
				{"id": "M003", "organization_id": org, "lead_id": "L002", "channel": "whatsapp", "direction": "outbound", "sender_name": "Demo Admin", "content": "Absolutely, private departures run daily at 9am.", "is_read": true, "created_at": now.Add(-2 * time.Hour)},
			},
		},
		{
			Table: TableNotifications,
			Rows: []Row{
				{"id": "N001", "organization_id": org, "type": "new_lead", "title": "New lead", "message": "Sarah Jenkins asked about Sunset City Bike Tour", "link_to": "/leads/L001", "is_read": false, "created_at": now.Add(-30 * time.Minute)},
				{"id": "N002", "organization_id": org, "type": "booking_confirmed", "title": "Booking confirmed", "message": "James O'Neill confirmed Mountain Summit Hike", "link_to": "/bookings/B002", "is_read": false, "created_at": now.Add(-3 * time.Hour)},
				{"id": "N003", "organization_id": org, "type": "payment_received", "title": "Payment received", "message": "Laura Petit paid a deposit for Street Food Walking Tour", "link_to": "/bookings/B003", "is_read": true, "created_at": now.Add(-26 * time.Hour)},
			},
		},
	}
}

// BuildInsert renders an INSERT with '?' placeholders for a seed row, emitting
// columns in the table's declaration order so statements are deterministic.
// Callers on other bindvar conventions rebind the query.
func BuildInsert(tableName string, row Row) (string, []any, error) {
	table, ok := TableByName(tableName)
	if !ok {
		return "", nil, fmt.Errorf("schema: unknown table %q", tableName)
	}

	var cols []string
	var args []any
	for _, c := range table.Columns {
		val, ok := row[c.Name]
		if !ok {
			continue
		}
		cols = append(cols, c.Name)
		args = append(args, val)
	}
	if len(cols) == 0 {
		return "", nil, fmt.Errorf("schema: empty row for table %q", tableName)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", tableName, strings.Join(cols, ", "), placeholders)
	return query, args, nil
}
