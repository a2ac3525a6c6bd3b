package schema

// One canonical schema shared by both persistence adapters. The tables are
// declared once as typed definitions and rendered to dialect-specific DDL, so
// the hosted store and the embedded store can never drift apart on column
// names or defaults.

type ColumnType string

const (
	TypeText      ColumnType = "text"
	TypeInt       ColumnType = "int"
	TypeBool      ColumnType = "bool"
	TypeDecimal   ColumnType = "decimal"
	TypeTimestamp ColumnType = "timestamp"
	TypeDate      ColumnType = "date"
	TypeJSON      ColumnType = "json"
)

type Column struct {
	Name       string
	Type       ColumnType
	PrimaryKey bool
	NotNull    bool
	Default    string
	References string
}

type Table struct {
	Name    string
	Columns []Column
}

const (
	TableOrganizations = "organizations"
	TableUsers         = "users"
	TableLeads         = "leads"
	TableTours         = "tours"
	TableBookings      = "bookings"
	TableMessages      = "messages"
	TableNotifications = "notifications"
)

const (
	DefaultPrimaryColor = "#4F46E5"
	DefaultCurrency     = "USD"
)

// Tables returns every table in creation order (parents before children).
func Tables() []Table {
	return []Table{
		{
			Name: TableOrganizations,
			Columns: []Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "name", Type: TypeText, NotNull: true},
				{Name: "slug", Type: TypeText},
				{Name: "logo_url", Type: TypeText},
				{Name: "primary_color", Type: TypeText, Default: "'" + DefaultPrimaryColor + "'"},
				{Name: "settings", Type: TypeJSON},
				{Name: "created_at", Type: TypeTimestamp, Default: "CURRENT_TIMESTAMP"},
				{Name: "updated_at", Type: TypeTimestamp, Default: "CURRENT_TIMESTAMP"},
			},
		},
		{
			Name: TableUsers,
			Columns: []Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "organization_id", Type: TypeText, NotNull: true, References: "organizations(id)"},
				{Name: "email", Type: TypeText, NotNull: true},
				{Name: "password", Type: TypeText, NotNull: true},
				{Name: "full_name", Type: TypeText, NotNull: true},
				{Name: "role", Type: TypeText, Default: "'agent'"},
				{Name: "avatar_url", Type: TypeText},
				{Name: "created_at", Type: TypeTimestamp, Default: "CURRENT_TIMESTAMP"},
				{Name: "updated_at", Type: TypeTimestamp, Default: "CURRENT_TIMESTAMP"},
			},
		},
		{
			Name: TableLeads,
			Columns: []Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "organization_id", Type: TypeText, NotNull: true, References: "organizations(id)"},
				{Name: "name", Type: TypeText, NotNull: true},
				{Name: "email", Type: TypeText},
				{Name: "phone", Type: TypeText},
				{Name: "status", Type: TypeText, Default: "'new'"},
				{Name: "channel", Type: TypeText, Default: "'website'"},
				{Name: "last_contact", Type: TypeTimestamp},
				{Name: "notes", Type: TypeText},
				{Name: "created_at", Type: TypeTimestamp, Default: "CURRENT_TIMESTAMP"},
				{Name: "updated_at", Type: TypeTimestamp, Default: "CURRENT_TIMESTAMP"},
			},
		},
		{
			Name: TableTours,
			Columns: []Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "organization_id", Type: TypeText, NotNull: true, References: "organizations(id)"},
				{Name: "name", Type: TypeText, NotNull: true},
				{Name: "description", Type: TypeText},
				{Name: "location", Type: TypeText},
				{Name: "duration", Type: TypeText},
				{Name: "price", Type: TypeDecimal, Default: "0"},
				{Name: "currency", Type: TypeText, Default: "'" + DefaultCurrency + "'"},
				{Name: "max_participants", Type: TypeInt, Default: "10"},
				{Name: "is_active", Type: TypeBool, Default: "TRUE"},
				{Name: "level", Type: TypeText},
				{Name: "tags", Type: TypeText},
				{Name: "created_at", Type: TypeTimestamp, Default: "CURRENT_TIMESTAMP"},
				{Name: "updated_at", Type: TypeTimestamp, Default: "CURRENT_TIMESTAMP"},
			},
		},
		{
			Name: TableBookings,
			Columns: []Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "organization_id", Type: TypeText, NotNull: true, References: "organizations(id)"},
				{Name: "tour_id", Type: TypeText, References: "tours(id)"},
				{Name: "lead_id", Type: TypeText, References: "leads(id)"},
				{Name: "client_name", Type: TypeText, NotNull: true},
				{Name: "client_email", Type: TypeText},
				{Name: "client_phone", Type: TypeText},
				{Name: "num_participants", Type: TypeInt, Default: "1"},
				{Name: "booking_date", Type: TypeDate, NotNull: true},
				{Name: "status", Type: TypeText, Default: "'pending'"},
				{Name: "payment_status", Type: TypeText, Default: "'unpaid'"},
				{Name: "notes", Type: TypeText},
				{Name: "pickup_location", Type: TypeText},
				{Name: "total_amount", Type: TypeDecimal, Default: "0"},
				{Name: "currency", Type: TypeText, Default: "'" + DefaultCurrency + "'"},
				{Name: "created_at", Type: TypeTimestamp, Default: "CURRENT_TIMESTAMP"},
				{Name: "updated_at", Type: TypeTimestamp, Default: "CURRENT_TIMESTAMP"},
			},
		},
		{
			Name: TableMessages,
			Columns: []Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "organization_id", Type: TypeText, NotNull: true, References: "organizations(id)"},
				{Name: "lead_id", Type: TypeText, References: "leads(id)"},
				{Name: "channel", Type: TypeText, Default: "'website'"},
				{Name: "direction", Type: TypeText, Default: "'inbound'"},
				{Name: "sender_name", Type: TypeText},
				{Name: "content", Type: TypeText, NotNull: true},
				{Name: "is_read", Type: TypeBool, Default: "FALSE"},
				{Name: "created_at", Type: TypeTimestamp, Default: "CURRENT_TIMESTAMP"},
			},
		},
		{
			Name: TableNotifications,
			Columns: []Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "organization_id", Type: TypeText, NotNull: true, References: "organizations(id)"},
				{Name: "user_id", Type: TypeText, References: "users(id)"},
				{Name: "type", Type: TypeText, NotNull: true},
				{Name: "title", Type: TypeText, NotNull: true},
				{Name: "message", Type: TypeText, NotNull: true},
				{Name: "link_to", Type: TypeText},
				{Name: "is_read", Type: TypeBool, Default: "FALSE"},
				{Name: "created_at", Type: TypeTimestamp, Default: "CURRENT_TIMESTAMP"},
			},
		},
	}
}
