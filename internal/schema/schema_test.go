package schema

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStatements(t *testing.T) {
	t.Run("postgres renders native types", func(t *testing.T) {
		stmts := CreateStatements(DialectPostgres)
		ddl := strings.Join(stmts, "\n")

		assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS organizations")
		assert.Contains(t, ddl, "is_active BOOLEAN DEFAULT TRUE")
		assert.Contains(t, ddl, "price NUMERIC(12,2) DEFAULT 0")
		assert.Contains(t, ddl, "created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP")
		assert.Contains(t, ddl, "booking_date DATE NOT NULL")
		assert.Contains(t, ddl, "settings JSONB")
	})

	t.Run("sqlite renders booleans as integers", func(t *testing.T) {
		stmts := CreateStatements(DialectSQLite)
		ddl := strings.Join(stmts, "\n")

		assert.Contains(t, ddl, "is_active INTEGER DEFAULT 1")
		assert.Contains(t, ddl, "is_read INTEGER DEFAULT 0")
		assert.Contains(t, ddl, "created_at TEXT DEFAULT CURRENT_TIMESTAMP")
		assert.NotContains(t, ddl, "TIMESTAMPTZ")
		assert.NotContains(t, ddl, "JSONB")
	})

	t.Run("organization scoped tables get an index", func(t *testing.T) {
		stmts := CreateStatements(DialectSQLite)
		ddl := strings.Join(stmts, "\n")

		assert.Contains(t, ddl, "CREATE INDEX IF NOT EXISTS idx_leads_organization_id")
		assert.NotContains(t, ddl, "idx_organizations_organization_id")
	})
}

func TestDropStatements(t *testing.T) {
	stmts := DropStatements(DialectPostgres)
	require.Len(t, stmts, len(Tables()))

	assert.Equal(t, "DROP TABLE IF EXISTS notifications;", stmts[0])
	assert.Equal(t, "DROP TABLE IF EXISTS organizations;", stmts[len(stmts)-1])
}

func TestBuildInsert(t *testing.T) {
	t.Run("emits columns in declaration order", func(t *testing.T) {
		query, args, err := BuildInsert(TableLeads, Row{
			"name":            "Sarah Jenkins",
			"id":              "L001",
			"organization_id": "org-default",
		})

		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO leads (id, organization_id, name) VALUES (?, ?, ?)", query)
		assert.Equal(t, []any{"L001", "org-default", "Sarah Jenkins"}, args)
	})

	t.Run("unknown table", func(t *testing.T) {
		_, _, err := BuildInsert("rooms", Row{"id": "1"})
		assert.Error(t, err)
	})

	t.Run("seed rows only reference known columns", func(t *testing.T) {
		for _, st := range SeedData(time.Now(), "hash") {
			table, ok := TableByName(st.Table)
			require.True(t, ok)

			known := make(map[string]bool, len(table.Columns))
			for _, c := range table.Columns {
				known[c.Name] = true
			}
			for _, row := range st.Rows {
				for col := range row {
					assert.Truef(t, known[col], "column %s.%s", st.Table, col)
				}
			}
		}
	})
}
