package schema

import (
	"fmt"
	"strings"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

func columnType(dialect Dialect, t ColumnType) string {
	if dialect == DialectPostgres {
		switch t {
		case TypeInt:
			return "INTEGER"
		case TypeBool:
			return "BOOLEAN"
		case TypeDecimal:
			return "NUMERIC(12,2)"
		case TypeTimestamp:
			return "TIMESTAMPTZ"
		case TypeDate:
			return "DATE"
		case TypeJSON:
			return "JSONB"
		default:
			return "TEXT"
		}
	}

	// SQLite keeps booleans as integers and timestamps as text, the adapter
	// normalizes values when scanning rows.
	switch t {
	case TypeInt, TypeBool:
		return "INTEGER"
	case TypeDecimal:
		return "NUMERIC"
	default:
		return "TEXT"
	}
}

func columnDefault(dialect Dialect, c Column) string {
	if c.Default == "" {
		return ""
	}
	if dialect == DialectSQLite && c.Type == TypeBool {
		switch strings.ToUpper(c.Default) {
		case "TRUE":
			return "1"
		case "FALSE":
			return "0"
		}
	}
	return c.Default
}

func columnDDL(dialect Dialect, c Column) string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString(" ")
	b.WriteString(columnType(dialect, c.Type))
	if c.PrimaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	if c.NotNull {
		b.WriteString(" NOT NULL")
	}
	if def := columnDefault(dialect, c); def != "" {
		b.WriteString(" DEFAULT ")
		b.WriteString(def)
	}
	if c.References != "" {
		b.WriteString(" REFERENCES ")
		b.WriteString(c.References)
	}
	return b.String()
}

// CreateStatements renders CREATE TABLE plus supporting index statements for
// every table in creation order.
func CreateStatements(dialect Dialect) []string {
	var stmts []string
	for _, table := range Tables() {
		cols := make([]string, 0, len(table.Columns))
		hasOrg := false
		for _, c := range table.Columns {
			cols = append(cols, "\t"+columnDDL(dialect, c))
			if c.Name == "organization_id" {
				hasOrg = true
			}
		}
		stmts = append(stmts, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);", table.Name, strings.Join(cols, ",\n")))
		if hasOrg {
			stmts = append(stmts, fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_organization_id ON %s (organization_id);", table.Name, table.Name))
		}
	}
	return stmts
}

// DropStatements renders DROP TABLE statements in reverse creation order.
func DropStatements(Dialect) []string {
	tables := Tables()
	stmts := make([]string, 0, len(tables))
	for i := len(tables) - 1; i >= 0; i-- {
		stmts = append(stmts, fmt.Sprintf("DROP TABLE IF EXISTS %s;", tables[i].Name))
	}
	return stmts
}

// ColumnNames lists the column names of a table in declaration order.
func ColumnNames(table Table) []string {
	names := make([]string, 0, len(table.Columns))
	for _, c := range table.Columns {
		names = append(names, c.Name)
	}
	return names
}

// TableByName looks a table definition up by name.
func TableByName(name string) (Table, bool) {
	for _, t := range Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
