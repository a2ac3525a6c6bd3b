package localdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"tourcrm/config"
	"tourcrm/internal/schema"
	"tourcrm/shared/failure"

	"github.com/dgraph-io/badger/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, dir string) *Store {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Local.Dir = dir
	cfg.Storage.Local.BlobKey = "tourcrm-db"
	cfg.Storage.Local.Seed = true

	store, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, store.Initialize(context.Background()))
	return store
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, t.TempDir())
	defer store.Close()

	t.Run("seeds a fresh database", func(t *testing.T) {
		tour, err := store.GetByID(ctx, schema.TableTours, "T001")
		require.NoError(t, err)
		assert.Equal(t, "Sunset City Bike Tour", String(tour, "name"))
		assert.True(t, Bool(tour, "is_active"))
		assert.True(t, Decimal(tour, "price").Equal(decimal.NewFromInt(89)))
	})

	t.Run("is idempotent", func(t *testing.T) {
		require.NoError(t, store.Initialize(ctx))

		leads, err := store.GetAll(ctx, schema.TableLeads, schema.SeedOrganizationID, "last_contact DESC")
		require.NoError(t, err)
		assert.Len(t, leads, 5)
	})
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store := newTestStore(t, dir)
	err := store.Insert(ctx, schema.TableLeads, Row{
		"id":              "L100",
		"organization_id": schema.SeedOrganizationID,
		"name":            "Petra Novak",
		"status":          "new",
		"channel":         "website",
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Deleting the database file proves the reopen restores from the blob.
	require.NoError(t, os.Remove(store.dbPath))

	reopened := newTestStore(t, dir)
	defer reopened.Close()

	lead, err := reopened.GetByID(ctx, schema.TableLeads, "L100")
	require.NoError(t, err)
	assert.Equal(t, "Petra Novak", String(lead, "name"))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, t.TempDir())
	defer store.Close()

	t.Run("patches fields and stamps updated_at", func(t *testing.T) {
		before, err := store.GetByID(ctx, schema.TableLeads, "L001")
		require.NoError(t, err)

		err = store.Update(ctx, schema.TableLeads, "L001", Row{"status": "contacted"})
		require.NoError(t, err)

		after, err := store.GetByID(ctx, schema.TableLeads, "L001")
		require.NoError(t, err)
		assert.Equal(t, "contacted", String(after, "status"))
		assert.Equal(t, "Sarah Jenkins", String(after, "name"))
		assert.False(t, Time(after, "updated_at").Before(Time(before, "updated_at")))
	})

	t.Run("unknown id", func(t *testing.T) {
		err := store.Update(ctx, schema.TableLeads, "L999", Row{"status": "lost"})
		require.Error(t, err)

		var f *failure.Failure
		require.ErrorAs(t, err, &f)
		assert.Equal(t, 404, f.Code)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, t.TempDir())
	defer store.Close()

	require.NoError(t, store.Delete(ctx, schema.TableMessages, "M001"))

	_, err := store.GetByID(ctx, schema.TableMessages, "M001")
	assert.Error(t, err)

	err = store.Delete(ctx, schema.TableMessages, "M001")
	assert.Error(t, err)
}

func TestOrganizationScoping(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, t.TempDir())
	defer store.Close()

	require.NoError(t, store.Insert(ctx, schema.TableOrganizations, Row{
		"id":   "org-other",
		"name": "Other Operator",
	}))
	require.NoError(t, store.Insert(ctx, schema.TableLeads, Row{
		"id":              "L200",
		"organization_id": "org-other",
		"name":            "Hidden Lead",
		"status":          "new",
		"channel":         "direct",
	}))

	leads, err := store.GetAll(ctx, schema.TableLeads, schema.SeedOrganizationID, "")
	require.NoError(t, err)
	for _, lead := range leads {
		assert.NotEqual(t, "L200", String(lead, "id"))
	}

	other, err := store.GetAll(ctx, schema.TableLeads, "org-other", "")
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, "Hidden Lead", String(other[0], "name"))
}

func TestQueryJoins(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, t.TempDir())
	defer store.Close()

	rows, err := store.Query(ctx, `
		SELECT b.id, b.client_name, t.name AS tour_name
		FROM bookings b
		LEFT JOIN tours t ON t.id = b.tour_id
		WHERE b.organization_id = ?
		ORDER BY b.booking_date ASC`, schema.SeedOrganizationID)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	byID := make(map[string]Row, len(rows))
	for _, r := range rows {
		byID[String(r, "id")] = r
	}
	assert.Equal(t, "Sarah Jenkins", String(byID["B001"], "client_name"))
	assert.Equal(t, "Sunset City Bike Tour", String(byID["B001"], "tour_name"))
}

func TestTx(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, t.TempDir())
	defer store.Close()

	t.Run("commits related writes together", func(t *testing.T) {
		err := store.Tx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO bookings (id, organization_id, tour_id, client_name, booking_date) VALUES (?, ?, ?, ?, ?)",
				"B100", schema.SeedOrganizationID, "T002", "Elena Petrova", "2026-09-15"); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx,
				"INSERT INTO notifications (id, organization_id, type, title, message) VALUES (?, ?, ?, ?, ?)",
				"N100", schema.SeedOrganizationID, "booking_confirmed", "New booking", "Elena Petrova booked Coastal Kayak Adventure")
			return err
		})
		require.NoError(t, err)

		booking, err := store.GetByID(ctx, schema.TableBookings, "B100")
		require.NoError(t, err)
		assert.Equal(t, "Elena Petrova", String(booking, "client_name"))
	})

	t.Run("rolls back on error", func(t *testing.T) {
		err := store.Tx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO notifications (id, organization_id, type, title, message) VALUES (?, ?, ?, ?, ?)",
				"N101", schema.SeedOrganizationID, "system", "Orphan", "should not survive"); err != nil {
				return err
			}
			return errors.New("boom")
		})
		require.Error(t, err)

		_, err = store.GetByID(ctx, schema.TableNotifications, "N101")
		assert.Error(t, err)
	})
}

func TestPreferences(t *testing.T) {
	store := newTestStore(t, t.TempDir())
	defer store.Close()

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, store.SetPreference("theme", "dark"))

		value, found, err := store.GetPreference("theme")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "dark", value)
	})

	t.Run("missing key", func(t *testing.T) {
		_, found, err := store.GetPreference("currency")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("raw legacy value", func(t *testing.T) {
		err := store.kv.Update(func(txn *badger.Txn) error {
			return txn.Set([]byte("pref:language"), []byte("en"))
		})
		require.NoError(t, err)

		value, found, err := store.GetPreference("language")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "en", value)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.SetPreference("current_organization", "org-default"))
		require.NoError(t, store.DeletePreference("current_organization"))

		_, found, err := store.GetPreference("current_organization")
		require.NoError(t, err)
		assert.False(t, found)
	})
}
