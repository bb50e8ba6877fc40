package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "migrations.db") + "?_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDialect(t *testing.T) {
	for driver, want := range map[string]string{
		"postgres": "postgres",
		"MySQL":    "mysql",
		"sqlite":   "sqlite3",
		"sqlite3":  "sqlite3",
	} {
		got, err := Dialect(driver)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := Dialect("oracle")
	assert.Error(t, err)
}

func TestUpCreatesConstrainedSchema(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	require.NoError(t, Up(ctx, db, "sqlite"))

	v, err := Version(ctx, db, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = db.Exec(`INSERT INTO gn_rest_uri_def (obj_id, api_id, site_id, srv_nm, method_nm) VALUES ('d1', 'API001', 'S1', 'svc', 'GET')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO gn_rest_uri_def (obj_id, api_id, site_id, srv_nm, method_nm) VALUES ('d2', 'API002', 'S1', 'svc', 'HEAD')`)
	assert.Error(t, err, "method_nm check")

	_, err = db.Exec(`INSERT INTO gn_rest_uri_path (obj_id, api_id, path_order, path_value) VALUES ('p1', 'API001', 0, 'users')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO gn_rest_uri_path (obj_id, api_id, path_order, path_value) VALUES ('p2', 'API001', 0, 'other')`)
	assert.Error(t, err, "unique (api_id, path_order)")

	_, err = db.Exec(`INSERT INTO gn_rest_uri_path (obj_id, api_id, path_order, path_value) VALUES ('p3', 'MISSING', 0, 'x')`)
	assert.Error(t, err, "foreign key")

	_, err = db.Exec(`INSERT INTO gn_rest_uri_path (obj_id, api_id, path_order, path_value) VALUES ('p4', 'API001', -1, 'x')`)
	assert.Error(t, err, "path_order check")

	_, err = db.Exec(`DELETE FROM gn_rest_uri_def WHERE api_id = 'API001'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM gn_rest_uri_path WHERE api_id = 'API001'`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestDownDropsSchema(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	require.NoError(t, Up(ctx, db, "sqlite"))
	require.NoError(t, Down(ctx, db, "sqlite"))

	v, err := Version(ctx, db, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'gn_rest_uri_def'`).Scan(&name)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
