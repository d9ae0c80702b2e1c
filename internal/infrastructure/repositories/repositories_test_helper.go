package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createRegistryTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE records (
		id INTEGER PRIMARY KEY,
		contract_address TEXT NOT NULL,
		chain INTEGER NOT NULL,
		owner TEXT NOT NULL,
		enabled BOOLEAN NOT NULL,
		identity TEXT NOT NULL,
		abi_url TEXT NOT NULL,
		contract_url TEXT,
		wasm_url TEXT,
		audit_url TEXT,
		group_id INTEGER,
		project_name TEXT,
		project_website TEXT,
		github TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE INDEX idx_records_address ON records (contract_address);`)
	mustExec(t, db, `CREATE TABLE registry_counters (
		id INTEGER PRIMARY KEY,
		next_id INTEGER NOT NULL
	);`)
}

func createRegistryEventTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE registry_events (
		id TEXT PRIMARY KEY,
		record_id INTEGER NOT NULL,
		event_type TEXT NOT NULL,
		caller TEXT NOT NULL,
		payload TEXT,
		created_at DATETIME
	);`)
}

func createLedgerTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE ledger_accounts (
		address TEXT PRIMARY KEY,
		balance TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
