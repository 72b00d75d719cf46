package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rp1014/launchtrack/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database. Optional
// record fields are stored as NULL, mirroring their in-memory absence.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_ts       INTEGER NOT NULL,
			asset_count  INTEGER NOT NULL,
			priced_count INTEGER NOT NULL,
			degraded     INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(run_ts)`,

		`CREATE TABLE IF NOT EXISTS record_snapshots (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			run_ts              INTEGER NOT NULL,
			symbol              TEXT NOT NULL,
			mint                TEXT,
			ico_price           REAL,
			current_price       REAL,
			price_source        TEXT,
			change_24h          REAL,
			volume_24h          REAL,
			liquidity           REAL,
			market_cap          REAL,
			venue_address       TEXT,
			venue_dex           TEXT,
			ath                 REAL,
			atl                 REAL,
			tge_anchor_price    REAL,
			roi_multiple        REAL,
			roi_percent         REAL,
			launch_roi_multiple REAL,
			ath_roi_multiple    REAL,
			atl_roi_multiple    REAL,
			anchor_roi_multiple REAL,
			oversubscription    REAL,
			allocation_rate     REAL,
			sale_ratio          REAL,
			profit              REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON record_snapshots(run_ts)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_symbol ON record_snapshots(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun stores one run summary row plus one snapshot row per record.
func (r *SQLiteRecorder) RecordRun(runAt time.Time, degraded bool, records []model.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := runAt.Unix()
	priced := 0
	for _, rec := range records {
		if rec.CurrentPrice != nil {
			priced++
		}
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO runs (run_ts, asset_count, priced_count, degraded)
		VALUES (?,?,?,?)`,
		ts, len(records), priced, boolToInt(degraded),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, rec := range records {
		if _, err := tx.Exec(`INSERT INTO record_snapshots
			(run_ts, symbol, mint, ico_price, current_price, price_source,
			 change_24h, volume_24h, liquidity, market_cap,
			 venue_address, venue_dex, ath, atl, tge_anchor_price,
			 roi_multiple, roi_percent,
			 launch_roi_multiple, ath_roi_multiple, atl_roi_multiple, anchor_roi_multiple,
			 oversubscription, allocation_rate, sale_ratio, profit)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			ts, rec.Symbol, rec.Mint, rec.ICOPrice, rec.CurrentPrice, rec.PriceSource,
			rec.Change24h, rec.Volume24h, rec.Liquidity, rec.MarketCap,
			rec.VenueAddress, rec.VenueDex, rec.ATH, rec.ATL, rec.TGEAnchorPrice,
			metricMultiple(rec.ROI), metricPercent(rec.ROI),
			metricMultiple(rec.LaunchROI), metricMultiple(rec.ATHROI),
			metricMultiple(rec.ATLROI), metricMultiple(rec.AnchorROI),
			rec.Oversubscription, rec.AllocationRate, rec.SaleRatio, rec.Profit,
		); err != nil {
			return fmt.Errorf("insert snapshot %s: %w", rec.Symbol, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func metricMultiple(m *model.Metric) *float64 {
	if m == nil {
		return nil
	}
	return &m.Multiple
}

func metricPercent(m *model.Metric) *float64 {
	if m == nil {
		return nil
	}
	return &m.Percent
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
