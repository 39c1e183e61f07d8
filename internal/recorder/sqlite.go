package recorder

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists ranking history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Debug().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ranking_runs (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp           INTEGER NOT NULL,
			trigger_type        TEXT,
			source              TEXT,
			issuer_filter       TEXT,
			state               TEXT,
			federal_rate        REAL,
			state_rate          REAL,
			considered          INTEGER,
			reference_apy       REAL,
			yield_delta         REAL,
			annual_dollar_delta TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON ranking_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS ranked_funds (
			id                   INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id               INTEGER NOT NULL REFERENCES ranking_runs(id),
			rank                 INTEGER NOT NULL,
			ticker               TEXT,
			name                 TEXT,
			issuer               TEXT,
			sec_yield            REAL,
			after_tax_yield      REAL,
			tax_equivalent_yield REAL,
			exempt_fraction      REAL,
			exemption_rule       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ranked_run ON ranked_funds(run_id, rank)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRanking(snap *RankingSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := snap.At
	if at.IsZero() {
		at = time.Now()
	}

	var refAPY, delta sql.NullFloat64
	var dollarDelta sql.NullString
	if c := snap.Comparison; c != nil {
		refAPY = sql.NullFloat64{Float64: c.ReferenceAPY, Valid: true}
		delta = sql.NullFloat64{Float64: c.YieldDeltaFraction, Valid: true}
		dollarDelta = sql.NullString{String: c.AnnualDollarDelta.StringFixed(2), Valid: true}
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO ranking_runs
		(timestamp, trigger_type, source, issuer_filter, state, federal_rate, state_rate,
		 considered, reference_apy, yield_delta, annual_dollar_delta)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		at.Unix(), snap.Trigger, snap.Source, snap.Issuer, snap.Profile.State.String(),
		snap.Profile.FederalRate, snap.Profile.StateRate, snap.Considered,
		refAPY, delta, dollarDelta,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for i, f := range snap.Funds {
		if _, err := tx.Exec(`INSERT INTO ranked_funds
			(run_id, rank, ticker, name, issuer, sec_yield, after_tax_yield,
			 tax_equivalent_yield, exempt_fraction, exemption_rule)
			VALUES (?,?,?,?,?,?,?,?,?,?)`,
			runID, i+1, f.Fund.Ticker, f.Fund.Name, f.Fund.Issuer, f.Fund.SECYield,
			f.AfterTaxYield, f.TaxEquivalentYield, f.Exemption.ExemptFraction, string(f.Exemption.Rule),
		); err != nil {
			return fmt.Errorf("insert ranked fund %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}

// History returns the most recent runs, newest first.
func (r *SQLiteRecorder) History(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(`SELECT
			r.id, r.timestamp, r.trigger_type, r.state, r.federal_rate, r.state_rate, r.considered,
			r.reference_apy, r.annual_dollar_delta,
			COALESCE(f.ticker, ''), COALESCE(f.name, ''), COALESCE(f.after_tax_yield, 0)
		FROM ranking_runs r
		LEFT JOIN ranked_funds f ON f.run_id = r.id AND f.rank = 1
		ORDER BY r.timestamp DESC, r.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			s      RunSummary
			ts     int64
			refAPY sql.NullFloat64
			dollar sql.NullString
		)
		if err := rows.Scan(&s.ID, &ts, &s.Trigger, &s.State, &s.FederalRate, &s.StateRate, &s.Considered,
			&refAPY, &dollar, &s.TopTicker, &s.TopName, &s.TopAfterTaxYield); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		s.At = time.Unix(ts, 0)
		if refAPY.Valid {
			v := refAPY.Float64
			s.ReferenceAPY = &v
		}
		s.AnnualDollarDelta = dollar.String
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Debug().Msg("closing sqlite recorder")
	return r.db.Close()
}
