package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/exposcan/exposcan/internal/model"
)

// dbFileName is the history database file inside the data directory.
const dbFileName = "exposcan.db"

// HistoryDB provides SQLite-based storage for past scan reports.
//
// Design decision: We store one row per report with denormalized summary
// columns rather than normalizing breaches into their own table because:
//  1. History queries only need the summary and the primary email
//  2. The full report is already a stable JSON document
//  3. Schema migrations stay trivial as the report model grows
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Open opens or creates a HistoryDB in the given directory.
func Open(dbDir string) (*HistoryDB, error) {
	if err := os.MkdirAll(dbDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	dbPath := filepath.Join(dbDir, dbFileName)

	db, err := sql.Open("sqlite", dbPath+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{db: db, dbPath: dbPath}

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Scan reports store complete reports as JSON plus summary columns
	CREATE TABLE IF NOT EXISTS scans (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		email        TEXT NOT NULL,
		scan_date    TEXT NOT NULL,
		risk_level   TEXT NOT NULL,
		risk_score   INTEGER NOT NULL,
		breach_count INTEGER NOT NULL,
		report_json  TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scans_email ON scans(email);
	CREATE INDEX IF NOT EXISTS idx_scans_date ON scans(scan_date);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// ScanSummary is one history row without the full report body.
type ScanSummary struct {
	ID          string
	Name        string
	Email       string
	ScanDate    time.Time
	RiskLevel   model.RiskLevel
	RiskScore   int
	BreachCount int
}

// Drift is the change in risk between a report and the previous report
// for the same primary email.
type Drift struct {
	// Previous is the summary of the report compared against.
	Previous ScanSummary

	// ScoreDelta is current score minus previous score.
	ScoreDelta int

	// LevelChanged is true when the risk level differs.
	LevelChanged bool
}

// SaveReport persists one report.
func (hdb *HistoryDB) SaveReport(ctx context.Context, report *model.VulnerabilityReport) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	_, err = hdb.db.ExecContext(ctx,
		`INSERT INTO scans (id, name, email, scan_date, risk_level, risk_score, breach_count, report_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ID,
		report.Name,
		report.Email,
		report.ScanDate.UTC().Format(time.RFC3339),
		report.Scan.RiskLevel.String(),
		report.Scan.TotalRiskScore,
		report.Scan.Stats.BreachCount,
		string(reportJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// ListScans returns the most recent scan summaries, newest first.
func (hdb *HistoryDB) ListScans(ctx context.Context, limit int) ([]ScanSummary, error) {
	rows, err := hdb.db.QueryContext(ctx,
		`SELECT id, name, email, scan_date, risk_level, risk_score, breach_count
		 FROM scans ORDER BY scan_date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var summaries []ScanSummary
	for rows.Next() {
		summary, err := scanSummaryRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	return summaries, nil
}

// GetReport retrieves one full report by ID.
// Returns nil when no report with that ID exists.
func (hdb *HistoryDB) GetReport(ctx context.Context, id string) (*model.VulnerabilityReport, error) {
	var reportJSON string
	err := hdb.db.QueryRowContext(ctx,
		`SELECT report_json FROM scans WHERE id = ?`, id).Scan(&reportJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report model.VulnerabilityReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse stored report: %w", err)
	}
	return &report, nil
}

// DriftFor compares a report against the most recent earlier scan for the
// same primary email. Returns nil when there is no earlier scan.
func (hdb *HistoryDB) DriftFor(ctx context.Context, report *model.VulnerabilityReport) (*Drift, error) {
	row := hdb.db.QueryRowContext(ctx,
		`SELECT id, name, email, scan_date, risk_level, risk_score, breach_count
		 FROM scans
		 WHERE email = ? AND scan_date < ? AND id != ?
		 ORDER BY scan_date DESC LIMIT 1`,
		report.Email,
		report.ScanDate.UTC().Format(time.RFC3339),
		report.ID)

	previous, err := scanSummaryRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &Drift{
		Previous:     previous,
		ScoreDelta:   report.Scan.TotalRiskScore - previous.RiskScore,
		LevelChanged: report.Scan.RiskLevel != previous.RiskLevel,
	}, nil
}

// scanSummaryRow scans one summary row from either *sql.Row or *sql.Rows.
func scanSummaryRow(scan func(...any) error) (ScanSummary, error) {
	var (
		summary  ScanSummary
		scanDate string
		level    string
	)
	err := scan(
		&summary.ID,
		&summary.Name,
		&summary.Email,
		&scanDate,
		&level,
		&summary.RiskScore,
		&summary.BreachCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ScanSummary{}, err
		}
		return ScanSummary{}, fmt.Errorf("failed to scan history row: %w", err)
	}

	if t, err := time.Parse(time.RFC3339, scanDate); err == nil {
		summary.ScanDate = t
	}
	parsed, err := model.ParseRiskLevel(level)
	if err != nil {
		return ScanSummary{}, fmt.Errorf("failed to parse stored risk level: %w", err)
	}
	summary.RiskLevel = parsed
	return summary, nil
}
