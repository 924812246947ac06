package database

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS stops (
		stop_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		geohash TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stops_geohash ON stops (geohash)`,
	`CREATE TABLE IF NOT EXISTS routes (
		route_number TEXT PRIMARY KEY,
		route_type TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS route_stops (
		route_number TEXT NOT NULL REFERENCES routes (route_number),
		idx INTEGER NOT NULL,
		stop_id TEXT NOT NULL REFERENCES stops (stop_id),
		UNIQUE (route_number, idx)
	)`,
	`CREATE TABLE IF NOT EXISTS stop_routes (
		stop_id TEXT NOT NULL REFERENCES stops (stop_id),
		route_number TEXT NOT NULL,
		idx INTEGER NOT NULL,
		UNIQUE (stop_id, route_number, idx)
	)`,
}

// EnsureSchema creates the transit tables when they do not exist yet
func (p *PostgresClient) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := p.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
