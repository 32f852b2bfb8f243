package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// Rule is an exported entry as stored in the database.
type Rule struct {
	ID          string
	Position    int
	Target      string
	Input       string
	Mode        string
	Channel     string
	Condition   string
	SchemaKinds string
	Valid       []string
	Invalid     []string
}

// StoredViolation is a consistency finding as stored in the database.
type StoredViolation struct {
	Code     string
	Severity string
	Message  string
	Entries  []int
}

// Rules returns the stored rules in catalog order. A non-empty target
// restricts the result to that target type.
func (s *Store) Rules(ctx context.Context, target string) ([]Rule, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	query := `SELECT id, position, target_type, input_type, mode, channel, condition, schema_kinds FROM v_rules`
	var args []any
	if target != "" {
		query += ` WHERE target_type = ?`
		args = append(args, target)
	}
	query += ` ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Rule
	for rows.Next() {
		var r Rule
		var condition, schemas sql.NullString
		if err := rows.Scan(&r.ID, &r.Position, &r.Target, &r.Input, &r.Mode, &r.Channel, &condition, &schemas); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		r.Condition = condition.String
		r.SchemaKinds = schemas.String
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// release the connection before the per-rule example queries
	_ = rows.Close()

	for i := range out {
		if err := s.loadExamples(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Store) loadExamples(ctx context.Context, r *Rule) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT valid, value FROM rule_examples WHERE rule_id = ? ORDER BY valid DESC, ordinal`, r.ID)
	if err != nil {
		return fmt.Errorf("failed to query examples: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var valid bool
		var value string
		if err := rows.Scan(&valid, &value); err != nil {
			return fmt.Errorf("failed to scan example: %w", err)
		}
		if valid {
			r.Valid = append(r.Valid, value)
		} else {
			r.Invalid = append(r.Invalid, value)
		}
	}
	return rows.Err()
}

// Violations returns the stored consistency findings in report order.
func (s *Store) Violations(ctx context.Context) ([]StoredViolation, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT code, severity, message, entries FROM violations ORDER BY ordinal`)
	if err != nil {
		return nil, fmt.Errorf("failed to query violations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []StoredViolation
	for rows.Next() {
		var v StoredViolation
		var entries string
		if err := rows.Scan(&v.Code, &v.Severity, &v.Message, &entries); err != nil {
			return nil, fmt.Errorf("failed to scan violation: %w", err)
		}
		if err := json.NewDecoder(strings.NewReader(entries)).Decode(&v.Entries); err != nil {
			return nil, fmt.Errorf("failed to decode violation entries: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// CountByTarget returns the number of stored rules per target type.
func (s *Store) CountByTarget(ctx context.Context) (map[string]int, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	rows, err := s.db.QueryContext(ctx, `SELECT target_type, COUNT(*) FROM rules GROUP BY target_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to count rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]int)
	for rows.Next() {
		var target string
		var n int
		if err := rows.Scan(&target, &n); err != nil {
			return nil, err
		}
		out[target] = n
	}
	return out, rows.Err()
}
