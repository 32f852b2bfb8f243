package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/leapstack-labs/convcat/pkg/catalog"
	"github.com/leapstack-labs/convcat/pkg/core"
)

// ruleNamespace seeds the name-based rule IDs.
var ruleNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/leapstack-labs/convcat/rules"))

// RuleID returns the stable identifier of the entry at position pos.
// Exporting the same catalog twice yields the same IDs.
func RuleID(pos int, e core.Entry) string {
	name := strconv.Itoa(pos) + "\x00" + e.Key().String() + "\x00" + e.Condition
	return uuid.NewSHA1(ruleNamespace, []byte(name)).String()
}

// ExportStats summarizes an export.
type ExportStats struct {
	Rules      int
	Schemas    int
	Examples   int
	Violations int
}

// Export replaces the stored rules with the entries of c together with the
// result of its consistency check. It runs in a single transaction.
func (s *Store) Export(ctx context.Context, c *catalog.Catalog) (ExportStats, error) {
	var stats ExportStats
	if s.db == nil {
		return stats, errNotOpened
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{
		`DELETE FROM violations`,
		`DELETE FROM rule_examples`,
		`DELETE FROM rule_schemas`,
		`DELETE FROM rules`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return stats, fmt.Errorf("failed to clear rules: %w", err)
		}
	}

	for pos, e := range c.All() {
		n, err := insertRule(ctx, tx, pos, e)
		if err != nil {
			return stats, err
		}
		stats.Rules++
		stats.Schemas += len(e.Schemas)
		stats.Examples += n
	}

	for i, v := range catalog.ValidateConsistency(c) {
		entries, err := json.Marshal(v.Entries)
		if err != nil {
			return stats, err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO violations (ordinal, code, severity, message, entries) VALUES (?, ?, ?, ?, ?)`,
			i, v.Code, v.Severity.String(), v.Message, string(entries),
		); err != nil {
			return stats, fmt.Errorf("failed to insert violation: %w", err)
		}
		stats.Violations++
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit export: %w", err)
	}
	return stats, nil
}

func insertRule(ctx context.Context, tx *sql.Tx, pos int, e core.Entry) (int, error) {
	id := RuleID(pos, e)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO rules (id, position, target_type, input_type, mode, channel, condition)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, pos, e.Target.Name(), e.Input.Name(), e.Mode.String(), e.Channel.String(), nullString(e.Condition),
	); err != nil {
		return 0, fmt.Errorf("failed to insert rule %s: %w", e.Key(), err)
	}

	for i, k := range e.Schemas {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rule_schemas (rule_id, ordinal, schema_kind) VALUES (?, ?, ?)`,
			id, i, string(k),
		); err != nil {
			return 0, fmt.Errorf("failed to insert schema kind: %w", err)
		}
	}

	examples := 0
	for _, group := range []struct {
		valid  bool
		values []any
	}{{true, e.Valid}, {false, e.Invalid}} {
		for i, v := range group.values {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO rule_examples (rule_id, valid, ordinal, shape, value) VALUES (?, ?, ?, ?, ?)`,
				id, group.valid, i, core.ShapeOf(v).String(), core.FormatExample(v),
			); err != nil {
				return 0, fmt.Errorf("failed to insert example: %w", err)
			}
			examples++
		}
	}
	return examples, nil
}
