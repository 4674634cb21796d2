package postgres

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Migration is one named schema step. DependsOn lists migrations that must be
// applied first.
type Migration struct {
	Name      string
	DependsOn []string
	SQL       string
}

const migrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    name       TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Order returns migrations sorted so every migration follows its
// dependencies. Ties keep declaration order.
func Order(migrations []Migration) ([]Migration, error) {
	byName := make(map[string]Migration, len(migrations))
	position := make(map[string]int, len(migrations))
	for i, m := range migrations {
		if _, dup := byName[m.Name]; dup {
			return nil, fmt.Errorf("duplicate migration %q", m.Name)
		}
		byName[m.Name] = m
		position[m.Name] = i
	}

	indegree := make(map[string]int, len(migrations))
	dependents := make(map[string][]string)
	for _, m := range migrations {
		indegree[m.Name] += 0
		for _, dep := range m.DependsOn {
			if _, ok := byName[dep]; !ok {
				return nil, fmt.Errorf("migration %q depends on unknown %q", m.Name, dep)
			}
			indegree[m.Name]++
			dependents[dep] = append(dependents[dep], m.Name)
		}
	}

	var ready []string
	for _, m := range migrations {
		if indegree[m.Name] == 0 {
			ready = append(ready, m.Name)
		}
	}

	ordered := make([]Migration, 0, len(migrations))
	for len(ready) > 0 {
		sort.SliceStable(ready, func(i, j int) bool { return position[ready[i]] < position[ready[j]] })
		name := ready[0]
		ready = ready[1:]
		ordered = append(ordered, byName[name])
		for _, next := range dependents[name] {
			indegree[next]--
			if indegree[next] == 0 {
				ready = append(ready, next)
			}
		}
	}

	if len(ordered) != len(migrations) {
		var stuck []string
		for name, n := range indegree {
			if n > 0 {
				stuck = append(stuck, name)
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf("migration dependency cycle among %s", strings.Join(stuck, ", "))
	}
	return ordered, nil
}

// Migrate applies every pending migration in dependency order, each in its own
// transaction, and returns the names it applied.
func Migrate(ctx context.Context, db *sqlx.DB, migrations []Migration) ([]string, error) {
	ordered, err := Order(migrations)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, migrationsTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	var done []string
	if err := db.SelectContext(ctx, &done, `SELECT name FROM schema_migrations`); err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	applied := make(map[string]bool, len(done))
	for _, name := range done {
		applied[name] = true
	}

	var ran []string
	for _, m := range ordered {
		if applied[m.Name] {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return ran, err
		}
		ran = append(ran, m.Name)
	}
	return ran, nil
}

func apply(ctx context.Context, db *sqlx.DB, m Migration) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("migration %s: %w", m.Name, err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, m.Name); err != nil {
		return fmt.Errorf("record migration %s: %w", m.Name, err)
	}
	return tx.Commit()
}
