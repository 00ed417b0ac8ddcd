package data

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb/v2"
)

func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS demos (
			pos INTEGER NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			live_demo_url TEXT NOT NULL,
			source_code_url TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS resources (
			pos INTEGER NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			url TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS presentations (
			pos INTEGER NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			author TEXT NOT NULL,
			url TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// Repository caches the last successfully fetched content lists so listings
// stay available offline. Each Replace rewrites its table wholesale; there
// are no partial merges, matching how the in-memory lists are replaced.
type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) ReplaceDemos(demos []Demo) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM demos`); err != nil {
		return fmt.Errorf("replace demos: %w", err)
	}
	for i, d := range demos {
		_, err := tx.Exec(
			`INSERT INTO demos (pos, name, category, live_demo_url, source_code_url) VALUES (?, ?, ?, ?, ?)`,
			i, d.Name, d.Category, d.LiveDemoURL, d.SourceCodeURL,
		)
		if err != nil {
			return fmt.Errorf("replace demos: %w", err)
		}
	}
	return tx.Commit()
}

func (r *Repository) ListDemos() ([]Demo, error) {
	rows, err := r.db.Query(`SELECT name, category, live_demo_url, source_code_url FROM demos ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("list demos: %w", err)
	}
	defer rows.Close()

	var demos []Demo
	for rows.Next() {
		var d Demo
		if err := rows.Scan(&d.Name, &d.Category, &d.LiveDemoURL, &d.SourceCodeURL); err != nil {
			return nil, fmt.Errorf("list demos: %w", err)
		}
		demos = append(demos, d)
	}
	return demos, rows.Err()
}

func (r *Repository) ReplaceResources(resources []Resource) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM resources`); err != nil {
		return fmt.Errorf("replace resources: %w", err)
	}
	for i, res := range resources {
		_, err := tx.Exec(
			`INSERT INTO resources (pos, name, category, url) VALUES (?, ?, ?, ?)`,
			i, res.Name, res.Category, res.URL,
		)
		if err != nil {
			return fmt.Errorf("replace resources: %w", err)
		}
	}
	return tx.Commit()
}

func (r *Repository) ListResources() ([]Resource, error) {
	rows, err := r.db.Query(`SELECT name, category, url FROM resources ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var resources []Resource
	for rows.Next() {
		var res Resource
		if err := rows.Scan(&res.Name, &res.Category, &res.URL); err != nil {
			return nil, fmt.Errorf("list resources: %w", err)
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

func (r *Repository) ReplacePresentations(presentations []Presentation) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM presentations`); err != nil {
		return fmt.Errorf("replace presentations: %w", err)
	}
	for i, p := range presentations {
		_, err := tx.Exec(
			`INSERT INTO presentations (pos, name, category, author, url) VALUES (?, ?, ?, ?, ?)`,
			i, p.Name, p.Category, p.Author, p.URL,
		)
		if err != nil {
			return fmt.Errorf("replace presentations: %w", err)
		}
	}
	return tx.Commit()
}

func (r *Repository) ListPresentations() ([]Presentation, error) {
	rows, err := r.db.Query(`SELECT name, category, author, url FROM presentations ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("list presentations: %w", err)
	}
	defer rows.Close()

	var presentations []Presentation
	for rows.Next() {
		var p Presentation
		if err := rows.Scan(&p.Name, &p.Category, &p.Author, &p.URL); err != nil {
			return nil, fmt.Errorf("list presentations: %w", err)
		}
		presentations = append(presentations, p)
	}
	return presentations, rows.Err()
}
