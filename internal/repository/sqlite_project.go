package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/goalpath/internal/db"
	"github.com/alexanderramin/goalpath/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(db db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, position int, p *domain.Project) error {
	query := `INSERT INTO projects (id, position, title, description, duration_value, duration_unit, difficulty)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		position,
		p.Title,
		p.Description,
		p.Duration.Value,
		string(p.Duration.Unit),
		string(p.Difficulty),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT id, title, description, duration_value, duration_unit, difficulty
		FROM projects WHERE id = ?`
	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "project", id)
	}
	return p, nil
}

// List returns projects in catalog order.
func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT id, title, description, duration_value, duration_unit, difficulty
		FROM projects ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func scanProject(row scanner) (*domain.Project, error) {
	var p domain.Project
	var unit, difficulty string
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Duration.Value, &unit, &difficulty); err != nil {
		return nil, err
	}
	p.Duration.Unit = domain.TimeUnit(unit)
	p.Difficulty = domain.ExperienceLevel(difficulty)
	return &p, nil
}
