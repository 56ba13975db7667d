package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/goalpath/internal/db"
	"github.com/alexanderramin/goalpath/internal/domain"
)

// SQLiteTemplateRepo implements TemplateRepo using a SQLite database.
type SQLiteTemplateRepo struct {
	db db.DBTX
}

func NewSQLiteTemplateRepo(db db.DBTX) *SQLiteTemplateRepo {
	return &SQLiteTemplateRepo{db: db}
}

const templateColumns = `id, position, title, description, kind, icon, goal_text,
	timeline_value, timeline_unit, experience_level, clarity, metadata_json`

func (r *SQLiteTemplateRepo) Create(ctx context.Context, t *domain.Template) error {
	meta, err := nullableJSON(t.Metadata)
	if err != nil {
		return fmt.Errorf("encoding template metadata: %w", err)
	}
	query := `INSERT INTO templates (` + templateColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		t.ID,
		t.Position,
		t.Title,
		t.Description,
		string(t.Kind),
		t.Icon,
		t.Text,
		t.Timeline.Value,
		string(t.Timeline.Unit),
		string(t.ExperienceLevel),
		t.Clarity,
		meta,
	)
	if err != nil {
		return fmt.Errorf("inserting template: %w", err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE id = ?`
	t, err := scanTemplate(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "template", id)
	}
	return t, nil
}

func (r *SQLiteTemplateRepo) List(ctx context.Context) ([]*domain.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates ORDER BY position`
	return r.query(ctx, "listing templates", query)
}

// Search matches query case-insensitively against title and description.
// A blank query matches nothing.
func (r *SQLiteTemplateRepo) Search(ctx context.Context, query string) ([]*domain.Template, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	pattern := likePattern(strings.TrimSpace(query))
	q := `SELECT ` + templateColumns + ` FROM templates
		WHERE LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'
		ORDER BY position`
	return r.query(ctx, "searching templates", q, pattern, pattern)
}

func (r *SQLiteTemplateRepo) query(ctx context.Context, op, query string, args ...any) ([]*domain.Template, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var templates []*domain.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning template row: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating templates: %w", err)
	}
	return templates, nil
}

func scanTemplate(row scanner) (*domain.Template, error) {
	var t domain.Template
	var kind, unit, level string
	var meta sql.NullString

	err := row.Scan(
		&t.ID, &t.Position, &t.Title, &t.Description, &kind, &t.Icon, &t.Text,
		&t.Timeline.Value, &unit, &level, &t.Clarity, &meta,
	)
	if err != nil {
		return nil, err
	}

	t.Kind = domain.TemplateKind(kind)
	t.Timeline.Unit = domain.TimeUnit(unit)
	t.ExperienceLevel = domain.ExperienceLevel(level)
	t.Metadata, err = parseNullableJSON[domain.TemplateMetadata](meta)
	if err != nil {
		return nil, fmt.Errorf("parsing metadata_json: %w", err)
	}
	return &t, nil
}
