package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/goalpath/internal/db"
	"github.com/alexanderramin/goalpath/internal/domain"
)

type SQLiteTipRepo struct {
	db db.DBTX
}

func NewSQLiteTipRepo(db db.DBTX) *SQLiteTipRepo {
	return &SQLiteTipRepo{db: db}
}

func (r *SQLiteTipRepo) Create(ctx context.Context, position int, t *domain.Tip) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tips (id, position, title, content, kind) VALUES (?, ?, ?, ?, ?)`,
		t.ID, position, t.Title, t.Content, string(t.Kind),
	)
	if err != nil {
		return fmt.Errorf("inserting tip: %w", err)
	}
	return nil
}

func (r *SQLiteTipRepo) List(ctx context.Context) ([]*domain.Tip, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, content, kind FROM tips ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing tips: %w", err)
	}
	defer rows.Close()

	var tips []*domain.Tip
	for rows.Next() {
		var t domain.Tip
		var kind string
		if err := rows.Scan(&t.ID, &t.Title, &t.Content, &kind); err != nil {
			return nil, fmt.Errorf("scanning tip row: %w", err)
		}
		t.Kind = domain.TipKind(kind)
		tips = append(tips, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tips: %w", err)
	}
	return tips, nil
}
