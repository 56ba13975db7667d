package repository

import (
	"context"

	"github.com/alexanderramin/goalpath/internal/domain"
)

// TemplateRepo stores catalog entries. Create is only used while seeding.
type TemplateRepo interface {
	Create(ctx context.Context, t *domain.Template) error
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	List(ctx context.Context) ([]*domain.Template, error)
	Search(ctx context.Context, query string) ([]*domain.Template, error)
}

// ProjectRepo stores the canned track projects.
type ProjectRepo interface {
	Create(ctx context.Context, position int, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}

type TipRepo interface {
	Create(ctx context.Context, position int, t *domain.Tip) error
	List(ctx context.Context) ([]*domain.Tip, error)
}
