package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
)

type ProposalRepo interface {
	List(ctx context.Context) ([]model.Proposal, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Proposal, error)
	Create(ctx context.Context, p *model.Proposal) error
	Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter map[string]any) (int64, error)
}

type proposalRepo struct {
	crudStore[model.Proposal]
}

func NewProposalRepo(db *gorm.DB) ProposalRepo {
	return &proposalRepo{crudStore[model.Proposal]{db: db, order: "created_at DESC"}}
}
