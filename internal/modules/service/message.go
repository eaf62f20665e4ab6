package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
)

type MessageService interface {
	List(ctx context.Context) ([]model.ContactMessage, error)
	// Open returns the message and, when it is still unread, transitions it
	// to read as a side effect of being opened.
	Open(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.ContactMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type messageService struct {
	r   repo.MessageRepo
	log *zap.Logger
}

func NewMessageService(r repo.MessageRepo, log *zap.Logger) MessageService {
	return &messageService{r: r, log: log}
}

func (s *messageService) List(ctx context.Context) ([]model.ContactMessage, error) {
	return s.r.List(ctx)
}

func (s *messageService) Open(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	m, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Exactly one status write, and only for the unread -> read transition.
	// Messages already read or replied are returned untouched.
	if m.Status == model.MessageStatusUnread {
		if err := s.r.Patch(ctx, id, map[string]any{"status": model.MessageStatusRead}); err != nil {
			return nil, err
		}
		m.Status = model.MessageStatusRead
	}
	return m, nil
}

func (s *messageService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.ContactMessage, error) {
	if err := s.r.Patch(ctx, id, map[string]any{"status": status}); err != nil {
		return nil, mapNotFound(err)
	}
	out, err := s.r.Get(ctx, id)
	return out, mapNotFound(err)
}

func (s *messageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Debug("message already deleted", zap.String("id", id.String()))
			return nil
		}
		return err
	}
	return nil
}
