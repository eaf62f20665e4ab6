package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/formastudio/forma-api/internal/config"
	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
)

// EventPublisher is the slice of the MQ publisher the intake flow needs.
// *mq.Publisher satisfies it; a nil publisher disables event emission.
type EventPublisher interface {
	PublishJSON(ctx context.Context, exchangeName string, routingKey string, body any) error
}

// IntakeService handles the two public lead forms. Each submit is a single
// insert; a failed MQ hand-off is logged and never fails the submission.
type IntakeService interface {
	SubmitConsultation(ctx context.Context, in SubmitConsultationInput) (*model.ConsultationRequest, error)
	SubmitMessage(ctx context.Context, in SubmitMessageInput) (*model.ContactMessage, error)
}

type intakeService struct {
	consultations repo.ConsultationRepo
	messages      repo.MessageRepo
	publisher     EventPublisher
	cfg           *config.Config
	log           *zap.Logger
}

func NewIntakeService(consultations repo.ConsultationRepo, messages repo.MessageRepo, publisher EventPublisher, cfg *config.Config, log *zap.Logger) IntakeService {
	return &intakeService{
		consultations: consultations,
		messages:      messages,
		publisher:     publisher,
		cfg:           cfg,
		log:           log,
	}
}

type SubmitConsultationInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferred_date"`
	ProjectType   string `json:"project_type"`
	Message       string `json:"message"`
}

type SubmitMessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type leadEvent struct {
	Kind  string    `json:"kind"`
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func (s *intakeService) SubmitConsultation(ctx context.Context, in SubmitConsultationInput) (*model.ConsultationRequest, error) {
	for _, required := range []string{in.Name, in.Email, in.Phone, in.PreferredDate, in.ProjectType} {
		if strings.TrimSpace(required) == "" {
			return nil, errors.New("missing required field")
		}
	}

	c := &model.ConsultationRequest{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		PreferredDate: in.PreferredDate,
		ProjectType:   in.ProjectType,
		Status:        model.ConsultationStatusPending,
	}
	if strings.TrimSpace(in.Message) != "" {
		c.Message = &in.Message
	}

	if err := s.consultations.Create(ctx, c); err != nil {
		return nil, err
	}

	s.publishLead(ctx, s.cfg.RabbitMQ.RoutingKey.LeadConsultation, leadEvent{
		Kind:  "consultation",
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	})
	return c, nil
}

func (s *intakeService) SubmitMessage(ctx context.Context, in SubmitMessageInput) (*model.ContactMessage, error) {
	for _, required := range []string{in.Name, in.Email, in.Subject, in.Message} {
		if strings.TrimSpace(required) == "" {
			return nil, errors.New("missing required field")
		}
	}

	m := &model.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Status:  model.MessageStatusUnread,
	}
	if strings.TrimSpace(in.Phone) != "" {
		m.Phone = &in.Phone
	}

	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}

	s.publishLead(ctx, s.cfg.RabbitMQ.RoutingKey.LeadMessage, leadEvent{
		Kind:  "message",
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
	})
	return m, nil
}

func (s *intakeService) publishLead(ctx context.Context, routingKey string, event leadEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishJSON(ctx, s.cfg.RabbitMQ.ExchangeName, routingKey, event); err != nil {
		s.log.Error("failed to publish lead event",
			zap.Error(err),
			zap.String("kind", event.Kind),
			zap.String("id", event.ID.String()))
	}
}
