package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"quickaid/logger"
	"quickaid/metrics"
	"quickaid/models"
	"quickaid/notify"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TicketStore is the persistence the service needs.
type TicketStore interface {
	Create(ctx context.Context, t *models.Ticket) error
	List(ctx context.Context, f models.TicketFilter) ([]models.Ticket, error)
}

// AdminAlerter is told about every created ticket. Failures are logged only.
type AdminAlerter interface {
	TicketCreated(ctx context.Context, t models.Ticket) error
}

// Receipt is what a submitter gets back.
type Receipt struct {
	ID        string        `json:"id"`
	Status    models.Status `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	EmailSent bool          `json:"email_sent"`
}

const defaultAlertTimeout = 5 * time.Second

type TicketService struct {
	store        TicketStore
	sender       notify.Sender
	alerts       AdminAlerter
	alertTimeout time.Duration
	now          func() time.Time
	newID        func() string
}

type Option func(*TicketService)

func WithClock(now func() time.Time) Option {
	return func(s *TicketService) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *TicketService) { s.newID = newID }
}

func WithAdminAlerter(a AdminAlerter) Option {
	return func(s *TicketService) { s.alerts = a }
}

// WithAlertTimeout bounds how long a submission waits on the admin alert.
func WithAlertTimeout(d time.Duration) Option {
	return func(s *TicketService) { s.alertTimeout = d }
}

func NewTicketService(store TicketStore, sender notify.Sender, opts ...Option) *TicketService {
	s := &TicketService{
		store:        store,
		sender:       sender,
		alertTimeout: defaultAlertTimeout,
		now:          time.Now,
		newID:        func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates sub, stores it as a new ticket and emails a
// confirmation. Only validation and storage failures are returned; a failed
// confirmation shows up as EmailSent=false.
func (s *TicketService) Submit(ctx context.Context, sub models.Submission) (*Receipt, error) {
	if err := validate(sub); err != nil {
		metrics.TicketsSubmitted.WithLabelValues("invalid").Inc()
		return nil, err
	}

	// Millisecond precision so every store round-trips the same instant.
	now := s.now().UTC().Truncate(time.Millisecond)
	t := models.Ticket{
		ID:          s.newID(),
		Title:       sub.Title,
		Email:       sub.Email,
		Category:    sub.Category,
		Description: sub.Description,
		Status:      models.StatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Create(ctx, &t); err != nil {
		metrics.TicketsSubmitted.WithLabelValues("storage_error").Inc()
		return nil, &StorageError{Op: "create", Err: err}
	}
	metrics.TicketsSubmitted.WithLabelValues("created").Inc()

	log := logger.L.With(zap.String("ticket_id", t.ID))
	log.Info("ticket created", zap.String("category", t.Category))

	sent, err := s.confirm(ctx, t)
	if err != nil {
		log.Warn("confirmation email not sent", zap.Error(err))
	}

	if s.alerts != nil {
		s.alertAdmin(ctx, log, t)
	}

	return &Receipt{
		ID:        t.ID,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		EmailSent: sent,
	}, nil
}

func (s *TicketService) alertAdmin(ctx context.Context, log *zap.Logger, t models.Ticket) {
	alertCtx, cancel := context.WithTimeout(ctx, s.alertTimeout)
	defer cancel()

	if err := s.alerts.TicketCreated(alertCtx, t); err != nil {
		metrics.Notifications.WithLabelValues("telegram", "failed").Inc()
		log.Warn("admin alert failed", zap.Error(err))
		return
	}
	metrics.Notifications.WithLabelValues("telegram", "accepted").Inc()
}

func (s *TicketService) confirm(ctx context.Context, t models.Ticket) (bool, error) {
	msg, err := notify.Render(t)
	if err != nil {
		metrics.Notifications.WithLabelValues("email", "failed").Inc()
		return false, &NotificationError{Recipient: t.Email, Err: err}
	}

	accepted, err := s.sender.Send(ctx, t.Email, msg)
	switch {
	case err != nil:
		metrics.Notifications.WithLabelValues("email", "failed").Inc()
		return false, &NotificationError{Recipient: t.Email, Err: err}
	case !accepted:
		metrics.Notifications.WithLabelValues("email", "rejected").Inc()
		return false, nil
	}
	metrics.Notifications.WithLabelValues("email", "accepted").Inc()
	return true, nil
}

// List returns tickets in store order, filtered by exact email when one is
// given.
func (s *TicketService) List(ctx context.Context, f models.TicketFilter) ([]models.Ticket, error) {
	tickets, err := s.store.List(ctx, f)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	if tickets == nil {
		tickets = []models.Ticket{}
	}
	return tickets, nil
}

var submissionValidator = newSubmissionValidator()

func newSubmissionValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validate(sub models.Submission) error {
	err := submissionValidator.Struct(sub)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ValidationError{Field: fieldErrs[0].Field()}
	}
	return err
}
