package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartsafe-training/booking-api/internal/notify"
	"github.com/heartsafe-training/booking-api/internal/observability/metrics"
	"github.com/heartsafe-training/booking-api/pkg/logging"
)

// ServiceConfig holds the notification targets for booking operations.
type ServiceConfig struct {
	// BusinessName is the business's own display name. Bookings whose
	// organization names anything else are attributed to a daycare partner.
	BusinessName string
	// AdminEmail receives intake notifications and cancellation notices.
	AdminEmail string
	// DaycareCCEmail additionally receives cancellation notices for
	// daycare-attributed bookings. Optional.
	DaycareCCEmail string
}

// Service handles booking intake and cancellation.
type Service struct {
	store   Store
	mailer  *notify.Dispatcher
	cfg     ServiceConfig
	metrics *metrics.BookingMetrics
	logger  *logging.Logger
}

// NewService creates a booking service.
func NewService(store Store, mailer *notify.Dispatcher, cfg ServiceConfig, m *metrics.BookingMetrics, logger *logging.Logger) *Service {
	if store == nil {
		panic("booking: store required")
	}
	if mailer == nil {
		panic("booking: mail dispatcher required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{store: store, mailer: mailer, cfg: cfg, metrics: m, logger: logger}
}

// Create validates a submission, persists it under its date partition with a
// freshly minted id, and notifies the admin mailbox.
//
// The admin notification always goes through the default mailbox identity;
// only cancellation and reminder email branch by organization.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Booking, error) {
	if err := req.Validate(); err != nil {
		s.metrics.ObserveIntake("invalid")
		return nil, err
	}

	date, err := DatePart(req.PreferredDate)
	if err != nil {
		s.metrics.ObserveIntake("invalid")
		return nil, err
	}

	b := &Booking{
		ID:               uuid.NewString(),
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		Organization:     req.Organization,
		CourseType:       req.CourseType,
		PreferredDate:    req.PreferredDate,
		NumberOfStudents: req.NumberOfStudents,
		PaymentMethod:    req.PaymentMethod,
		SpecialRequests:  req.SpecialRequests,
		Locale:           NormalizeLocale(req.Locale),
		Sender:           ResolveIdentity(req.Organization, s.cfg.BusinessName),
		CreatedAt:        time.Now().UTC(),
	}

	raw, err := json.Marshal(b)
	if err != nil {
		s.metrics.ObserveIntake("failed")
		return nil, fmt.Errorf("booking: failed to serialize booking: %w", err)
	}
	if err := s.store.Append(ctx, date, raw); err != nil {
		s.metrics.ObserveIntake("failed")
		return nil, err
	}

	subject, text, html := adminIntakeEmail(b, s.cfg.BusinessName)
	box := s.mailer.Resolve(notify.KindDefault)
	msg := notify.EmailMessage{
		To:      s.cfg.AdminEmail,
		Subject: subject,
		Body:    text,
		HTML:    html,
	}
	if err := box.Sender.Send(ctx, msg); err != nil {
		// The record is already persisted; the caller sees a failure and the
		// reminder sweep will still pick the booking up.
		s.metrics.ObserveIntake("failed")
		return nil, fmt.Errorf("booking: admin notification failed: %w", err)
	}

	s.logger.Info("booking created",
		"id", b.ID,
		"date", date,
		"course", b.CourseType,
		"sender", string(b.Sender),
	)
	s.metrics.ObserveIntake("ok")
	return b, nil
}

// Cancel locates a booking by id within the date partition, sends the admin
// and user cancellation notices, then removes the record.
//
// Notices are sent before the store mutation: a mail failure leaves the
// booking in place, so the caller can retry the cancellation cleanly.
func (s *Service) Cancel(ctx context.Context, id, date string) error {
	records, err := s.store.ListAll(ctx, date)
	if err != nil {
		s.metrics.ObserveCancel("failed")
		return err
	}
	if len(records) == 0 {
		s.metrics.ObserveCancel("not_found")
		return ErrNotFound
	}

	var match *Booking
	var matchRaw string
	for _, raw := range records {
		var b Booking
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			s.logger.Warn("booking: skipping unparsable record", "date", date, "error", err)
			continue
		}
		if b.ID == id {
			match = &b
			matchRaw = raw
			break
		}
	}
	if match == nil {
		s.metrics.ObserveCancel("not_found")
		return ErrNotFound
	}

	identity := match.Identity(s.cfg.BusinessName)
	box := s.mailer.Resolve(identity.Kind())

	adminRecipients := []string{s.cfg.AdminEmail}
	if identity == IdentityDaycare && s.cfg.DaycareCCEmail != "" {
		adminRecipients = append(adminRecipients, s.cfg.DaycareCCEmail)
	}

	var failed int
	adminSubject, adminBody := cancelAdminEmail(match, s.cfg.BusinessName)
	for _, recipient := range adminRecipients {
		msg := notify.EmailMessage{To: recipient, Subject: adminSubject, Body: adminBody}
		if err := box.Sender.Send(ctx, msg); err != nil {
			s.logger.Error("booking: cancellation notice failed", "error", err, "to", recipient, "id", id)
			failed++
		}
	}

	userSubject, userBody := cancelUserEmail(match, s.cfg.BusinessName)
	userMsg := notify.EmailMessage{
		To:      match.Email,
		ToName:  match.FullName,
		Subject: userSubject,
		Body:    userBody,
	}
	if err := box.Sender.Send(ctx, userMsg); err != nil {
		s.logger.Error("booking: cancellation confirmation failed", "error", err, "to", match.Email, "id", id)
		failed++
	}

	if failed > 0 {
		s.metrics.ObserveCancel("failed")
		return fmt.Errorf("booking: %d cancellation notification(s) failed", failed)
	}

	if err := s.store.RemoveOne(ctx, date, matchRaw); err != nil {
		s.metrics.ObserveCancel("failed")
		return err
	}

	s.logger.Info("booking cancelled", "id", id, "date", date, "sender", string(identity))
	s.metrics.ObserveCancel("ok")
	return nil
}
