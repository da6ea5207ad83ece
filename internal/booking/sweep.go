package booking

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartsafe-training/booking-api/internal/notify"
	"github.com/heartsafe-training/booking-api/internal/observability/metrics"
	"github.com/heartsafe-training/booking-api/pkg/logging"
)

// Outcome statuses recorded per reminder send.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// SweepOutcome records the result of one reminder send.
type SweepOutcome struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

// SweepResult aggregates a reminder sweep run.
type SweepResult struct {
	Date     string
	Outcomes []SweepOutcome
	Empty    bool
}

// Sweeper runs the periodic reminder job: it emails every user booked for
// tomorrow and expires the partition for the date that has just elapsed.
type Sweeper struct {
	store        Store
	mailer       *notify.Dispatcher
	businessName string
	loc          *time.Location
	metrics      *metrics.BookingMetrics
	logger       *logging.Logger
	now          func() time.Time
}

// NewSweeper creates a reminder sweeper. Dates are computed in loc, the
// business's configured timezone.
func NewSweeper(store Store, mailer *notify.Dispatcher, businessName string, loc *time.Location, m *metrics.BookingMetrics, logger *logging.Logger) *Sweeper {
	if store == nil {
		panic("booking: store required")
	}
	if mailer == nil {
		panic("booking: mail dispatcher required")
	}
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Sweeper{
		store:        store,
		mailer:       mailer,
		businessName: businessName,
		loc:          loc,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// Run executes one sweep: best-effort cleanup of yesterday's partition, then
// a reminder email to every booking in tomorrow's partition. All sends are
// dispatched concurrently; per-item failures are recorded and do not abort
// the batch.
func (s *Sweeper) Run(ctx context.Context) (*SweepResult, error) {
	today := s.now().In(s.loc)
	tomorrow := today.AddDate(0, 0, 1).Format(time.DateOnly)
	yesterday := today.AddDate(0, 0, -1).Format(time.DateOnly)

	if err := s.store.DeleteKey(ctx, yesterday); err != nil {
		s.logger.Error("booking sweep: cleanup failed", "date", yesterday, "error", err)
	}

	records, err := s.store.ListAll(ctx, tomorrow)
	if err != nil {
		s.metrics.ObserveSweepRun("failed")
		return nil, err
	}
	if len(records) == 0 {
		s.logger.Info("booking sweep: no bookings for tomorrow", "date", tomorrow)
		s.metrics.ObserveSweepRun("empty")
		return &SweepResult{Date: tomorrow, Empty: true}, nil
	}

	s.logger.Info("booking sweep: sending reminders", "date", tomorrow, "count", len(records))

	outcomes := make([]SweepOutcome, len(records))
	g := new(errgroup.Group)
	for i, raw := range records {
		i, raw := i, raw
		g.Go(func() error {
			outcomes[i] = s.remindOne(ctx, raw)
			return nil
		})
	}
	_ = g.Wait()

	s.metrics.ObserveSweepRun("ok")
	return &SweepResult{Date: tomorrow, Outcomes: outcomes}, nil
}

func (s *Sweeper) remindOne(ctx context.Context, raw string) SweepOutcome {
	var b Booking
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		s.logger.Error("booking sweep: unparsable record", "error", err)
		s.metrics.ObserveReminder(StatusFailed)
		return SweepOutcome{Status: StatusFailed}
	}

	subject, body := reminderEmail(&b, s.businessName)
	box := s.mailer.Resolve(b.Identity(s.businessName).Kind())
	msg := notify.EmailMessage{
		To:      b.Email,
		ToName:  b.FullName,
		Subject: subject,
		Body:    body,
	}
	if err := box.Sender.Send(ctx, msg); err != nil {
		s.logger.Error("booking sweep: reminder failed", "error", err, "to", b.Email, "id", b.ID)
		s.metrics.ObserveReminder(StatusFailed)
		return SweepOutcome{Email: b.Email, Status: StatusFailed}
	}

	s.metrics.ObserveReminder(StatusSent)
	return SweepOutcome{Email: b.Email, Status: StatusSent}
}
