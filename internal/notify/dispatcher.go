package notify

import "github.com/heartsafe-training/booking-api/pkg/logging"

// IdentityKind names the mailbox a message is sent from.
type IdentityKind string

const (
	// KindDefault is the business's own mailbox.
	KindDefault IdentityKind = "default"
	// KindDaycare is the mailbox used for bookings attributed to a
	// third-party daycare partner.
	KindDaycare IdentityKind = "daycare"
)

// Mailbox pairs a ready-to-send transport with its from-address.
type Mailbox struct {
	Sender EmailSender
	From   string
}

// Dispatcher resolves which mailbox to use for a given sender identity.
//
// When the daycare mailbox is not configured, daycare sends fall back to the
// default mailbox. Callers are not told a fallback occurred.
type Dispatcher struct {
	def     Mailbox
	daycare *Mailbox
	logger  *logging.Logger
}

// NewDispatcher creates a dispatcher. The default mailbox is required; the
// daycare mailbox may be nil.
func NewDispatcher(def Mailbox, daycare *Mailbox, logger *logging.Logger) *Dispatcher {
	if def.Sender == nil {
		panic("notify: default mailbox sender required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if daycare != nil && daycare.Sender == nil {
		daycare = nil
	}
	return &Dispatcher{def: def, daycare: daycare, logger: logger}
}

// Resolve returns the mailbox for the given identity.
func (d *Dispatcher) Resolve(kind IdentityKind) Mailbox {
	if kind == KindDaycare && d.daycare != nil {
		return *d.daycare
	}
	return d.def
}
