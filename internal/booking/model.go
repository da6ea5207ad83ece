package booking

import (
	"strings"
	"time"

	"github.com/heartsafe-training/booking-api/internal/notify"
)

// SenderIdentity selects which mailbox outbound email for a booking uses.
// It is computed once at intake time and stored on the record, so email
// call sites never re-derive it from the organization string.
type SenderIdentity string

const (
	// IdentityDefault routes email through the business's own mailbox.
	IdentityDefault SenderIdentity = "default"
	// IdentityDaycare routes email through the daycare-partner mailbox.
	IdentityDaycare SenderIdentity = "daycare"
)

// Kind converts the stored identity to the notify package's mailbox kind.
func (s SenderIdentity) Kind() notify.IdentityKind {
	if s == IdentityDaycare {
		return notify.KindDaycare
	}
	return notify.KindDefault
}

// Booking is the persisted record for a course booking. The JSON field names
// are the stored wire format; records live as serialized entries in the list
// at key schedule:{YYYY-MM-DD}.
type Booking struct {
	ID               string         `json:"id"`
	FullName         string         `json:"fullName"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	Organization     string         `json:"organization,omitempty"`
	CourseType       string         `json:"courseType"`
	PreferredDate    string         `json:"preferredDate"`
	NumberOfStudents string         `json:"numberOfStudents,omitempty"`
	PaymentMethod    string         `json:"paymentMethod,omitempty"`
	SpecialRequests  string         `json:"specialRequests,omitempty"`
	Locale           string         `json:"locale,omitempty"`
	Sender           SenderIdentity `json:"sender,omitempty"`
	CreatedAt        time.Time      `json:"createdAt,omitempty"`
}

// Identity returns the stored sender identity. Records written before the
// sender field existed re-derive it from the organization string.
func (b *Booking) Identity(businessName string) SenderIdentity {
	switch b.Sender {
	case IdentityDefault, IdentityDaycare:
		return b.Sender
	}
	return ResolveIdentity(b.Organization, businessName)
}

// OrganizationName returns the display name for the booking's location:
// the third-party organization when set, otherwise the business itself.
func (b *Booking) OrganizationName(businessName string) string {
	if org := strings.TrimSpace(b.Organization); org != "" {
		return org
	}
	return businessName
}

// ResolveIdentity maps an organization value to a sender identity. An empty
// organization, or one naming the business itself, uses the default mailbox.
func ResolveIdentity(organization, businessName string) SenderIdentity {
	org := strings.TrimSpace(organization)
	if org == "" || strings.EqualFold(org, strings.TrimSpace(businessName)) {
		return IdentityDefault
	}
	return IdentityDaycare
}

// NormalizeLocale maps anything other than "zh" to "en".
func NormalizeLocale(locale string) string {
	if locale == "zh" {
		return "zh"
	}
	return "en"
}

// DatePart extracts the calendar-date portion of a preferredDate value of
// the form YYYY-MM-DDTHH:mm. The date part is the storage partition key, so
// bookings at different times on the same day share a partition.
func DatePart(preferredDate string) (string, error) {
	if strings.TrimSpace(preferredDate) == "" {
		return "", ErrMissingPreferredDate
	}
	date, _, _ := strings.Cut(preferredDate, "T")
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return "", ErrInvalidPreferredDate
	}
	return date, nil
}

// CreateRequest is the intake submission payload.
type CreateRequest struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Organization     string `json:"organization"`
	CourseType       string `json:"courseType"`
	PreferredDate    string `json:"preferredDate"`
	NumberOfStudents string `json:"numberOfStudents"`
	PaymentMethod    string `json:"paymentMethod"`
	SpecialRequests  string `json:"specialRequests"`
	Locale           string `json:"locale"`
}

// Validate checks the required submission fields. Field formats (beyond the
// preferredDate date part) are not enforced here.
func (r *CreateRequest) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return ErrMissingFullName
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrMissingEmail
	}
	if strings.TrimSpace(r.Phone) == "" {
		return ErrMissingPhone
	}
	if strings.TrimSpace(r.CourseType) == "" {
		return ErrMissingCourseType
	}
	if _, err := DatePart(r.PreferredDate); err != nil {
		return err
	}
	return nil
}
