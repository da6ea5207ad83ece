package booking

import "errors"

var (
	// ErrMissingFullName is returned when the full name is missing
	ErrMissingFullName = errors.New("fullName is required")

	// ErrMissingEmail is returned when the email is missing
	ErrMissingEmail = errors.New("email is required")

	// ErrMissingPhone is returned when the phone number is missing
	ErrMissingPhone = errors.New("phone is required")

	// ErrMissingCourseType is returned when the course type is missing
	ErrMissingCourseType = errors.New("courseType is required")

	// ErrMissingPreferredDate is returned when the preferred date is missing
	ErrMissingPreferredDate = errors.New("preferredDate is required")

	// ErrInvalidPreferredDate is returned when the preferred date does not
	// start with a YYYY-MM-DD date part
	ErrInvalidPreferredDate = errors.New("preferredDate must be of the form YYYY-MM-DDTHH:mm")

	// ErrNotFound is returned when no booking matches the given id and date
	ErrNotFound = errors.New("booking not found")
)

var validationErrors = []error{
	ErrMissingFullName,
	ErrMissingEmail,
	ErrMissingPhone,
	ErrMissingCourseType,
	ErrMissingPreferredDate,
	ErrInvalidPreferredDate,
}

// IsValidation reports whether err is an intake validation failure.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
