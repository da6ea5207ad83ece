package booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminIntakeEmailOmitsEmptyOptionalFields(t *testing.T) {
	b := &Booking{
		ID:            "booking-1",
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "555-0100",
		CourseType:    "Standard First Aid",
		PreferredDate: "2025-06-10T09:00",
		Locale:        "en",
	}

	subject, text, html := adminIntakeEmail(b, "HeartSafe Training")

	assert.Contains(t, subject, "Standard First Aid")
	assert.Contains(t, subject, "Jane Doe")
	assert.Contains(t, subject, "新课程预约")

	assert.Contains(t, text, "Full Name 姓名: Jane Doe")
	assert.Contains(t, text, "Preferred Date 预约时间: 2025-06-10 09:00")
	assert.NotContains(t, text, "Organization")
	assert.NotContains(t, text, "Payment Method")
	assert.NotContains(t, text, "Special Requests")

	assert.Contains(t, html, "Jane Doe")
	assert.NotContains(t, html, "Organization")
}

func TestAdminIntakeEmailIncludesOptionalFieldsWhenSet(t *testing.T) {
	b := &Booking{
		ID:               "booking-2",
		FullName:         "Wei Chen",
		Email:            "wei@example.com",
		Phone:            "555-0101",
		Organization:     "Sunny Days Daycare",
		CourseType:       "CPR-C",
		PreferredDate:    "2025-06-10T14:00",
		NumberOfStudents: "12",
		PaymentMethod:    "invoice",
		SpecialRequests:  "Mandarin instructor preferred",
		Locale:           "zh",
	}

	_, text, html := adminIntakeEmail(b, "HeartSafe Training")

	assert.Contains(t, text, "Organization 机构: Sunny Days Daycare")
	assert.Contains(t, text, "Number of Students 学员人数: 12")
	assert.Contains(t, text, "Payment Method 付款方式: invoice")
	assert.Contains(t, text, "Special Requests 特殊要求: Mandarin instructor preferred")
	assert.Contains(t, html, "Sunny Days Daycare")
}

func TestReminderEmailLocalized(t *testing.T) {
	en := &Booking{
		FullName:      "Jane Doe",
		CourseType:    "CPR-C",
		PreferredDate: "2025-06-10T09:00",
		Locale:        "en",
	}
	subject, body := reminderEmail(en, "HeartSafe Training")
	assert.Equal(t, "Course Reminder — CPR-C", subject)
	assert.Contains(t, body, "Hi Jane Doe")
	assert.Contains(t, body, "tomorrow, 2025-06-10 09:00")
	assert.Contains(t, body, "at HeartSafe Training")

	zh := &Booking{
		FullName:      "陈伟",
		Organization:  "Sunny Days Daycare",
		CourseType:    "CPR-C",
		PreferredDate: "2025-06-10T14:00",
		Locale:        "zh",
	}
	subject, body = reminderEmail(zh, "HeartSafe Training")
	assert.Equal(t, "课程提醒 — CPR-C", subject)
	assert.Contains(t, body, "陈伟您好")
	assert.Contains(t, body, "Sunny Days Daycare")
	assert.False(t, strings.Contains(body, "Hi "))
}

func TestCancelUserEmailMentionsCalendarRemoval(t *testing.T) {
	en := &Booking{
		FullName:      "Jane Doe",
		CourseType:    "CPR-C",
		PreferredDate: "2025-06-10T09:00",
		Locale:        "en",
	}
	_, body := cancelUserEmail(en, "HeartSafe Training")
	assert.Contains(t, body, "remove the calendar entry manually")

	zh := &Booking{
		FullName:      "陈伟",
		CourseType:    "CPR-C",
		PreferredDate: "2025-06-10T14:00",
		Locale:        "zh",
	}
	_, body = cancelUserEmail(zh, "HeartSafe Training")
	assert.Contains(t, body, "手动删除该日历项")
}

func TestCancelAdminEmailBilingual(t *testing.T) {
	b := &Booking{
		ID:            "booking-3",
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		CourseType:    "CPR-C",
		PreferredDate: "2025-06-10T09:00",
	}
	subject, body := cancelAdminEmail(b, "HeartSafe Training")
	assert.Contains(t, subject, "Booking Cancelled")
	assert.Contains(t, subject, "预约取消")
	assert.Contains(t, body, "booking-3")
	assert.Contains(t, body, "HeartSafe Training")
}

func TestDisplayDateTime(t *testing.T) {
	assert.Equal(t, "2025-06-10 09:00", displayDateTime("2025-06-10T09:00"))
	assert.Equal(t, "2025-06-10", displayDateTime("2025-06-10"))
}
