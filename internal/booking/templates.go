package booking

import (
	"fmt"
	"strings"
)

// displayDateTime renders a stored preferredDate for email copy.
func displayDateTime(preferredDate string) string {
	return strings.Replace(preferredDate, "T", " ", 1)
}

// adminIntakeEmail composes the admin notification for a new booking.
// Labels are bilingual; optional fields submitted empty are omitted from the
// body entirely rather than shown blank.
func adminIntakeEmail(b *Booking, businessName string) (subject, text, html string) {
	subject = fmt.Sprintf("New Course Booking 新课程预约 — %s (%s)", b.CourseType, b.FullName)

	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", label, value))
		}
	}
	add("Full Name 姓名", b.FullName)
	add("Email 电子邮箱", b.Email)
	add("Phone 电话", b.Phone)
	add("Organization 机构", b.Organization)
	add("Course 课程", b.CourseType)
	add("Preferred Date 预约时间", displayDateTime(b.PreferredDate))
	add("Number of Students 学员人数", b.NumberOfStudents)
	add("Payment Method 付款方式", b.PaymentMethod)
	add("Special Requests 特殊要求", b.SpecialRequests)
	add("Language 语言", b.Locale)
	add("Booking ID 预约编号", b.ID)

	text = fmt.Sprintf(`A new course booking has been submitted.
收到新的课程预约。

%s

— %s`, strings.Join(lines, "\n"), businessName)

	var rows strings.Builder
	addRow := func(label, value string) {
		if value == "" {
			return
		}
		rows.WriteString(fmt.Sprintf(`<tr><td style="padding: 8px; border-bottom: 1px solid #e5e7eb;"><strong>%s</strong></td><td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">%s</td></tr>`, label, value))
		rows.WriteString("\n")
	}
	addRow("Full Name 姓名", b.FullName)
	addRow("Email 电子邮箱", b.Email)
	addRow("Phone 电话", b.Phone)
	addRow("Organization 机构", b.Organization)
	addRow("Course 课程", b.CourseType)
	addRow("Preferred Date 预约时间", displayDateTime(b.PreferredDate))
	addRow("Number of Students 学员人数", b.NumberOfStudents)
	addRow("Payment Method 付款方式", b.PaymentMethod)
	addRow("Special Requests 特殊要求", b.SpecialRequests)
	addRow("Language 语言", b.Locale)
	addRow("Booking ID 预约编号", b.ID)

	html = fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px;">
<h2 style="color: #dc2626;">New Course Booking 新课程预约</h2>
<table style="border-collapse: collapse; margin: 20px 0;">
%s</table>
<p style="color: #6b7280; font-size: 12px; margin-top: 20px;">— %s</p>
</div>`, rows.String(), businessName)

	return subject, text, html
}

// reminderEmail composes the day-before reminder sent to the booked user,
// in the language stored on the booking.
func reminderEmail(b *Booking, businessName string) (subject, body string) {
	location := b.OrganizationName(businessName)
	when := displayDateTime(b.PreferredDate)

	if b.Locale == "zh" {
		subject = fmt.Sprintf("课程提醒 — %s", b.CourseType)
		body = fmt.Sprintf(`%s您好，

提醒您，您预约的「%s」课程将于明天 %s 在 %s 举行。

如需取消或更改，请尽快与我们联系。

— %s`, b.FullName, b.CourseType, when, location, businessName)
		return subject, body
	}

	subject = fmt.Sprintf("Course Reminder — %s", b.CourseType)
	body = fmt.Sprintf(`Hi %s,

This is a reminder that your %s course is tomorrow, %s, at %s.

If you need to cancel or reschedule, please contact us as soon as possible.

— %s`, b.FullName, b.CourseType, when, location, businessName)
	return subject, body
}

// cancelAdminEmail composes the admin-facing cancellation notice.
func cancelAdminEmail(b *Booking, businessName string) (subject, body string) {
	subject = fmt.Sprintf("Booking Cancelled 预约取消 — %s (%s)", b.CourseType, b.FullName)
	body = fmt.Sprintf(`A booking has been cancelled.
一个预约已被取消。

Full Name 姓名: %s
Email 电子邮箱: %s
Course 课程: %s
Date 日期: %s
Organization 机构: %s
Booking ID 预约编号: %s

— %s`, b.FullName, b.Email, b.CourseType, displayDateTime(b.PreferredDate), b.OrganizationName(businessName), b.ID, businessName)
	return subject, body
}

// cancelUserEmail composes the user-facing cancellation confirmation, in the
// language stored on the booking. It reminds the user to remove any personal
// calendar entry — the system does not track calendar integrations.
func cancelUserEmail(b *Booking, businessName string) (subject, body string) {
	location := b.OrganizationName(businessName)
	when := displayDateTime(b.PreferredDate)

	if b.Locale == "zh" {
		subject = fmt.Sprintf("预约取消确认 — %s", b.CourseType)
		body = fmt.Sprintf(`%s您好，

您预约的「%s」课程（%s，%s）已成功取消。

如果您已将此课程添加到个人日历，请记得手动删除该日历项。

— %s`, b.FullName, b.CourseType, when, location, businessName)
		return subject, body
	}

	subject = fmt.Sprintf("Booking Cancelled — %s", b.CourseType)
	body = fmt.Sprintf(`Hi %s,

Your %s course booking for %s at %s has been cancelled.

If you added this course to your personal calendar, please remember to remove the calendar entry manually.

— %s`, b.FullName, b.CourseType, when, location, businessName)
	return subject, body
}
