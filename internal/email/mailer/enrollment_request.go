// internal/email/mailer/enrollment_request.go
package mailer

import "github.com/DroneHQio/dronehq-app/internal/email"

// EnrollmentRequestTemplateData contains data for the enrollment request template
type EnrollmentRequestTemplateData struct {
	AdminName        string
	ApplicantName    string
	ApplicantEmail   string
	OrganizationName string
	Role             string
	PendingLink      string
}

// SendEnrollmentRequestEmail notifies an approver that a signup is
// waiting on them.
func SendEnrollmentRequestEmail(s *email.Service, to string, data EnrollmentRequestTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "DroneHQ",
		Subject:      "A new member is waiting for approval",
		TemplateName: "enrollment_request",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}
