// internal/email/mailer/membership_approved.go
package mailer

import "github.com/DroneHQio/dronehq-app/internal/email"

// MembershipApprovedTemplateData contains data for the approval notice template
type MembershipApprovedTemplateData struct {
	FirstName        string
	OrganizationName string
	Role             string
	LoginLink        string
}

// SendMembershipApprovedEmail tells a user their membership was approved.
func SendMembershipApprovedEmail(s *email.Service, to string, data MembershipApprovedTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "DroneHQ",
		Subject:      "Your DroneHQ membership has been approved",
		TemplateName: "membership_approved",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}
