package services

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"inventory-app/config"
	"inventory-app/models"
)

// Mailer sends work order notifications. It is a no-op unless SMTP is
// configured; failures are logged and never surfaced to the caller.
type Mailer struct{}

func NewMailer() *Mailer {
	return &Mailer{}
}

func (m *Mailer) NotifyAssignment(assignee *models.StaffMember, order *models.WorkOrder) {
	if config.SMTPHost == "" || assignee.Email == "" {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.MailFrom)
	msg.SetHeader("To", assignee.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Work order assigned: %s", order.Title))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYou have been assigned work order %q (priority %s).\n\n%s\n",
		assignee.Name, order.Title, order.Priority, order.Description))

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("mailer: failed to send assignment notification: %v", err)
	}
}
