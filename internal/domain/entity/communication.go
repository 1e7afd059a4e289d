package entity

import "time"

var (
	CommunicationTypes      = []string{"Email", "Phone", "SMS", "In-Person", "Letter"}
	CommunicationDirections = []string{"Inbound", "Outbound"}
	CommunicationStatuses   = []string{"Pending", "Sent", "Delivered", "Read", "Failed"}
)

// Communication contacto registrado con un cliente (tabla communication).
type Communication struct {
	Meta
	CommunicationID   string     `json:"communication_id"`
	CustomerID        string     `json:"customer_id"`
	CommunicationType string     `json:"communication_type"`
	Direction         string     `json:"direction"`
	Subject           string     `json:"subject"`
	Message           string     `json:"message"`
	Status            string     `json:"status"`
	SentDate          time.Time  `json:"sent_date"`
	StaffMember       string     `json:"staff_member"`
	FollowUpRequired  bool       `json:"follow_up_required"`
	FollowUpDate      *time.Time `json:"follow_up_date"`
}

func (m *Communication) RecordKey() string       { return m.CommunicationID }
func (m *Communication) SetRecordKey(key string) { m.CommunicationID = key }

func (m *Communication) Prepare(now time.Time) error {
	m.Direction = orDefault(m.Direction, "Outbound")
	m.Status = orDefault(m.Status, "Pending")
	if m.SentDate.IsZero() {
		m.SentDate = now
	}
	var c checker
	c.text("communication_id", m.CommunicationID)
	c.text("customer_id", m.CustomerID)
	c.text("communication_type", m.CommunicationType)
	c.text("subject", m.Subject)
	c.oneOf("communication_type", m.CommunicationType, CommunicationTypes)
	c.oneOf("direction", m.Direction, CommunicationDirections)
	c.oneOf("status", m.Status, CommunicationStatuses)
	return c.err()
}

type CommunicationPatch struct {
	CustomerID        *string    `json:"customer_id,omitempty"`
	CommunicationType *string    `json:"communication_type,omitempty"`
	Direction         *string    `json:"direction,omitempty"`
	Subject           *string    `json:"subject,omitempty"`
	Message           *string    `json:"message,omitempty"`
	Status            *string    `json:"status,omitempty"`
	SentDate          *time.Time `json:"sent_date,omitempty"`
	StaffMember       *string    `json:"staff_member,omitempty"`
	FollowUpRequired  *bool      `json:"follow_up_required,omitempty"`
	FollowUpDate      *time.Time `json:"follow_up_date,omitempty"`
}

func (p CommunicationPatch) IsEmpty() bool { return p == CommunicationPatch{} }

func (p CommunicationPatch) Validate() error {
	var c checker
	c.textPtr("customer_id", p.CustomerID)
	c.textPtr("subject", p.Subject)
	c.oneOfPtr("communication_type", p.CommunicationType, CommunicationTypes)
	c.oneOfPtr("direction", p.Direction, CommunicationDirections)
	c.oneOfPtr("status", p.Status, CommunicationStatuses)
	return c.err()
}
