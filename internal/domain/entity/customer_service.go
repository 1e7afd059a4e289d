package entity

import "time"

const (
	TicketOpen       = "Open"
	TicketInProgress = "In Progress"
	TicketResolved   = "Resolved"
	TicketClosed     = "Closed"
)

var (
	TicketIssueTypes = []string{"Complaint", "Inquiry", "Warranty", "Billing", "Service Request"}
	TicketPriorities = []string{"Low", "Medium", "High", "Urgent"}
	TicketStatuses   = []string{TicketOpen, TicketInProgress, TicketResolved, TicketClosed}
)

// CustomerServiceTicket caso de atención al cliente (tabla customer_service).
// TicketID lo genera el servidor (CS-...).
type CustomerServiceTicket struct {
	Meta
	TicketID     string     `json:"ticket_id"`
	CustomerID   string     `json:"customer_id"`
	IssueType    string     `json:"issue_type"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	Description  string     `json:"description"`
	AssignedTo   string     `json:"assigned_to"`
	Resolution   string     `json:"resolution"`
	OpenedDate   time.Time  `json:"opened_date"`
	ResolvedDate *time.Time `json:"resolved_date"`
}

func (m *CustomerServiceTicket) RecordKey() string       { return m.TicketID }
func (m *CustomerServiceTicket) SetRecordKey(key string) { m.TicketID = key }

func (m *CustomerServiceTicket) Prepare(now time.Time) error {
	if m.OpenedDate.IsZero() {
		m.OpenedDate = now
	}
	var c checker
	c.text("ticket_id", m.TicketID)
	c.text("customer_id", m.CustomerID)
	c.text("issue_type", m.IssueType)
	c.text("priority", m.Priority)
	c.text("status", m.Status)
	c.text("description", m.Description)
	c.oneOf("issue_type", m.IssueType, TicketIssueTypes)
	c.oneOf("priority", m.Priority, TicketPriorities)
	c.oneOf("status", m.Status, TicketStatuses)
	return c.err()
}

type CustomerServiceTicketPatch struct {
	CustomerID   *string    `json:"customer_id,omitempty"`
	IssueType    *string    `json:"issue_type,omitempty"`
	Priority     *string    `json:"priority,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Description  *string    `json:"description,omitempty"`
	AssignedTo   *string    `json:"assigned_to,omitempty"`
	Resolution   *string    `json:"resolution,omitempty"`
	OpenedDate   *time.Time `json:"opened_date,omitempty"`
	ResolvedDate *time.Time `json:"resolved_date,omitempty"`
}

func (p CustomerServiceTicketPatch) IsEmpty() bool { return p == CustomerServiceTicketPatch{} }

func (p CustomerServiceTicketPatch) Validate() error {
	var c checker
	c.textPtr("customer_id", p.CustomerID)
	c.textPtr("description", p.Description)
	c.oneOfPtr("issue_type", p.IssueType, TicketIssueTypes)
	c.oneOfPtr("priority", p.Priority, TicketPriorities)
	c.oneOfPtr("status", p.Status, TicketStatuses)
	return c.err()
}
