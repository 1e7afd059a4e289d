package entity

import "time"

var (
	EngagementTypes    = []string{"Test Drive", "Showroom Visit", "Follow-up Call", "Event", "Survey", "Email Campaign"}
	EngagementChannels = []string{"In-Person", "Phone", "Email", "Web", "Social Media"}
)

// CustomerEngagement interacción comercial con un cliente (tabla customer_engagements).
// SatisfactionScore va de 1 a 5; 0 significa sin calificar.
type CustomerEngagement struct {
	Meta
	EngagementID      string     `json:"engagement_id"`
	CustomerID        string     `json:"customer_id"`
	EngagementType    string     `json:"engagement_type"`
	Channel           string     `json:"channel"`
	EngagementDate    time.Time  `json:"engagement_date"`
	Outcome           string     `json:"outcome"`
	SatisfactionScore int        `json:"satisfaction_score"`
	StaffMember       string     `json:"staff_member"`
	Notes             string     `json:"notes"`
	FollowUpDate      *time.Time `json:"follow_up_date"`
}

func (m *CustomerEngagement) RecordKey() string       { return m.EngagementID }
func (m *CustomerEngagement) SetRecordKey(key string) { m.EngagementID = key }

func (m *CustomerEngagement) Prepare(now time.Time) error {
	var c checker
	c.text("engagement_id", m.EngagementID)
	c.text("customer_id", m.CustomerID)
	c.text("engagement_type", m.EngagementType)
	c.date("engagement_date", m.EngagementDate)
	c.oneOf("engagement_type", m.EngagementType, EngagementTypes)
	c.oneOf("channel", m.Channel, EngagementChannels)
	c.check("satisfaction_score", m.SatisfactionScore >= 0 && m.SatisfactionScore <= 5)
	return c.err()
}

type CustomerEngagementPatch struct {
	CustomerID        *string    `json:"customer_id,omitempty"`
	EngagementType    *string    `json:"engagement_type,omitempty"`
	Channel           *string    `json:"channel,omitempty"`
	EngagementDate    *time.Time `json:"engagement_date,omitempty"`
	Outcome           *string    `json:"outcome,omitempty"`
	SatisfactionScore *int       `json:"satisfaction_score,omitempty"`
	StaffMember       *string    `json:"staff_member,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	FollowUpDate      *time.Time `json:"follow_up_date,omitempty"`
}

func (p CustomerEngagementPatch) IsEmpty() bool { return p == CustomerEngagementPatch{} }

func (p CustomerEngagementPatch) Validate() error {
	var c checker
	c.textPtr("customer_id", p.CustomerID)
	c.datePtr("engagement_date", p.EngagementDate)
	c.oneOfPtr("engagement_type", p.EngagementType, EngagementTypes)
	c.oneOfPtr("channel", p.Channel, EngagementChannels)
	c.check("satisfaction_score", p.SatisfactionScore == nil || (*p.SatisfactionScore >= 0 && *p.SatisfactionScore <= 5))
	return c.err()
}
