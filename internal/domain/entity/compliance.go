package entity

import "time"

const (
	CompliancePending      = "Pending"
	ComplianceInProgress   = "In Progress"
	ComplianceCompliant    = "Compliant"
	ComplianceNonCompliant = "Non-Compliant"
)

var ComplianceStatuses = []string{CompliancePending, ComplianceInProgress, ComplianceCompliant, ComplianceNonCompliant}

// Compliance requisito regulatorio con fecha límite (tabla compliance).
type Compliance struct {
	Meta
	ComplianceID     string     `json:"compliance_id"`
	RegulationName   string     `json:"regulation_name"`
	ComplianceType   string     `json:"compliance_type"`
	Department       string     `json:"department"`
	ResponsibleParty string     `json:"responsible_party"`
	DueDate          time.Time  `json:"due_date"`
	CompletionDate   *time.Time `json:"completion_date"`
	Status           string     `json:"status"`
	RiskLevel        string     `json:"risk_level"`
	Notes            string     `json:"notes"`
}

func (m *Compliance) RecordKey() string       { return m.ComplianceID }
func (m *Compliance) SetRecordKey(key string) { m.ComplianceID = key }

func (m *Compliance) Prepare(now time.Time) error {
	m.RiskLevel = orDefault(m.RiskLevel, RiskLow)
	var c checker
	c.text("compliance_id", m.ComplianceID)
	c.text("regulation_name", m.RegulationName)
	c.text("compliance_type", m.ComplianceType)
	c.date("due_date", m.DueDate)
	c.text("status", m.Status)
	c.oneOf("status", m.Status, ComplianceStatuses)
	c.oneOf("risk_level", m.RiskLevel, RiskLevels)
	return c.err()
}

type CompliancePatch struct {
	RegulationName   *string    `json:"regulation_name,omitempty"`
	ComplianceType   *string    `json:"compliance_type,omitempty"`
	Department       *string    `json:"department,omitempty"`
	ResponsibleParty *string    `json:"responsible_party,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	CompletionDate   *time.Time `json:"completion_date,omitempty"`
	Status           *string    `json:"status,omitempty"`
	RiskLevel        *string    `json:"risk_level,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
}

func (p CompliancePatch) IsEmpty() bool { return p == CompliancePatch{} }

func (p CompliancePatch) Validate() error {
	var c checker
	c.textPtr("regulation_name", p.RegulationName)
	c.textPtr("compliance_type", p.ComplianceType)
	c.datePtr("due_date", p.DueDate)
	c.oneOfPtr("status", p.Status, ComplianceStatuses)
	c.oneOfPtr("risk_level", p.RiskLevel, RiskLevels)
	return c.err()
}
