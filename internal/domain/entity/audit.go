package entity

import "time"

const (
	RiskLow      = "Low"
	RiskMedium   = "Medium"
	RiskHigh     = "High"
	RiskCritical = "Critical"

	AuditScheduled  = "Scheduled"
	AuditInProgress = "In Progress"
	AuditCompleted  = "Completed"
	AuditClosed     = "Closed"
)

var (
	RiskLevels    = []string{RiskLow, RiskMedium, RiskHigh, RiskCritical}
	AuditTypes    = []string{"Financial", "Operational", "Compliance", "Inventory", "Safety"}
	AuditStatuses = []string{AuditScheduled, AuditInProgress, AuditCompleted, AuditClosed}
)

// Audit auditoría interna o externa (tabla audits).
type Audit struct {
	Meta
	AuditID         string     `json:"audit_id"`
	AuditDate       time.Time  `json:"audit_date"`
	AuditType       string     `json:"audit_type"`
	Department      string     `json:"department"`
	AuditorName     string     `json:"auditor_name"`
	Findings        string     `json:"findings"`
	Recommendations string     `json:"recommendations"`
	RiskLevel       string     `json:"risk_level"`
	Status          string     `json:"status"`
	FollowUpDate    *time.Time `json:"follow_up_date"`
}

func (a *Audit) RecordKey() string       { return a.AuditID }
func (a *Audit) SetRecordKey(key string) { a.AuditID = key }

func (a *Audit) Prepare(now time.Time) error {
	a.Status = orDefault(a.Status, AuditScheduled)
	a.RiskLevel = orDefault(a.RiskLevel, RiskLow)
	var c checker
	c.text("audit_id", a.AuditID)
	c.date("audit_date", a.AuditDate)
	c.text("audit_type", a.AuditType)
	c.text("department", a.Department)
	c.text("auditor_name", a.AuditorName)
	c.oneOf("audit_type", a.AuditType, AuditTypes)
	c.oneOf("risk_level", a.RiskLevel, RiskLevels)
	c.oneOf("status", a.Status, AuditStatuses)
	return c.err()
}

type AuditPatch struct {
	AuditDate       *time.Time `json:"audit_date,omitempty"`
	AuditType       *string    `json:"audit_type,omitempty"`
	Department      *string    `json:"department,omitempty"`
	AuditorName     *string    `json:"auditor_name,omitempty"`
	Findings        *string    `json:"findings,omitempty"`
	Recommendations *string    `json:"recommendations,omitempty"`
	RiskLevel       *string    `json:"risk_level,omitempty"`
	Status          *string    `json:"status,omitempty"`
	FollowUpDate    *time.Time `json:"follow_up_date,omitempty"`
}

func (p AuditPatch) IsEmpty() bool { return p == AuditPatch{} }

func (p AuditPatch) Validate() error {
	var c checker
	c.datePtr("audit_date", p.AuditDate)
	c.textPtr("department", p.Department)
	c.textPtr("auditor_name", p.AuditorName)
	c.oneOfPtr("audit_type", p.AuditType, AuditTypes)
	c.oneOfPtr("risk_level", p.RiskLevel, RiskLevels)
	c.oneOfPtr("status", p.Status, AuditStatuses)
	return c.err()
}
