package entity

import "time"

const (
	AppointmentScheduled  = "Scheduled"
	AppointmentConfirmed  = "Confirmed"
	AppointmentInProgress = "In Progress"
	AppointmentCompleted  = "Completed"
	AppointmentCancelled  = "Cancelled"
	AppointmentNoShow     = "No Show"
)

var AppointmentStatuses = []string{
	AppointmentScheduled, AppointmentConfirmed, AppointmentInProgress,
	AppointmentCompleted, AppointmentCancelled, AppointmentNoShow,
}

// Appointment cita de taller (tabla service_scheduling).
// EstimatedDuration en minutos.
type Appointment struct {
	Meta
	AppointmentID     string    `json:"appointment_id"`
	CustomerID        string    `json:"customer_id"`
	VehicleVIN        string    `json:"vehicle_vin"`
	ServiceType       string    `json:"service_type"`
	ScheduledDate     time.Time `json:"scheduled_date"`
	EstimatedDuration int       `json:"estimated_duration"`
	Technician        string    `json:"technician"`
	BayNumber         string    `json:"bay_number"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes"`
}

func (m *Appointment) RecordKey() string       { return m.AppointmentID }
func (m *Appointment) SetRecordKey(key string) { m.AppointmentID = key }

func (m *Appointment) Prepare(now time.Time) error {
	m.Status = orDefault(m.Status, AppointmentScheduled)
	var c checker
	c.text("appointment_id", m.AppointmentID)
	c.text("customer_id", m.CustomerID)
	c.text("vehicle_vin", m.VehicleVIN)
	c.text("service_type", m.ServiceType)
	c.date("scheduled_date", m.ScheduledDate)
	c.check("estimated_duration", m.EstimatedDuration >= 0)
	c.oneOf("status", m.Status, AppointmentStatuses)
	return c.err()
}

// Upcoming indica si la cita sigue pendiente de atender en t.
func (m Appointment) Upcoming(t time.Time) bool {
	switch m.Status {
	case AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return false
	}
	return !m.ScheduledDate.Before(t)
}

type AppointmentPatch struct {
	CustomerID        *string    `json:"customer_id,omitempty"`
	VehicleVIN        *string    `json:"vehicle_vin,omitempty"`
	ServiceType       *string    `json:"service_type,omitempty"`
	ScheduledDate     *time.Time `json:"scheduled_date,omitempty"`
	EstimatedDuration *int       `json:"estimated_duration,omitempty"`
	Technician        *string    `json:"technician,omitempty"`
	BayNumber         *string    `json:"bay_number,omitempty"`
	Status            *string    `json:"status,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

func (p AppointmentPatch) IsEmpty() bool { return p == AppointmentPatch{} }

func (p AppointmentPatch) Validate() error {
	var c checker
	c.textPtr("customer_id", p.CustomerID)
	c.textPtr("vehicle_vin", p.VehicleVIN)
	c.textPtr("service_type", p.ServiceType)
	c.datePtr("scheduled_date", p.ScheduledDate)
	c.oneOfPtr("status", p.Status, AppointmentStatuses)
	c.check("estimated_duration", p.EstimatedDuration == nil || *p.EstimatedDuration >= 0)
	return c.err()
}
