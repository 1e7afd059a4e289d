package postgres

import (
	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/internal/domain/repository"
)

var accountingTable = &recordTable[entity.Accounting, entity.AccountingPatch]{
	name: "accounting",
	columns: []string{"accounting_id", "transaction_date", "transaction_type", "account_name", "amount",
		"description", "reference_number", "payment_method", "status", "due_date"},
	fields: func(a *entity.Accounting) []any {
		return []any{&a.AccountingID, &a.TransactionDate, &a.TransactionType, &a.AccountName, &a.Amount,
			&a.Description, &a.ReferenceNumber, &a.PaymentMethod, &a.Status, &a.DueDate}
	},
	meta:    func(a *entity.Accounting) *entity.Meta { return &a.Meta },
	filters: map[string]string{"transaction_type": "transaction_type", "status": "status", "account_name": "account_name"},
	orderBy: "transaction_date DESC",
	assign: func(p entity.AccountingPatch) []assignment {
		var s []assignment
		s = setIf(s, "transaction_date", p.TransactionDate)
		s = setIf(s, "transaction_type", p.TransactionType)
		s = setIf(s, "account_name", p.AccountName)
		s = setIf(s, "amount", p.Amount)
		s = setIf(s, "description", p.Description)
		s = setIf(s, "reference_number", p.ReferenceNumber)
		s = setIf(s, "payment_method", p.PaymentMethod)
		s = setIf(s, "status", p.Status)
		s = setIf(s, "due_date", p.DueDate)
		return s
	},
}

var auditTable = &recordTable[entity.Audit, entity.AuditPatch]{
	name: "audits",
	columns: []string{"audit_id", "audit_date", "audit_type", "department", "auditor_name",
		"findings", "recommendations", "risk_level", "status", "follow_up_date"},
	fields: func(a *entity.Audit) []any {
		return []any{&a.AuditID, &a.AuditDate, &a.AuditType, &a.Department, &a.AuditorName,
			&a.Findings, &a.Recommendations, &a.RiskLevel, &a.Status, &a.FollowUpDate}
	},
	meta:    func(a *entity.Audit) *entity.Meta { return &a.Meta },
	filters: map[string]string{"audit_type": "audit_type", "department": "department", "status": "status", "risk_level": "risk_level"},
	orderBy: "audit_date DESC",
	assign: func(p entity.AuditPatch) []assignment {
		var s []assignment
		s = setIf(s, "audit_date", p.AuditDate)
		s = setIf(s, "audit_type", p.AuditType)
		s = setIf(s, "department", p.Department)
		s = setIf(s, "auditor_name", p.AuditorName)
		s = setIf(s, "findings", p.Findings)
		s = setIf(s, "recommendations", p.Recommendations)
		s = setIf(s, "risk_level", p.RiskLevel)
		s = setIf(s, "status", p.Status)
		s = setIf(s, "follow_up_date", p.FollowUpDate)
		return s
	},
}

var communicationTable = &recordTable[entity.Communication, entity.CommunicationPatch]{
	name: "communication",
	columns: []string{"communication_id", "customer_id", "communication_type", "direction", "subject",
		"message", "status", "sent_date", "staff_member", "follow_up_required", "follow_up_date"},
	fields: func(m *entity.Communication) []any {
		return []any{&m.CommunicationID, &m.CustomerID, &m.CommunicationType, &m.Direction, &m.Subject,
			&m.Message, &m.Status, &m.SentDate, &m.StaffMember, &m.FollowUpRequired, &m.FollowUpDate}
	},
	meta: func(m *entity.Communication) *entity.Meta { return &m.Meta },
	filters: map[string]string{"customer_id": "customer_id", "communication_type": "communication_type",
		"direction": "direction", "status": "status"},
	orderBy: "sent_date DESC",
	assign: func(p entity.CommunicationPatch) []assignment {
		var s []assignment
		s = setIf(s, "customer_id", p.CustomerID)
		s = setIf(s, "communication_type", p.CommunicationType)
		s = setIf(s, "direction", p.Direction)
		s = setIf(s, "subject", p.Subject)
		s = setIf(s, "message", p.Message)
		s = setIf(s, "status", p.Status)
		s = setIf(s, "sent_date", p.SentDate)
		s = setIf(s, "staff_member", p.StaffMember)
		s = setIf(s, "follow_up_required", p.FollowUpRequired)
		s = setIf(s, "follow_up_date", p.FollowUpDate)
		return s
	},
}

var complianceTable = &recordTable[entity.Compliance, entity.CompliancePatch]{
	name: "compliance",
	columns: []string{"compliance_id", "regulation_name", "compliance_type", "department", "responsible_party",
		"due_date", "completion_date", "status", "risk_level", "notes"},
	fields: func(m *entity.Compliance) []any {
		return []any{&m.ComplianceID, &m.RegulationName, &m.ComplianceType, &m.Department, &m.ResponsibleParty,
			&m.DueDate, &m.CompletionDate, &m.Status, &m.RiskLevel, &m.Notes}
	},
	meta: func(m *entity.Compliance) *entity.Meta { return &m.Meta },
	filters: map[string]string{"compliance_type": "compliance_type", "department": "department",
		"status": "status", "risk_level": "risk_level"},
	orderBy: "due_date DESC",
	assign: func(p entity.CompliancePatch) []assignment {
		var s []assignment
		s = setIf(s, "regulation_name", p.RegulationName)
		s = setIf(s, "compliance_type", p.ComplianceType)
		s = setIf(s, "department", p.Department)
		s = setIf(s, "responsible_party", p.ResponsibleParty)
		s = setIf(s, "due_date", p.DueDate)
		s = setIf(s, "completion_date", p.CompletionDate)
		s = setIf(s, "status", p.Status)
		s = setIf(s, "risk_level", p.RiskLevel)
		s = setIf(s, "notes", p.Notes)
		return s
	},
}

var engagementTable = &recordTable[entity.CustomerEngagement, entity.CustomerEngagementPatch]{
	name: "customer_engagements",
	columns: []string{"engagement_id", "customer_id", "engagement_type", "channel", "engagement_date",
		"outcome", "satisfaction_score", "staff_member", "notes", "follow_up_date"},
	fields: func(m *entity.CustomerEngagement) []any {
		return []any{&m.EngagementID, &m.CustomerID, &m.EngagementType, &m.Channel, &m.EngagementDate,
			&m.Outcome, &m.SatisfactionScore, &m.StaffMember, &m.Notes, &m.FollowUpDate}
	},
	meta: func(m *entity.CustomerEngagement) *entity.Meta { return &m.Meta },
	filters: map[string]string{"customer_id": "customer_id", "engagement_type": "engagement_type",
		"channel": "channel", "outcome": "outcome"},
	orderBy: "engagement_date DESC",
	assign: func(p entity.CustomerEngagementPatch) []assignment {
		var s []assignment
		s = setIf(s, "customer_id", p.CustomerID)
		s = setIf(s, "engagement_type", p.EngagementType)
		s = setIf(s, "channel", p.Channel)
		s = setIf(s, "engagement_date", p.EngagementDate)
		s = setIf(s, "outcome", p.Outcome)
		s = setIf(s, "satisfaction_score", p.SatisfactionScore)
		s = setIf(s, "staff_member", p.StaffMember)
		s = setIf(s, "notes", p.Notes)
		s = setIf(s, "follow_up_date", p.FollowUpDate)
		return s
	},
}

var customerServiceTable = &recordTable[entity.CustomerServiceTicket, entity.CustomerServiceTicketPatch]{
	name: "customer_service",
	columns: []string{"ticket_id", "customer_id", "issue_type", "priority", "status",
		"description", "assigned_to", "resolution", "opened_date", "resolved_date"},
	fields: func(m *entity.CustomerServiceTicket) []any {
		return []any{&m.TicketID, &m.CustomerID, &m.IssueType, &m.Priority, &m.Status,
			&m.Description, &m.AssignedTo, &m.Resolution, &m.OpenedDate, &m.ResolvedDate}
	},
	meta: func(m *entity.CustomerServiceTicket) *entity.Meta { return &m.Meta },
	filters: map[string]string{"customer_id": "customer_id", "issue_type": "issue_type",
		"priority": "priority", "status": "status"},
	orderBy: "opened_date DESC",
	assign: func(p entity.CustomerServiceTicketPatch) []assignment {
		var s []assignment
		s = setIf(s, "customer_id", p.CustomerID)
		s = setIf(s, "issue_type", p.IssueType)
		s = setIf(s, "priority", p.Priority)
		s = setIf(s, "status", p.Status)
		s = setIf(s, "description", p.Description)
		s = setIf(s, "assigned_to", p.AssignedTo)
		s = setIf(s, "resolution", p.Resolution)
		s = setIf(s, "opened_date", p.OpenedDate)
		s = setIf(s, "resolved_date", p.ResolvedDate)
		return s
	},
}

var salesOrderTable = &recordTable[entity.SalesOrder, entity.SalesOrderPatch]{
	name: "order_management",
	columns: []string{"order_id", "customer_id", "vehicle_vin", "order_date", "order_type", "order_status",
		"total_amount", "deposit_amount", "payment_status", "delivery_date", "salesperson", "notes"},
	fields: func(m *entity.SalesOrder) []any {
		return []any{&m.OrderID, &m.CustomerID, &m.VehicleVIN, &m.OrderDate, &m.OrderType, &m.OrderStatus,
			&m.TotalAmount, &m.DepositAmount, &m.PaymentStatus, &m.DeliveryDate, &m.Salesperson, &m.Notes}
	},
	meta: func(m *entity.SalesOrder) *entity.Meta { return &m.Meta },
	filters: map[string]string{"customer_id": "customer_id", "order_status": "order_status",
		"payment_status": "payment_status", "order_type": "order_type"},
	orderBy: "order_date DESC",
	assign: func(p entity.SalesOrderPatch) []assignment {
		var s []assignment
		s = setIf(s, "customer_id", p.CustomerID)
		s = setIf(s, "vehicle_vin", p.VehicleVIN)
		s = setIf(s, "order_date", p.OrderDate)
		s = setIf(s, "order_type", p.OrderType)
		s = setIf(s, "order_status", p.OrderStatus)
		s = setIf(s, "total_amount", p.TotalAmount)
		s = setIf(s, "deposit_amount", p.DepositAmount)
		s = setIf(s, "payment_status", p.PaymentStatus)
		s = setIf(s, "delivery_date", p.DeliveryDate)
		s = setIf(s, "salesperson", p.Salesperson)
		s = setIf(s, "notes", p.Notes)
		return s
	},
}

var repairOrderTable = &recordTable[entity.RepairOrder, entity.RepairOrderPatch]{
	name: "repair_orders",
	columns: []string{"repair_order_id", "customer_id", "vehicle_vin", "issue_description", "diagnosis",
		"technician", "status", "priority", "estimated_cost", "actual_cost", "labor_hours", "date_in", "date_completed"},
	fields: func(m *entity.RepairOrder) []any {
		return []any{&m.RepairOrderID, &m.CustomerID, &m.VehicleVIN, &m.IssueDescription, &m.Diagnosis,
			&m.Technician, &m.Status, &m.Priority, &m.EstimatedCost, &m.ActualCost, &m.LaborHours, &m.DateIn, &m.DateCompleted}
	},
	meta: func(m *entity.RepairOrder) *entity.Meta { return &m.Meta },
	filters: map[string]string{"customer_id": "customer_id", "vehicle_vin": "vehicle_vin",
		"status": "status", "priority": "priority", "technician": "technician"},
	orderBy: "date_in DESC",
	assign: func(p entity.RepairOrderPatch) []assignment {
		var s []assignment
		s = setIf(s, "customer_id", p.CustomerID)
		s = setIf(s, "vehicle_vin", p.VehicleVIN)
		s = setIf(s, "issue_description", p.IssueDescription)
		s = setIf(s, "diagnosis", p.Diagnosis)
		s = setIf(s, "technician", p.Technician)
		s = setIf(s, "status", p.Status)
		s = setIf(s, "priority", p.Priority)
		s = setIf(s, "estimated_cost", p.EstimatedCost)
		s = setIf(s, "actual_cost", p.ActualCost)
		s = setIf(s, "labor_hours", p.LaborHours)
		s = setIf(s, "date_in", p.DateIn)
		s = setIf(s, "date_completed", p.DateCompleted)
		return s
	},
}

var serviceHistoryTable = &recordTable[entity.ServiceRecord, entity.ServiceRecordPatch]{
	name: "service_history",
	columns: []string{"history_id", "vehicle_vin", "customer_id", "service_date", "service_type",
		"mileage", "technician", "description", "cost", "warranty_covered", "next_service_due"},
	fields: func(m *entity.ServiceRecord) []any {
		return []any{&m.HistoryID, &m.VehicleVIN, &m.CustomerID, &m.ServiceDate, &m.ServiceType,
			&m.Mileage, &m.Technician, &m.Description, &m.Cost, &m.WarrantyCovered, &m.NextServiceDue}
	},
	meta: func(m *entity.ServiceRecord) *entity.Meta { return &m.Meta },
	filters: map[string]string{"customer_id": "customer_id", "vehicle_vin": "vehicle_vin",
		"service_type": "service_type", "technician": "technician"},
	orderBy: "service_date DESC",
	assign: func(p entity.ServiceRecordPatch) []assignment {
		var s []assignment
		s = setIf(s, "vehicle_vin", p.VehicleVIN)
		s = setIf(s, "customer_id", p.CustomerID)
		s = setIf(s, "service_date", p.ServiceDate)
		s = setIf(s, "service_type", p.ServiceType)
		s = setIf(s, "mileage", p.Mileage)
		s = setIf(s, "technician", p.Technician)
		s = setIf(s, "description", p.Description)
		s = setIf(s, "cost", p.Cost)
		s = setIf(s, "warranty_covered", p.WarrantyCovered)
		s = setIf(s, "next_service_due", p.NextServiceDue)
		return s
	},
}

var schedulingTable = &recordTable[entity.Appointment, entity.AppointmentPatch]{
	name: "service_scheduling",
	columns: []string{"appointment_id", "customer_id", "vehicle_vin", "service_type", "scheduled_date",
		"estimated_duration", "technician", "bay_number", "status", "notes"},
	fields: func(m *entity.Appointment) []any {
		return []any{&m.AppointmentID, &m.CustomerID, &m.VehicleVIN, &m.ServiceType, &m.ScheduledDate,
			&m.EstimatedDuration, &m.Technician, &m.BayNumber, &m.Status, &m.Notes}
	},
	meta: func(m *entity.Appointment) *entity.Meta { return &m.Meta },
	filters: map[string]string{"customer_id": "customer_id", "status": "status",
		"service_type": "service_type", "technician": "technician"},
	orderBy: "scheduled_date DESC",
	assign: func(p entity.AppointmentPatch) []assignment {
		var s []assignment
		s = setIf(s, "customer_id", p.CustomerID)
		s = setIf(s, "vehicle_vin", p.VehicleVIN)
		s = setIf(s, "service_type", p.ServiceType)
		s = setIf(s, "scheduled_date", p.ScheduledDate)
		s = setIf(s, "estimated_duration", p.EstimatedDuration)
		s = setIf(s, "technician", p.Technician)
		s = setIf(s, "bay_number", p.BayNumber)
		s = setIf(s, "status", p.Status)
		s = setIf(s, "notes", p.Notes)
		return s
	},
}

var stockInventoryTable = &recordTable[entity.Vehicle, entity.VehiclePatch]{
	name: "stock_inventory",
	columns: []string{"stock_id", "vin", "make", "model", "year", "trim", "color", "mileage",
		"condition", "status", "purchase_price", "list_price", "location", "date_received"},
	fields: func(m *entity.Vehicle) []any {
		return []any{&m.StockID, &m.VIN, &m.Make, &m.Model, &m.Year, &m.Trim, &m.Color, &m.Mileage,
			&m.Condition, &m.Status, &m.PurchasePrice, &m.ListPrice, &m.Location, &m.DateReceived}
	},
	meta: func(m *entity.Vehicle) *entity.Meta { return &m.Meta },
	filters: map[string]string{"make": "make", "model": "model", "condition": "condition",
		"status": "status", "location": "location"},
	orderBy: "date_received DESC",
	assign: func(p entity.VehiclePatch) []assignment {
		var s []assignment
		s = setIf(s, "vin", p.VIN)
		s = setIf(s, "make", p.Make)
		s = setIf(s, "model", p.Model)
		s = setIf(s, "year", p.Year)
		s = setIf(s, "trim", p.Trim)
		s = setIf(s, "color", p.Color)
		s = setIf(s, "mileage", p.Mileage)
		s = setIf(s, "condition", p.Condition)
		s = setIf(s, "status", p.Status)
		s = setIf(s, "purchase_price", p.PurchasePrice)
		s = setIf(s, "list_price", p.ListPrice)
		s = setIf(s, "location", p.Location)
		s = setIf(s, "date_received", p.DateReceived)
		return s
	},
}

// Constructores de los repositorios genéricos. Pasar pool o tx (Querier).

func NewAccountingRepository(q Querier) repository.AccountingRepository {
	return newRecordRepo(q, accountingTable)
}

func NewAuditRepository(q Querier) repository.AuditRepository {
	return newRecordRepo(q, auditTable)
}

func NewCommunicationRepository(q Querier) repository.CommunicationRepository {
	return newRecordRepo(q, communicationTable)
}

func NewComplianceRepository(q Querier) repository.ComplianceRepository {
	return newRecordRepo(q, complianceTable)
}

func NewCustomerEngagementRepository(q Querier) repository.CustomerEngagementRepository {
	return newRecordRepo(q, engagementTable)
}

func NewCustomerServiceRepository(q Querier) repository.CustomerServiceRepository {
	return newRecordRepo(q, customerServiceTable)
}

func NewSalesOrderRepository(q Querier) repository.SalesOrderRepository {
	return newRecordRepo(q, salesOrderTable)
}

func NewRepairOrderRepository(q Querier) repository.RepairOrderRepository {
	return newRecordRepo(q, repairOrderTable)
}

func NewServiceRecordRepository(q Querier) repository.ServiceRecordRepository {
	return newRecordRepo(q, serviceHistoryTable)
}

func NewAppointmentRepository(q Querier) repository.AppointmentRepository {
	return newRecordRepo(q, schedulingTable)
}

func NewVehicleRepository(q Querier) repository.VehicleRepository {
	return newRecordRepo(q, stockInventoryTable)
}
