package usecase

import (
	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/internal/domain/repository"
	"github.com/jhoicas/dealership-api/pkg/keygen"
)

type (
	AccountingUseCase         = RecordUseCase[entity.Accounting, *entity.Accounting, entity.AccountingPatch]
	AuditUseCase              = RecordUseCase[entity.Audit, *entity.Audit, entity.AuditPatch]
	CommunicationUseCase      = RecordUseCase[entity.Communication, *entity.Communication, entity.CommunicationPatch]
	ComplianceUseCase         = RecordUseCase[entity.Compliance, *entity.Compliance, entity.CompliancePatch]
	CustomerEngagementUseCase = RecordUseCase[entity.CustomerEngagement, *entity.CustomerEngagement, entity.CustomerEngagementPatch]
	CustomerServiceUseCase    = RecordUseCase[entity.CustomerServiceTicket, *entity.CustomerServiceTicket, entity.CustomerServiceTicketPatch]
	SalesOrderUseCase         = RecordUseCase[entity.SalesOrder, *entity.SalesOrder, entity.SalesOrderPatch]
	RepairOrderUseCase        = RecordUseCase[entity.RepairOrder, *entity.RepairOrder, entity.RepairOrderPatch]
	ServiceRecordUseCase      = RecordUseCase[entity.ServiceRecord, *entity.ServiceRecord, entity.ServiceRecordPatch]
	AppointmentUseCase        = RecordUseCase[entity.Appointment, *entity.Appointment, entity.AppointmentPatch]
	VehicleUseCase            = RecordUseCase[entity.Vehicle, *entity.Vehicle, entity.VehiclePatch]
)

func NewAccountingUseCase(repo repository.AccountingRepository) *AccountingUseCase {
	return NewRecordUseCase[entity.Accounting, *entity.Accounting, entity.AccountingPatch](repo, "")
}

func NewAuditUseCase(repo repository.AuditRepository) *AuditUseCase {
	return NewRecordUseCase[entity.Audit, *entity.Audit, entity.AuditPatch](repo, "")
}

func NewCommunicationUseCase(repo repository.CommunicationRepository) *CommunicationUseCase {
	return NewRecordUseCase[entity.Communication, *entity.Communication, entity.CommunicationPatch](repo, "")
}

func NewComplianceUseCase(repo repository.ComplianceRepository) *ComplianceUseCase {
	return NewRecordUseCase[entity.Compliance, *entity.Compliance, entity.CompliancePatch](repo, "")
}

func NewCustomerEngagementUseCase(repo repository.CustomerEngagementRepository) *CustomerEngagementUseCase {
	return NewRecordUseCase[entity.CustomerEngagement, *entity.CustomerEngagement, entity.CustomerEngagementPatch](repo, "")
}

// NewCustomerServiceUseCase el ticket_id lo genera el servidor (CS-...).
func NewCustomerServiceUseCase(repo repository.CustomerServiceRepository) *CustomerServiceUseCase {
	return NewRecordUseCase[entity.CustomerServiceTicket, *entity.CustomerServiceTicket, entity.CustomerServiceTicketPatch](repo, keygen.PrefixCustomerService)
}

func NewSalesOrderUseCase(repo repository.SalesOrderRepository) *SalesOrderUseCase {
	return NewRecordUseCase[entity.SalesOrder, *entity.SalesOrder, entity.SalesOrderPatch](repo, "")
}

func NewRepairOrderUseCase(repo repository.RepairOrderRepository) *RepairOrderUseCase {
	return NewRecordUseCase[entity.RepairOrder, *entity.RepairOrder, entity.RepairOrderPatch](repo, "")
}

func NewServiceRecordUseCase(repo repository.ServiceRecordRepository) *ServiceRecordUseCase {
	return NewRecordUseCase[entity.ServiceRecord, *entity.ServiceRecord, entity.ServiceRecordPatch](repo, "")
}

func NewAppointmentUseCase(repo repository.AppointmentRepository) *AppointmentUseCase {
	return NewRecordUseCase[entity.Appointment, *entity.Appointment, entity.AppointmentPatch](repo, "")
}

func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return NewRecordUseCase[entity.Vehicle, *entity.Vehicle, entity.VehiclePatch](repo, "")
}
