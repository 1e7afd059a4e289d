package repository

import (
	"context"
	"time"

	"github.com/jhoicas/dealership-api/internal/domain/entity"
)

// ListQuery filtros de igualdad y paginación de un listado.
// Las claves de Filters ya vienen validadas contra la lista blanca de la tabla.
type ListQuery struct {
	Filters map[string]string
	Limit   int
	Offset  int
}

// Records puerto de persistencia genérico para las entidades del CRUD (DIP).
// T es la entidad y P su patch. Las filas se identifican por clave de negocio.
type Records[T any, P entity.Patch] interface {
	// List devuelve la página pedida y el total de filas que cumplen los filtros.
	List(ctx context.Context, q ListQuery) ([]T, int, error)
	// GetByKey devuelve nil, nil si no existe.
	GetByKey(ctx context.Context, key string) (*T, error)
	Create(ctx context.Context, rec *T) error
	// Update escribe solo los campos presentes en el patch más updated_at.
	// Devuelve nil, nil si la fila no existe.
	Update(ctx context.Context, key string, patch P, updatedAt time.Time) (*T, error)
	// Delete devuelve false si la fila no existe.
	Delete(ctx context.Context, key string) (bool, error)
}

type (
	AccountingRepository         = Records[entity.Accounting, entity.AccountingPatch]
	AuditRepository              = Records[entity.Audit, entity.AuditPatch]
	CommunicationRepository      = Records[entity.Communication, entity.CommunicationPatch]
	ComplianceRepository         = Records[entity.Compliance, entity.CompliancePatch]
	CustomerEngagementRepository = Records[entity.CustomerEngagement, entity.CustomerEngagementPatch]
	CustomerServiceRepository    = Records[entity.CustomerServiceTicket, entity.CustomerServiceTicketPatch]
	SalesOrderRepository         = Records[entity.SalesOrder, entity.SalesOrderPatch]
	RepairOrderRepository        = Records[entity.RepairOrder, entity.RepairOrderPatch]
	ServiceRecordRepository      = Records[entity.ServiceRecord, entity.ServiceRecordPatch]
	AppointmentRepository        = Records[entity.Appointment, entity.AppointmentPatch]
	VehicleRepository            = Records[entity.Vehicle, entity.VehiclePatch]
)
