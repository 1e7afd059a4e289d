package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dealership-api/internal/application/dto"
	"github.com/jhoicas/dealership-api/internal/application/stats"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/internal/domain/repository"
	"github.com/jhoicas/dealership-api/pkg/config"
)

// partsOrderService lo implementa *procurement.UseCase.
type partsOrderService interface {
	List(ctx context.Context, q repository.ListQuery) ([]entity.PartsOrder, int, error)
	Get(ctx context.Context, id string) (*entity.PartsOrder, error)
	Create(ctx context.Context, in dto.CreatePartsOrderRequest) (*entity.PartsOrder, error)
	Update(ctx context.Context, id string, patch entity.PartsOrderPatch) (*entity.PartsOrder, error)
	Delete(ctx context.Context, id string) error
}

var partsOrderFilters = []string{"order_status", "payment_status", "supplier_id", "part_id"}

// PartsOrderHandler pedidos de repuestos. El PUT a Delivered acredita stock (ver procurement).
type PartsOrderHandler struct {
	uc    partsOrderService
	pages config.PaginationConfig
	now   func() time.Time
}

// NewPartsOrderHandler construye el handler.
func NewPartsOrderHandler(uc partsOrderService, pages config.PaginationConfig) *PartsOrderHandler {
	return &PartsOrderHandler{uc: uc, pages: pages, now: time.Now}
}

// List godoc
// @Summary      Listar pedidos de repuestos
// @Tags         parts-orders
// @Produce      json
// @Param        order_status    query  string  false  "Estado del pedido"
// @Param        payment_status  query  string  false  "Estado de pago"
// @Param        supplier_id     query  string  false  "Proveedor"
// @Param        part_id         query  string  false  "Repuesto"
// @Param        limit           query  int     false  "Límite"  default(20)
// @Param        offset          query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ListResponse
// @Router       /api/parts-orders [get]
func (h *PartsOrderHandler) List(c *fiber.Ctx) error {
	q, err := listQuery(c, partsOrderFilters, h.pages)
	if err != nil {
		return writeError(c, err)
	}
	list, total, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ListResponse{Success: true, Data: list, Total: total, Limit: q.Limit, Offset: q.Offset})
}

// Stats godoc
// @Summary      Agregados de pedidos (coste, vencidos, por estado)
// @Tags         parts-orders
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/parts-orders/stats [get]
func (h *PartsOrderHandler) Stats(c *fiber.Ctx) error {
	q, err := listQuery(c, partsOrderFilters, h.pages)
	if err != nil {
		return writeError(c, err)
	}
	list, _, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK(stats.PartsOrders(list, h.now())))
}

// Get godoc
// @Summary      Obtener pedido por parts_order_id
// @Tags         parts-orders
// @Produce      json
// @Param        id   path  string  true  "parts_order_id"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts-orders/{id} [get]
func (h *PartsOrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "pedido")
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary      Crear pedido de repuestos
// @Tags         parts-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartsOrderRequest  true  "Pedido"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parts-orders [post]
func (h *PartsOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartsOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualización parcial; pasar a Delivered acredita el stock una sola vez
// @Tags         parts-orders
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "parts_order_id"
// @Param        body  body  entity.PartsOrderPatch  true  "Campos a cambiar"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parts-orders/{id} [put]
func (h *PartsOrderHandler) Update(c *fiber.Ctx) error {
	var patch entity.PartsOrderPatch
	if err := c.BodyParser(&patch); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar pedido (no permitido si está Delivered)
// @Tags         parts-orders
// @Produce      json
// @Param        id   path  string  true  "parts_order_id"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts-orders/{id} [delete]
func (h *PartsOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "pedido eliminado"})
}

// Register monta las rutas. del se antepone a DELETE.
func (h *PartsOrderHandler) Register(r fiber.Router, del ...fiber.Handler) {
	r.Get("/", h.List)
	r.Get("/stats", h.Stats)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", append(del, h.Delete)...)
}
