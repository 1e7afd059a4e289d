package http

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dealership-api/internal/application/dto"
	"github.com/jhoicas/dealership-api/internal/domain"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/internal/domain/repository"
	"github.com/jhoicas/dealership-api/pkg/config"
)

// recordService es lo que el handler necesita de un caso de uso CRUD.
// C es el cuerpo del POST: la propia entidad o un DTO de alta (usecase.PartUseCase).
type recordService[T, C any, P entity.Patch] interface {
	List(ctx context.Context, q repository.ListQuery) ([]T, int, error)
	Get(ctx context.Context, key string) (*T, error)
	Create(ctx context.Context, in *C) (*T, error)
	Update(ctx context.Context, key string, patch P) (*T, error)
	Delete(ctx context.Context, key string) error
}

// StatsFunc reduce una página de registros a sus agregados.
type StatsFunc[T any] func(list []T, now time.Time) any

// Stats adapta una función de internal/application/stats a StatsFunc.
func Stats[T, S any](f func([]T, time.Time) S) StatsFunc[T] {
	return func(list []T, now time.Time) any { return f(list, now) }
}

// ResourceOptions describe un recurso REST.
type ResourceOptions[T any] struct {
	Name    string   // singular, para mensajes ("ticket", "auditoría")
	Filters []string // parámetros de query aceptados como filtros de igualdad
	Stats   StatsFunc[T]
}

// RecordHandler expone List/Stats/Get/Create/Update/Delete para una entidad.
type RecordHandler[T, C any, P entity.Patch] struct {
	svc   recordService[T, C, P]
	opts  ResourceOptions[T]
	pages config.PaginationConfig
	now   func() time.Time
}

// NewRecordHandler construye el handler.
func NewRecordHandler[T, C any, P entity.Patch](svc recordService[T, C, P], opts ResourceOptions[T], pages config.PaginationConfig) *RecordHandler[T, C, P] {
	return &RecordHandler[T, C, P]{svc: svc, opts: opts, pages: pages, now: time.Now}
}

// List godoc
// @Summary      Listar registros
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Param        page    query  int  false  "Página (base 1)"
// @Success      200     {object}  dto.ListResponse
// @Failure      400     {object}  dto.ErrorResponse
func (h *RecordHandler[T, C, P]) List(c *fiber.Ctx) error {
	q, err := listQuery(c, h.opts.Filters, h.pages)
	if err != nil {
		return writeError(c, err)
	}
	list, total, err := h.svc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ListResponse{Success: true, Data: list, Total: total, Limit: q.Limit, Offset: q.Offset})
}

// Stats godoc
// @Summary      Agregados sobre la página filtrada
// @Success      200  {object}  dto.Response
func (h *RecordHandler[T, C, P]) Stats(c *fiber.Ctx) error {
	q, err := listQuery(c, h.opts.Filters, h.pages)
	if err != nil {
		return writeError(c, err)
	}
	list, _, err := h.svc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK(h.opts.Stats(list, h.now())))
}

// Get godoc
// @Summary      Obtener registro por clave de negocio
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
func (h *RecordHandler[T, C, P]) Get(c *fiber.Ctx) error {
	out, err := h.svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, h.opts.Name)
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary      Crear registro
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
func (h *RecordHandler[T, C, P]) Create(c *fiber.Ctx) error {
	var in C
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Create(c.UserContext(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualización parcial
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
func (h *RecordHandler[T, C, P]) Update(c *fiber.Ctx) error {
	var patch P
	if err := c.BodyParser(&patch); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar registro
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
func (h *RecordHandler[T, C, P]) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: h.opts.Name + " eliminado"})
}

// Register monta las rutas del recurso sobre el grupo. del se antepone a DELETE.
func (h *RecordHandler[T, C, P]) Register(r fiber.Router, del ...fiber.Handler) {
	r.Get("/", h.List)
	r.Get("/stats", h.Stats)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", append(del, h.Delete)...)
}

// listQuery lee paginación y filtros permitidos; los demás parámetros se ignoran.
func listQuery(c *fiber.Ctx, allowed []string, pages config.PaginationConfig) (repository.ListQuery, error) {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return repository.ListQuery{}, fmt.Errorf("%w: limit, offset y page deben ser enteros", domain.ErrInvalidInput)
	}
	page.Normalize(pages.DefaultLimit, pages.MaxLimit)

	filters := make(map[string]string, len(allowed))
	for _, name := range allowed {
		if v := strings.TrimSpace(c.Query(name)); v != "" {
			filters[name] = v
		}
	}
	return repository.ListQuery{Filters: filters, Limit: page.Limit, Offset: page.Offset}, nil
}
