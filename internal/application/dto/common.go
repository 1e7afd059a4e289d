package dto

// PageRequest paginación para listados. Page (base 1) tiene prioridad sobre Offset.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
	Page   int `query:"page"`
}

// Normalize aplica valores por defecto y el límite máximo.
func (p *PageRequest) Normalize(defaultLimit, maxLimit int) {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Page > 0 {
		p.Offset = (p.Page - 1) * p.Limit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// Response sobre común de todas las respuestas JSON.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ListResponse página de resultados con el total de filas que cumplen los filtros.
type ListResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// OK construye una respuesta exitosa con datos.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail construye una respuesta de error.
func Fail(code, msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg, Code: code}
}
