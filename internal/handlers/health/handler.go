package health

import (
	"net/http"
	"tourcrm/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.Health)
	})
}

// Health reports service liveness.
// @Summary Health check
// @Description Report whether the service is up.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "OK"
// @Router /v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.WithMessage(w, http.StatusOK, "OK")
}
