package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/client-service-manager/internal/models"
	"github.com/client-service-manager/internal/records"
	"github.com/client-service-manager/internal/repository"
	"github.com/client-service-manager/internal/validation"
)

// ServiceHandler handles service CRUD endpoints and the agenda view
type ServiceHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(repos *repository.Repositories, log zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{
		repos: repos,
		log:   log.With().Str("handler", "services").Logger(),
	}
}

// NewForm handles GET /servicios/nuevo/:client_id, returning the
// client's addresses so the form can offer them as choices
func (h *ServiceHandler) NewForm(c *gin.Context) {
	clientID := c.Param("client_id")
	addresses, err := h.repos.Address.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		detailError(c, h.log, err, "", "no se pudieron cargar las direcciones")
		return
	}
	if addresses == nil {
		addresses = []records.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"id_cliente": clientID, "direcciones": addresses})
}

// Create handles POST /servicios/nuevo/:client_id. The address is a
// denormalized text copy and the client id is appended as given, so a
// service for a nonexistent client succeeds.
func (h *ServiceHandler) Create(c *gin.Context) {
	values := map[string]string{
		"direccion":  c.PostForm("direccion"),
		"servicio":   c.PostForm("servicio"),
		"notas":      c.PostForm("notas"),
		"fecha_hora": c.PostForm("fecha_hora"),
	}
	if errs := validation.ValidateServiceForm(values); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": errs.Error(), "errors": errs})
		return
	}

	scheduledAt, _ := models.ParseScheduleInput(values["fecha_hora"])

	service := &models.Service{
		ClientID:    c.Param("client_id"),
		AddressText: values["direccion"],
		ServiceType: values["servicio"],
		Notes:       values["notas"],
		ScheduledAt: models.FormatScheduleWire(scheduledAt),
		RowID:       uuid.New().String(),
	}
	if err := h.repos.Service.Create(c.Request.Context(), service); err != nil {
		mutationError(c, h.log, err, "servicio no encontrado", "no se pudo agregar el servicio")
		return
	}

	h.log.Info().Str("row_id", service.RowID).Str("client_id", service.ClientID).Msg("Service created")
	mutationOK(c, "Servicio agregado exitosamente", service.RowID)
}

// Detail handles GET /servicios/detalle/:id
func (h *ServiceHandler) Detail(c *gin.Context) {
	service, err := h.repos.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		detailError(c, h.log, err, "servicio no encontrado", "no se pudo cargar el detalle del servicio")
		return
	}
	c.JSON(http.StatusOK, gin.H{"servicio": withDisplaySchedule(service)})
}

// EditForm handles GET /servicios/editar/:id
func (h *ServiceHandler) EditForm(c *gin.Context) {
	service, err := h.repos.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		detailError(c, h.log, err, "servicio no encontrado", "no se pudo cargar el servicio")
		return
	}
	c.JSON(http.StatusOK, gin.H{"servicio": service})
}

// Edit handles POST /servicios/editar/:id. Only the address, type and
// notes are editable; the schedule and client stay as created.
func (h *ServiceHandler) Edit(c *gin.Context) {
	values := map[string]string{
		"direccion": c.PostForm("direccion"),
		"servicio":  c.PostForm("servicio"),
		"notas":     c.PostForm("notas"),
	}
	if errs := validation.ValidateServiceEditForm(values); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": errs.Error(), "errors": errs})
		return
	}

	upd := models.ServiceUpdate{
		AddressText: values["direccion"],
		ServiceType: values["servicio"],
		Notes:       values["notas"],
	}
	if err := h.repos.Service.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		mutationError(c, h.log, err, "servicio no encontrado", "no se pudo actualizar el servicio")
		return
	}

	mutationOK(c, "Servicio actualizado exitosamente", "")
}

// Delete handles POST /servicios/borrar/:id
func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.repos.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, h.log, err, "servicio no encontrado", "no se pudo eliminar el servicio")
		return
	}
	mutationOK(c, "Servicio eliminado exitosamente", "")
}

// Agenda handles GET /agenda, the calendar view over all services
func (h *ServiceHandler) Agenda(c *gin.Context) {
	services, err := h.repos.Service.List(c.Request.Context())
	if err != nil {
		detailError(c, h.log, err, "", "no se pudo cargar la agenda")
		return
	}
	if services == nil {
		services = []records.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"servicios": withDisplaySchedules(services)})
}

// scheduleDisplayKey carries the display-formatted schedule alongside
// the stored value in rendered service records.
const scheduleDisplayKey = "Fecha_Hora_Display"

// withDisplaySchedule adds the display-formatted schedule to a service
// record without mutating the original
func withDisplaySchedule(rec records.Record) records.Record {
	out := make(records.Record, len(rec)+1)
	for k, v := range rec {
		out[k] = v
	}
	out[scheduleDisplayKey] = models.FormatScheduleDisplay(rec[models.ScheduledAtHeader])
	return out
}

// withDisplaySchedules maps withDisplaySchedule over a record list
func withDisplaySchedules(recs []records.Record) []records.Record {
	out := make([]records.Record, len(recs))
	for i, rec := range recs {
		out[i] = withDisplaySchedule(rec)
	}
	return out
}
