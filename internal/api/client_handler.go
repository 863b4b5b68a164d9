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

// ClientHandler handles client CRUD endpoints
type ClientHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(repos *repository.Repositories, log zerolog.Logger) *ClientHandler {
	return &ClientHandler{
		repos: repos,
		log:   log.With().Str("handler", "clients").Logger(),
	}
}

// List handles GET /clientes
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repos.Client.List(c.Request.Context())
	if err != nil {
		detailError(c, h.log, err, "", "no se pudieron cargar los clientes")
		return
	}
	if clients == nil {
		clients = []records.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"clientes": clients})
}

// NewForm handles GET /clientes/nuevo
func (h *ClientHandler) NewForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

// Create handles POST /clientes/nuevo
func (h *ClientHandler) Create(c *gin.Context) {
	values := map[string]string{
		"nombre":   c.PostForm("nombre"),
		"telefono": c.PostForm("telefono"),
	}
	if errs := validation.ValidateClientForm(values); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": errs.Error(), "errors": errs})
		return
	}

	// The condition cell is left empty; the sheet default applies.
	client := &models.Client{
		RowID: uuid.New().String(),
		Name:  values["nombre"],
		Phone: values["telefono"],
	}
	if err := h.repos.Client.Create(c.Request.Context(), client); err != nil {
		mutationError(c, h.log, err, "cliente no encontrado", "no se pudo crear el cliente")
		return
	}

	h.log.Info().Str("row_id", client.RowID).Msg("Client created")
	mutationOK(c, "Cliente creado exitosamente", client.RowID)
}

// Detail handles GET /clientes/detalle/:id, assembling the client
// record together with its addresses and services
func (h *ClientHandler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	client, err := h.repos.Client.Get(ctx, id)
	if err != nil {
		detailError(c, h.log, err, "cliente no encontrado", "no se pudo cargar el detalle del cliente")
		return
	}

	addresses, err := h.repos.Address.ListByClient(ctx, id)
	if err != nil {
		detailError(c, h.log, err, "", "no se pudieron cargar las direcciones")
		return
	}
	services, err := h.repos.Service.ListByClient(ctx, id)
	if err != nil {
		detailError(c, h.log, err, "", "no se pudieron cargar los servicios")
		return
	}

	if addresses == nil {
		addresses = []records.Record{}
	}
	if services == nil {
		services = []records.Record{}
	}

	c.JSON(http.StatusOK, gin.H{
		"cliente":     client,
		"direcciones": addresses,
		"servicios":   withDisplaySchedules(services),
	})
}

// EditForm handles GET /clientes/editar/:id, returning the current
// field values for form population
func (h *ClientHandler) EditForm(c *gin.Context) {
	client, err := h.repos.Client.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		detailError(c, h.log, err, "cliente no encontrado", "no se pudo cargar el cliente")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cliente": client})
}

// Edit handles POST /clientes/editar/:id
func (h *ClientHandler) Edit(c *gin.Context) {
	values := map[string]string{
		"nombre":   c.PostForm("nombre"),
		"telefono": c.PostForm("telefono"),
	}
	if errs := validation.ValidateClientForm(values); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": errs.Error(), "errors": errs})
		return
	}

	condition := "FALSE"
	if c.PostForm("condicion") == "True" {
		condition = "TRUE"
	}

	upd := models.ClientUpdate{
		Name:      values["nombre"],
		Condition: condition,
		Phone:     values["telefono"],
	}
	if err := h.repos.Client.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		mutationError(c, h.log, err, "cliente no encontrado", "no se pudo actualizar el cliente")
		return
	}

	mutationOK(c, "Cliente actualizado exitosamente", "")
}

// Delete handles POST /clientes/borrar/:id. Addresses and services of
// the client are not removed with it.
func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.repos.Client.Delete(c.Request.Context(), id); err != nil {
		mutationError(c, h.log, err, "cliente no encontrado", "no se pudo eliminar el cliente")
		return
	}

	h.log.Info().Str("row_id", id).Msg("Client deleted")
	mutationOK(c, "Cliente eliminado exitosamente", "")
}
