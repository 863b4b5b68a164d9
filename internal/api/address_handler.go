package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/client-service-manager/internal/models"
	"github.com/client-service-manager/internal/repository"
	"github.com/client-service-manager/internal/validation"
)

// AddressHandler handles address CRUD endpoints
type AddressHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(repos *repository.Repositories, log zerolog.Logger) *AddressHandler {
	return &AddressHandler{
		repos: repos,
		log:   log.With().Str("handler", "addresses").Logger(),
	}
}

// NewForm handles GET /direcciones/nueva/:client_id
func (h *AddressHandler) NewForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"id_cliente": c.Param("client_id")})
}

// Create handles POST /direcciones/nueva/:client_id. The client id is
// taken from the path as given; nothing checks that it references an
// existing client.
func (h *AddressHandler) Create(c *gin.Context) {
	values := map[string]string{"direccion": c.PostForm("direccion")}
	if errs := validation.ValidateAddressForm(values); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": errs.Error(), "errors": errs})
		return
	}

	address := &models.Address{
		ClientID: c.Param("client_id"),
		Text:     values["direccion"],
		RowID:    uuid.New().String(),
	}
	if err := h.repos.Address.Create(c.Request.Context(), address); err != nil {
		mutationError(c, h.log, err, "dirección no encontrada", "no se pudo agregar la dirección")
		return
	}

	h.log.Info().Str("row_id", address.RowID).Str("client_id", address.ClientID).Msg("Address created")
	mutationOK(c, "Dirección agregada exitosamente", address.RowID)
}

// Detail handles GET /direcciones/detalle/:id
func (h *AddressHandler) Detail(c *gin.Context) {
	address, err := h.repos.Address.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		detailError(c, h.log, err, "dirección no encontrada", "no se pudo cargar el detalle de la dirección")
		return
	}
	c.JSON(http.StatusOK, gin.H{"direccion": address})
}

// EditForm handles GET /direcciones/editar/:id
func (h *AddressHandler) EditForm(c *gin.Context) {
	address, err := h.repos.Address.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		detailError(c, h.log, err, "dirección no encontrada", "no se pudo cargar la dirección")
		return
	}
	c.JSON(http.StatusOK, gin.H{"direccion": address})
}

// Edit handles POST /direcciones/editar/:id
func (h *AddressHandler) Edit(c *gin.Context) {
	values := map[string]string{"direccion": c.PostForm("direccion")}
	if errs := validation.ValidateAddressForm(values); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": errs.Error(), "errors": errs})
		return
	}

	if err := h.repos.Address.Update(c.Request.Context(), c.Param("id"), values["direccion"]); err != nil {
		mutationError(c, h.log, err, "dirección no encontrada", "no se pudo actualizar la dirección")
		return
	}

	mutationOK(c, "Dirección actualizada exitosamente", "")
}

// Delete handles POST /direcciones/borrar/:id
func (h *AddressHandler) Delete(c *gin.Context) {
	if err := h.repos.Address.Delete(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, h.log, err, "dirección no encontrada", "no se pudo eliminar la dirección")
		return
	}
	mutationOK(c, "Dirección eliminada exitosamente", "")
}
