package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"address-directory/internal/models"

	"github.com/gin-gonic/gin"
)

// AddressHandler handles the CRUD requests for stored addresses
type AddressHandler struct {
	service AddressService
}

// Service interface for dependency injection
type AddressService interface {
	Create(ctx context.Context, input models.AddressInput) (models.Address, error)
	Get(ctx context.Context, id int) (models.Address, error)
	List(ctx context.Context) ([]models.Address, error)
	Update(ctx context.Context, id int, input models.AddressInput) (models.Address, error)
	Delete(ctx context.Context, id int) error
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(svc AddressService) *AddressHandler {
	return &AddressHandler{service: svc}
}

// writeServiceError maps a service failure onto the matching HTTP response.
func writeServiceError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func addressID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address id"})
		return 0, false
	}
	return id, true
}

// Create handles POST /address/ requests
//
//	@Summary	Create an address
//	@Accept		json
//	@Produce	json
//	@Param		address	body		models.AddressInput	true	"address fields"
//	@Success	200		{object}	models.Address
//	@Failure	400		{object}	map[string]string
//	@Failure	422		{object}	map[string]any
//	@Router		/address/ [post]
func (h *AddressHandler) Create(c *gin.Context) {
	var input models.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	addr, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, addr)
}

// Get handles GET /address/{id} requests
//
//	@Summary	Read an address by id
//	@Produce	json
//	@Param		id	path		int	true	"address id"
//	@Success	200	{object}	models.Address
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/address/{id} [get]
func (h *AddressHandler) Get(c *gin.Context) {
	id, ok := addressID(c)
	if !ok {
		return
	}

	addr, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, addr)
}

// List handles GET /addresses/all/ requests
//
//	@Summary	List every stored address
//	@Produce	json
//	@Success	200	{array}	models.Address
//	@Router		/addresses/all/ [get]
func (h *AddressHandler) List(c *gin.Context) {
	addresses, err := h.service.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}

// Update handles PUT /address/{id} requests
//
//	@Summary	Update an address; omitted fields keep their stored values
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"address id"
//	@Param		address	body		models.AddressInput	true	"fields to change"
//	@Success	200		{object}	models.Address
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Failure	422		{object}	map[string]any
//	@Router		/address/{id} [put]
func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := addressID(c)
	if !ok {
		return
	}

	var input models.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	addr, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, addr)
}

// Delete handles DELETE /address/{id} requests
//
//	@Summary	Delete an address
//	@Produce	json
//	@Param		id	path		int	true	"address id"
//	@Success	200	{object}	map[string]string
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/address/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := addressID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Address deleted !"})
}
