package http

import (
	"net/http"

	"guestbook/internal/entity"
	"guestbook/internal/usecase"
	"guestbook/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type AddressRequest struct {
	Street  string `json:"street" binding:"required,min=2"`
	City    string `json:"city" binding:"required,min=2"`
	Zip     string `json:"zip" binding:"required,min=2,zipcode"`
	Country string `json:"country" binding:"required,min=2"`
	Phone   string `json:"phone" binding:"required,min=4,phone_de"`
}

func (r *AddressRequest) toEntity() *entity.Address {
	return &entity.Address{
		Street:  r.Street,
		City:    r.City,
		Zip:     r.Zip,
		Country: r.Country,
		Phone:   r.Phone,
	}
}

// SubscriptionStatus godoc
// @Summary      Get subscription status
// @Description  Get the caller's billing-derived subscription status string.
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/subscription [get]
func (h *UserHandler) SubscriptionStatus(c *gin.Context) {
	userID := c.GetString("user_id")

	status, err := h.userUseCase.SubscriptionStatus(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription_status": status})
}

// GetAddress godoc
// @Summary      Get shipping address
// @Description  Get the caller's address, or null if none is on file.
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /user/address [get]
func (h *UserHandler) GetAddress(c *gin.Context) {
	userID := c.GetString("user_id")

	address, err := h.userUseCase.GetAddress(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"address": address})
}

// AddAddress godoc
// @Summary      Add shipping address
// @Description  Create the caller's address. A second add is rejected with a conflict.
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AddressRequest true "Address data"
// @Success      201  {object}  entity.Address
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]string
// @Router       /user/address [post]
func (h *UserHandler) AddAddress(c *gin.Context) {
	userID := c.GetString("user_id")

	var req AddressRequest
	if !bindJSON(c, &req) {
		return
	}

	address, err := h.userUseCase.AddAddress(userID, req.toEntity())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, address)
}

// UpdateAddress godoc
// @Summary      Update shipping address
// @Description  Overwrite every field of the caller's existing address.
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AddressRequest true "Address data"
// @Success      200  {object}  entity.Address
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /user/address [put]
func (h *UserHandler) UpdateAddress(c *gin.Context) {
	userID := c.GetString("user_id")

	var req AddressRequest
	if !bindJSON(c, &req) {
		return
	}

	address, err := h.userUseCase.UpdateAddress(userID, req.toEntity())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, address)
}
