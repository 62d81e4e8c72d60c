package api

import (
	"net/http"

	reqdto "commission-tracker/internal/handler/dto/request"
	resdto "commission-tracker/internal/handler/dto/response"
	"commission-tracker/internal/handler/httperr"
	"commission-tracker/internal/handler/middleware"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VendorHandler serves the vendor's own serials and clients.
type VendorHandler struct {
	serialCmds commands.SerialCommands
	serials    queries.SerialQueries
	clients    queries.ClientQueries
}

func NewVendorHandler(serialCmds commands.SerialCommands, serials queries.SerialQueries, clients queries.ClientQueries) *VendorHandler {
	return &VendorHandler{serialCmds: serialCmds, serials: serials, clients: clients}
}

// @Summary Create serial
// @Description Register a serial number and issue its purchase link and QR code
// @Tags vendor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSerialRequest true "Serial number"
// @Success 201 {object} resdto.SerialResponse
// @Failure 409 {object} httperr.Response
// @Router /api/vendor/serials [post]
func (h *VendorHandler) CreateSerial(c *gin.Context) {
	vendorID, ok := vendorIDOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateSerialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	view, err := h.serialCmds.Create(c.Request.Context(), vendorID, req.SerialNumber)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromSerial(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary List serials
// @Tags vendor
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SerialResponse
// @Router /api/vendor/serials [get]
func (h *VendorHandler) ListSerials(c *gin.Context) {
	vendorID, ok := vendorIDOf(c)
	if !ok {
		return
	}

	serials, err := h.serials.ListByVendor(c.Request.Context(), vendorID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromSerials(serials)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List own clients
// @Description Clients with completed purchases and commission totals
// @Tags vendor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.VendorClientsResponse
// @Router /api/vendor/clients [get]
func (h *VendorHandler) ListClients(c *gin.Context) {
	vendorID, ok := vendorIDOf(c)
	if !ok {
		return
	}

	view, err := h.clients.ListForVendor(c.Request.Context(), vendorID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromVendorClients(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func vendorIDOf(c *gin.Context) (uuid.UUID, bool) {
	vendorID, ok := middleware.GetVendorID(c)
	if !ok {
		httperr.AbortWithProblem(c, errNotVendor, httperr.Problem{
			Status:  http.StatusForbidden,
			Code:    "FORBIDDEN",
			Message: "Vendor account required",
		}, nil)
		return uuid.Nil, false
	}
	return vendorID, true
}
