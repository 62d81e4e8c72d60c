package api

import (
	"net/http"

	"commission-tracker/internal/domain/purchase"
	reqdto "commission-tracker/internal/handler/dto/request"
	resdto "commission-tracker/internal/handler/dto/response"
	"commission-tracker/internal/handler/httperr"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TechnicianHandler serves the back-office views over all vendors and clients.
type TechnicianHandler struct {
	vendorCmds      commands.VendorCommands
	appointmentCmds commands.AppointmentCommands
	vendors         queries.VendorQueries
	clients         queries.ClientQueries
}

func NewTechnicianHandler(
	vendorCmds commands.VendorCommands,
	appointmentCmds commands.AppointmentCommands,
	vendors queries.VendorQueries,
	clients queries.ClientQueries,
) *TechnicianHandler {
	return &TechnicianHandler{
		vendorCmds:      vendorCmds,
		appointmentCmds: appointmentCmds,
		vendors:         vendors,
		clients:         clients,
	}
}

// @Summary List vendors
// @Description Vendors with completed-sales count and commission total
// @Tags technician
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VendorSummaryResponse
// @Router /api/technician/vendors [get]
func (h *TechnicianHandler) ListVendors(c *gin.Context) {
	vendors, err := h.vendors.ListWithCommissions(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromVendorSummaries(vendors)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update vendor
// @Tags technician
// @Accept json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Param request body reqdto.UpdateVendorRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/technician/vendors/{id} [patch]
func (h *TechnicianHandler) UpdateVendor(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	if err := h.vendorCmds.Update(c.Request.Context(), id, req); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Activate or deactivate vendor
// @Tags technician
// @Accept json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Param request body reqdto.SetVendorActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/technician/vendors/{id}/active [put]
func (h *TechnicianHandler) SetVendorActive(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetVendorActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	if err := h.vendorCmds.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete vendor
// @Tags technician
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/technician/vendors/{id} [delete]
func (h *TechnicianHandler) DeleteVendor(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.vendorCmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List clients
// @Tags technician
// @Produce json
// @Security BearerAuth
// @Param appointment_status query string false "scheduled, completed or cancelled"
// @Success 200 {array} resdto.ClientResponse
// @Router /api/technician/clients [get]
func (h *TechnicianHandler) ListClients(c *gin.Context) {
	var status *purchase.AppointmentStatus
	if raw := c.Query("appointment_status"); raw != "" {
		parsed, err := purchase.ParseAppointmentStatus(raw)
		if err != nil {
			abortWithUseCaseError(c, errs.Mark(err, errs.ErrDomainValidation))
			return
		}
		status = &parsed
	}

	clients, err := h.clients.ListAll(c.Request.Context(), status)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromClients(clients)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update appointment status
// @Tags technician
// @Accept json
// @Security BearerAuth
// @Param id path string true "Purchase ID"
// @Param request body reqdto.UpdateAppointmentStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/technician/purchases/{id}/appointment-status [patch]
func (h *TechnicianHandler) UpdateAppointmentStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	if err := h.appointmentCmds.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithProblem(c, err, httperr.Problem{
			Status:  http.StatusBadRequest,
			Code:    "BAD_REQUEST",
			Message: "Invalid " + name,
		}, nil)
		return uuid.Nil, false
	}
	return id, true
}
