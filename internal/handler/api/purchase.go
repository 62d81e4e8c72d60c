package api

import (
	"net/http"

	reqdto "commission-tracker/internal/handler/dto/request"
	resdto "commission-tracker/internal/handler/dto/response"
	"commission-tracker/internal/handler/httperr"
	"commission-tracker/internal/handler/middleware"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	cmds    commands.PurchaseFlowCommands
	flows   queries.FlowQueries
	catalog queries.CatalogQueries
}

func NewPurchaseHandler(cmds commands.PurchaseFlowCommands, flows queries.FlowQueries, catalog queries.CatalogQueries) *PurchaseHandler {
	return &PurchaseHandler{cmds: cmds, flows: flows, catalog: catalog}
}

// @Summary Start purchase flow
// @Description Resolve a purchase link and open a flow in selecting_service
// @Tags purchase
// @Accept json
// @Produce json
// @Param request body reqdto.StartFlowRequest true "Link token"
// @Success 201 {object} resdto.FlowResponse
// @Failure 410 {object} httperr.Response
// @Router /api/purchase/flows [post]
func (h *PurchaseHandler) Start(c *gin.Context) {
	var req reqdto.StartFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	view, err := h.cmds.Start(c.Request.Context(), req.LinkToken)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	middleware.SetFlowID(c, view.ID)
	h.respondFlow(c, http.StatusCreated, view)
}

// @Summary Get purchase flow
// @Description Last published state of a flow; never waits for a running step
// @Tags purchase
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} httperr.Response
// @Router /api/purchase/flows/{id} [get]
func (h *PurchaseHandler) Get(c *gin.Context) {
	flowID, ok := flowIDParam(c)
	if !ok {
		return
	}

	view, err := h.flows.Get(c.Request.Context(), flowID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondFlow(c, http.StatusOK, view)
}

// @Summary Select service
// @Tags purchase
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body reqdto.SelectServiceRequest true "Service"
// @Success 200 {object} resdto.FlowResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/purchase/flows/{id}/service [post]
func (h *PurchaseHandler) SelectService(c *gin.Context) {
	flowID, ok := flowIDParam(c)
	if !ok {
		return
	}
	var req reqdto.SelectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	view, err := h.cmds.SelectService(c.Request.Context(), flowID, req.ServiceID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondFlow(c, http.StatusOK, view)
}

// @Summary Submit client info
// @Tags purchase
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body reqdto.SubmitInfoRequest true "Client details"
// @Success 200 {object} resdto.FlowResponse
// @Failure 422 {object} httperr.Response
// @Router /api/purchase/flows/{id}/info [post]
func (h *PurchaseHandler) SubmitInfo(c *gin.Context) {
	flowID, ok := flowIDParam(c)
	if !ok {
		return
	}
	var req reqdto.SubmitInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	view, err := h.cmds.SubmitInfo(c.Request.Context(), flowID, req.Name, req.Email, req.Phone)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondFlow(c, http.StatusOK, view)
}

// @Summary Initiate payment
// @Description Records the client and purchase once, then returns the hosted checkout URL.
// @Description An already settled purchase returns paid=true and no checkout URL.
// @Tags purchase
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.PaymentRedirectResponse
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/purchase/flows/{id}/payment [post]
func (h *PurchaseHandler) InitiatePayment(c *gin.Context) {
	flowID, ok := flowIDParam(c)
	if !ok {
		return
	}

	redirect, err := h.cmds.InitiatePayment(c.Request.Context(), flowID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentRedirectResponse{
		CheckoutURL: redirect.CheckoutURL,
		SessionID:   redirect.SessionID,
		PurchaseID:  redirect.PurchaseID,
		Paid:        redirect.Paid,
	})
}

// @Summary Return from checkout
// @Tags purchase
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 502 {object} httperr.Response
// @Router /api/purchase/flows/{id}/payment/return [post]
func (h *PurchaseHandler) ResumeAfterPayment(c *gin.Context) {
	flowID, ok := flowIDParam(c)
	if !ok {
		return
	}

	view, err := h.cmds.ResumeAfterPayment(c.Request.Context(), flowID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondFlow(c, http.StatusOK, view)
}

// @Summary Cancel checkout
// @Tags purchase
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Router /api/purchase/flows/{id}/payment/cancel [post]
func (h *PurchaseHandler) CancelPayment(c *gin.Context) {
	flowID, ok := flowIDParam(c)
	if !ok {
		return
	}

	view, err := h.cmds.CancelPayment(c.Request.Context(), flowID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondFlow(c, http.StatusOK, view)
}

// @Summary Book appointment
// @Tags purchase
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body reqdto.SubmitAppointmentRequest true "Date and time"
// @Success 200 {object} resdto.FlowResponse
// @Failure 422 {object} httperr.Response
// @Router /api/purchase/flows/{id}/appointment [post]
func (h *PurchaseHandler) SubmitAppointment(c *gin.Context) {
	flowID, ok := flowIDParam(c)
	if !ok {
		return
	}
	var req reqdto.SubmitAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	view, err := h.cmds.SubmitAppointment(c.Request.Context(), flowID, req.Date, req.Time)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondFlow(c, http.StatusOK, view)
}

// @Summary Appointment times
// @Tags purchase
// @Produce json
// @Success 200 {object} resdto.SlotsResponse
// @Router /api/purchase/slots [get]
func (h *PurchaseHandler) Slots(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.SlotsResponse{Times: h.catalog.AppointmentTimes()})
}

// @Summary Service catalog
// @Tags purchase
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Router /api/catalog [get]
func (h *PurchaseHandler) Catalog(c *gin.Context) {
	res, err := resdto.FromCatalog(h.catalog.List())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *PurchaseHandler) respondFlow(c *gin.Context, status int, view *queries.FlowView) {
	res, err := resdto.FromFlowView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}

func flowIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparsable id can never name a live flow.
		abortWithUseCaseError(c, shared.ErrFlowNotFound)
		return uuid.Nil, false
	}
	middleware.SetFlowID(c, id)
	return id, true
}
