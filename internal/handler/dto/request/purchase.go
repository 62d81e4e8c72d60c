package request

type StartFlowRequest struct {
	LinkToken string `json:"link_token" binding:"required"`
}

type SelectServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

// SubmitInfoRequest fields are validated by the flow so errors come back per field.
type SubmitInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type SubmitAppointmentRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
