package purchase

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch p := PaymentStatus(s); p {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return p, nil
	}
	return "", ErrInvalidPaymentStatus
}

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch a := AppointmentStatus(s); a {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled:
		return a, nil
	}
	return "", ErrInvalidAppointmentStatus
}
