package purchase

type State string

const (
	StateSelectingService      State = "selecting_service"
	StateEnteringInfo          State = "entering_info"
	StateAwaitingPayment       State = "awaiting_payment"
	StateSchedulingAppointment State = "scheduling_appointment"
	StateCompleted             State = "completed"
	StateInvalid               State = "invalid"
)

type Trigger string

const (
	TriggerServiceChosen        Trigger = "service_chosen"
	TriggerInfoSubmitted        Trigger = "info_submitted"
	TriggerPaymentInitiated     Trigger = "payment_initiated"
	TriggerPaymentConfirmed     Trigger = "payment_confirmed"
	TriggerAppointmentSubmitted Trigger = "appointment_submitted"
	TriggerLinkRevoked          Trigger = "link_revoked"
)

var transitions = map[State]map[Trigger]State{
	StateSelectingService: {
		TriggerServiceChosen: StateEnteringInfo,
	},
	StateEnteringInfo: {
		TriggerInfoSubmitted: StateAwaitingPayment,
	},
	StateAwaitingPayment: {
		TriggerPaymentInitiated: StateAwaitingPayment,
		TriggerPaymentConfirmed: StateSchedulingAppointment,
	},
	StateSchedulingAppointment: {
		TriggerAppointmentSubmitted: StateCompleted,
	},
}

// Next resolves trigger against the transition table. Any non-terminal state
// moves to StateInvalid on TriggerLinkRevoked.
func (s State) Next(t Trigger) (State, error) {
	if s.IsTerminal() {
		return s, ErrInvalidTransition
	}
	if t == TriggerLinkRevoked {
		return StateInvalid, nil
	}
	next, ok := transitions[s][t]
	if !ok {
		return s, ErrInvalidTransition
	}
	return next, nil
}

func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateInvalid
}

func (s State) String() string {
	return string(s)
}
