package entity

// CallbackState is a step of callback reconciliation.
type CallbackState int

const (
	CallbackStateIdle CallbackState = iota
	CallbackStateValidating
	CallbackStateExchangingCode
	CallbackStateAwaitingAdditionalInfo
	CallbackStateResolvedSuccess
	CallbackStateResolvedFailure
	CallbackStateResolvedDuplicate
)

var callbackStateNames = map[CallbackState]string{
	CallbackStateIdle:                   "idle",
	CallbackStateValidating:             "validating",
	CallbackStateExchangingCode:         "exchanging_code",
	CallbackStateAwaitingAdditionalInfo: "awaiting_additional_info",
	CallbackStateResolvedSuccess:        "success",
	CallbackStateResolvedFailure:        "failure",
	CallbackStateResolvedDuplicate:      "duplicate",
}

func (s CallbackState) String() string {
	if name, ok := callbackStateNames[s]; ok {
		return name
	}

	return "unknown"
}

// IsTerminal reports whether no further transition can leave the state.
func (s CallbackState) IsTerminal() bool {
	return s == CallbackStateResolvedSuccess ||
		s == CallbackStateResolvedFailure ||
		s == CallbackStateResolvedDuplicate
}

// MarshalText renders the state name in JSON payloads.
func (s CallbackState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CallbackOutcome is where one reconciliation run stopped.
type CallbackOutcome struct {
	Provider   ProviderType    `json:"provider"`
	State      CallbackState   `json:"state"`
	RedirectTo string          `json:"redirectTo,omitempty"`
	Session    *AuthSession    `json:"session,omitempty"`
	Pending    *PendingProfile `json:"pending,omitempty"`
	Err        error           `json:"-"`

	// Suppressed is set when another reconciliation for the same client and provider was in flight
	Suppressed bool `json:"suppressed,omitempty"`
}
