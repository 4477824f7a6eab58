package domain

// ParseTextRequest is the JSON body for text inputs
type ParseTextRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

// ParseOKResponse is returned when the pipeline produced an appointment
type ParseOKResponse struct {
	Status      Status      `json:"status"`
	Appointment Appointment `json:"appointment"`
}

// ClarifyResponse asks the requester for clearer input
type ClarifyResponse struct {
	Status      Status       `json:"status"`
	Message     string       `json:"message"`
	Diagnostics *Diagnostics `json:"diagnostics,omitempty"`
}
