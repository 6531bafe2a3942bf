package dto

// ApplicationAcceptedEvent is published when an administrator moves an
// application to Accepted. The mail worker consumes it and delivers the
// already-composed message.
type ApplicationAcceptedEvent struct {
	ApplicationID string `json:"application_id"`
	StudentID     string `json:"student_id"`
	To            string `json:"to"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
	OccurredAt    string `json:"occurred_at"`
}

const EventKeyApplicationAccepted = "application.accepted"
