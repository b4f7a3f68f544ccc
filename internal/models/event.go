package models

// Event types published to Kafka and fanned out to websocket subscribers.
const (
	EventSubmissionCreated  = "submission.created"
	EventSubmissionApproved = "submission.approved"
	EventSubmissionRejected = "submission.rejected"
	EventIncidentCreated    = "incident.created"
	EventIncidentResolved   = "incident.resolved"
)

// Event is the wire form of a change notification. Payload holds the record
// that changed, already shaped for clients.
type Event struct {
	Type       string      `json:"type"`
	AgentID    string      `json:"agentId,omitempty"`
	Submission *Submission `json:"submission,omitempty"`
	Incident   *Incident   `json:"incident,omitempty"`
}
