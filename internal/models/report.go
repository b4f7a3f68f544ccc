package models

// TotalsFilter selects the submissions feeding one aggregation run. District
// is the coarsest required field; the finer ones narrow the vote query only.
// AgentID is set by the server for agent-role viewers, never by the client.
type TotalsFilter struct {
	Position  string
	District  string
	Subcounty string
	Parish    string
	Village   string
	AgentID   string
}

// CandidateTotal is one aggregation row: a candidate with their summed votes
// and share of the grand total, rounded to one decimal place.
type CandidateTotal struct {
	CandidateID uint    `json:"candidateId"`
	Name        string  `json:"name"`
	Total       int     `json:"total"`
	Percent     float64 `json:"percent"`
}
