package models

import (
	"gorm.io/gorm"
)

// Submission lifecycle states. A record is written pending and moves exactly
// once, to approved or rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Submission is one append-only tally record from a field agent. CandidateID
// is nil in the tally-only variant; in the per-candidate variant Votes carries
// that candidate's count. After creation the only legal mutation is the status
// transition performed by an admin.
type Submission struct {
	gorm.Model
	AgentID     string `gorm:"column:agent_id;type:varchar(36);not null;index" json:"agentId"`
	Position    string `gorm:"column:position;size:255;not null;index:idx_submission_scope" json:"position"`
	District    string `gorm:"column:district;size:255;not null;index:idx_submission_scope" json:"district"`
	Subcounty   string `gorm:"column:subcounty;size:255" json:"subcounty"`
	Parish      string `gorm:"column:parish;size:255" json:"parish"`
	Village     string `gorm:"column:village;size:255" json:"village"`
	CandidateID *uint  `gorm:"column:candidate_id;index" json:"candidateId,omitempty"`
	Accredited  int    `gorm:"column:accredited;not null" json:"accredited"`
	VotesCast   int    `gorm:"column:votes_cast;not null" json:"votesCast"`
	Spoiled     int    `gorm:"column:spoiled;not null" json:"spoiled"`
	Votes       int    `gorm:"column:votes;default:0" json:"votes"`
	Status      string `gorm:"column:status;size:16;not null;default:pending;index" json:"status"`
	Validated   bool   `gorm:"column:validated;default:false" json:"validated"`
	DRFormURL   string `gorm:"column:dr_form_url;size:512" json:"drFormUrl,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}

// CandidateVoteEntry is one per-candidate count in the multi-candidate form.
type CandidateVoteEntry struct {
	CandidateID uint `json:"candidateId" binding:"required"`
	Votes       *int `json:"votes" binding:"required"`
}

// SubmissionRequest defines the input for recording a tally. The numeric
// fields are pointers so a legitimate zero still satisfies presence checks;
// the recorder rejects missing or negative values before any write happens.
type SubmissionRequest struct {
	Position   string               `json:"position" binding:"required"`
	District   string               `json:"district" binding:"required"`
	Subcounty  string               `json:"subcounty"`
	Parish     string               `json:"parish"`
	Village    string               `json:"village"`
	Accredited *int                 `json:"accredited" binding:"required"`
	VotesCast  *int                 `json:"votesCast" binding:"required"`
	Spoiled    *int                 `json:"spoiled" binding:"required"`
	Candidates []CandidateVoteEntry `json:"candidates"`
	DRFormURL  string               `json:"drFormUrl"`
}

// SubmissionFilter narrows submission listings. Zero-valued fields are not
// applied, so the filter is a superset match on the populated ones.
type SubmissionFilter struct {
	Position  string
	District  string
	Subcounty string
	Parish    string
	Village   string
	Status    string
	AgentID   string
}
