package models

import (
	"gorm.io/gorm"
)

// Incident report states.
const (
	IncidentOpen     = "open"
	IncidentResolved = "resolved"
)

// Incident is an append-only field report. Any authenticated user may create
// one; only admin or superadmin may flip it to resolved; nothing deletes it.
type Incident struct {
	gorm.Model
	AgentID     string `gorm:"column:agent_id;type:varchar(36);not null;index" json:"agentId"`
	Headline    string `gorm:"column:headline;size:255;not null" json:"headline"`
	Description string `gorm:"column:description;type:text" json:"description"`
	District    string `gorm:"column:district;size:255" json:"district"`
	Subcounty   string `gorm:"column:subcounty;size:255" json:"subcounty"`
	Parish      string `gorm:"column:parish;size:255" json:"parish"`
	Village     string `gorm:"column:village;size:255" json:"village"`
	PhotoURL    string `gorm:"column:photo_url;size:512" json:"photoUrl,omitempty"`
	Status      string `gorm:"column:status;size:16;not null;default:open;index" json:"status"`
}

func (Incident) TableName() string {
	return "incidents"
}

// IncidentRequest defines the input for reporting an incident.
type IncidentRequest struct {
	Headline    string `json:"headline" binding:"required"`
	Description string `json:"description"`
	District    string `json:"district"`
	Subcounty   string `json:"subcounty"`
	Parish      string `json:"parish"`
	Village     string `json:"village"`
	PhotoURL    string `json:"photoUrl"`
}
