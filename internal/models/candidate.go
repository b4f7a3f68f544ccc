package models

import (
	"gorm.io/gorm"
)

// Candidate stands for one (position, district) ballot entry.
type Candidate struct {
	gorm.Model
	Name     string `gorm:"column:name;size:255;not null" json:"name"`
	Position string `gorm:"column:position;size:255;not null;index:idx_candidate_scope" json:"position"`
	District string `gorm:"column:district;size:255;not null;index:idx_candidate_scope" json:"district"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// CandidateRequest defines the input for creating or updating a candidate.
type CandidateRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position" binding:"required"`
	District string `json:"district" binding:"required"`
}
