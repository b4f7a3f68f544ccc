package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// PollingStation is a leaf of the location hierarchy.
type PollingStation struct {
	Name string `json:"name"`
}

// Parish groups polling stations.
type Parish struct {
	Name            string           `json:"name"`
	PollingStations []PollingStation `json:"pollingStations"`
}

// Subunit is one constituency/subcounty branch under a district.
type Subunit struct {
	Constituency string   `json:"constituency"`
	Subcounty    string   `json:"subcounty"`
	Parishes     []Parish `json:"parishes"`
}

// SubunitList is stored as a JSON column so the whole hierarchy is read and
// replaced as one aggregate.
type SubunitList []Subunit

func (l SubunitList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *SubunitList) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*l = SubunitList{}
		return nil
	default:
		return fmt.Errorf("unsupported subunit column type %T", value)
	}
	if len(data) == 0 {
		*l = SubunitList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// District is the configuration aggregate for one district and its subunit
// tree. Mutated only by superadmin, read by every role to populate selectors.
type District struct {
	gorm.Model
	Name     string      `gorm:"column:name;size:255;not null;unique" json:"name"`
	Subunits SubunitList `gorm:"column:subunits;type:json" json:"subunits"`
}

func (District) TableName() string {
	return "config_districts"
}

// Position is one electable office (President, Parliament, ...).
type Position struct {
	gorm.Model
	Name string `gorm:"column:name;size:255;not null;unique" json:"name"`
}

func (Position) TableName() string {
	return "config_positions"
}

// DistrictRequest defines the input for creating or updating a district.
type DistrictRequest struct {
	Name     string      `json:"name" binding:"required"`
	Subunits SubunitList `json:"subunits"`
}

// PositionRequest defines the input for creating or updating a position.
type PositionRequest struct {
	Name string `json:"name" binding:"required"`
}
