// Package stage manages the ordered recruitment pipeline.
package stage

// Stage is one ordered step in the pipeline (e.g. Applied, Interview, Hired).
type Stage struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null"`
	Order     int    `json:"order" gorm:"column:position;not null"`
	IsDefault bool   `json:"isDefault" gorm:"column:is_default"`
}

func (Stage) TableName() string {
	return "stages"
}

// Repository defines the data access methods for stages.
type Repository interface {
	Create(s *Stage) error
	GetByID(id int64) (*Stage, error)
	// GetAll returns stages sorted by pipeline position.
	GetAll() ([]*Stage, error)
	GetDefault() (*Stage, error)
}
