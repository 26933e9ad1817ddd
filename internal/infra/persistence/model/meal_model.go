package model

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// MealModel is the GORM-specific struct for the 'meals' table.
type MealModel struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	UserID        string     `gorm:"column:user_id;type:text;not null;index:idx_meals_user_date,priority:1"`
	Name          string     `gorm:"column:name;type:text;not null"`
	Calories      float64    `gorm:"column:calories;not null"`
	Protein       float64    `gorm:"column:protein;not null"`
	Carbohydrates float64    `gorm:"column:carbohydrates;not null"`
	Fat           float64    `gorm:"column:fat;not null"`
	MealType      *string    `gorm:"column:meal_type;type:text"`
	Date          civil.Date `gorm:"column:date;type:date;not null;index:idx_meals_user_date,priority:2"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}
