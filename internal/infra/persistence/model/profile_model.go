package model

import (
	"time"

	"cloud.google.com/go/civil"
)

// ProfileModel is the GORM-specific struct for the 'users' table.
// Column names follow the schema the web client already writes to.
type ProfileModel struct {
	ID                   string     `gorm:"column:id;type:text;primaryKey"`
	FirstName            string     `gorm:"column:user_first_name;type:text;not null"`
	Goal                 string     `gorm:"column:user_goal;type:text;not null"`
	ActivityLevel        string     `gorm:"column:user_current_activity_level;type:text;not null"`
	ActivityFactor       float64    `gorm:"column:user_activity_factor_value;not null"`
	Gender               string     `gorm:"column:user_gender;type:text;not null"`
	DateOfBirth          civil.Date `gorm:"column:user_dob;type:date;not null"`
	Age                  int        `gorm:"column:user_age;not null"`
	Height               float64    `gorm:"column:user_height;not null"`
	HeightUnit           string     `gorm:"column:user_height_unit;type:text;not null"`
	CurrentWeight        float64    `gorm:"column:user_current_weight;not null"`
	CurrentWeightUnit    string     `gorm:"column:user_current_weight_unit;type:text;not null"`
	GoalWeight           float64    `gorm:"column:user_goal_weight;not null"`
	GoalWeightUnit       string     `gorm:"column:user_goal_weight_unit;type:text;not null"`
	CaloricGoalIntensity float64    `gorm:"column:user_caloric_goal_intensity_value;not null"`
	CalculatedBMR        float64    `gorm:"column:user_calculated_bmr;not null"`
	CalculatedTDEE       float64    `gorm:"column:user_calculated_tdee;not null"`
	CaloricGoal          float64    `gorm:"column:user_caloric_goal;not null"`
	CreatedAt            time.Time  `gorm:"column:created_at"`
	UpdatedAt            time.Time  `gorm:"column:updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "users"
}
