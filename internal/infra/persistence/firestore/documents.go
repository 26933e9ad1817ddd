package firestore

import (
	"time"

	"myetician/internal/domain/entity"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileDoc is the Firestore shape of a profile. Dates are stored as
// YYYY-MM-DD strings so they sort and compare lexically.
type profileDoc struct {
	FirstName         string    `firestore:"firstName"`
	Gender            string    `firestore:"gender"`
	DateOfBirth       string    `firestore:"dateOfBirth"`
	Goal              string    `firestore:"goal"`
	ActivityLevel     string    `firestore:"activityLevel"`
	ActivityFactor    float64   `firestore:"activityFactor"`
	Height            float64   `firestore:"height"`
	HeightUnit        string    `firestore:"heightUnit"`
	CurrentWeight     float64   `firestore:"currentWeight"`
	CurrentWeightUnit string    `firestore:"currentWeightUnit"`
	GoalWeight        float64   `firestore:"goalWeight"`
	GoalWeightUnit    string    `firestore:"goalWeightUnit"`
	Intensity         float64   `firestore:"intensity"`
	Age               int       `firestore:"age"`
	BMR               float64   `firestore:"bmr"`
	TDEE              float64   `firestore:"tdee"`
	CaloricGoal       float64   `firestore:"caloricGoal"`
	CreatedAt         time.Time `firestore:"createdAt"`
	UpdatedAt         time.Time `firestore:"updatedAt"`
}

type mealDoc struct {
	Name          string    `firestore:"name"`
	Calories      float64   `firestore:"calories"`
	Protein       float64   `firestore:"protein"`
	Carbohydrates float64   `firestore:"carbohydrates"`
	Fat           float64   `firestore:"fat"`
	MealType      string    `firestore:"mealType,omitempty"`
	Date          string    `firestore:"date"`
	CreatedAt     time.Time `firestore:"createdAt"`
}

func fromProfileDomain(p *entity.UserProfile) *profileDoc {
	return &profileDoc{
		FirstName:         p.FirstName,
		Gender:            string(p.Gender),
		DateOfBirth:       p.DateOfBirth.String(),
		Goal:              string(p.Goal),
		ActivityLevel:     string(p.ActivityLevel),
		ActivityFactor:    p.ActivityFactor,
		Height:            p.Height.Value,
		HeightUnit:        string(p.Height.Unit),
		CurrentWeight:     p.CurrentWeight.Value,
		CurrentWeightUnit: string(p.CurrentWeight.Unit),
		GoalWeight:        p.GoalWeight.Value,
		GoalWeightUnit:    string(p.GoalWeight.Unit),
		Intensity:         p.IntensityPercent,
		Age:               p.Metrics.Age,
		BMR:               p.Metrics.BMR,
		TDEE:              p.Metrics.TDEE,
		CaloricGoal:       p.Metrics.CaloricGoal,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toProfileDomain(userID string, d *profileDoc) (*entity.UserProfile, error) {
	dob, err := civil.ParseDate(d.DateOfBirth)
	if err != nil {
		return nil, errors.Wrapf(err, "profile %s has invalid dateOfBirth", userID)
	}

	return &entity.UserProfile{
		UserID:           userID,
		FirstName:        d.FirstName,
		Gender:           entity.Gender(d.Gender),
		DateOfBirth:      dob,
		Goal:             entity.Goal(d.Goal),
		ActivityLevel:    entity.ActivityLevel(d.ActivityLevel),
		ActivityFactor:   d.ActivityFactor,
		Height:           entity.Height{Value: d.Height, Unit: entity.HeightUnit(d.HeightUnit)},
		CurrentWeight:    entity.Weight{Value: d.CurrentWeight, Unit: entity.WeightUnit(d.CurrentWeightUnit)},
		GoalWeight:       entity.Weight{Value: d.GoalWeight, Unit: entity.WeightUnit(d.GoalWeightUnit)},
		IntensityPercent: d.Intensity,
		Metrics: entity.GoalMetrics{
			Age:         d.Age,
			BMR:         d.BMR,
			TDEE:        d.TDEE,
			CaloricGoal: d.CaloricGoal,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func fromMealDomain(m *entity.MealEntry) *mealDoc {
	return &mealDoc{
		Name:          m.Name,
		Calories:      m.Calories,
		Protein:       m.Protein,
		Carbohydrates: m.Carbohydrates,
		Fat:           m.Fat,
		MealType:      string(m.MealType),
		Date:          m.Date.String(),
		CreatedAt:     m.CreatedAt,
	}
}

func toMealDomain(userID, docID string, d *mealDoc) (*entity.MealEntry, error) {
	id, err := uuid.Parse(docID)
	if err != nil {
		return nil, errors.Wrapf(err, "meal document %s has a non-UUID ID", docID)
	}
	date, err := civil.ParseDate(d.Date)
	if err != nil {
		return nil, errors.Wrapf(err, "meal %s has invalid date", docID)
	}

	return &entity.MealEntry{
		ID:            id,
		UserID:        userID,
		Name:          d.Name,
		Calories:      d.Calories,
		Protein:       d.Protein,
		Carbohydrates: d.Carbohydrates,
		Fat:           d.Fat,
		MealType:      entity.MealType(d.MealType),
		Date:          date,
		CreatedAt:     d.CreatedAt,
	}, nil
}
