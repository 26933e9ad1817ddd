package entity

// FoodCandidate is a food item returned by a lookup, with nutrition per serving.
type FoodCandidate struct {
	Name          string  `json:"name"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	ServingSize   string  `json:"serving_size"`
}

// PhotoAnalysis is the nutrition estimate for a photographed meal.
type PhotoAnalysis struct {
	Calories      float64  `json:"calories"`
	Protein       float64  `json:"protein"`
	Carbohydrates float64  `json:"carbohydrates"`
	Fat           float64  `json:"fat"`
	Ingredients   []string `json:"ingredients"`
}

// MealSuggestion is a proposed meal with its estimated nutrition.
type MealSuggestion struct {
	Name          string  `json:"name"`
	Portion       string  `json:"portion"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}
