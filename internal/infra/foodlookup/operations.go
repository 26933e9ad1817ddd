package foodlookup

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/service"
	"myetician/internal/errors"

	"google.golang.org/genai"
)

const searchPrompt = `You are a comprehensive food and nutrition database API.
Based on the user's query, find up to %d matching food items.
For each item, provide a common name (including preparation if relevant), a standard serving size
and estimated nutrition for that serving.

Query: %q

Answer with JSON only, shaped as:
{"results":[{"name":string,"calories":number,"protein":number,"carbohydrates":number,"fat":number,"serving_size":string}]}
Protein, carbohydrates and fat are in grams. If nothing matches, answer {"results":[]}.`

const photoPrompt = `You are a nutrition expert analyzing a photo of a meal to estimate its nutritional content.
Estimate the calories, protein (grams), carbohydrates (grams) and fat (grams) of the whole meal
and list the ingredients you can identify.

Answer with JSON only, shaped as:
{"calories":number,"protein":number,"carbohydrates":number,"fat":number,"ingredients":[string]}`

const suggestionPrompt = `You are a helpful assistant that suggests food items and portion sizes based on
a user's past meals and dietary preferences.

Past meals: %s
Dietary preferences: %s

Answer with JSON only, shaped as:
{"suggestions":[{"name":string,"portion":string,"calories":number,"protein":number,"carbohydrates":number,"fat":number}]}`

type searchAnswer struct {
	Results []entity.FoodCandidate `json:"results"`
}

type suggestionAnswer struct {
	Suggestions []entity.MealSuggestion `json:"suggestions"`
}

var nutritionProperties = map[string]*genai.Schema{
	"calories":      {Type: genai.TypeNumber},
	"protein":       {Type: genai.TypeNumber},
	"carbohydrates": {Type: genai.TypeNumber},
	"fat":           {Type: genai.TypeNumber},
}

func objectSchema(extra map[string]*genai.Schema, required ...string) *genai.Schema {
	properties := make(map[string]*genai.Schema, len(nutritionProperties)+len(extra))
	for name, schema := range nutritionProperties {
		properties[name] = schema
	}
	for name, schema := range extra {
		properties[name] = schema
	}

	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: properties,
		Required:   append(required, "calories", "protein", "carbohydrates", "fat"),
	}
}

var (
	searchSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"results": {
				Type: genai.TypeArray,
				Items: objectSchema(map[string]*genai.Schema{
					"name":         {Type: genai.TypeString},
					"serving_size": {Type: genai.TypeString},
				}, "name", "serving_size"),
			},
		},
		Required: []string{"results"},
	}

	photoSchema = objectSchema(map[string]*genai.Schema{
		"ingredients": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	})

	suggestionSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"suggestions": {
				Type: genai.TypeArray,
				Items: objectSchema(map[string]*genai.Schema{
					"name":    {Type: genai.TypeString},
					"portion": {Type: genai.TypeString},
				}, "name", "portion"),
			},
		},
		Required: []string{"suggestions"},
	}
)

// pastMeal is the slice of a logged meal shown to the model.
type pastMeal struct {
	Date     string  `json:"date"`
	MealType string  `json:"meal_type,omitempty"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
}

// SearchFood asks the model for up to five matching foods. Queries shorter than
// two characters are answered locally with no results.
func (c *GeminiClient) SearchFood(ctx context.Context, query string) ([]entity.FoodCandidate, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < service.MinSearchQueryLength {
		return []entity.FoodCandidate{}, nil
	}

	var answer searchAnswer
	prompt := fmt.Sprintf(searchPrompt, service.MaxSearchResults, query)
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if err := c.generate(ctx, "search food", parts, searchSchema, &answer); err != nil {
		return nil, err
	}

	results := make([]entity.FoodCandidate, 0, len(answer.Results))
	for _, candidate := range answer.Results {
		if strings.TrimSpace(candidate.Name) == "" {
			continue
		}
		results = append(results, candidate)
		if len(results) == service.MaxSearchResults {
			break
		}
	}

	return results, nil
}

// AnalyzeMealPhoto sends the photo inline together with the analysis prompt.
func (c *GeminiClient) AnalyzeMealPhoto(ctx context.Context, dataURI string) (*entity.PhotoAnalysis, error) {
	mimeType, data, err := ParseDataURI(dataURI)
	if err != nil {
		return nil, err
	}

	parts := []*genai.Part{
		genai.NewPartFromText(photoPrompt),
		genai.NewPartFromBytes(data, mimeType),
	}

	var analysis entity.PhotoAnalysis
	if err := c.generate(ctx, "analyze meal photo", parts, photoSchema, &analysis); err != nil {
		return nil, err
	}
	if analysis.Ingredients == nil {
		analysis.Ingredients = []string{}
	}

	return &analysis, nil
}

// SuggestMeals describes recent meals to the model and returns its proposals.
func (c *GeminiClient) SuggestMeals(ctx context.Context, pastMeals []*entity.MealEntry, preferences string) ([]entity.MealSuggestion, error) {
	history := make([]pastMeal, 0, len(pastMeals))
	for _, meal := range pastMeals {
		history = append(history, pastMeal{
			Date:     meal.Date.String(),
			MealType: string(meal.MealType),
			Name:     meal.Name,
			Calories: meal.Calories,
		})
	}

	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	preferences = strings.TrimSpace(preferences)
	if preferences == "" {
		preferences = "none stated"
	}

	var answer suggestionAnswer
	prompt := fmt.Sprintf(suggestionPrompt, historyJSON, preferences)
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if err := c.generate(ctx, "suggest meals", parts, suggestionSchema, &answer); err != nil {
		return nil, err
	}
	if answer.Suggestions == nil {
		return []entity.MealSuggestion{}, nil
	}

	return answer.Suggestions, nil
}

// ParseDataURI splits "data:<mime>;base64,<payload>" into its MIME type and
// decoded payload.
func ParseDataURI(dataURI string) (mimeType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(dataURI), "data:")
	if !ok {
		return "", nil, domainerrors.ErrInvalidPhoto.WithDetails("missing data: prefix")
	}

	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, domainerrors.ErrInvalidPhoto.WithDetails("missing payload")
	}

	mimeType, ok = strings.CutSuffix(header, ";base64")
	if !ok || mimeType == "" {
		return "", nil, domainerrors.ErrInvalidPhoto.WithDetails("expected data:<mimetype>;base64,<data>")
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return "", nil, domainerrors.ErrInvalidPhoto.WithDetails("unsupported media type " + mimeType)
	}

	if payload == "" {
		return "", nil, domainerrors.ErrInvalidPhoto.WithDetails("empty payload")
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, domainerrors.ErrInvalidPhoto.WithDetails("payload is not base64")
	}

	return mimeType, data, nil
}
