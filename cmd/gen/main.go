package main

import (
	"myetician/internal/infra/persistence/model"

	"gorm.io/gen"
)

// MealQuerier holds the hand-written meal log queries gen renders as typed
// methods.
type MealQuerier interface {
	// SELECT * FROM @@table WHERE user_id = @userID AND date = @date ORDER BY created_at
	FindByUserAndDate(userID string, date string) ([]*gen.T, error)

	// SELECT * FROM @@table WHERE user_id = @userID AND date BETWEEN @from AND @to ORDER BY date, created_at
	FindByUserInRange(userID string, from, to string) ([]*gen.T, error)

	// DELETE FROM @@table WHERE id = @id AND user_id = @userID
	DeleteOwned(id string, userID string) (gen.RowsAffected, error)
}

// Generates typed query helpers for the postgres backend models.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.ProfileModel{})
	g.ApplyInterface(func(MealQuerier) {}, model.MealModel{})

	g.Execute()
}
