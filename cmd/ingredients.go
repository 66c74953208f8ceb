package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/model"
)

type LoadIngredientsCmd struct {
	ConfigFile string `default:".Foodgram.toml"         help:"Path to config file"            short:"c"`
	File       string `default:"data/ingredients.json" help:"JSON file with the ingredients" short:"f"`
}

type ingredientRecord struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func (l *LoadIngredientsCmd) Run(_ *Context) error {
	logger := commandLogger()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	file, err := os.Open(l.File)
	if err != nil {
		logger.Error("error opening ingredients file", zap.String("file", l.File), zap.Error(err))

		return err
	}
	defer file.Close()

	ingredients, err := readIngredients(file)
	if err != nil {
		logger.Error("error reading ingredients file", zap.String("file", l.File), zap.Error(err))

		return err
	}

	repo, err := openRepository(l.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	added, err := repo.AddIngredients(context.Background(), ingredients)
	if err != nil {
		logger.Error("error loading ingredients", zap.Error(err))

		return err
	}

	logger.Info("ingredients loaded", zap.Int("read", len(ingredients)), zap.Int64("added", added))

	return nil
}

// readIngredients decodes the catalogue and numbers the entries from 1 in file
// order, so reloading the same file is idempotent.
func readIngredients(reader io.Reader) ([]model.Ingredient, error) {
	var records []ingredientRecord
	if err := json.NewDecoder(reader).Decode(&records); err != nil {
		return nil, err
	}

	ingredients := make([]model.Ingredient, 0, len(records))

	for index, record := range records {
		if record.Name == "" || record.MeasurementUnit == "" {
			return nil, fmt.Errorf("entry %d: name and measurement_unit are required", index+1)
		}

		ingredients = append(ingredients, model.Ingredient{
			ID:              uint(index + 1),
			Name:            record.Name,
			MeasurementUnit: record.MeasurementUnit,
		})
	}

	return ingredients, nil
}
