package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"

	"droscher.com/Foodgram/pkg/model"
)

type IngredientTestSuite struct {
	RepositorySuite
}

func TestIngredientTestSuite(t *testing.T) {
	suite.Run(t, new(IngredientTestSuite))
}

func (suite *IngredientTestSuite) catalogue() []model.Ingredient {
	return []model.Ingredient{
		{ID: 1, Name: "flour", MeasurementUnit: "g"},
		{ID: 2, Name: "sugar", MeasurementUnit: "g"},
	}
}

func (suite *IngredientTestSuite) TestAddIngredients_MovesSequencePastLoadedIDs() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "ingredients" (.+) ON CONFLICT DO NOTHING`).
		WithArgs("flour", "g", uint(1), "sugar", "g", uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)).AddRow(uint(2)))
	suite.mock.ExpectExec(regexp.QuoteMeta(`SELECT setval(pg_get_serial_sequence('ingredients', 'id'), MAX(id)) FROM ingredients`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	added, err := suite.repository.AddIngredients(context.Background(), suite.catalogue())
	suite.Require().NoError(err)
	suite.Equal(int64(2), added)
}

func (suite *IngredientTestSuite) TestAddIngredients_RollsBackWhenSequenceFails() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "ingredients"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)).AddRow(uint(2)))
	suite.mock.ExpectExec(`SELECT setval`).
		WillReturnError(errors.New("permission denied for sequence ingredients_id_seq"))
	suite.mock.ExpectRollback()

	added, err := suite.repository.AddIngredients(context.Background(), suite.catalogue())
	suite.Require().ErrorContains(err, "permission denied")
	suite.Zero(added)
	suite.Len(suite.takeErrorLogs("error adding ingredients"), 1)
	suite.NotEmpty(suite.queryLogs.FilterLevelExact(zapcore.ErrorLevel).All())
}

func (suite *IngredientTestSuite) TestAddIngredients_EmptyCatalogueSkipsQuery() {
	added, err := suite.repository.AddIngredients(context.Background(), nil)
	suite.Require().NoError(err)
	suite.Zero(added)
}
