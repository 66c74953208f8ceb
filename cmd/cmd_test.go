package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/model"
)

type CommandTestSuite struct {
	suite.Suite
}

func TestCommandTestSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

func (suite *CommandTestSuite) TestReadIngredients_NumbersFromOne() {
	ingredients, err := readIngredients(strings.NewReader(`[
		{"name": "flour", "measurement_unit": "g"},
		{"name": "milk", "measurement_unit": "ml"}
	]`))
	suite.Require().NoError(err)
	suite.Equal([]model.Ingredient{
		{ID: 1, Name: "flour", MeasurementUnit: "g"},
		{ID: 2, Name: "milk", MeasurementUnit: "ml"},
	}, ingredients)
}

func (suite *CommandTestSuite) TestReadIngredients_RejectsIncompleteEntries() {
	_, err := readIngredients(strings.NewReader(`[{"name": "flour", "measurement_unit": "g"}, {"name": "salt"}]`))
	suite.Require().ErrorContains(err, "entry 2")
}

func (suite *CommandTestSuite) TestReadIngredients_RejectsMalformedJSON() {
	_, err := readIngredients(strings.NewReader(`{"name": "flour"}`))
	suite.Require().Error(err)
}

func (suite *CommandTestSuite) TestNewAdmin() {
	admin, err := newAdmin("root@example.com", "root", "s3cret-pass")
	suite.Require().NoError(err)
	suite.Equal(model.RoleAdmin, admin.Role)
	suite.True(admin.IsAdmin())
	suite.True(auth.CheckPassword(admin.PasswordHash, "s3cret-pass"))
}
