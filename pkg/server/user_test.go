package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/stretchr/testify/mock"

	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

func registration() map[string]string {
	return map[string]string{
		"email":      "cook@example.com",
		"username":   "cook",
		"first_name": "Jamie",
		"last_name":  "Oliver",
		"password":   "s3cret-pass",
	}
}

func (suite *ServerTestSuite) TestRegisterUser() {
	suite.repo.EXPECT().AddUser(mock.Anything, mock.MatchedBy(func(user model.User) bool {
		return user.Email == "cook@example.com" &&
			user.Username == "cook" &&
			user.Role == model.RoleUser &&
			auth.CheckPassword(user.PasswordHash, "s3cret-pass")
	})).Return(&model.User{ID: 12, Email: "cook@example.com", Username: "cook", FirstName: "Jamie", LastName: "Oliver"}, nil)

	recorder := suite.do(http.MethodPost, "/api/users/", registration(), nil)
	suite.Equal(http.StatusCreated, recorder.Code)
	suite.JSONEq(`{
		"email": "cook@example.com",
		"id": 12,
		"username": "cook",
		"first_name": "Jamie",
		"last_name": "Oliver"
	}`, recorder.Body.String())
}

func (suite *ServerTestSuite) TestRegisterExistingUser() {
	suite.repo.EXPECT().AddUser(mock.Anything, mock.Anything).Return(nil, repository.ErrDuplicate)

	recorder := suite.do(http.MethodPost, "/api/users/", registration(), nil)
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("a user with this email or username already exists", suite.errorMessage(recorder))
}

func (suite *ServerTestSuite) TestRegisterValidatesFields() {
	body := registration()
	body["username"] = "bad name!"
	body["email"] = "not-an-email"

	recorder := suite.do(http.MethodPost, "/api/users/", body, nil)
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("bad request: email: email; username: username", suite.errorMessage(recorder))
}

func (suite *ServerTestSuite) TestRegisterRejectsMalformedJSON() {
	request := httptest.NewRequest(http.MethodPost, "/api/users/", strings.NewReader(`{"email": `))
	recorder := httptest.NewRecorder()
	suite.handler.ServeHTTP(recorder, request)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(suite.errorMessage(recorder), "malformed JSON body")
}

func (suite *ServerTestSuite) TestLoginThenMe() {
	hash, err := auth.HashPassword("s3cret-pass")
	suite.Require().NoError(err)

	suite.cook.PasswordHash = hash
	suite.repo.EXPECT().GetUserFromEmail(mock.Anything, "cook@example.com").Return(suite.cook, nil)

	login := suite.do(http.MethodPost, "/api/auth/token/login/",
		map[string]string{"email": "cook@example.com", "password": "s3cret-pass"}, nil)
	suite.Require().Equal(http.StatusOK, login.Code, login.Body.String())

	var token struct {
		AuthToken string `json:"auth_token"`
	}

	suite.decodeBody(login, &token)
	suite.Require().NotEmpty(token.AuthToken)

	suite.repo.EXPECT().GetUserByUUID(mock.Anything, suite.cook.UUID).Return(suite.cook, nil).Once()

	request := httptest.NewRequest(http.MethodGet, "/api/users/me/", nil)
	request.Header.Set("Authorization", "Token "+token.AuthToken)
	recorder := httptest.NewRecorder()
	suite.handler.ServeHTTP(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{
		"email": "cook@example.com",
		"id": 7,
		"username": "cook",
		"first_name": "",
		"last_name": "",
		"is_subscribed": false
	}`, recorder.Body.String())
}

func (suite *ServerTestSuite) TestLoginWrongPassword() {
	hash, err := auth.HashPassword("s3cret-pass")
	suite.Require().NoError(err)

	suite.cook.PasswordHash = hash
	suite.repo.EXPECT().GetUserFromEmail(mock.Anything, "cook@example.com").Return(suite.cook, nil)

	recorder := suite.do(http.MethodPost, "/api/auth/token/login/",
		map[string]string{"email": "cook@example.com", "password": "wrong"}, nil)
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("unable to log in with provided credentials", suite.errorMessage(recorder))
}

func (suite *ServerTestSuite) TestLogout() {
	recorder := suite.do(http.MethodPost, "/api/auth/token/logout/", nil, suite.cook)
	suite.Equal(http.StatusNoContent, recorder.Code)

	anonymous := suite.do(http.MethodPost, "/api/auth/token/logout/", nil, nil)
	suite.Equal(http.StatusUnauthorized, anonymous.Code)
}

func (suite *ServerTestSuite) TestMeRequiresAuthentication() {
	recorder := suite.do(http.MethodGet, "/api/users/me/", nil, nil)
	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *ServerTestSuite) TestListUsers() {
	suite.repo.EXPECT().ListUsers(mock.Anything, 6, 0).Return([]*model.User{suite.author, suite.cook}, int64(2), nil)
	suite.repo.EXPECT().RelatedTargets(mock.Anything, model.FollowRelation, uint(7), []uint{3, 7}).Return(map[uint]bool{3: true}, nil)

	recorder := suite.do(http.MethodGet, "/api/users/", nil, suite.cook)
	suite.Equal(http.StatusOK, recorder.Code)

	var page struct {
		Count   int64 `json:"count"`
		Results []struct {
			ID           uint `json:"id"`
			IsSubscribed bool `json:"is_subscribed"`
		} `json:"results"`
	}

	suite.decodeBody(recorder, &page)
	suite.Equal(int64(2), page.Count)
	suite.Require().Len(page.Results, 2)
	suite.True(page.Results[0].IsSubscribed)
	suite.False(page.Results[1].IsSubscribed)
}

func (suite *ServerTestSuite) TestGetUser() {
	suite.repo.EXPECT().GetUserByID(mock.Anything, uint(3)).Return(suite.author, nil)

	recorder := suite.do(http.MethodGet, "/api/users/3/", nil, nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"username":"chef"`)
}

func (suite *ServerTestSuite) TestSetPassword() {
	hash, err := auth.HashPassword("s3cret-pass")
	suite.Require().NoError(err)

	suite.cook.PasswordHash = hash
	suite.repo.EXPECT().UpdatePassword(mock.Anything, uint(7), mock.MatchedBy(func(newHash string) bool {
		return auth.CheckPassword(newHash, "n3w-pass")
	})).Return(nil)

	recorder := suite.do(http.MethodPost, "/api/users/set_password/",
		map[string]string{"current_password": "s3cret-pass", "new_password": "n3w-pass"}, suite.cook)
	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *ServerTestSuite) TestSetPasswordWrongCurrent() {
	hash, err := auth.HashPassword("s3cret-pass")
	suite.Require().NoError(err)

	suite.cook.PasswordHash = hash

	recorder := suite.do(http.MethodPost, "/api/users/set_password/",
		map[string]string{"current_password": "guess", "new_password": "n3w-pass"}, suite.cook)
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(suite.errorMessage(recorder), "current_password")
}

func (suite *ServerTestSuite) TestSubscribe() {
	suite.repo.EXPECT().GetUserByID(mock.Anything, uint(3)).Return(suite.author, nil)
	suite.repo.EXPECT().AddRelation(mock.Anything, model.FollowRelation, uint(7), uint(3)).Return(nil)
	suite.repo.EXPECT().CountAuthorRecipes(mock.Anything, []uint{3}).Return(map[uint]int64{3: 4}, nil)
	suite.repo.EXPECT().GetAuthorRecipes(mock.Anything, uint(3), 1).Return([]model.Recipe{*suite.recipe(5, suite.author)}, nil)

	recorder := suite.do(http.MethodPost, "/api/users/3/subscribe/?recipes_limit=1", nil, suite.cook)
	suite.Equal(http.StatusCreated, recorder.Code)
	suite.JSONEq(`{
		"email": "chef@example.com",
		"id": 3,
		"username": "chef",
		"first_name": "",
		"last_name": "",
		"is_subscribed": true,
		"recipes": [
			{"id": 5, "name": "Pancakes", "image": "/media/recipes/images/pancakes.png", "cooking_time": 20}
		],
		"recipes_count": 4
	}`, recorder.Body.String())
}

func (suite *ServerTestSuite) TestSubscribeToSelf() {
	recorder := suite.do(http.MethodPost, "/api/users/7/subscribe/", nil, suite.cook)
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("cannot add yourself to subscriptions", suite.errorMessage(recorder))
}

func (suite *ServerTestSuite) TestSubscribeTwice() {
	suite.repo.EXPECT().GetUserByID(mock.Anything, uint(3)).Return(suite.author, nil)
	suite.repo.EXPECT().AddRelation(mock.Anything, model.FollowRelation, uint(7), uint(3)).Return(repository.ErrDuplicate)

	recorder := suite.do(http.MethodPost, "/api/users/3/subscribe/", nil, suite.cook)
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("already added to subscriptions", suite.errorMessage(recorder))
}

func (suite *ServerTestSuite) TestUnsubscribeWithoutSubscription() {
	suite.repo.EXPECT().GetUserByID(mock.Anything, uint(3)).Return(suite.author, nil)
	suite.repo.EXPECT().RemoveRelation(mock.Anything, model.FollowRelation, uint(7), uint(3)).Return(false, nil)

	recorder := suite.do(http.MethodDelete, "/api/users/3/subscribe/", nil, suite.cook)
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("not found in subscriptions", suite.errorMessage(recorder))
}

func (suite *ServerTestSuite) TestListSubscriptions() {
	suite.repo.EXPECT().GetFollowedAuthors(mock.Anything, uint(7), 6, 0).Return([]*model.User{suite.author}, int64(1), nil)
	suite.repo.EXPECT().CountAuthorRecipes(mock.Anything, []uint{3}).Return(map[uint]int64{3: 2}, nil)
	suite.repo.EXPECT().GetAuthorRecipes(mock.Anything, uint(3), 0).Return([]model.Recipe{
		*suite.recipe(5, suite.author),
		*suite.recipe(6, suite.author),
	}, nil)

	recorder := suite.do(http.MethodGet, "/api/users/subscriptions/", nil, suite.cook)
	suite.Equal(http.StatusOK, recorder.Code)

	var page struct {
		Count   int64 `json:"count"`
		Results []struct {
			ID           uint  `json:"id"`
			IsSubscribed bool  `json:"is_subscribed"`
			RecipesCount int64 `json:"recipes_count"`
			Recipes      []struct {
				ID uint `json:"id"`
			} `json:"recipes"`
		} `json:"results"`
	}

	suite.decodeBody(recorder, &page)
	suite.Equal(int64(1), page.Count)
	suite.Require().Len(page.Results, 1)
	suite.True(page.Results[0].IsSubscribed)
	suite.Equal(int64(2), page.Results[0].RecipesCount)
	suite.Len(page.Results[0].Recipes, 2)
}

func (suite *ServerTestSuite) TestListSubscriptionsInvalidRecipesLimit() {
	recorder := suite.do(http.MethodGet, "/api/users/subscriptions/?recipes_limit=-1", nil, suite.cook)
	suite.Equal(http.StatusBadRequest, recorder.Code)
}
