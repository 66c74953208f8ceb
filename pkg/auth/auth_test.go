package auth_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/mocks"
	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

type AuthTestSuite struct {
	suite.Suite
	conf    *configs.Config
	users   *mocks.UserStore
	manager *auth.Manager
	user    *model.User
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (suite *AuthTestSuite) SetupTest() {
	suite.conf = &configs.Config{Auth: configs.Auth{SecretKey: "secret", Issuer: "foodgram", TokenLifetime: time.Hour}}
	suite.users = mocks.NewUserStore(suite.T())
	suite.manager = auth.NewAuthManager(suite.conf, suite.users, zap.NewNop())

	hash, err := auth.HashPassword("s3cret-pass")
	suite.Require().NoError(err)

	suite.user = &model.User{ID: 7, UUID: uuid.New(), Email: "cook@example.com", Username: "cook", PasswordHash: hash}
}

// whoAmI answers with the username of the authenticated user, or "anonymous".
func whoAmI() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := auth.UserFromContext(r.Context())
		if user == nil {
			_, _ = w.Write([]byte("anonymous"))

			return
		}

		_, _ = w.Write([]byte(user.Username))
	})
}

func (suite *AuthTestSuite) serve(handler http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/users/me/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func (suite *AuthTestSuite) TestLogin_IssuesTokenThatAuthenticates() {
	ctx := context.Background()

	suite.users.EXPECT().GetUserFromEmail(ctx, "cook@example.com").Return(suite.user, nil)
	suite.users.EXPECT().GetUserByUUID(mock.Anything, suite.user.UUID).Return(suite.user, nil)

	token, err := suite.manager.Login(ctx, "cook@example.com", "s3cret-pass")
	suite.Require().NoError(err)
	suite.NotEmpty(token)

	for _, scheme := range []string{"Bearer", "bearer", "Token"} {
		rec := suite.serve(suite.manager.Authenticate(whoAmI()), scheme+" "+token)

		suite.Equal(http.StatusOK, rec.Code, scheme)
		suite.Equal("cook", rec.Body.String(), scheme)
	}
}

func (suite *AuthTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()

	suite.users.EXPECT().GetUserFromEmail(ctx, "cook@example.com").Return(suite.user, nil)

	_, err := suite.manager.Login(ctx, "cook@example.com", "wrong")
	suite.Require().ErrorIs(err, auth.ErrInvalidCredentials)
}

func (suite *AuthTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.users.EXPECT().GetUserFromEmail(ctx, "nobody@example.com").
		Return(nil, fmt.Errorf("%w: record not found", repository.ErrNotFound))

	_, err := suite.manager.Login(ctx, "nobody@example.com", "s3cret-pass")
	suite.Require().ErrorIs(err, auth.ErrInvalidCredentials)
}

func (suite *AuthTestSuite) TestLogin_StoreFailure() {
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	suite.users.EXPECT().GetUserFromEmail(ctx, "cook@example.com").Return(nil, storeErr)

	_, err := suite.manager.Login(ctx, "cook@example.com", "s3cret-pass")
	suite.Require().ErrorIs(err, storeErr)
}

func (suite *AuthTestSuite) TestAuthenticate_NoHeaderIsAnonymous() {
	rec := suite.serve(suite.manager.Authenticate(whoAmI()), "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("anonymous", rec.Body.String())
}

func (suite *AuthTestSuite) TestAuthenticate_GarbageTokenIsRejected() {
	rec := suite.serve(suite.manager.Authenticate(whoAmI()), "Bearer not-a-token")

	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.JSONEq(`{"errors": "authentication credentials were not provided or are invalid"}`, rec.Body.String())
}

func (suite *AuthTestSuite) TestAuthenticate_ExpiredTokenIsRejected() {
	expired := auth.NewTokens(configs.Auth{SecretKey: "secret", Issuer: "foodgram", TokenLifetime: -time.Minute})

	token, err := expired.Issue(suite.user)
	suite.Require().NoError(err)

	rec := suite.serve(suite.manager.Authenticate(whoAmI()), "Bearer "+token)
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *AuthTestSuite) TestAuthenticate_ForeignSignatureIsRejected() {
	foreign := auth.NewTokens(configs.Auth{SecretKey: "other", Issuer: "foodgram", TokenLifetime: time.Hour})

	token, err := foreign.Issue(suite.user)
	suite.Require().NoError(err)

	rec := suite.serve(suite.manager.Authenticate(whoAmI()), "Bearer "+token)
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *AuthTestSuite) TestAuthenticate_DeletedUserIsRejected() {
	token, err := auth.NewTokens(suite.conf.Auth).Issue(suite.user)
	suite.Require().NoError(err)

	suite.users.EXPECT().GetUserByUUID(mock.Anything, suite.user.UUID).
		Return(nil, fmt.Errorf("%w: record not found", repository.ErrNotFound))

	rec := suite.serve(suite.manager.Authenticate(whoAmI()), "Bearer "+token)
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *AuthTestSuite) TestRequireUser() {
	handler := auth.RequireUser(whoAmI())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/me/", nil))
	suite.Equal(http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me/", nil)
	req = req.WithContext(auth.WithUser(req.Context(), suite.user))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("cook", rec.Body.String())
}

func (suite *AuthTestSuite) TestTokenClaims() {
	tokens := auth.NewTokens(suite.conf.Auth)

	token, err := tokens.Issue(suite.user)
	suite.Require().NoError(err)

	claims, err := tokens.Parse(token)
	suite.Require().NoError(err)
	suite.Equal("cook@example.com", claims.Email)
	suite.Equal(suite.user.UUID.String(), claims.Subject)
	suite.Equal("foodgram", claims.Issuer)
	suite.NotEmpty(claims.ID)
	suite.WithinDuration(time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	_, err = auth.NewTokens(configs.Auth{SecretKey: "secret", Issuer: "someone-else", TokenLifetime: time.Hour}).Parse(token)
	suite.Require().ErrorIs(err, auth.ErrUnauthenticated)
}

func (suite *AuthTestSuite) TestParse_RejectsUnsignedTokens() {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": suite.user.UUID.String()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	suite.Require().NoError(err)

	_, err = auth.NewTokens(suite.conf.Auth).Parse(token)
	suite.Require().ErrorIs(err, auth.ErrUnauthenticated)
}

func (suite *AuthTestSuite) TestPasswords() {
	hash, err := auth.HashPassword("correct horse")
	suite.Require().NoError(err)

	suite.NotEqual("correct horse", hash)
	suite.True(auth.CheckPassword(hash, "correct horse"))
	suite.False(auth.CheckPassword(hash, "battery staple"))
}
