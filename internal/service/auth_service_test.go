package service

import (
	"context"
	"strings"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	dao         *db.DbDao
	tokenMaker  token.Maker
	authService IAuthService
}

func (suite *AuthServiceTestSuite) SetupSuite() {
	suite.dao = setupTestDao(suite.T())

	maker, err := token.NewJWTMaker(strings.Repeat("t", 32))
	require.NoError(suite.T(), err)
	suite.tokenMaker = maker

	userService := NewUserService(db.NewUserRepo(suite.dao))
	suite.authService = NewAuthService(userService, maker)
}

func (suite *AuthServiceTestSuite) SetupTest() {
	cleanTables(suite.T(), suite.dao)
}

func (suite *AuthServiceTestSuite) TestSignup() {
	user, err := suite.authService.Signup(context.Background(), "Alice", "alice@example.com", "secret123")

	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), user.UserID)
	require.Equal(suite.T(), "customer", user.Role)
	// 不可存明文密碼
	require.NotEqual(suite.T(), "secret123", user.HashedPassword)
}

func (suite *AuthServiceTestSuite) TestSignup_DuplicateEmail() {
	_, err := suite.authService.Signup(context.Background(), "Alice", "dup@example.com", "secret123")
	require.NoError(suite.T(), err)

	_, err = suite.authService.Signup(context.Background(), "Bob", "dup@example.com", "other456")
	require.ErrorIs(suite.T(), err, ErrEmailAlreadyExists)
}

func (suite *AuthServiceTestSuite) TestLogin() {
	created, err := suite.authService.Signup(context.Background(), "Alice", "login@example.com", "secret123")
	require.NoError(suite.T(), err)

	result, err := suite.authService.Login(context.Background(), "login@example.com", "secret123")

	require.NoError(suite.T(), err)
	require.NotEmpty(suite.T(), result.AccessToken)
	require.Equal(suite.T(), created.UserID, result.User.UserID)
	require.Greater(suite.T(), result.ExpiresIn, 0)

	payload, err := suite.tokenMaker.VerifyToken(result.AccessToken)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), created.UserID, payload.UserID)
	require.Equal(suite.T(), "customer", payload.Role)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	_, err := suite.authService.Signup(context.Background(), "Alice", "wrong@example.com", "secret123")
	require.NoError(suite.T(), err)

	result, err := suite.authService.Login(context.Background(), "wrong@example.com", "bad-password")
	require.ErrorIs(suite.T(), err, ErrInvalidCredentials)
	require.Nil(suite.T(), result)
}

// 帳號不存在與密碼錯誤回同一個錯誤
func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	result, err := suite.authService.Login(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(suite.T(), err, ErrInvalidCredentials)
	require.Nil(suite.T(), result)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
