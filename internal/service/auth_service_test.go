package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-erp-api/internal/models"
	"github.com/noah-isme/campus-erp-api/internal/store"
	appErrors "github.com/noah-isme/campus-erp-api/pkg/errors"
)

func newAuthFixture(t *testing.T) (*store.Directory, *AuthService) {
	t.Helper()
	directory := store.New(store.Seed(), nil)
	auth := NewAuthService(directory, nil, nil, AuthConfig{
		TokenSecret: "test-secret",
		Issuer:      "campus-erp-test",
	})
	return directory, auth
}

func TestLoginSuccess(t *testing.T) {
	directory, auth := newAuthFixture(t)

	session, err := auth.Login(context.Background(), models.LoginRequest{
		Email:      "ananya@college.edu",
		Credential: "student123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, "stu-1001", session.Account.ID)
	assert.Equal(t, models.RoleStudent, session.Account.Role)
	assert.Equal(t, "stu-1001", directory.Session())
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	_, auth := newAuthFixture(t)

	session, err := auth.Login(context.Background(), models.LoginRequest{
		Email:      "  Ananya@College.edu ",
		Credential: "student123",
	})
	require.NoError(t, err)
	assert.Equal(t, "stu-1001", session.Account.ID)
}

func TestLoginWrongCredential(t *testing.T) {
	directory, auth := newAuthFixture(t)

	_, err := auth.Login(context.Background(), models.LoginRequest{
		Email:      "ananya@college.edu",
		Credential: "wrong",
	})
	require.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
	assert.Empty(t, directory.Session())
}

func TestLoginUnknownEmail(t *testing.T) {
	_, auth := newAuthFixture(t)

	_, err := auth.Login(context.Background(), models.LoginRequest{
		Email:      "nobody@college.edu",
		Credential: "whatever",
	})
	require.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestRegisterStudentCreatesRecord(t *testing.T) {
	directory, auth := newAuthFixture(t)

	session, err := auth.Register(context.Background(), models.RegisterRequest{
		Name:       "Rahul Verma",
		Email:      "Rahul@College.edu",
		Credential: "secret1",
		Role:       models.RoleStudent,
		Program:    "B.Sc Physics",
		Year:       "1",
	})
	require.NoError(t, err)

	assert.Equal(t, "rahul@college.edu", session.Account.Email)
	assert.Equal(t, directory.Session(), session.Account.ID)

	snap := directory.Snapshot()
	rec := snap.StudentByID(session.Account.ID)
	require.NotNil(t, rec)
	assert.Zero(t, rec.FeesDue)
	assert.Empty(t, rec.Courses)
	assert.Empty(t, rec.Payments)
	assert.Equal(t, "B.Sc Physics", rec.Program)
}

func TestRegisterAdminHasNoStudentRecord(t *testing.T) {
	directory, auth := newAuthFixture(t)

	session, err := auth.Register(context.Background(), models.RegisterRequest{
		Name:       "Dean",
		Email:      "dean@college.edu",
		Credential: "secret2",
		Role:       models.RoleAdmin,
	})
	require.NoError(t, err)

	assert.Nil(t, directory.Snapshot().StudentByID(session.Account.ID))
}

func TestRegisterDefaultsName(t *testing.T) {
	_, auth := newAuthFixture(t)

	session, err := auth.Register(context.Background(), models.RegisterRequest{
		Email:      "anon@college.edu",
		Credential: "secret3",
		Role:       models.RoleStudent,
	})
	require.NoError(t, err)
	assert.Equal(t, "New User", session.Account.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	directory, auth := newAuthFixture(t)
	before := len(directory.Snapshot().Accounts)

	_, err := auth.Register(context.Background(), models.RegisterRequest{
		Email:      "Ananya@College.edu",
		Credential: "whatever",
		Role:       models.RoleStudent,
	})
	require.ErrorIs(t, err, appErrors.ErrEmailExists)
	assert.Len(t, directory.Snapshot().Accounts, before)
}

func TestEndSessionIsIdempotent(t *testing.T) {
	directory, auth := newAuthFixture(t)
	directory.SetSession("stu-1001")

	auth.EndSession(context.Background())
	assert.Empty(t, directory.Session())
	auth.EndSession(context.Background())
	assert.Empty(t, directory.Session())
}

func TestValidateToken(t *testing.T) {
	_, auth := newAuthFixture(t)

	session, err := auth.Login(context.Background(), models.LoginRequest{
		Email:      "admin@college.edu",
		Credential: "admin123",
	})
	require.NoError(t, err)

	claims, err := auth.ValidateToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AccountID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, auth := newAuthFixture(t)

	_, err := auth.ValidateToken("not-a-token")
	require.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	directory, auth := newAuthFixture(t)

	other := NewAuthService(directory, nil, nil, AuthConfig{TokenSecret: "other-secret"})
	session, err := other.Login(context.Background(), models.LoginRequest{
		Email:      "admin@college.edu",
		Credential: "admin123",
	})
	require.NoError(t, err)

	_, err = auth.ValidateToken(session.AccessToken)
	require.ErrorIs(t, err, appErrors.ErrUnauthorized)
}
