package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlite/sqlitetest"
	pkgjwt "github.com/jhoicas/almacen-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	repo := sqlite.NewUserRepository(sqlitetest.NewDB(t))
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 24 * 60, Issuer: "almacen-api-test"}, bcrypt.MinCost)
}

func registerRequest(username string, role entity.Role) dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "s3cret!",
		FirstName: "Alice",
		LastName:  "Liddell",
		Role:      role,
	}
}

func TestRegisterLogin_RoundTripConRol(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()

	reg, err := uc.Register(ctx, registerRequest("alice", entity.RoleManager))
	require.NoError(t, err)
	require.NotEmpty(t, reg.Token)
	assert.Equal(t, "Alice Liddell", reg.User.FullName)
	assert.True(t, reg.User.IsActive)

	res, err := uc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "s3cret!"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), res.ExpiresAt, 5*time.Second)
	require.NotNil(t, res.User.LastLoginAt)

	claims, err := pkgjwt.Parse(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, string(entity.RoleManager), claims.Role)
	assert.Equal(t, reg.User.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "Alice Liddell", claims.FullName)
}

func TestRegister_RolPorDefectoStaff(t *testing.T) {
	uc := newAuth(t)
	res, err := uc.Register(context.Background(), registerRequest("bob", ""))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, res.User.Role)
}

func TestLogin_FallosIndistinguibles(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()
	_, err := uc.Register(ctx, registerRequest("alice", entity.RoleStaff))
	require.NoError(t, err)

	wrongPass, errA := uc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "nope"})
	unknown, errB := uc.Login(ctx, dto.LoginRequest{Username: "mallory", Password: "s3cret!"})

	assert.NoError(t, errA)
	assert.NoError(t, errB)
	assert.Nil(t, wrongPass)
	assert.Nil(t, unknown)
}

func TestLogin_UsuarioInexistenteTambienComparaHash(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()
	_, err := uc.Register(ctx, registerRequest("alice", entity.RoleStaff))
	require.NoError(t, err)

	calls := 0
	auth.SetCompare(uc, func(hash, password []byte) error {
		calls++
		return bcrypt.CompareHashAndPassword(hash, password)
	})

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "mallory", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Equal(t, 1, calls, "usuario inexistente")

	out, err = uc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "nope"})
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Equal(t, 2, calls, "password incorrecto")
}

func TestRegister_DuplicadosSonConflicto(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()
	_, err := uc.Register(ctx, registerRequest("alice", entity.RoleStaff))
	require.NoError(t, err)

	_, err = uc.Register(ctx, registerRequest("alice", entity.RoleStaff))
	assert.ErrorIs(t, err, domain.ErrUsernameExists)

	sameEmail := registerRequest("alice2", entity.RoleStaff)
	sameEmail.Email = "alice@example.com"
	_, err = uc.Register(ctx, sameEmail)
	assert.ErrorIs(t, err, domain.ErrEmailExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRegister_ConcurrenteSoloUnoGana(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Register(ctx, registerRequest("alice", entity.RoleStaff))
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, domain.ErrConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflicts)
}

func TestRegister_ValidacionDeEntrada(t *testing.T) {
	uc := newAuth(t)
	in := registerRequest("alice", entity.RoleStaff)
	in.Email = "no-es-email"
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestHashYVerifyPassword(t *testing.T) {
	uc := newAuth(t)
	hash, err := uc.HashPassword("clave")
	require.NoError(t, err)
	assert.NotEqual(t, "clave", hash)
	assert.True(t, uc.VerifyPassword("clave", hash))
	assert.False(t, uc.VerifyPassword("otra", hash))
	assert.False(t, uc.VerifyPassword("clave", "hash-corrupto"))
}

func TestGetUserInfo_Inexistente(t *testing.T) {
	uc := newAuth(t)
	info, err := uc.GetUserInfo(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, info)
}
