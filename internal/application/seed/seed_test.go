package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/seed"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlite/sqlitetest"
)

func TestRun_EsIdempotente(t *testing.T) {
	db := sqlitetest.NewDB(t)
	ctx := context.Background()
	categories := usecase.NewCategoryUseCase(sqlite.NewCategoryRepository(db))
	users := auth.NewAuthUseCase(sqlite.NewUserRepository(db), auth.JWTConfig{Secret: "s", ExpMinutes: 60}, bcrypt.MinCost)

	first, err := seed.Run(ctx, categories, users, seed.DefaultAdmin(""))
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics", "Clothing", "Books"}, first.CategoriesCreated)
	assert.True(t, first.AdminCreated)

	second, err := seed.Run(ctx, categories, users, seed.DefaultAdmin(""))
	require.NoError(t, err)
	assert.Empty(t, second.CategoriesCreated)
	assert.False(t, second.AdminCreated)

	list, err := categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	login, err := users.Login(ctx, dto.LoginRequest{Username: "admin", Password: "Admin@123"})
	require.NoError(t, err)
	require.NotNil(t, login)
	assert.Equal(t, entity.RoleSuperAdmin, login.User.Role)
	assert.Equal(t, "admin@warehouse.com", login.User.Email)
}
