// seed carga las categorías base y el administrador inicial en el almacenamiento configurado.
//
// Uso: go run ./cmd/seed
// La contraseña del administrador se toma de SEED_ADMIN_PASSWORD (por defecto Admin@123).
package main

import (
	"context"
	"os"
	"strings"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/seed"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/store"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("abrir almacenamiento")
	}
	defer st.Close()

	categories := usecase.NewCategoryUseCase(st.Categories)
	users := auth.NewAuthUseCase(st.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.BcryptCost)

	res, err := seed.Run(ctx, categories, users, seed.DefaultAdmin(os.Getenv("SEED_ADMIN_PASSWORD")))
	if err != nil {
		log.Error().Err(err).Msg("seed")
		return
	}
	log.Info().
		Str("categorias", strings.Join(res.CategoriesCreated, ", ")).
		Bool("admin_creado", res.AdminCreated).
		Msg("seed completado")
}
