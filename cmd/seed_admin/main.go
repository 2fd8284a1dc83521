// seed_admin crea el primer superadmin. El alta de usuarios por API exige un superadmin,
// así que la primera cuenta se crea con este comando.
//
// Uso: go run ./cmd/seed_admin <usuario> <password> [area]
// Usa la misma configuración que la API (DATABASE_URL o DB_*). Si el usuario ya existe no hace nada.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Suministros-api/pkg/config"
	"github.com/jhoicas/Suministros-api/pkg/logger"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "uso: seed_admin <usuario> <password> [area]")
		os.Exit(2)
	}
	username := strings.TrimSpace(os.Args[1])
	password := os.Args[2]
	area := "Sistemas"
	if len(os.Args) > 3 {
		area = strings.TrimSpace(os.Args[3])
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, AppName: "seed_admin"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	users := postgres.NewUserRepository(pool)
	existing, err := users.GetByUsername(ctx, username)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar usuario")
	}
	if existing != nil {
		log.Info().Str("user", username).Msg("el usuario ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de password")
	}
	u := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperAdmin,
		Area:         area,
		ProfileColor: entity.DefaultProfileColor,
		Confirmed:    true,
	}
	if err := users.Create(ctx, u); err != nil {
		log.Fatal().Err(err).Msg("crear superadmin")
	}
	log.Info().Int64("id", u.ID).Str("user", u.Username).Str("area", u.Area).Msg("superadmin creado")
}
