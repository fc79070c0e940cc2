// Comando create-admin da de alta una cuenta admin desde la terminal.
// Útil para el arranque inicial, cuando aún no existe ningún admin que pueda
// crear otros.
//
// Uso:
//
//	create-admin -username admin -password <contraseña>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
	"github.com/docuexpress/docuexpress-api/internal/infrastructure/postgres"
	"github.com/docuexpress/docuexpress-api/pkg/config"
	"github.com/docuexpress/docuexpress-api/pkg/logger"
)

func main() {
	username := flag.String("username", "", "nombre de usuario del admin")
	password := flag.String("password", "", "contraseña (mínimo 6 caracteres)")
	flag.Parse()

	if *username == "" || len(*password) < 6 {
		fmt.Fprintln(os.Stderr, "uso: create-admin -username <nombre> -password <contraseña de 6+ caracteres>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name})

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña")
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     *username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	users := postgres.NewUserRepo(pool)
	if err := users.Create(ctx, user); err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}

	log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("admin creado")
}
