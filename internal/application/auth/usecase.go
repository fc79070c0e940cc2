package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/docuexpress/docuexpress-api/internal/application/dto"
	"github.com/docuexpress/docuexpress-api/internal/domain"
	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
	"github.com/docuexpress/docuexpress-api/pkg/config"
	"github.com/docuexpress/docuexpress-api/pkg/jwt"
	"github.com/docuexpress/docuexpress-api/pkg/logger"
)

const minPasswordLen = 6

// UseCase registro, login y gestión de usuarios.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg config.JWTConfig
	log    *logger.Logger
}

func NewUseCase(users repository.UserRepository, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg, log: log}
}

// Register crea una cuenta nueva. El rol vacío queda como employee; solo un
// admin existente puede crear otros admins (lo valida el handler).
func (uc *UseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username requerido", domain.ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: la contraseña necesita al menos %d caracteres", domain.ErrInvalidInput, minPasswordLen)
	}

	role := req.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	if role != entity.RoleAdmin && role != entity.RoleEmployee {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear contraseña: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("usuario registrado")
	return uc.issueToken(user)
}

// Login verifica credenciales y emite un token.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	uc.log.Info().Str("user_id", user.ID).Msg("login")
	return uc.issueToken(user)
}

// ChangePassword cambia la contraseña verificando la actual.
func (uc *UseCase) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	if len(req.NewPassword) < minPasswordLen {
		return fmt.Errorf("%w: la contraseña necesita al menos %d caracteres", domain.ErrInvalidInput, minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashear contraseña: %w", err)
	}
	return uc.users.UpdatePassword(ctx, userID, string(hash))
}

// Me devuelve la vista pública del usuario autenticado.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// ListUsers lista las demás cuentas (pantalla de impersonación del admin).
func (uc *UseCase) ListUsers(ctx context.Context, requesterID string) ([]dto.UserResponse, error) {
	users, err := uc.users.ListExcept(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}
	return resp, nil
}

// UpdateUserRole cambia el rol de otra cuenta. Un admin no puede degradarse
// a sí mismo, eso dejaría la instalación sin admins por accidente.
func (uc *UseCase) UpdateUserRole(ctx context.Context, requesterID, targetID string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if req.Role != entity.RoleAdmin && req.Role != entity.RoleEmployee {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, req.Role)
	}
	if targetID == requesterID {
		return nil, fmt.Errorf("%w: no puedes cambiar tu propio rol", domain.ErrInvalidInput)
	}

	user, err := uc.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	user.Role = req.Role
	user.UpdatedAt = time.Now().UTC()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("rol actualizado")
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// DeleteUser elimina otra cuenta; la propia no se puede borrar.
func (uc *UseCase) DeleteUser(ctx context.Context, requesterID, targetID string) error {
	if targetID == requesterID {
		return fmt.Errorf("%w: no puedes eliminar tu propia cuenta", domain.ErrInvalidInput)
	}
	if err := uc.users.Delete(ctx, targetID); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", targetID).Msg("usuario eliminado")
	return nil
}

func (uc *UseCase) issueToken(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}
