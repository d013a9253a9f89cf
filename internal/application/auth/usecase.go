// Package auth contiene el caso de uso de registro y autenticación de usuarios.
package auth

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/elb0ni/mis-finanzas-server/internal/application/dto"
	"github.com/elb0ni/mis-finanzas-server/internal/domain"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
	"github.com/elb0ni/mis-finanzas-server/pkg/config"
	"github.com/elb0ni/mis-finanzas-server/pkg/jwt"
)

// UseCase registro y login. El hash de password vive solo aquí: el dominio
// nunca ve el texto plano.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea el usuario con el password hasheado con bcrypt. El email se
// normaliza a minúsculas antes de consultar y persistir.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}

	existente, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return userToDTO(user), nil
}

// Login valida credenciales y emite el token. Email inexistente y password
// incorrecto devuelven el mismo error: no se filtra cuál falló.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Nombre, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *userToDTO(user)}, nil
}

// Perfil devuelve el usuario autenticado.
func (uc *UseCase) Perfil(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return userToDTO(user), nil
}

func userToDTO(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:            u.ID,
		Nombre:        u.Nombre,
		Email:         u.Email,
		FechaCreacion: u.FechaCreacion,
	}
}
