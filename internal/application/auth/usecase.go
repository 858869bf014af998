package auth

import (
	"time"

	"github.com/gevp/gevp-api/internal/application/dto"
	"github.com/gevp/gevp-api/internal/domain"
	"github.com/gevp/gevp-api/internal/domain/entity"
	"github.com/gevp/gevp-api/internal/domain/repository"
	"github.com/gevp/gevp-api/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	Algorithm  string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login e identidad actual.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	countryRepo repository.CountryRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, countryRepo repository.CountryRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, countryRepo: countryRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario inactivo: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe. La cuenta queda
// pendiente de activación por un SUPER_ADMIN.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEditor
	}
	switch role {
	case entity.RoleSuperAdmin, entity.RoleCountryAdmin, entity.RoleEditor:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.CountryID != nil {
		country, err := uc.countryRepo.GetByID(*in.CountryID)
		if err != nil {
			return nil, err
		}
		if country == nil {
			return nil, domain.ErrNotFound
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CountryID:    in.CountryID,
		IsActive:     false, // requiere aprobación de un SUPER_ADMIN
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password sobre el estado actual del usuario y emite
// un token de acceso. Usuario inexistente y password incorrecto devuelven el
// mismo error; cuenta inactiva se distingue (ErrAccountInactive).
func (uc *AuthUseCase) Login(username, password string) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Algorithm, user.ID, user.Role, user.Country(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Me devuelve la identidad actual del usuario ya autenticado por el middleware.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CountryID: u.CountryID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
