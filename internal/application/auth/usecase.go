package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/boardgames-store/internal/application/dto"
	"github.com/jhoicas/boardgames-store/internal/domain"
	"github.com/jhoicas/boardgames-store/internal/domain/entity"
	"github.com/jhoicas/boardgames-store/internal/domain/repository"
	"github.com/jhoicas/boardgames-store/pkg/session"
	"golang.org/x/crypto/bcrypt"
)

// SessionConfig configuración para emisión de tokens de sesión.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Hash de relleno para igualar el costo de Verify cuando el email no existe:
// ambos caminos ejecutan exactamente una comparación bcrypt.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthUseCase casos de uso de autenticación: registro y verificación de credenciales.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	sessionCfg SessionConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, sessionCfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, sessionCfg: sessionCfg}
}

// Register crea un usuario: hashea password con bcrypt, asigna el rol customer
// y persiste. Devuelve domain.ErrEmailAlreadyExists si el email ya existe
// (pre-chequeo y, ante una carrera, el constraint único de la DB).
// No inicia sesión: el caller debe autenticarse por separado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role, err := uc.roleRepo.GetByName(entity.RoleCustomer)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound // falta sembrar roles (cmd/seed)
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
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		RoleID:       role.ID,
		Phone:        in.Phone,
		Address:      in.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user, role.Name), nil
}

// Verify comprueba email/password y emite un token de sesión.
// Email desconocido y password incorrecto devuelven el mismo
// domain.ErrInvalidCredentials: el caller no puede distinguirlos, y el camino
// de email desconocido ejecuta igualmente una comparación bcrypt.
func (uc *AuthUseCase) Verify(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	role, err := uc.roleRepo.GetByID(user.RoleID)
	if err != nil {
		return nil, err
	}
	roleName := entity.RoleCustomer
	if role != nil {
		roleName = role.Name
	}
	token, err := session.Issue(uc.sessionCfg.Secret, session.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   roleName,
	}, uc.sessionCfg.Issuer, uc.sessionCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user, roleName),
	}, nil
}

func toUserResponse(u *entity.User, roleName string) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      roleName,
		CreatedAt: u.CreatedAt,
	}
}
