// Package auth implementa el credential store: altas, bajas y verificación de
// usuarios con clave salteada, más el login que emite el token de sesión.
package auth

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/application/authz"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/gestion-api/pkg/jwt"
	"github.com/jhoicas/gestion-api/pkg/passhash"
)

// Mensajes de las operaciones de usuarios.
const (
	MsgUserCreated   = "Usuario creado."
	MsgUserUpdated   = "Usuario actualizado."
	MsgUserDeleted   = "Usuario eliminado."
	MsgUserExists    = "El usuario ya existe."
	MsgUserNotFound  = "El usuario no existe."
	MsgInvalidLevel  = "Nivel de usuario inválido."
	MsgMissingFields = "Usuario y contraseña son requeridos."
	MsgEmptyPassword = "La nueva contraseña no puede estar vacía."
	MsgWrongPassword = "Contraseña incorrecta."
)

// JWTConfig configuración para la generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase operaciones del credential store. Las mutaciones van dentro de una
// transacción y pasan por la puerta de autorización (módulo users, nivel 1).
type UseCase struct {
	users  repository.UserRepository
	tx     repository.TxRunner
	gate   *authz.Gate
	hasher *passhash.Hasher
	jwtCfg JWTConfig
}

// NewUseCase construye el credential store.
func NewUseCase(users repository.UserRepository, tx repository.TxRunner, gate *authz.Gate, hasher *passhash.Hasher, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, tx: tx, gate: gate, hasher: hasher, jwtCfg: jwtCfg}
}

// CreateUser crea un usuario con salt fresco y clave hasheada. Rechaza
// usuario/clave vacíos, nivel fuera de {1,2,3} y username duplicado.
func (uc *UseCase) CreateUser(ctx context.Context, actor string, in dto.CreateUserRequest) (*dto.UserSummary, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleUsers, authz.ActionCreate); err != nil {
		return nil, err
	}
	if in.Username == "" || in.Password == "" {
		return nil, domain.Validation(MsgMissingFields)
	}
	if !entity.ValidLevel(in.Level) {
		return nil, domain.Validation(MsgInvalidLevel)
	}
	salt, err := uc.hasher.NewSalt()
	if err != nil {
		return nil, domain.Storage(err, domain.ErrStorage.Error())
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: uc.hasher.Hash(salt, in.Password),
		Salt:         salt,
		Level:        in.Level,
	}
	err = uc.tx.Run(ctx, func(r repository.Repos) error {
		existing, err := r.Users.GetByUsername(ctx, in.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Conflict(MsgUserExists)
		}
		return r.Users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return &dto.UserSummary{Username: user.Username, Level: user.Level}, nil
}

// VerifyUser recalcula el hash con el salt almacenado y compara en tiempo
// constante. No requiere autorización: es la operación de login.
func (uc *UseCase) VerifyUser(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domain.Validation(MsgMissingFields)
	}
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NotFound(MsgUserNotFound)
	}
	if !uc.hasher.Verify(user.Salt, password, user.PasswordHash) {
		return domain.Authorization(MsgWrongPassword)
	}
	return nil
}

// UpdateUser cambia clave y/o nivel. Una clave nueva genera salt nuevo y
// rehashea; si no se envía, hash y salt quedan intactos.
func (uc *UseCase) UpdateUser(ctx context.Context, actor, username string, in dto.UpdateUserRequest) (*dto.UserSummary, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleUsers, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if in.Level != nil && !entity.ValidLevel(*in.Level) {
		return nil, domain.Validation(MsgInvalidLevel)
	}
	if in.Password != nil && *in.Password == "" {
		return nil, domain.Validation(MsgEmptyPassword)
	}
	var out dto.UserSummary
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		user, err := r.Users.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.NotFound(MsgUserNotFound)
		}
		if in.Level != nil {
			user.Level = *in.Level
		}
		if in.Password != nil {
			salt, err := uc.hasher.NewSalt()
			if err != nil {
				return domain.Storage(err, domain.ErrStorage.Error())
			}
			user.Salt = salt
			user.PasswordHash = uc.hasher.Hash(salt, *in.Password)
		}
		if err := r.Users.Update(ctx, user); err != nil {
			return err
		}
		out = dto.UserSummary{Username: user.Username, Level: user.Level}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser elimina un usuario existente.
func (uc *UseCase) DeleteUser(ctx context.Context, actor, username string) error {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleUsers, authz.ActionDelete); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(r repository.Repos) error {
		user, err := r.Users.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.NotFound(MsgUserNotFound)
		}
		return r.Users.Delete(ctx, username)
	})
}

// GetUserLevel devuelve el nivel del usuario y si existe.
func (uc *UseCase) GetUserLevel(ctx context.Context, username string) (int, bool, error) {
	return uc.users.GetLevel(ctx, username)
}

// ListUsers devuelve los usuarios ordenados por username. La vista nunca
// incluye hash ni salt.
func (uc *UseCase) ListUsers(ctx context.Context, actor string) ([]dto.UserSummary, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleUsers, authz.ActionRead); err != nil {
		return nil, err
	}
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserSummary{Username: u.Username, Level: u.Level})
	}
	return out, nil
}

// Login verifica credenciales y emite el token de sesión para la interfaz.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := uc.VerifyUser(ctx, in.Username, in.Password); err != nil {
		return nil, err
	}
	level, found, err := uc.users.GetLevel(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.NotFound(MsgUserNotFound)
	}
	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, in.Username, level, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, domain.Storage(err, domain.ErrStorage.Error())
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserSummary{Username: in.Username, Level: level},
	}, nil
}

// EnsureAdmin crea el administrador inicial solo cuando la tabla de usuarios
// está vacía (arranque/seed, no hay actor todavía). Devuelve si lo creó.
func (uc *UseCase) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	existing, err := uc.users.List(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}
	salt, err := uc.hasher.NewSalt()
	if err != nil {
		return false, domain.Storage(err, domain.ErrStorage.Error())
	}
	admin := &entity.User{
		Username:     username,
		PasswordHash: uc.hasher.Hash(salt, password),
		Salt:         salt,
		Level:        entity.LevelAdmin,
	}
	err = uc.tx.Run(ctx, func(r repository.Repos) error {
		return r.Users.Create(ctx, admin)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
