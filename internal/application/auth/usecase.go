package auth

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/scope3-api/internal/application/dto"
	"github.com/jhoicas/scope3-api/internal/domain"
	"github.com/jhoicas/scope3-api/pkg/jwt"
)

// espacio de nombres para derivar IDs de usuario estables a partir del email
var userNamespace = uuid.MustParse("6f1c3c1e-52a8-4a0e-9a53-0f7f3b5f3e10")

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login simulado: no hay almacén de credenciales, cualquier email y
// contraseña no vacíos abren sesión. El mismo email obtiene siempre el mismo ID.
type AuthUseCase struct {
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{jwtCfg: jwtCfg}
}

// Login genera el JWT de la sesión.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	fields := map[string]string{}
	if email == "" {
		fields["email"] = "El correo es obligatorio"
	}
	if in.Password == "" {
		fields["password"] = "La contraseña es obligatoria"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	userID := UserID(email)
	token, err := jwt.Generate(uc.jwtCfg.Secret, userID, email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      dto.UserResponse{ID: userID, Email: email},
	}, nil
}

// UserID ID estable (UUID v5) para un email normalizado.
func UserID(email string) string {
	return uuid.NewSHA1(userNamespace, []byte(email)).String()
}
