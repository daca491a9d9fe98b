package services

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"ti-management/internal/dto"
	"ti-management/internal/repositories"
	"ti-management/pkg/apperrors"
	"ti-management/pkg/token"
)

type AuthService struct {
	usuarioRepository repositories.UsuarioRepositoryInterface
	jwtService        token.JWTService
	logger            *zap.Logger
}

func NewAuthService(
	usuarioRepository repositories.UsuarioRepositoryInterface,
	jwtService token.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		usuarioRepository: usuarioRepository,
		jwtService:        jwtService,
		logger:            logger,
	}
}

// Login devuelve credenciales inválidas tanto para usuario inexistente como
// para contraseña incorrecta, sin distinguir los casos.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	usuario, err := s.usuarioRepository.FindByUsername(ctx, payload.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewHttpError(http.StatusUnauthorized,
				apperrors.ErrInvalidCredentials.Error(), apperrors.ErrInvalidCredentials, nil)
		}
		return nil, err
	}

	if !usuario.Activo {
		return nil, apperrors.NewHttpError(http.StatusForbidden,
			apperrors.ErrUserInactive.Error(), apperrors.ErrUserInactive, nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(payload.Password)); err != nil {
		s.logger.Warn("intento de login fallido", zap.String("username", payload.Username))
		return nil, apperrors.NewHttpError(http.StatusUnauthorized,
			apperrors.ErrInvalidCredentials.Error(), apperrors.ErrInvalidCredentials, nil)
	}

	access, refresh, err := s.jwtService.GenerateTokens(usuario.ID, usuario.Rol)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario: dto.UsuarioDTO{
			ID:             usuario.ID,
			Username:       usuario.Username,
			Email:          usuario.Email,
			Rol:            usuario.Rol,
			NombreCompleto: usuario.NombreCompleto,
		},
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, err.Error(), err, nil)
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.NewHttpError(http.StatusUnauthorized,
			apperrors.ErrTokenIsNotRefresh.Error(), apperrors.ErrTokenIsNotRefresh, nil)
	}

	usuario, err := s.usuarioRepository.FindUsuario(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewHttpError(http.StatusUnauthorized,
				apperrors.ErrInvalidToken.Error(), apperrors.ErrInvalidToken, nil)
		}
		return nil, err
	}
	if !usuario.Activo {
		return nil, apperrors.NewHttpError(http.StatusForbidden,
			apperrors.ErrUserInactive.Error(), apperrors.ErrUserInactive, nil)
	}

	access, refresh, err := s.jwtService.GenerateTokens(usuario.ID, usuario.Rol)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario: dto.UsuarioDTO{
			ID:             usuario.ID,
			Username:       usuario.Username,
			Email:          usuario.Email,
			Rol:            usuario.Rol,
			NombreCompleto: usuario.NombreCompleto,
		},
	}, nil
}
