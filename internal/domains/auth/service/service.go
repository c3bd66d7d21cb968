package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"zimmery/config"
	"zimmery/infras/jwt"
	"zimmery/infras/otel"
	"zimmery/internal/domains/auth/model/dto"
	userModel "zimmery/internal/domains/user/model"
	userRepo "zimmery/internal/domains/user/repository"
	"zimmery/shared"
	"zimmery/shared/cache"
	"zimmery/shared/constant"
	gDto "zimmery/shared/dto"
	"zimmery/shared/failure"
	"zimmery/shared/password"
	"zimmery/shared/timezone"
)

const sessionKeyPrefix = "auth:session"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, userID string) error
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
	SessionActive(ctx context.Context, userID string) bool
}

type serviceImpl struct {
	userRepo   userRepo.User
	cache      cache.RedisCache
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cache cache.RedisCache, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cache:      cache,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func sessionKey(userID string) string {
	return shared.BuildCacheKey(sessionKeyPrefix, userID)
}

func (s *serviceImpl) sessionTTL() int {
	return s.cfg.JWT.RefreshExpireMin * constant.MinutesToSeconds
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.userRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if username == constant.Empty {
		username = constant.ContextSystem
	}

	if err = s.userRepo.Insert(ctx, req.ToUserModel(username, hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login checks credentials and opens a server-side session. Tokens are only
// honored while the session record exists.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, emailFilter(req.Email))
	if err != nil || user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.BadRequestFromString("user account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Level)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	session := dto.Session{
		UserID:     user.ID,
		Email:      user.Email,
		Level:      user.Level,
		LoggedInAt: timezone.Now(),
	}

	if err = s.cache.Save(ctx, sessionKey(user.ID), session, s.sessionTTL()); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to open auth session")

		return res, fmt.Errorf("failed to open auth session: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	updatedFields := shared.TransformFields(lastLogin, user.ID)

	if err = s.userRepo.Update(ctx, updatedFields, emailFilter(req.Email)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(tokenPair)
	res.User.FromModel(user)

	return res, nil
}

// Logout revokes the server-side session; outstanding tokens stop working
// immediately.
func (s *serviceImpl) Logout(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Delete(ctx, sessionKey(userID)); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to revoke auth session")

		return fmt.Errorf("failed to revoke auth session: %w", err)
	}

	return nil
}

// SessionActive reports whether a login session exists for the user.
func (s *serviceImpl) SessionActive(ctx context.Context, userID string) bool {
	var session dto.Session

	err := s.cache.Get(ctx, sessionKey(userID), &session)
	if err != nil {
		if !errors.Is(err, cache.Nil) {
			log.Warn().Err(err).Str("user_id", userID).Msg("failed to read auth session")
		}

		return false
	}

	return session.UserID == userID
}

// RefreshToken exchanges a valid refresh token for a new pair, provided the
// session has not been revoked.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh with invalid token")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	if !s.SessionActive(ctx, claims.UserID) {
		return res, failure.Unauthorized("session revoked") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	session := dto.Session{
		UserID:     claims.UserID,
		Email:      claims.Email,
		Level:      claims.Role,
		LoggedInAt: timezone.Now(),
	}

	if err = s.cache.Save(ctx, sessionKey(claims.UserID), session, s.sessionTTL()); err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Msg("failed to extend auth session")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    userModel.TableName,
			},
		},
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err = password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, userID)

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
