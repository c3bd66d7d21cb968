package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"zimmery/infras/otel"
	"zimmery/internal/domains/preference/model"
	"zimmery/internal/domains/preference/model/dto"
	"zimmery/internal/domains/preference/repository"
	"zimmery/shared"
	"zimmery/shared/constant"
	gModel "zimmery/shared/model"
	"zimmery/shared/timezone"
)

type Preference interface {
	GetTheme(ctx context.Context, userID string) (dto.ThemeResponse, error)
	SetTheme(ctx context.Context, userID string, req dto.UpdateThemeRequest) error
}

type serviceImpl struct {
	repo repository.Preference
	otel otel.Otel
}

func New(repo repository.Preference, otel otel.Otel) Preference {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// GetTheme returns the stored theme, defaulting to light when no row exists
// or the lookup fails.
func (s *serviceImpl) GetTheme(ctx context.Context, userID string) (res dto.ThemeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTheme")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.Theme = model.ThemeLight

	preference, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to load theme preference, using default")

		return res, nil
	}

	if preference.Theme != constant.Empty {
		res.Theme = preference.Theme
	}

	return res, nil
}

// SetTheme upserts the user's theme.
func (s *serviceImpl) SetTheme(ctx context.Context, userID string, req dto.UpdateThemeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetTheme")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(userID, model.FieldUserID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to check theme preference")

		return fmt.Errorf("failed to check theme preference: %w", err)
	}

	if !exists {
		preference := model.Preference{
			UserID: userID,
			Theme:  req.Theme,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  userID,
				ModifiedBy: userID,
			},
		}

		if err = s.repo.Insert(ctx, preference); err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("failed to create theme preference")

			return fmt.Errorf("failed to create theme preference: %w", err)
		}

		return nil
	}

	updatedFields := map[string]any{
		model.FieldTheme:         req.Theme,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to update theme preference")

		return fmt.Errorf("failed to update theme preference: %w", err)
	}

	return nil
}
