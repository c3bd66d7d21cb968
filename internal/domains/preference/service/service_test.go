package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"zimmery/infras/otel/mocks"
	preferenceMocks "zimmery/internal/domains/preference/mocks"
	"zimmery/internal/domains/preference/model"
	"zimmery/internal/domains/preference/model/dto"
	"zimmery/internal/domains/preference/service"
)

func newPreferenceService(t *testing.T) (service.Preference, *preferenceMocks.MockPreference) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := preferenceMocks.NewMockPreference(ctrl)
	mockOtel := mocks.NewOtel()

	return service.New(mockRepo, mockOtel), mockRepo
}

func TestPreferenceService_GetTheme(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *preferenceMocks.MockPreference)
		want      string
	}{
		{
			name: "stored theme",
			setupMock: func(repo *preferenceMocks.MockPreference) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Preference{UserID: "user-1", Theme: model.ThemeDark}, nil)
			},
			want: model.ThemeDark,
		},
		{
			name: "no row defaults to light",
			setupMock: func(repo *preferenceMocks.MockPreference) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Preference{}, nil)
			},
			want: model.ThemeLight,
		},
		{
			name: "lookup failure defaults to light",
			setupMock: func(repo *preferenceMocks.MockPreference) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Preference{}, errors.New("database error"))
			},
			want: model.ThemeLight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newPreferenceService(t)
			tt.setupMock(mockRepo)

			res, err := svc.GetTheme(context.Background(), "user-1")

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res.Theme)
		})
	}
}

func TestPreferenceService_SetTheme(t *testing.T) {
	t.Run("inserts when no row exists", func(t *testing.T) {
		svc, mockRepo := newPreferenceService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, preference model.Preference) error {
				assert.Equal(t, "user-1", preference.UserID)
				assert.Equal(t, model.ThemeDark, preference.Theme)

				return nil
			})

		err := svc.SetTheme(context.Background(), "user-1", dto.UpdateThemeRequest{Theme: model.ThemeDark})
		assert.NoError(t, err)
	})

	t.Run("updates the existing row", func(t *testing.T) {
		svc, mockRepo := newPreferenceService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.SetTheme(context.Background(), "user-1", dto.UpdateThemeRequest{Theme: model.ThemeLight})
		assert.NoError(t, err)
	})

	t.Run("existence check failure", func(t *testing.T) {
		svc, mockRepo := newPreferenceService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, errors.New("database error"))

		err := svc.SetTheme(context.Background(), "user-1", dto.UpdateThemeRequest{Theme: model.ThemeDark})
		assert.Error(t, err)
	})
}
