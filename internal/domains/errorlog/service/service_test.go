package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"zimmery/infras/otel/mocks"
	errorlogMocks "zimmery/internal/domains/errorlog/mocks"
	"zimmery/internal/domains/errorlog/service"
)

func newErrorLogService(t *testing.T) (service.ErrorLog, *errorlogMocks.MockErrorLog) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := errorlogMocks.NewMockErrorLog(ctrl)
	mockOtel := mocks.NewOtel()

	return service.New(mockRepo, mockOtel), mockRepo
}

func TestErrorLogService_Log(t *testing.T) {
	t.Run("newest entry comes first", func(t *testing.T) {
		svc, mockRepo := newErrorLogService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		svc.Log(context.Background(), "first failure", "")
		svc.Log(context.Background(), "second failure", "stack trace")

		recent := svc.Recent(context.Background())

		assert.Len(t, recent, 2)
		assert.Equal(t, "second failure", recent[0].Message)
		assert.Equal(t, "first failure", recent[1].Message)
	})

	t.Run("ring drops the oldest entry at capacity", func(t *testing.T) {
		svc, mockRepo := newErrorLogService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(service.Capacity + 1)

		for i := 0; i <= service.Capacity; i++ {
			svc.Log(context.Background(), fmt.Sprintf("failure %d", i), "")
		}

		recent := svc.Recent(context.Background())

		assert.Len(t, recent, service.Capacity)
		assert.Equal(t, fmt.Sprintf("failure %d", service.Capacity), recent[0].Message)
		assert.Equal(t, "failure 1", recent[len(recent)-1].Message)
	})

	t.Run("persist failure does not lose the entry", func(t *testing.T) {
		svc, mockRepo := newErrorLogService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		svc.Log(context.Background(), "orphaned failure", "")

		recent := svc.Recent(context.Background())

		assert.Len(t, recent, 1)
		assert.Equal(t, "orphaned failure", recent[0].Message)
	})
}

func TestErrorLogService_Clear(t *testing.T) {
	svc, mockRepo := newErrorLogService(t)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)
	mockRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	svc.Log(context.Background(), "failure", "")
	svc.Clear(context.Background())

	assert.Empty(t, svc.Recent(context.Background()))
}

func TestErrorLogService_ClearSurvivesDeleteFailure(t *testing.T) {
	svc, mockRepo := newErrorLogService(t)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)
	mockRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(errors.New("database error"))

	svc.Log(context.Background(), "failure", "")
	svc.Clear(context.Background())

	assert.Empty(t, svc.Recent(context.Background()))
}
