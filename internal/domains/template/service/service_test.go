package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"zimmery/infras/otel/mocks"
	fetcherMocks "zimmery/internal/domains/template/fetcher/mocks"
	templateMocks "zimmery/internal/domains/template/mocks"
	"zimmery/internal/domains/template/model"
	"zimmery/internal/domains/template/model/dto"
	"zimmery/internal/domains/template/service"
	"zimmery/shared/failure"
	gModel "zimmery/shared/model"
)

func newTemplateService(t *testing.T) (service.ContentTemplate, *templateMocks.MockContentTemplate, *fetcherMocks.MockFetcher) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := templateMocks.NewMockContentTemplate(ctrl)
	mockFetcher := fetcherMocks.NewMockFetcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockFetcher, mockOtel)

	return svc, mockRepo, mockFetcher
}

func templateFixture(id string, templateType model.Type, contentType string, modifiedAt time.Time) model.ContentTemplate {
	return model.ContentTemplate{
		ID:           id,
		TemplateType: templateType,
		Title:        "Test Template",
		ContentType:  contentType,
		IsActive:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  modifiedAt,
			ModifiedAt: modifiedAt,
		},
	}
}

func TestTemplateService_LoadAll(t *testing.T) {
	t.Run("seeds defaults when table is empty", func(t *testing.T) {
		svc, mockRepo, _ := newTemplateService(t)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(5)

		err := svc.LoadAll(context.Background())
		assert.NoError(t, err)

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.Templates, 5)
	})

	t.Run("seeds in memory when persistence is down", func(t *testing.T) {
		svc, mockRepo, _ := newTemplateService(t)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		err := svc.LoadAll(context.Background())
		assert.NoError(t, err)

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.Templates, 5)
	})

	t.Run("keeps stored templates when present", func(t *testing.T) {
		svc, mockRepo, _ := newTemplateService(t)

		stored := templateFixture("template-1", model.TypeWelcomeMessage, model.ContentKindText, time.Now())
		stored.Content = "ברוכים הבאים"

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ContentTemplate{stored}, nil)

		err := svc.LoadAll(context.Background())
		assert.NoError(t, err)

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.Templates, 1)
	})
}

func TestTemplateService_GetContent(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		svc, _, _ := newTemplateService(t)

		_, err := svc.GetContent(context.Background(), "nonsense")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("text content is wrapped", func(t *testing.T) {
		svc, mockRepo, _ := newTemplateService(t)

		stored := templateFixture("template-1", model.TypeWelcomeMessage, model.ContentKindText, time.Now())
		stored.Content = "שלום"

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ContentTemplate{stored}, nil)

		res, err := svc.GetContent(context.Background(), model.TypeWelcomeMessage)

		assert.NoError(t, err)
		assert.Equal(t, service.SourceTemplate, res.Source)
		assert.Equal(t, `<div class="text-content">שלום</div>`, res.HTML)
	})

	t.Run("inline html reads bundled asset", func(t *testing.T) {
		svc, mockRepo, _ := newTemplateService(t)

		stored := templateFixture("template-1", model.TypeWelcomeMessage, model.ContentKindInlineHTML, time.Now())
		stored.HTMLContent = "templates/welcome-message.html"

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ContentTemplate{stored}, nil)

		res, err := svc.GetContent(context.Background(), model.TypeWelcomeMessage)

		assert.NoError(t, err)
		assert.Equal(t, service.SourceTemplate, res.Source)
		assert.Contains(t, res.HTML, "{{customerName}}")
	})

	t.Run("external url is fetched once and cached", func(t *testing.T) {
		svc, mockRepo, mockFetcher := newTemplateService(t)

		stored := templateFixture("template-1", model.TypeWelcomeMessage, model.ContentKindExternalURL, time.Now())
		stored.HTMLURL = "https://cdn.example.com/welcome.html"

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ContentTemplate{stored}, nil)
		mockFetcher.EXPECT().
			Fetch(gomock.Any(), "https://cdn.example.com/welcome.html").
			Return("<h1>hosted</h1>", nil).
			Times(1)

		res, err := svc.GetContent(context.Background(), model.TypeWelcomeMessage)

		assert.NoError(t, err)
		assert.Equal(t, service.SourceTemplate, res.Source)
		assert.Equal(t, "<h1>hosted</h1>", res.HTML)

		// second read is served from the url cache
		res, err = svc.GetContent(context.Background(), model.TypeWelcomeMessage)

		assert.NoError(t, err)
		assert.Equal(t, "<h1>hosted</h1>", res.HTML)
	})

	t.Run("failed fetch falls back to guessed asset", func(t *testing.T) {
		svc, mockRepo, mockFetcher := newTemplateService(t)

		stored := templateFixture("template-1", model.TypeAgreementTerms, model.ContentKindExternalURL, time.Now())
		stored.HTMLURL = "https://cdn.example.com/agreement-v2.html"

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ContentTemplate{stored}, nil)
		mockFetcher.EXPECT().
			Fetch(gomock.Any(), gomock.Any()).
			Return("", errors.New("timeout"))

		res, err := svc.GetContent(context.Background(), model.TypeAgreementTerms)

		assert.NoError(t, err)
		assert.Equal(t, service.SourceAsset, res.Source)
		assert.NotEmpty(t, res.HTML)
	})

	t.Run("failed fetch with unguessable url degrades to default fragment", func(t *testing.T) {
		svc, mockRepo, mockFetcher := newTemplateService(t)

		stored := templateFixture("template-1", model.TypePDFTitle, model.ContentKindExternalURL, time.Now())
		stored.HTMLURL = "https://cdn.example.com/title-v2.html"

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ContentTemplate{stored}, nil)
		mockFetcher.EXPECT().
			Fetch(gomock.Any(), gomock.Any()).
			Return("", errors.New("timeout"))

		res, err := svc.GetContent(context.Background(), model.TypePDFTitle)

		assert.NoError(t, err)
		assert.Equal(t, service.SourceDefault, res.Source)
		assert.Contains(t, res.HTML, "fallback-title")
	})

	t.Run("no active template serves bundled asset", func(t *testing.T) {
		svc, mockRepo, _ := newTemplateService(t)

		stored := templateFixture("template-1", model.TypeWelcomeMessage, model.ContentKindText, time.Now())
		stored.IsActive = false

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ContentTemplate{stored}, nil)

		res, err := svc.GetContent(context.Background(), model.TypeWelcomeMessage)

		assert.NoError(t, err)
		assert.Equal(t, service.SourceAsset, res.Source)
	})

	t.Run("last modified active template wins", func(t *testing.T) {
		svc, mockRepo, _ := newTemplateService(t)

		older := templateFixture("template-1", model.TypeWelcomeMessage, model.ContentKindText, time.Now().Add(-time.Hour))
		older.Content = "old"
		newer := templateFixture("template-2", model.TypeWelcomeMessage, model.ContentKindText, time.Now())
		newer.Content = "new"

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ContentTemplate{older, newer}, nil)

		res, err := svc.GetContent(context.Background(), model.TypeWelcomeMessage)

		assert.NoError(t, err)
		assert.Contains(t, res.HTML, "new")
	})
}

func TestTemplateService_ProcessedContent(t *testing.T) {
	svc, mockRepo, _ := newTemplateService(t)

	stored := templateFixture("template-1", model.TypeWelcomeMessage, model.ContentKindText, time.Now())
	stored.Content = "שלום {{customerName}}, הזמנה {{bookingId}}"

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.ContentTemplate{stored}, nil)

	res, err := svc.ProcessedContent(context.Background(), model.TypeWelcomeMessage, map[string]string{
		"customerName": "Dana",
		"bookingId":    "booking-1",
	})

	assert.NoError(t, err)
	assert.Contains(t, res.HTML, "שלום Dana")
	assert.Contains(t, res.HTML, "הזמנה booking-1")
	assert.NotContains(t, res.HTML, "{{customerName}}")
}

func TestTemplateService_ToggleActive(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newTemplateService(t)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ContentTemplate{templateFixture("template-1", model.TypeWelcomeMessage, model.ContentKindText, time.Now())}, nil)

		err := svc.ToggleActive(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("flips the active flag", func(t *testing.T) {
		svc, mockRepo, _ := newTemplateService(t)

		stored := templateFixture("template-1", model.TypeWelcomeMessage, model.ContentKindText, time.Now())

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ContentTemplate{stored}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, false, fields[model.FieldIsActive])

				return nil
			})

		err := svc.ToggleActive(context.Background(), "template-1")
		assert.NoError(t, err)
	})

	t.Run("concurrent toggle and update on the same template", func(t *testing.T) {
		svc, mockRepo, _ := newTemplateService(t)

		stored := templateFixture("template-1", model.TypeWelcomeMessage, model.ContentKindText, time.Now())

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ContentTemplate{stored}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		req := dto.UpdateTemplateRequest{
			Title:       "Updated Template",
			ContentType: model.ContentKindText,
			Content:     "עודכן",
			IsActive:    true,
		}

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				assert.NoError(t, svc.ToggleActive(context.Background(), "template-1"))
			}()
			go func() {
				defer wg.Done()
				assert.NoError(t, svc.Update(context.Background(), "template-1", req))
			}()
		}
		wg.Wait()
	})
}

func TestTemplateService_Create(t *testing.T) {
	svc, mockRepo, _ := newTemplateService(t)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.ContentTemplate{templateFixture("template-1", model.TypeWelcomeMessage, model.ContentKindText, time.Now())}, nil)
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := svc.Create(context.Background(), dto.CreateTemplateRequest{
		TemplateType: model.TypeConfirmationMessage,
		Title:        "הודעת אישור",
		ContentType:  model.ContentKindText,
		Content:      "תודה!",
		IsActive:     true,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.ID)

	all, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, all.Templates, 2)
}
