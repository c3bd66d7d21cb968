package dto_test

import (
	"testing"

	"zimmery/internal/domains/template/model"
	"zimmery/internal/domains/template/model/dto"
	"zimmery/shared/constant"
	gModel "zimmery/shared/model"
	"zimmery/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateTemplateRequest_ToModel(t *testing.T) {
	req := dto.CreateTemplateRequest{
		TemplateType: model.TypeAgreementTerms,
		Title:        "Rental Agreement",
		ContentType:  model.ContentKindText,
		Content:      "please sign below",
		IsActive:     true,
	}

	userID := "test-user-id"
	template := req.ToModel(userID)

	assert.NotEmpty(t, template.ID, "expected ID to be generated")
	assert.Equal(t, req.TemplateType, template.TemplateType)
	assert.Equal(t, req.Title, template.Title)
	assert.Equal(t, req.ContentType, template.ContentType)
	assert.Equal(t, req.Content, template.Content)
	assert.True(t, template.IsActive)
	assert.Equal(t, userID, template.CreatedBy)
	assert.Equal(t, userID, template.ModifiedBy)
	assert.False(t, template.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestUpdateTemplateRequest_ToUpdatedFields(t *testing.T) {
	req := dto.UpdateTemplateRequest{
		Title:       "Updated Agreement",
		ContentType: model.ContentKindExternalURL,
		HTMLURL:     "https://cdn.example.com/agreement.html",
		IsActive:    false,
	}

	userID := "test-user-id"
	fields := req.ToUpdatedFields(userID)

	assert.Equal(t, req.Title, fields[model.FieldTitle])
	assert.Equal(t, req.ContentType, fields[model.FieldContentType])
	assert.Equal(t, req.HTMLURL, fields[model.FieldHTMLURL])
	assert.Equal(t, false, fields[model.FieldIsActive])
	assert.Equal(t, userID, fields[constant.FieldModifiedBy])
	assert.NotNil(t, fields[constant.FieldModifiedAt])
}

func TestTemplateResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	templateModel := model.ContentTemplate{
		ID:           "template-1",
		TemplateType: model.TypeWelcomeMessage,
		Title:        "Welcome",
		ContentType:  model.ContentKindInlineHTML,
		HTMLContent:  "<p>ברוכים הבאים</p>",
		IsActive:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.TemplateResponse
	response.FromModel(templateModel)

	assert.Equal(t, templateModel.ID, response.ID)
	assert.Equal(t, templateModel.TemplateType, response.TemplateType)
	assert.Equal(t, templateModel.Title, response.Title)
	assert.Equal(t, templateModel.HTMLContent, response.HTMLContent)
	assert.True(t, response.IsActive)
	assert.NotEmpty(t, response.CreatedAt)
	assert.NotEmpty(t, response.ModifiedAt)
}

func TestGetTemplatesResponse_FromModels(t *testing.T) {
	templates := []model.ContentTemplate{
		{ID: "template-1", TemplateType: model.TypeAgreementTerms},
		{ID: "template-2", TemplateType: model.TypePDFTitle},
	}

	var response dto.GetTemplatesResponse
	response.FromModels(templates)

	assert.Len(t, response.Templates, len(templates))
	for i, template := range response.Templates {
		assert.Equal(t, templates[i].ID, template.ID)
		assert.Equal(t, templates[i].TemplateType, template.TemplateType)
	}
}

func TestGetTemplatesResponse_FromModels_EmptyList(t *testing.T) {
	var response dto.GetTemplatesResponse
	response.FromModels(nil)

	assert.Len(t, response.Templates, 0)
}
