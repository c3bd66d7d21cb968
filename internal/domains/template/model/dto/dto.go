package dto

import (
	"github.com/google/uuid"

	"zimmery/internal/domains/template/model"
	"zimmery/shared/constant"
	gModel "zimmery/shared/model"
	"zimmery/shared/timezone"
)

type CreateTemplateRequest struct {
	TemplateType string `json:"template_type" validate:"required,oneof=agreement_terms welcome_message confirmation_message pdf_title pdf_header"`
	Title        string `json:"title"         validate:"required,max=200"`
	ContentType  string `json:"content_type"  validate:"required,oneof=text html_url html_content"`
	Content      string `json:"content"       validate:"omitempty"`
	HTMLURL      string `json:"html_url"      validate:"omitempty,url,max=500"`
	HTMLContent  string `json:"html_content"  validate:"omitempty"`
	IsActive     bool   `json:"is_active"`
}

func (c *CreateTemplateRequest) ToModel(user string) model.ContentTemplate {
	return model.ContentTemplate{
		ID:           uuid.NewString(),
		TemplateType: c.TemplateType,
		Title:        c.Title,
		Content:      c.Content,
		ContentType:  c.ContentType,
		HTMLURL:      c.HTMLURL,
		HTMLContent:  c.HTMLContent,
		IsActive:     c.IsActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTemplateRequest struct {
	Title       string `json:"title"        validate:"required,max=200"`
	ContentType string `json:"content_type" validate:"required,oneof=text html_url html_content"`
	Content     string `json:"content"      validate:"omitempty"`
	HTMLURL     string `json:"html_url"     validate:"omitempty,url,max=500"`
	HTMLContent string `json:"html_content" validate:"omitempty"`
	IsActive    bool   `json:"is_active"`
}

func (u *UpdateTemplateRequest) ToUpdatedFields(user string) map[string]any {
	return map[string]any{
		model.FieldTitle:         u.Title,
		model.FieldContentType:   u.ContentType,
		model.FieldContent:       u.Content,
		model.FieldHTMLURL:       u.HTMLURL,
		model.FieldHTMLContent:   u.HTMLContent,
		model.FieldIsActive:      u.IsActive,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
}

type TemplateResponse struct {
	ID           string `json:"id"`
	TemplateType string `json:"template_type"`
	Title        string `json:"title"`
	ContentType  string `json:"content_type"`
	Content      string `json:"content"`
	HTMLURL      string `json:"html_url"`
	HTMLContent  string `json:"html_content"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
	ModifiedAt   string `json:"modified_at"`
}

func (r *TemplateResponse) FromModel(model model.ContentTemplate) {
	r.ID = model.ID
	r.TemplateType = model.TemplateType
	r.Title = model.Title
	r.ContentType = model.ContentType
	r.Content = model.Content
	r.HTMLURL = model.HTMLURL
	r.HTMLContent = model.HTMLContent
	r.IsActive = model.IsActive
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	r.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
}

type GetTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

func (r *GetTemplatesResponse) FromModels(models []model.ContentTemplate) {
	r.Templates = make([]TemplateResponse, len(models))

	for i, m := range models {
		r.Templates[i].FromModel(m)
	}
}

// ContentResponse carries resolved template content together with the tier
// that produced it, so callers can observe fallback transitions.
type ContentResponse struct {
	TemplateType string `json:"template_type"`
	HTML         string `json:"html"`
	Source       string `json:"source"`
}
