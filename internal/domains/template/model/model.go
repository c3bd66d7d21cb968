package model

import "zimmery/shared/model"

const (
	TableName  = "content_templates"
	EntityName = "content template"

	FieldID           = "id"
	FieldTemplateType = "template_type"
	FieldTitle        = "title"
	FieldContent      = "content"
	FieldContentType  = "content_type"
	FieldHTMLURL      = "html_url"
	FieldHTMLContent  = "html_content"
	FieldIsActive     = "is_active"
)

// Type is the fixed set of logical template slots.
type Type = string

const (
	TypeAgreementTerms      Type = "agreement_terms"
	TypeWelcomeMessage      Type = "welcome_message"
	TypeConfirmationMessage Type = "confirmation_message"
	TypePDFTitle            Type = "pdf_title"
	TypePDFHeader           Type = "pdf_header"
)

// Types lists every known template type in display order.
var Types = []Type{
	TypeAgreementTerms,
	TypeWelcomeMessage,
	TypeConfirmationMessage,
	TypePDFTitle,
	TypePDFHeader,
}

// ContentKind discriminates how a template's content is stored.
type ContentKind = string

const (
	ContentKindText        ContentKind = "text"
	ContentKindExternalURL ContentKind = "html_url"
	ContentKindInlineHTML  ContentKind = "html_content"
)

type ContentTemplate struct {
	ID           string `db:"id"`
	TemplateType Type   `db:"template_type"`
	Title        string `db:"title"`
	Content      string `db:"content"`
	ContentType  string `db:"content_type"`
	HTMLURL      string `db:"html_url"`
	HTMLContent  string `db:"html_content"`
	IsActive     bool   `db:"is_active"`
	model.Metadata
}

// ContentVariant is the tagged view over the three storage shapes. Exactly
// one payload field is meaningful per kind.
type ContentVariant struct {
	Kind ContentKind
	Text string
	URL  string
	HTML string
}

// Variant maps the row's discriminator column onto a tagged variant. Rows
// with an unknown discriminator degrade to plain text so consumers always
// have something to render.
func (t *ContentTemplate) Variant() ContentVariant {
	switch t.ContentType {
	case ContentKindExternalURL:
		return ContentVariant{Kind: ContentKindExternalURL, URL: t.HTMLURL}
	case ContentKindInlineHTML:
		return ContentVariant{Kind: ContentKindInlineHTML, HTML: t.HTMLContent}
	default:
		return ContentVariant{Kind: ContentKindText, Text: t.Content}
	}
}

// KnownType reports whether t is one of the fixed template slots.
func KnownType(t Type) bool {
	for _, known := range Types {
		if known == t {
			return true
		}
	}

	return false
}
