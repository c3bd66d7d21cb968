package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"zimmery/assets"
	"zimmery/internal/domains/template/fetcher"
	"zimmery/internal/domains/template/model"
	"zimmery/internal/domains/template/model/dto"
	"zimmery/internal/domains/template/repository"
	"zimmery/shared"
	"zimmery/shared/constant"
	gDto "zimmery/shared/dto"
	"zimmery/shared/failure"
	"zimmery/shared/timezone"

	"zimmery/infras/otel"
)

// Content sources, reported so callers can observe which fallback tier
// produced the HTML.
const (
	SourceTemplate = "template"
	SourceAsset    = "asset"
	SourceDefault  = "default"
)

type ContentTemplate interface {
	LoadAll(ctx context.Context) error
	GetAll(ctx context.Context) (dto.GetTemplatesResponse, error)
	GetContent(ctx context.Context, templateType model.Type) (dto.ContentResponse, error)
	ProcessedContent(ctx context.Context, templateType model.Type, tokens map[string]string) (dto.ContentResponse, error)
	Create(ctx context.Context, req dto.CreateTemplateRequest) (dto.TemplateResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateTemplateRequest) error
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) error
}

// serviceImpl keeps the template list in memory alongside the backing table.
// When the table is empty or unreachable it seeds the default set; if seeding
// itself fails the defaults live in memory only and writes are refused until
// the backend recovers.
type serviceImpl struct {
	repo    repository.ContentTemplate
	fetcher fetcher.Fetcher
	otel    otel.Otel

	mu        sync.RWMutex
	templates []model.ContentTemplate
	loaded    bool
	degraded  bool

	// urlCache holds fetched external HTML keyed by URL for the lifetime of
	// the process. Entries are never invalidated.
	urlMu    sync.Mutex
	urlCache map[string]string
}

func New(repo repository.ContentTemplate, fetcher fetcher.Fetcher, otel otel.Otel) ContentTemplate {
	return &serviceImpl{
		repo:     repo,
		fetcher:  fetcher,
		otel:     otel,
		urlCache: map[string]string{},
	}
}

// defaultTemplates is the seed set written when the table is empty. The
// inline-HTML paths point at the bundled assets.
func defaultTemplates(user string) []model.ContentTemplate {
	seeds := []struct {
		templateType model.Type
		title        string
		path         string
	}{
		{model.TypeAgreementTerms, "הסכם אירוח מלא", "templates/agreement-template.html"},
		{model.TypeWelcomeMessage, "הודעת ברוכים הבאים", "templates/welcome-message.html"},
		{model.TypeConfirmationMessage, "הודעת אישור", "templates/confirmation-message.html"},
		{model.TypePDFTitle, "כותרת PDF", "templates/pdf-title.html"},
		{model.TypePDFHeader, "כותרת עליונה בPDF", "templates/pdf-header.html"},
	}

	templates := make([]model.ContentTemplate, len(seeds))
	for i, seed := range seeds {
		req := dto.CreateTemplateRequest{
			TemplateType: seed.templateType,
			Title:        seed.title,
			ContentType:  model.ContentKindInlineHTML,
			HTMLContent:  seed.path,
			IsActive:     true,
		}
		templates[i] = req.ToModel(user)
	}

	return templates
}

// LoadAll refreshes the in-memory list from the backing table, seeding the
// defaults when the table is empty or unreachable.
func (s *serviceImpl) LoadAll(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoadAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	templates, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load content templates, seeding defaults")

		s.seed(ctx)

		return nil
	}

	if len(templates) == 0 {
		s.seed(ctx)

		return nil
	}

	s.mu.Lock()
	s.templates = templates
	s.loaded = true
	s.degraded = false
	s.mu.Unlock()

	return nil
}

// seed writes the default template set. If persistence fails the defaults are
// held in memory only.
func (s *serviceImpl) seed(ctx context.Context) {
	defaults := defaultTemplates(constant.ContextSystem)
	degraded := false

	for _, template := range defaults {
		if err := s.repo.Insert(ctx, template); err != nil {
			log.Error().Err(err).Str("template_type", template.TemplateType).Msg("failed to seed default template, holding defaults in memory only")

			degraded = true

			break
		}
	}

	s.mu.Lock()
	s.templates = defaults
	s.loaded = true
	s.degraded = degraded
	s.mu.Unlock()
}

func (s *serviceImpl) ensureLoaded(ctx context.Context) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		_ = s.LoadAll(ctx)
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetTemplatesResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	res.FromModels(s.templates)

	return res, nil
}

// activeByType returns the authoritative active template for a type. When
// several rows are active for the same type the most recently modified one
// wins.
func (s *serviceImpl) activeByType(templateType model.Type) (model.ContentTemplate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var winner model.ContentTemplate
	found := false

	for _, template := range s.templates {
		if template.TemplateType != templateType || !template.IsActive {
			continue
		}

		if !found || template.ModifiedAt.After(winner.ModifiedAt) {
			winner = template
			found = true
		}
	}

	return winner, found
}

// GetContent resolves a template type to HTML through the three-tier chain:
// active template, bundled asset, hardcoded fragment. It never fails for a
// known type.
func (s *serviceImpl) GetContent(ctx context.Context, templateType model.Type) (res dto.ContentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetContent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.KnownType(templateType) {
		return res, failure.BadRequestFromString("unknown template type") // nolint:wrapcheck
	}

	s.ensureLoaded(ctx)

	res.TemplateType = templateType

	template, found := s.activeByType(templateType)
	if !found {
		res.HTML, res.Source = s.fallbackContent(templateType)

		return res, nil
	}

	switch variant := template.Variant(); variant.Kind {
	case model.ContentKindExternalURL:
		html, fetchErr := s.fetchExternal(ctx, variant.URL)
		if fetchErr != nil {
			log.Warn().Err(fetchErr).Str("url", variant.URL).Msg("external template fetch failed, falling back")

			res.HTML, res.Source = s.guessedAssetContent(variant.URL, templateType)

			return res, nil
		}

		res.HTML, res.Source = html, SourceTemplate
	case model.ContentKindInlineHTML:
		html, assetErr := assets.Template(variant.HTML)
		if assetErr != nil {
			res.HTML, res.Source = s.fallbackContent(templateType)

			return res, nil
		}

		res.HTML, res.Source = html, SourceTemplate
	default:
		res.HTML, res.Source = fmt.Sprintf(`<div class="text-content">%s</div>`, variant.Text), SourceTemplate
	}

	return res, nil
}

func (s *serviceImpl) fetchExternal(ctx context.Context, url string) (string, error) {
	s.urlMu.Lock()
	cached, ok := s.urlCache[url]
	s.urlMu.Unlock()

	if ok {
		return cached, nil
	}

	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	s.urlMu.Lock()
	s.urlCache[url] = html
	s.urlMu.Unlock()

	return html, nil
}

// guessedAssetContent maps a failed external URL onto a bundled asset by
// substring, then degrades to the hardcoded fragment.
func (s *serviceImpl) guessedAssetContent(url string, templateType model.Type) (string, string) {
	var path string

	switch {
	case strings.Contains(url, "agreement"):
		path = "templates/agreement-template.html"
	case strings.Contains(url, "welcome"):
		path = "templates/welcome-message.html"
	case strings.Contains(url, "confirmation"):
		path = "templates/confirmation-message.html"
	}

	if path != constant.Empty {
		if html, err := assets.Template(path); err == nil {
			return html, SourceAsset
		}
	}

	return defaultFragment(templateType), SourceDefault
}

// fallbackContent serves the bundled asset for a type, then the hardcoded
// fragment.
func (s *serviceImpl) fallbackContent(templateType model.Type) (string, string) {
	paths := map[model.Type]string{
		model.TypeAgreementTerms:      "templates/agreement-template.html",
		model.TypeWelcomeMessage:      "templates/welcome-message.html",
		model.TypeConfirmationMessage: "templates/confirmation-message.html",
		model.TypePDFTitle:            "templates/pdf-title.html",
		model.TypePDFHeader:           "templates/pdf-header.html",
	}

	if path, ok := paths[templateType]; ok {
		if html, err := assets.Template(path); err == nil {
			return html, SourceAsset
		}
	}

	return defaultFragment(templateType), SourceDefault
}

// defaultFragment is the last tier: a minimal hardcoded fragment per type.
func defaultFragment(templateType model.Type) string {
	switch templateType {
	case model.TypeAgreementTerms:
		return `<div class="fallback-agreement"><h3>הסכם אירוח</h3><ol>` +
			`<li>האירוח הינו אישי ואינו ניתן להעברה.</li>` +
			`<li>ביטולים יתקבלו עד 14 יום לפני מועד האירוח.</li>` +
			`<li>יש לשמור על השקט והניקיון במתחם.</li></ol></div>`
	case model.TypeWelcomeMessage:
		return `<div class="fallback-welcome">שלום וברוכים הבאים!</div>`
	case model.TypeConfirmationMessage:
		return `<div class="fallback-confirmation">תודה! ההסכם נחתם בהצלחה.</div>`
	case model.TypePDFTitle:
		return `<div class="fallback-title">אישור הסכם אירוח</div>`
	case model.TypePDFHeader:
		return `<div class="fallback-header">הסכם אירוח</div>`
	default:
		return `<div class="fallback-default">תוכן לא זמין</div>`
	}
}

// ProcessedContent resolves content and substitutes {{token}} placeholders.
func (s *serviceImpl) ProcessedContent(ctx context.Context, templateType model.Type, tokens map[string]string) (res dto.ContentResponse, err error) {
	res, err = s.GetContent(ctx, templateType)
	if err != nil {
		return res, err
	}

	html := res.HTML
	for key, value := range tokens {
		html = strings.ReplaceAll(html, "{{"+key+"}}", value)
	}

	html = strings.ReplaceAll(html, "{{currentDate}}", timezone.Format(timezone.Now(), constant.DocumentDateFormat))
	html = strings.ReplaceAll(html, "{{pageNumber}}", "1")
	html = strings.ReplaceAll(html, "{{totalPages}}", "1")

	res.HTML = html

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTemplateRequest) (res dto.TemplateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.ensureLoaded(ctx)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	template := req.ToModel(user)

	if err = s.repo.Insert(ctx, template); err != nil {
		log.Error().Err(err).Msg("failed to create content template")

		return res, fmt.Errorf("failed to create content template: %w", err)
	}

	s.mu.Lock()
	s.templates = append(s.templates, template)
	s.mu.Unlock()

	res.FromModel(template)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateTemplateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.ensureLoaded(ctx)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	updatedFields := req.ToUpdatedFields(user)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update content template")

		return fmt.Errorf("failed to update content template: %w", err)
	}

	s.mu.Lock()
	for i := range s.templates {
		if s.templates[i].ID == id {
			s.templates[i].Title = req.Title
			s.templates[i].ContentType = req.ContentType
			s.templates[i].Content = req.Content
			s.templates[i].HTMLURL = req.HTMLURL
			s.templates[i].HTMLContent = req.HTMLContent
			s.templates[i].IsActive = req.IsActive
			s.templates[i].ModifiedAt = timezone.Now()
			s.templates[i].ModifiedBy = user

			break
		}
	}
	s.mu.Unlock()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.ensureLoaded(ctx)

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete content template")

		return fmt.Errorf("failed to delete content template: %w", err)
	}

	s.mu.Lock()
	remaining := s.templates[:0]
	for _, template := range s.templates {
		if template.ID != id {
			remaining = append(remaining, template)
		}
	}
	s.templates = remaining
	s.mu.Unlock()

	return nil
}

// ToggleActive flips a template's active flag. Uniqueness of the active flag
// per type is intentionally not enforced; readers resolve collisions
// last-write-wins.
func (s *serviceImpl) ToggleActive(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.ensureLoaded(ctx)

	s.mu.RLock()
	var found bool
	var active bool
	for i := range s.templates {
		if s.templates[i].ID == id {
			found = true
			active = s.templates[i].IsActive

			break
		}
	}
	s.mu.RUnlock()

	if !found {
		return failure.NotFound("content template not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	next := !active

	updatedFields := map[string]any{
		model.FieldIsActive:      next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to toggle content template")

		return fmt.Errorf("failed to toggle content template: %w", err)
	}

	s.mu.Lock()
	for i := range s.templates {
		if s.templates[i].ID == id {
			s.templates[i].IsActive = next
			s.templates[i].ModifiedAt = timezone.Now()

			break
		}
	}
	s.mu.Unlock()

	return nil
}
