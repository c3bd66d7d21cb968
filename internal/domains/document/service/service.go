package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog/log"

	"zimmery/config"
	"zimmery/infras/otel"
	"zimmery/infras/s3"
	bookingModel "zimmery/internal/domains/booking/model"
	templateModel "zimmery/internal/domains/template/model"
	templateService "zimmery/internal/domains/template/service"
	sharedBase64 "zimmery/shared/base64"
	"zimmery/shared/constant"
	"zimmery/shared/timezone"
)

// Renderer tiers. The preferred tier returns the full substituted agreement
// HTML; the fallback tier builds a fixed-layout PDF with Latin-only font
// support.
const (
	TierPreferred = "html"
	TierFallback  = "pdf"
)

// Result is a rendered agreement artifact together with the tier that
// produced it.
type Result struct {
	Tier        string
	ContentType string
	FileName    string
	Data        []byte
	ArchiveURL  string
}

type Document interface {
	Generate(ctx context.Context, booking bookingModel.Booking, signatureDataURL string) (Result, error)
	GeneratePDF(ctx context.Context, booking bookingModel.Booking, signatureDataURL string) (Result, error)
}

type serviceImpl struct {
	templates templateService.ContentTemplate
	storage   s3.S3
	cfg       *config.Config
	otel      otel.Otel
}

func New(templates templateService.ContentTemplate, storage s3.S3, cfg *config.Config, otel otel.Otel) Document {
	return &serviceImpl{
		templates: templates,
		storage:   storage,
		cfg:       cfg,
		otel:      otel,
	}
}

func agreementTokens(booking bookingModel.Booking, signatureDataURL string) map[string]string {
	return map[string]string{
		"customerName":   booking.CustomerFullName,
		"customerId":     booking.CustomerIDNumber,
		"customerPhone":  booking.CustomerPhoneNumber,
		"bookingId":      booking.ID,
		"checkinDate":    timezone.Format(booking.CheckInDate, constant.DocumentDateFormat),
		"checkoutDate":   timezone.Format(booking.CheckOutDate, constant.DocumentDateFormat),
		"signatureImage": signatureDataURL,
	}
}

// Generate renders the signed agreement. The preferred tier substitutes the
// booking data into the agreement template; if it fails the pipeline degrades
// to the PDF fallback and says so in the result.
func (s *serviceImpl) Generate(ctx context.Context, booking bookingModel.Booking, signatureDataURL string) (res Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	content, err := s.templates.ProcessedContent(ctx, templateModel.TypeAgreementTerms, agreementTokens(booking, signatureDataURL))
	if err != nil {
		log.Warn().Err(err).Str("booking_id", booking.ID).Msg("preferred renderer unavailable, falling back to pdf")

		return s.GeneratePDF(ctx, booking, signatureDataURL)
	}

	res = Result{
		Tier:        TierPreferred,
		ContentType: constant.ContentTypeHTML,
		FileName:    fmt.Sprintf("agreement-%s.html", booking.ID),
		Data:        []byte(content.HTML),
	}

	res.ArchiveURL = s.archive(ctx, res)

	return res, nil
}

// GeneratePDF builds the fixed-layout fallback document. Field values are
// rendered with a core Latin font, so non-Latin customer names degrade.
func (s *serviceImpl) GeneratePDF(ctx context.Context, booking bookingModel.Booking, signatureDataURL string) (res Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GeneratePDF")
	defer scope.End()
	defer scope.TraceIfError(err)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Rental Agreement Confirmation", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "RENTAL AGREEMENT CONFIRMATION", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Guest name   : %s", booking.CustomerFullName),
		fmt.Sprintf("ID number    : %s", booking.CustomerIDNumber),
		fmt.Sprintf("Phone        : %s", booking.CustomerPhoneNumber),
		fmt.Sprintf("Booking ID   : %s", booking.ID),
		fmt.Sprintf("Check-in     : %s", timezone.Format(booking.CheckInDate, constant.DocumentDateFormat)),
		fmt.Sprintf("Check-out    : %s", timezone.Format(booking.CheckOutDate, constant.DocumentDateFormat)),
		fmt.Sprintf("Guests       : %d adults, %d children", booking.Adults, booking.Children),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Agreement terms")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	terms := []string{
		"1. The stay is personal and non-transferable.",
		"2. Cancellations are accepted up to 14 days before arrival.",
		"3. Please keep the premises quiet and clean.",
		"4. Any damage to the premises will be charged in full.",
		"5. Check-in from 15:00, check-out by 11:00.",
	}
	for _, term := range terms {
		pdf.MultiCell(0, 6, term, "", "", false)
	}

	s.drawSignature(pdf, signatureDataURL)

	pdf.Ln(12)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Signed on "+timezone.Format(timezone.Now(), constant.DocumentDateFormat), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to render fallback pdf")

		return res, fmt.Errorf("failed to render fallback pdf: %w", err)
	}

	res = Result{
		Tier:        TierFallback,
		ContentType: constant.ContentTypePDF,
		FileName:    fmt.Sprintf("agreement-%s.pdf", booking.ID),
		Data:        buf.Bytes(),
	}

	res.ArchiveURL = s.archive(ctx, res)

	return res, nil
}

// drawSignature places the signature image inside a bordered box. A
// malformed data URL leaves the box empty rather than failing the document.
func (s *serviceImpl) drawSignature(pdf *gofpdf.Fpdf, signatureDataURL string) {
	pdf.Ln(8)

	x, y := pdf.GetX(), pdf.GetY()
	const boxW, boxH = 70.0, 30.0

	pdf.Rect(x, y, boxW, boxH, "D")

	contentType := sharedBase64.GetContentType(signatureDataURL)
	idx := strings.Index(signatureDataURL, ";base64,")

	if contentType != constant.Empty && idx != -1 {
		raw, err := base64.StdEncoding.DecodeString(signatureDataURL[idx+len(";base64,"):])
		if err == nil {
			imageType := strings.TrimPrefix(contentType, "image/")
			name := "signature"

			pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(raw))
			pdf.ImageOptions(name, x+2, y+2, boxW-4, boxH-4, false, gofpdf.ImageOptions{ImageType: imageType}, 0, "")
		}
	}

	pdf.SetY(y + boxH + 2)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(boxW, 6, "Guest signature")
}

// archive uploads the artifact best-effort and returns its URL, or empty when
// storage is disabled or the upload fails.
func (s *serviceImpl) archive(ctx context.Context, res Result) string {
	if !s.cfg.External.S3.Enable {
		return constant.Empty
	}

	url, err := s.storage.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, s.cfg.External.S3.AgreementDir, res.FileName, res.ContentType, res.Data)
	if err != nil {
		log.Error().Err(err).Str("file", res.FileName).Msg("failed to archive agreement artifact")

		return constant.Empty
	}

	return url
}
