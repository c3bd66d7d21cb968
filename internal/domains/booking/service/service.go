package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/base64"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"zimmery/config"
	"zimmery/infras/kafka"
	"zimmery/infras/otel"
	"zimmery/infras/s3"
	"zimmery/internal/domains/booking/model"
	"zimmery/internal/domains/booking/repository"
	customerModel "zimmery/internal/domains/customer/model"
	customerRepo "zimmery/internal/domains/customer/repository"
	"zimmery/shared"
	sharedBase64 "zimmery/shared/base64"
	"zimmery/shared/constant"
	gDto "zimmery/shared/dto"
	"zimmery/shared/failure"
	"zimmery/shared/timezone"

	"zimmery/internal/domains/booking/model/dto"
)

type Booking interface {
	LoadAll(ctx context.Context) ([]model.Booking, error)
	All(ctx context.Context) ([]model.Booking, error)
	FindCustomer(ctx context.Context, idNumber, phoneNumber string) (customerModel.Customer, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	Confirm(ctx context.Context, id, signature string) error
}

// serviceImpl owns the in-memory booking projection. It is the only writer:
// every mutation either applies its full success path or leaves the
// projection untouched. The projection is always sorted by creation time,
// newest first.
type serviceImpl struct {
	repo         repository.Booking
	customerRepo customerRepo.Customer
	cfg          *config.Config
	otel         otel.Otel
	events       kafka.Client
	storage      s3.S3

	mu         sync.RWMutex
	projection []model.Booking
	loaded     bool
}

func New(repo repository.Booking, customerRepo customerRepo.Customer, cfg *config.Config, otel otel.Otel, events kafka.Client, storage s3.S3) Booking {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customerRepo,
		cfg:          cfg,
		otel:         otel,
		events:       events,
		storage:      storage,
	}
}

// LoadAll fetches every booking joined with its customer, newest first, and
// replaces the projection. On failure the prior projection is left untouched.
func (s *serviceImpl) LoadAll(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoadAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings")

		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	s.mu.Lock()
	s.projection = models
	s.loaded = true
	s.mu.Unlock()

	return s.snapshot(), nil
}

// All returns the current projection, loading it on first use.
func (s *serviceImpl) All(ctx context.Context) ([]model.Booking, error) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		return s.LoadAll(ctx)
	}

	return s.snapshot(), nil
}

func (s *serviceImpl) snapshot() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.projection)
}

// FindCustomer matches by id number OR phone number and returns the first
// candidate. A zero-ID customer means no match.
func (s *serviceImpl) FindCustomer(ctx context.Context, idNumber, phoneNumber string) (res customerModel.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				ArgName:  "find_id_number",
				Field:    customerModel.FieldIDNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    idNumber,
				Table:    customerModel.TableName,
			},
			gDto.Filter{
				ArgName:  "find_phone_number",
				Field:    customerModel.FieldPhoneNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    phoneNumber,
				Table:    customerModel.TableName,
			},
		},
	}

	candidates, err := s.customerRepo.GetAll(ctx, gDto.QueryParams{Limit: 1}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to find customer")

		return res, fmt.Errorf("failed to find customer: %w", err)
	}

	if len(candidates) == 0 {
		return res, nil
	}

	return candidates[0], nil
}

// Create de-duplicates the customer, then inserts the booking with status
// forced to awaiting confirmation and merges it into the projection. If the
// booking insert fails after a new customer row was created, the customer row
// is kept: it is valid on its own and will be matched by later bookings.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	customer, err := s.FindCustomer(ctx, req.Customer.IDNumber, req.Customer.PhoneNumber)
	if err != nil {
		return res, err
	}

	if customer.ID == constant.Empty {
		customer = req.Customer.ToModel(user)

		if err = s.customerRepo.Insert(ctx, customer); err != nil {
			log.Error().Err(err).Msg("failed to create customer")

			return res, fmt.Errorf("failed to create customer: %w", err)
		}
	}

	booking, err := req.ToModel(customer.ID, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.CustomerFullName = customer.FullName
	booking.CustomerIDNumber = customer.IDNumber
	booking.CustomerPhoneNumber = customer.PhoneNumber
	booking.CustomerEmail = customer.Email

	s.merge(booking)

	res.FromModel(booking)

	return res, nil
}

// merge adds a booking to the projection and restores newest-first order.
func (s *serviceImpl) merge(booking model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projection = append(s.projection, booking)
	slices.SortStableFunc(s.projection, func(a, b model.Booking) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

// Get always fetches fresh from the backend, never from the projection, so
// the signing workflow sees the current status.
func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// Confirm moves a booking to confirmed, exactly once, and attaches the
// signature. The matching projection entry is patched in place: the status
// change does not affect the creation-order sort key, so no resort happens.
func (s *serviceImpl) Confirm(ctx context.Context, id, signature string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusAwaitingConfirmation {
		return failure.Conflict("booking is not awaiting confirmation") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusConfirmed,
		model.FieldSignature:     signature,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to confirm booking")

		return fmt.Errorf("failed to confirm booking: %w", err)
	}

	s.patch(id, signature)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishConfirmed(c, booking)
		s.archiveSignature(c, id, signature)
	}()

	return nil
}

func (s *serviceImpl) patch(id, signature string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projection {
		if s.projection[i].ID == id {
			s.projection[i].Status = model.StatusConfirmed
			s.projection[i].Signature = &signature

			return
		}
	}
}

func (s *serviceImpl) publishConfirmed(ctx context.Context, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := dto.BookingEvent{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		Status:     model.StatusConfirmed,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}

	err := s.events.SendMessages(ctx, s.cfg.Kafka.Topics.BookingEvents, kafka.Message{
		Key:   booking.ID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking confirmed event")
	}
}

// archiveSignature keeps a best-effort copy of the raw signature image next
// to the generated agreements.
func (s *serviceImpl) archiveSignature(ctx context.Context, id, signature string) {
	if !s.cfg.External.S3.Enable {
		return
	}

	contentType := sharedBase64.GetContentType(signature)

	idx := strings.Index(signature, ";base64,")
	if contentType == constant.Empty || idx == -1 {
		return
	}

	raw, err := base64.StdEncoding.DecodeString(signature[idx+len(";base64,"):])
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to decode signature image")

		return
	}

	fileName := fmt.Sprintf("signature-%s.png", id)

	_, err = s.storage.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, s.cfg.External.S3.AgreementDir, fileName, contentType, raw)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to archive signature image")
	}
}
