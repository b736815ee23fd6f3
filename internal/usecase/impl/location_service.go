package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pawtrack/config"
	deliverycontext "pawtrack/internal/delivery/context"
	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"
	"pawtrack/internal/geo"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// locationService is the event dispatcher. Each fix is persisted, then run
// through alerting and broadcast on the lane of its device.
type locationService struct {
	txManager    repository.TransactionManager
	deviceRepo   repository.DeviceRepository
	locationRepo repository.LocationRepository
	petRepo      repository.PetRepository
	petLinkRepo  repository.PetLinkRepository
	broadcaster  service.Broadcaster
	metrics      service.MetricsRecorder
	engine       *alertEngine
	lanes        *deviceLanes
	logger       *slog.Logger
	now          func() time.Time
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	Lifecycle    fx.Lifecycle `optional:"true"`
	TxManager    repository.TransactionManager
	DeviceRepo   repository.DeviceRepository
	LocationRepo repository.LocationRepository
	PetRepo      repository.PetRepository
	PetLinkRepo  repository.PetLinkRepository
	GeofenceRepo repository.GeofenceRepository
	RuleRepo     repository.AlertRuleRepository
	AlertRepo    repository.AlertRepository
	Broadcaster  service.Broadcaster
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewLocationService is the constructor for locationService. The device
// lanes are drained when the application stops.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	srv := newLocationService(params, time.Now)

	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.Hook{
			OnStop: srv.lanes.Close,
		})
	}

	return srv
}

func newLocationService(params LocationServiceParams, now func() time.Time) *locationService {
	alerting := withDefaults(params.Config).Alerting

	return &locationService{
		txManager:    params.TxManager,
		deviceRepo:   params.DeviceRepo,
		locationRepo: params.LocationRepo,
		petRepo:      params.PetRepo,
		petLinkRepo:  params.PetLinkRepo,
		broadcaster:  params.Broadcaster,
		metrics:      params.Metrics,
		engine: &alertEngine{
			logger:       params.Logger,
			txManager:    params.TxManager,
			geofenceRepo: params.GeofenceRepo,
			ruleRepo:     params.RuleRepo,
			detector:     newGeofenceDetector(),
			evaluator:    newHealthEvaluator(alerting, now),
			writer:       newAlertWriter(alerting.Cooldown, params.Metrics, now),
			notifier: &alertNotifier{
				logger:      params.Logger,
				alertRepo:   params.AlertRepo,
				broadcaster: params.Broadcaster,
				publisher:   params.Publisher,
				metrics:     params.Metrics,
			},
			metrics: params.Metrics,
			now:     now,
		},
		lanes:  newDeviceLanes(params.Logger, alerting.LaneBuffer, alerting.LaneIdleTimeout),
		logger: params.Logger,
		now:    now,
	}
}

// withDefaults returns cfg with the engine defaults filled in.
func withDefaults(cfg *config.Config) *config.Config {
	if cfg == nil {
		cfg = &config.Config{}
	}
	cfg.ApplyDefaults()

	return cfg
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleLocationFix validates and resolves the fix, then hands it to the
// device's lane. It returns once the fix is durable; alerting and broadcast
// keep running even if ctx is cancelled afterwards. A ctx that ends while the
// fix is still queued returns its error, but the fix is committed anyway.
func (srv *locationService) HandleLocationFix(ctx context.Context, input *usecase.LocationFixInput) (*entity.LocationFix, error) {
	if input == nil || !geo.ValidCoordinate(input.Latitude, input.Longitude) {
		srv.metrics.FixIngested(service.FixInvalid)

		return nil, domainerrors.ErrInvalidCoordinates
	}

	device, err := srv.resolveDevice(ctx, input.DeviceIdentifier)
	if err != nil {
		if errors.Is(err, domainerrors.ErrDeviceRejected) {
			srv.metrics.FixIngested(service.FixRejected)
			srv.log(ctx).Warn("location fix rejected", slog.String("identifier", input.DeviceIdentifier))
		} else {
			srv.metrics.FixIngested(service.FixFailed)
		}

		return nil, err
	}

	fix := srv.newFix(device.ID, input)
	persisted := make(chan error, 1)
	background := context.WithoutCancel(ctx)

	err = srv.lanes.Submit(ctx, device.ID, func() {
		srv.process(background, device, fix, persisted)
	})
	if err != nil {
		srv.metrics.FixIngested(service.FixFailed)

		return nil, errors.Wrap(err, "failed to schedule location fix")
	}

	select {
	case err := <-persisted:
		if err != nil {
			srv.metrics.FixIngested(service.FixFailed)

			return nil, err
		}
	case <-ctx.Done():
		// The task stays queued, so the fix is still stored and processed.
		srv.log(ctx).Warn("caller left before the location fix was stored",
			slog.String("device_id", device.ID.String()),
			slog.String("location_id", fix.ID.String()),
			slog.Any("error", ctx.Err()),
		)

		return nil, errors.WithStack(ctx.Err())
	}

	srv.metrics.FixIngested(service.FixAccepted)

	return fix, nil
}

// resolveDevice accepts either the durable id or the hardware id.
func (srv *locationService) resolveDevice(ctx context.Context, identifier string) (*entity.Device, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, domainerrors.ErrDeviceRejected.WithDetails("device identifier is required")
	}

	if id, err := uuid.Parse(identifier); err == nil {
		device, err := srv.deviceRepo.FindByID(ctx, id)
		if err == nil {
			return device, nil
		}
		if !errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, err
		}
	}

	device, err := srv.deviceRepo.FindByHardwareID(ctx, identifier)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, domainerrors.ErrDeviceRejected.WithDetails("unknown device: " + identifier)
	}
	if err != nil {
		return nil, err
	}

	return device, nil
}

func (srv *locationService) newFix(deviceID uuid.UUID, input *usecase.LocationFixInput) *entity.LocationFix {
	now := srv.now()
	recordedAt := now
	if input.RecordedAt != nil && !input.RecordedAt.IsZero() {
		recordedAt = *input.RecordedAt
	}

	return &entity.LocationFix{
		ID:             uuid.New(),
		DeviceID:       deviceID,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Altitude:       input.Altitude,
		Accuracy:       input.Accuracy,
		Speed:          input.Speed,
		Heading:        input.Heading,
		SatelliteCount: input.SatelliteCount,
		BatteryLevel:   input.BatteryLevel,
		SignalStrength: input.SignalStrength,
		RecordedAt:     recordedAt,
		CreatedAt:      now,
	}
}

// process is the lane task of one fix. persisted receives the outcome of the
// durable write before any alerting starts.
func (srv *locationService) process(ctx context.Context, device *entity.Device, fix *entity.LocationFix, persisted chan<- error) {
	petID, pet := srv.linkedPet(ctx, device.ID)

	if err := srv.persist(ctx, fix); err != nil {
		persisted <- err

		return
	}
	persisted <- nil

	updated := applyContact(device, fix)
	srv.engine.ProcessFix(ctx, updated, petID, fix)
	srv.broadcastLocation(ctx, device, updated, pet, fix)
}

// persist writes the fix and advances the device contact in one transaction.
func (srv *locationService) persist(ctx context.Context, fix *entity.LocationFix) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewLocationRepository().CreateFix(ctx, fix); err != nil {
			return err
		}

		return factory.NewDeviceRepository().RecordContact(ctx, fix.DeviceID, fix.RecordedAt, fix.BatteryLevel)
	})
	if err != nil {
		srv.log(ctx).Error("failed to persist location fix",
			slog.String("device_id", fix.DeviceID.String()),
			slog.Any("error", err),
		)

		return err
	}

	return nil
}

// linkedPet resolves the active pet link. A missing link or pet is not an
// error; the fix is processed unscoped.
func (srv *locationService) linkedPet(ctx context.Context, deviceID uuid.UUID) (*uuid.UUID, *entity.Pet) {
	link, err := srv.petLinkRepo.FindActiveByDevice(ctx, deviceID)
	if err != nil {
		if !errors.Is(err, repository.ErrPetLinkNotFound) {
			srv.log(ctx).Warn("failed to resolve pet link",
				slog.String("device_id", deviceID.String()),
				slog.Any("error", err),
			)
		}

		return nil, nil
	}

	petID := link.PetID
	pet, err := srv.petRepo.FindByID(ctx, petID)
	if err != nil {
		srv.log(ctx).Warn("failed to load linked pet",
			slog.String("pet_id", petID.String()),
			slog.Any("error", err),
		)

		return &petID, nil
	}

	return &petID, pet
}

// broadcastLocation always runs, whatever alerting did.
func (srv *locationService) broadcastLocation(ctx context.Context, before, after *entity.Device, pet *entity.Pet, fix *entity.LocationFix) {
	event := &service.RealtimeEvent{
		Event: service.EventLocationUpdate,
		Data: service.LocationUpdatePayload{
			LocationFix: fix,
			Device:      after,
			Pet:         pet,
		},
	}
	if err := srv.broadcaster.Publish(ctx, after.UserID, event); err != nil {
		srv.log(ctx).Warn("failed to broadcast location", slog.String("device_id", after.ID.String()), slog.Any("error", err))
	}

	if !contactChanged(before, after) {
		return
	}
	update := &service.RealtimeEvent{Event: service.EventDeviceUpdate, Data: after}
	if err := srv.broadcaster.Publish(ctx, after.UserID, update); err != nil {
		srv.log(ctx).Warn("failed to broadcast device update", slog.String("device_id", after.ID.String()), slog.Any("error", err))
	}
}

// applyContact mirrors RecordContact on an in-memory copy of the device.
func applyContact(device *entity.Device, fix *entity.LocationFix) *entity.Device {
	updated := *device
	if updated.LastContact == nil || updated.LastContact.Before(fix.RecordedAt) {
		contact := fix.RecordedAt
		updated.LastContact = &contact
	}
	if fix.BatteryLevel != nil {
		level := *fix.BatteryLevel
		updated.BatteryLevel = &level
	}

	return &updated
}

func contactChanged(before, after *entity.Device) bool {
	if (before.LastContact == nil) != (after.LastContact == nil) {
		return true
	}
	if before.LastContact != nil && !before.LastContact.Equal(*after.LastContact) {
		return true
	}
	if (before.BatteryLevel == nil) != (after.BatteryLevel == nil) {
		return true
	}

	return before.BatteryLevel != nil && *before.BatteryLevel != *after.BatteryLevel
}

// GetHistory lists fixes of a device the user owns.
func (srv *locationService) GetHistory(ctx context.Context, userID, deviceID uuid.UUID, query repository.HistoryQuery) ([]*entity.LocationFix, error) {
	if err := srv.ensureOwned(ctx, userID, deviceID); err != nil {
		return nil, err
	}

	fixes, err := srv.locationRepo.FindHistory(ctx, deviceID, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location history")
	}

	return fixes, nil
}

// GetLatest returns the newest fix of a device the user owns.
func (srv *locationService) GetLatest(ctx context.Context, userID, deviceID uuid.UUID) (*entity.LocationFix, error) {
	if err := srv.ensureOwned(ctx, userID, deviceID); err != nil {
		return nil, err
	}

	fix, err := srv.locationRepo.FindLatestFix(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find latest location")
	}

	return fix, nil
}

func (srv *locationService) ensureOwned(ctx context.Context, userID, deviceID uuid.UUID) error {
	_, err := srv.deviceRepo.FindByIDForUser(ctx, deviceID, userID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return domainerrors.ErrDeviceRejected
	}

	return err
}
