package impl

import (
	"context"
	"log/slog"
	"time"

	"pawtrack/config"
	deliverycontext "pawtrack/internal/delivery/context"
	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultAlertPageSize = 50

// alertService implements the AlertUsecase interface.
type alertService struct {
	alertRepo   repository.AlertRepository
	deviceRepo  repository.DeviceRepository
	petLinkRepo repository.PetLinkRepository
	ruleRepo    repository.AlertRuleRepository
	engine      *alertEngine
	batchSize   int
	logger      *slog.Logger
	now         func() time.Time
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AlertRepo    repository.AlertRepository
	DeviceRepo   repository.DeviceRepository
	PetLinkRepo  repository.PetLinkRepository
	GeofenceRepo repository.GeofenceRepository
	RuleRepo     repository.AlertRuleRepository
	Broadcaster  service.Broadcaster
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAlertService is the constructor for alertService.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return newAlertService(params, time.Now)
}

func newAlertService(params AlertServiceParams, now func() time.Time) *alertService {
	cfg := withDefaults(params.Config)
	alerting := cfg.Alerting

	return &alertService{
		alertRepo:   params.AlertRepo,
		deviceRepo:  params.DeviceRepo,
		petLinkRepo: params.PetLinkRepo,
		ruleRepo:    params.RuleRepo,
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
		batchSize: cfg.Sweeper.BatchSize,
		logger:    params.Logger,
		now:       now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAlerts lists a user's alerts, newest first.
func (srv *alertService) ListAlerts(ctx context.Context, userID uuid.UUID, filter entity.AlertFilter) ([]*entity.Alert, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultAlertPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	alerts, err := srv.alertRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	return alerts, nil
}

// CountUnread counts a user's unread alerts.
func (srv *alertService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.alertRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread alerts")
	}

	return count, nil
}

// MarkAsRead marks one of the user's alerts read and re-broadcasts the
// unread count. read_at keeps the time of the first read.
func (srv *alertService) MarkAsRead(ctx context.Context, alertID, userID uuid.UUID) (*entity.Alert, error) {
	alert, err := srv.findOwned(ctx, alertID, userID)
	if err != nil {
		return nil, err
	}

	if !alert.IsRead {
		if err := srv.alertRepo.MarkRead(ctx, alertID, srv.now()); err != nil {
			return nil, errors.Wrap(err, "failed to mark alert read")
		}
		if alert, err = srv.findOwned(ctx, alertID, userID); err != nil {
			return nil, err
		}
		srv.log(ctx).Debug("alert marked read", slog.String("alert_id", alertID.String()))
	}

	srv.engine.notifier.PublishUnreadCount(ctx, userID)

	return alert, nil
}

func (srv *alertService) findOwned(ctx context.Context, alertID, userID uuid.UUID) (*entity.Alert, error) {
	alert, err := srv.alertRepo.FindByIDForUser(ctx, alertID, userID)
	if errors.Is(err, repository.ErrAlertNotFound) {
		return nil, domainerrors.ErrAlertNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find alert")
	}

	return alert, nil
}

// CheckDeviceStatus runs the battery and offline checks over the user's active devices.
func (srv *alertService) CheckDeviceStatus(ctx context.Context, userID uuid.UUID) (*usecase.SweepResult, error) {
	devices, err := srv.deviceRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	result := &usecase.SweepResult{}
	for _, device := range activeDevices(devices) {
		result.DevicesChecked++
		srv.sweepDevice(ctx, device, nil, checkStatus, result)
	}

	return result, nil
}

// CheckInactivity runs the user's inactivity rules over their active devices.
func (srv *alertService) CheckInactivity(ctx context.Context, userID uuid.UUID) (*usecase.SweepResult, error) {
	rules, err := srv.ruleRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alert rules")
	}
	devices, err := srv.deviceRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	result := &usecase.SweepResult{}
	for _, device := range activeDevices(devices) {
		result.DevicesChecked++
		srv.sweepDevice(ctx, device, rules, checkInactivity, result)
	}

	return result, nil
}

// SweepAll pages through every active device and runs both checks.
func (srv *alertService) SweepAll(ctx context.Context) (*usecase.SweepResult, error) {
	result := &usecase.SweepResult{}
	rulesByUser := make(map[uuid.UUID][]*entity.AlertRule)
	after := uuid.Nil

	for {
		if err := ctx.Err(); err != nil {
			return result, errors.WithStack(err)
		}

		devices, err := srv.deviceRepo.FindActiveAfter(ctx, after, srv.batchSize)
		if err != nil {
			return result, errors.Wrap(err, "failed to page devices")
		}

		for _, device := range devices {
			result.DevicesChecked++
			// Battery and offline checks do not depend on rules.
			srv.sweepDevice(ctx, device, nil, checkStatus, result)

			rules, ok := rulesByUser[device.UserID]
			if !ok {
				rules, err = srv.ruleRepo.FindActiveByUser(ctx, device.UserID)
				if err != nil {
					result.Failures++
					srv.log(ctx).Error("failed to load alert rules", slog.String("user_id", device.UserID.String()), slog.Any("error", err))

					continue
				}
				rulesByUser[device.UserID] = rules
			}

			srv.sweepDevice(ctx, device, rules, checkInactivity, result)
		}

		if len(devices) < srv.batchSize {
			break
		}
		after = devices[len(devices)-1].ID
	}

	srv.log(ctx).Info("health sweep finished",
		slog.Int("devices_checked", result.DevicesChecked),
		slog.Int("alerts_created", result.AlertsCreated),
		slog.Int("failures", result.Failures),
	)

	return result, nil
}

// sweepDevice runs one check on a device, counting rather than returning failures.
func (srv *alertService) sweepDevice(ctx context.Context, device *entity.Device, rules []*entity.AlertRule, mode checkMode, result *usecase.SweepResult) {
	var petID *uuid.UUID
	link, err := srv.petLinkRepo.FindActiveByDevice(ctx, device.ID)
	switch {
	case err == nil:
		petID = &link.PetID
	case !errors.Is(err, repository.ErrPetLinkNotFound):
		srv.log(ctx).Warn("failed to resolve pet link", slog.String("device_id", device.ID.String()), slog.Any("error", err))
	}

	created, err := srv.engine.Sweep(ctx, device.ID, petID, rules, mode)
	if err != nil {
		result.Failures++
		srv.engine.fail(ctx, stageEvaluate, device, err)

		return
	}
	result.AlertsCreated += len(created)
}

func activeDevices(devices []*entity.Device) []*entity.Device {
	active := make([]*entity.Device, 0, len(devices))
	for _, device := range devices {
		if device.Status == entity.DeviceStatusActive {
			active = append(active, device)
		}
	}

	return active
}
