package impl

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	deliverycontext "pawtrack/internal/delivery/context"
	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"

	"github.com/google/uuid"
)

// Failure stages reported to metrics.
const (
	stageRules     = "rules"
	stageEvaluate  = "evaluate"
	stageBroadcast = "broadcast"
	stagePublish   = "publish"
	stagePanic     = "panic"
)

// checkMode selects which health checks a sweep runs.
type checkMode int

const (
	checkStatus checkMode = iota
	checkInactivity
)

// alertEngine evaluates a device inside a transaction holding its row lock
// and writes the surviving alerts. Fan-out happens after commit.
type alertEngine struct {
	logger       *slog.Logger
	txManager    repository.TransactionManager
	geofenceRepo repository.GeofenceRepository
	ruleRepo     repository.AlertRuleRepository
	detector     *geofenceDetector
	evaluator    *healthEvaluator
	writer       *alertWriter
	notifier     *alertNotifier
	metrics      service.MetricsRecorder
	now          func() time.Time
}

func (e *alertEngine) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, e.logger)
}

// ProcessFix runs the detector and the rule-scoped health checks for a fix
// that is already committed. Failures are logged and never propagate.
func (e *alertEngine) ProcessFix(ctx context.Context, device *entity.Device, petID *uuid.UUID, fix *entity.LocationFix) {
	start := e.now()
	defer func() {
		if r := recover(); r != nil {
			e.metrics.AlertingFailed(stagePanic)
			e.log(ctx).Error("alerting panicked",
				slog.String("device_id", device.ID.String()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	geofences, err := e.geofenceRepo.FindActiveByUser(ctx, device.UserID)
	if err != nil {
		e.fail(ctx, stageRules, device, err)

		return
	}
	rules, err := e.ruleRepo.FindActiveByUser(ctx, device.UserID)
	if err != nil {
		e.fail(ctx, stageRules, device, err)

		return
	}

	var created []*entity.Alert
	err = e.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		locked, err := factory.NewDeviceRepository().LockByID(ctx, device.ID)
		if err != nil {
			return errors.Wrap(err, "failed to lock device")
		}

		alerts := factory.NewAlertRepository()
		candidates, err := e.detector.Detect(ctx, &detectInput{
			device:    locked,
			petID:     petID,
			fix:       fix,
			geofences: geofences,
			alerts:    alerts,
			locations: factory.NewLocationRepository(),
		})
		if err != nil {
			return err
		}
		candidates = append(candidates, e.evaluator.EvaluateFix(locked, petID, rules)...)

		created, err = e.writer.Write(ctx, alerts, candidates)

		return err
	})
	e.metrics.ObserveAlerting(e.now().Sub(start))
	if err != nil {
		e.fail(ctx, stageEvaluate, device, err)

		return
	}

	e.notifier.AlertsCreated(ctx, device.UserID, created)
}

// Sweep runs one check mode against a device outside of fix processing and
// returns the alerts it created.
func (e *alertEngine) Sweep(ctx context.Context, deviceID uuid.UUID, petID *uuid.UUID, rules []*entity.AlertRule, mode checkMode) ([]*entity.Alert, error) {
	var (
		created []*entity.Alert
		userID  uuid.UUID
	)
	err := e.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		locked, err := factory.NewDeviceRepository().LockByID(ctx, deviceID)
		if err != nil {
			return errors.Wrap(err, "failed to lock device")
		}
		userID = locked.UserID

		var candidates []*entity.AlertCandidate
		switch mode {
		case checkStatus:
			candidates = e.evaluator.EvaluateStatus(locked, petID)
		case checkInactivity:
			candidates = e.evaluator.EvaluateInactivity(locked, petID, rules)
		}

		created, err = e.writer.Write(ctx, factory.NewAlertRepository(), candidates)

		return err
	})
	if err != nil {
		return nil, err
	}

	if len(created) > 0 {
		e.notifier.AlertsCreated(ctx, userID, created)
	}

	return created, nil
}

func (e *alertEngine) fail(ctx context.Context, stage string, device *entity.Device, err error) {
	e.metrics.AlertingFailed(stage)
	e.log(ctx).Error("alerting failed",
		slog.String("stage", stage),
		slog.String("device_id", device.ID.String()),
		slog.Any("error", err),
	)
}

// alertNotifier fans committed alerts out to live sessions and the push relay.
type alertNotifier struct {
	logger      *slog.Logger
	alertRepo   repository.AlertRepository
	broadcaster service.Broadcaster
	publisher   service.EventPublisher
	metrics     service.MetricsRecorder
}

// AlertsCreated broadcasts each alert, then the user's unread count, and
// queues one push per alert.
func (n *alertNotifier) AlertsCreated(ctx context.Context, userID uuid.UUID, alerts []*entity.Alert) {
	if len(alerts) == 0 {
		return
	}

	for _, alert := range alerts {
		n.metrics.AlertCreated(string(alert.Type))

		if err := n.broadcaster.Publish(ctx, userID, &service.RealtimeEvent{Event: service.EventAlertNew, Data: alert}); err != nil {
			n.warn(ctx, stageBroadcast, userID, err)
		}
	}

	n.PublishUnreadCount(ctx, userID)

	for _, alert := range alerts {
		if err := n.publisher.PublishAlertEvent(ctx, newAlertPushEvent(ctx, alert)); err != nil {
			n.warn(ctx, stagePublish, userID, err)
		}
	}
}

// PublishUnreadCount recomputes the unread count and broadcasts it.
func (n *alertNotifier) PublishUnreadCount(ctx context.Context, userID uuid.UUID) {
	count, err := n.alertRepo.CountUnread(ctx, userID)
	if err != nil {
		n.warn(ctx, stageBroadcast, userID, errors.Wrap(err, "failed to count unread alerts"))

		return
	}

	event := &service.RealtimeEvent{
		Event: service.EventUnreadCount,
		Data:  service.UnreadCountPayload{Count: count},
	}
	if err := n.broadcaster.Publish(ctx, userID, event); err != nil {
		n.warn(ctx, stageBroadcast, userID, err)
	}
}

func (n *alertNotifier) warn(ctx context.Context, stage string, userID uuid.UUID, err error) {
	n.metrics.AlertingFailed(stage)
	deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("alert fan-out failed",
		slog.String("stage", stage),
		slog.String("user_id", userID.String()),
		slog.Any("error", err),
	)
}

func newAlertPushEvent(ctx context.Context, alert *entity.Alert) *service.AlertPushEvent {
	event := &service.AlertPushEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		AlertID:   alert.ID.String(),
		UserID:    alert.UserID.String(),
		AlertType: string(alert.Type),
		Severity:  string(alert.Severity),
		Title:     alert.Title,
		Message:   alert.Message,
	}
	if alert.DeviceID != nil {
		event.DeviceID = alert.DeviceID.String()
	}
	if alert.PetID != nil {
		event.PetID = alert.PetID.String()
	}

	return event
}
