package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/infra/persistence/model"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	homeLat = 27.7172
	homeLng = 85.3240
	// ~311 m north of home
	awayLat = 27.7200
)

func TestLocationService_ColdStartThenExit(t *testing.T) {
	f := newEngineFixture(t)
	petID := f.linkPet("Momo")
	fenceID := f.addCircle("Home", homeLat, homeLng, 100, false, true)

	f.submit(homeLat, homeLng, nil)
	assert.Empty(t, f.alertsOf(entity.AlertTypeGeofenceExit))
	assert.Empty(t, f.alertsOf(entity.AlertTypeGeofenceEntry))

	f.submit(awayLat, homeLng, nil)

	exits := f.alertsOf(entity.AlertTypeGeofenceExit)
	require.Len(t, exits, 1)
	exit := exits[0]
	assert.Equal(t, entity.SeverityHigh, exit.Severity)
	assert.Equal(t, "Geofence Exit Alert", exit.Title)
	assert.Equal(t, "Pet exited geofence: Home", exit.Message)
	require.NotNil(t, exit.PetID)
	assert.Equal(t, petID, *exit.PetID)
	require.NotNil(t, exit.GeofenceID)
	assert.Equal(t, fenceID, *exit.GeofenceID)
	require.NotNil(t, exit.Latitude)
	assert.InDelta(t, awayLat, *exit.Latitude, 1e-9)
	assert.Equal(t, "Home", exit.Metadata["geofenceName"])
	assert.InDelta(t, 311, metadataFloat(t, exit.Metadata["distanceMeters"]), 2)
	assert.InDelta(t, 100, metadataFloat(t, exit.Metadata["radiusMeters"]), 0)

	// Still outside: nothing new.
	f.submit(awayLat, homeLng, nil)
	assert.Len(t, f.alertsOf(entity.AlertTypeGeofenceExit), 1)
}

func TestLocationService_NoRealertWhileInside(t *testing.T) {
	f := newEngineFixture(t)
	f.addCircle("Home", homeLat, homeLng, 100, true, true)

	for range 5 {
		f.submit(homeLat, homeLng+0.0001, nil)
	}

	assert.Len(t, f.alertsOf(entity.AlertTypeGeofenceEntry), 1)
	assert.Empty(t, f.alertsOf(entity.AlertTypeGeofenceExit))
}

func TestLocationService_OneAlertPerCrossing(t *testing.T) {
	f := newEngineFixture(t)
	f.addCircle("Park", homeLat, homeLng, 100, true, true)

	f.submit(homeLat, homeLng, nil)
	f.submit(awayLat, homeLng, nil)
	f.submit(awayLat+0.001, homeLng, nil)
	f.submit(homeLat, homeLng, nil)
	f.submit(homeLat, homeLng, nil)

	entries := f.alertsOf(entity.AlertTypeGeofenceEntry)
	exits := f.alertsOf(entity.AlertTypeGeofenceExit)
	assert.Len(t, entries, 2)
	require.Len(t, exits, 1)
	assert.Equal(t, entity.SeverityMedium, entries[0].Severity)
	assert.Equal(t, "Pet entered geofence: Park", entries[0].Message)
}

func TestLocationService_StoresSingleFlagGeofences(t *testing.T) {
	f := newEngineFixture(t)
	id := f.addCircle("Yard", homeLat, homeLng, 50, true, false)

	var stored model.GeofenceModel
	require.NoError(t, f.db.First(&stored, "id = ?", id).Error)

	assert.True(t, stored.IsActive)
	assert.True(t, stored.AlertOnEntry)
	assert.False(t, stored.AlertOnExit)
}

func TestLocationService_EntryOnFenceCreatedAroundDevice(t *testing.T) {
	f := newEngineFixture(t)
	f.submit(homeLat, homeLng, nil)

	// The device is already inside when the geofence appears.
	f.addCircle("Home", homeLat, homeLng, 100, true, true)
	f.submit(homeLat, homeLng, nil)

	entries := f.alertsOf(entity.AlertTypeGeofenceEntry)
	require.Len(t, entries, 1)
	assert.Empty(t, f.alertsOf(entity.AlertTypeGeofenceExit))

	f.submit(homeLat, homeLng, nil)
	assert.Len(t, f.alertsOf(entity.AlertTypeGeofenceEntry), 1)
}

func TestLocationService_ExitOnlySteadyState(t *testing.T) {
	f := newEngineFixture(t)
	f.addCircle("Home", homeLat, homeLng, 100, false, true)

	f.submit(homeLat, homeLng, nil)
	f.submit(homeLat, homeLng, nil)
	assert.Empty(t, f.alertsOf(entity.AlertTypeGeofenceExit))

	f.submit(awayLat, homeLng, nil)
	f.submit(awayLat, homeLng, nil)
	f.submit(awayLat+0.001, homeLng, nil)
	assert.Len(t, f.alertsOf(entity.AlertTypeGeofenceExit), 1)

	// Back inside, then out again: one more exit.
	f.submit(homeLat, homeLng, nil)
	f.submit(awayLat, homeLng, nil)
	assert.Len(t, f.alertsOf(entity.AlertTypeGeofenceExit), 2)
	assert.Empty(t, f.alertsOf(entity.AlertTypeGeofenceEntry))
}

func TestLocationService_EntryOnlyReentry(t *testing.T) {
	f := newEngineFixture(t)
	f.addCircle("Park", homeLat, homeLng, 100, true, false)

	f.submit(awayLat, homeLng, nil)
	assert.Empty(t, f.alertsOf(entity.AlertTypeGeofenceEntry))

	f.submit(homeLat, homeLng, nil)
	f.submit(homeLat, homeLng+0.0001, nil)
	assert.Len(t, f.alertsOf(entity.AlertTypeGeofenceEntry), 1)

	f.submit(awayLat, homeLng, nil)
	assert.Empty(t, f.alertsOf(entity.AlertTypeGeofenceExit))

	f.submit(homeLat, homeLng, nil)
	assert.Len(t, f.alertsOf(entity.AlertTypeGeofenceEntry), 2)
}

func TestLocationService_ScopedGeofenceNeedsLinkedPet(t *testing.T) {
	f := newEngineFixture(t)
	otherPet := uuid.New()
	lat, lng, radius := homeLat, homeLng, 100.0
	require.NoError(t, f.db.Create(&model.GeofenceModel{
		ID: uuid.New(), UserID: f.userID, PetID: &otherPet, Name: "Vet", Type: "circle",
		CenterLatitude: &lat, CenterLongitude: &lng, RadiusMeters: &radius,
		IsActive: true, AlertOnEntry: true, AlertOnExit: true,
	}).Error)

	f.submit(homeLat, homeLng, nil)
	f.submit(awayLat, homeLng, nil)

	assert.Empty(t, f.alertsOf(entity.AlertTypeGeofenceEntry))
	assert.Empty(t, f.alertsOf(entity.AlertTypeGeofenceExit))
}

func TestLocationService_BatteryDropUsesNewLevel(t *testing.T) {
	f := newEngineFixture(t)
	f.addRule(entity.RuleTypeBattery, model.RuleConditionsJSON{})
	device := f.addDevice("TRK-BAT", intPtr(25))

	f.submitFor(device.DeviceID, homeLat, homeLng, intPtr(8))

	alerts := f.alertsOf(entity.AlertTypeLowBattery)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.SeverityHigh, alerts[0].Severity)
	assert.Equal(t, "Device Collar TRK-BAT battery is at 8%", alerts[0].Message)
}

func TestLocationService_BatteryCooldown(t *testing.T) {
	f := newEngineFixture(t)
	f.addRule(entity.RuleTypeBattery, model.RuleConditionsJSON{BatteryThresholdPercent: intPtr(30)})

	f.submit(homeLat, homeLng, intPtr(15))
	f.submit(homeLat, homeLng, intPtr(14))
	assert.Len(t, f.alertsOf(entity.AlertTypeLowBattery), 1)

	f.clock.Advance(time.Hour + time.Second)
	f.submit(homeLat, homeLng, intPtr(13))

	alerts := f.alertsOf(entity.AlertTypeLowBattery)
	require.Len(t, alerts, 2)
	assert.Equal(t, entity.SeverityMedium, alerts[0].Severity)
}

func TestLocationService_BroadcastsAfterAlert(t *testing.T) {
	f := newEngineFixture(t)
	petID := f.linkPet("Momo")
	f.addCircle("Home", homeLat, homeLng, 100, true, false)

	f.submit(homeLat, homeLng, intPtr(90))

	newAlerts := f.broadcaster.named(service.EventAlertNew)
	require.Len(t, newAlerts, 1)
	assert.Equal(t, entity.AlertTypeGeofenceEntry, newAlerts[0].Data.(*entity.Alert).Type)

	counts := f.broadcaster.named(service.EventUnreadCount)
	require.Len(t, counts, 1)
	assert.Equal(t, service.UnreadCountPayload{Count: 1}, counts[0].Data)

	locations := f.broadcaster.named(service.EventLocationUpdate)
	require.Len(t, locations, 1)
	payload := locations[0].Data.(service.LocationUpdatePayload)
	require.NotNil(t, payload.Pet)
	assert.Equal(t, petID, payload.Pet.ID)
	require.NotNil(t, payload.Device.BatteryLevel)
	assert.Equal(t, 90, *payload.Device.BatteryLevel)
	assert.NotNil(t, payload.Device.LastContact)

	assert.Len(t, f.broadcaster.named(service.EventDeviceUpdate), 1)
	f.publisher.AssertCalled(t, "PublishAlertEvent", mock.Anything, mock.MatchedBy(func(event *service.AlertPushEvent) bool {
		return event.AlertType == string(entity.AlertTypeGeofenceEntry) && event.PetID == petID.String()
	}))
}

func TestLocationService_AlertingFailureStillBroadcasts(t *testing.T) {
	f := newEngineFixture(t)
	f.addCircle("Home", homeLat, homeLng, 100, true, true)
	require.NoError(t, f.db.Migrator().DropTable(&model.AlertModel{}))

	fix := f.submit(homeLat, homeLng, nil)

	require.Len(t, f.broadcaster.named(service.EventLocationUpdate), 1)
	assert.Empty(t, f.broadcaster.named(service.EventAlertNew))

	latest, err := f.locations.GetLatest(context.Background(), f.userID, f.device.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, fix.ID, latest.ID)
}

func TestLocationService_ResolvesDurableID(t *testing.T) {
	f := newEngineFixture(t)

	fix := f.submitFor(f.device.ID.String(), homeLat, homeLng, nil)

	assert.Equal(t, f.device.ID, fix.DeviceID)
}

func TestLocationService_RejectsUnknownDevice(t *testing.T) {
	f := newEngineFixture(t)

	for _, identifier := range []string{"TRK-404", uuid.NewString(), "  "} {
		_, err := f.locations.HandleLocationFix(context.Background(), &usecase.LocationFixInput{
			DeviceIdentifier: identifier,
			Latitude:         homeLat,
			Longitude:        homeLng,
		})
		require.ErrorIs(t, err, domainerrors.ErrDeviceRejected, identifier)
	}

	var count int64
	require.NoError(t, f.db.Model(&model.LocationModel{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, f.broadcaster.named(service.EventLocationUpdate))
}

func TestLocationService_RejectsInvalidCoordinates(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.locations.HandleLocationFix(context.Background(), &usecase.LocationFixInput{
		DeviceIdentifier: f.device.DeviceID,
		Latitude:         91,
		Longitude:        homeLng,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestLocationService_HistoryIsOwnerScoped(t *testing.T) {
	f := newEngineFixture(t)
	first := f.submit(homeLat, homeLng, nil)
	second := f.submit(awayLat, homeLng, nil)
	ctx := context.Background()

	history, err := f.locations.GetHistory(ctx, f.userID, f.device.ID, repository.HistoryQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	_, err = f.locations.GetHistory(ctx, uuid.New(), f.device.ID, repository.HistoryQuery{})
	assert.ErrorIs(t, err, domainerrors.ErrDeviceRejected)

	_, err = f.locations.GetLatest(ctx, uuid.New(), f.device.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceRejected)
}

func TestLocationService_CallerCancellationDoesNotStopAlerting(t *testing.T) {
	f := newEngineFixture(t)
	f.addCircle("Home", homeLat, homeLng, 100, true, true)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := f.locations.HandleLocationFix(ctx, &usecase.LocationFixInput{
		DeviceIdentifier: f.device.DeviceID,
		Latitude:         homeLat,
		Longitude:        homeLng,
	})
	require.NoError(t, err)
	cancel()
	f.waitProcessed()

	assert.Len(t, f.alertsOf(entity.AlertTypeGeofenceEntry), 1)
}

func TestLocationService_QueuedFixCommitsAfterCallerLeaves(t *testing.T) {
	f := newEngineFixture(t)
	var logs bytes.Buffer
	f.locations.logger = slog.New(slog.NewTextHandler(&logs, nil))

	// Hold the device's lane so the fix stays queued.
	release := make(chan struct{})
	require.NoError(t, f.locations.lanes.Submit(context.Background(), f.device.ID, func() { <-release }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.locations.HandleLocationFix(ctx, &usecase.LocationFixInput{
		DeviceIdentifier: f.device.DeviceID,
		Latitude:         homeLat,
		Longitude:        homeLng,
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, logs.String(), "caller left before the location fix was stored")

	close(release)
	f.waitProcessed()

	latest, err := f.locations.GetLatest(context.Background(), f.userID, f.device.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.InDelta(t, homeLat, latest.Latitude, 1e-9)
}
