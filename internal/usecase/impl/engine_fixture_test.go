package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pawtrack/config"
	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/infra/persistence/model"
	"pawtrack/internal/infra/persistence/postgres"
	mockSvc "pawtrack/internal/mocks/service"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testClock is a manually advanced clock shared by every engine component.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// recordingBroadcaster keeps every published event and signals each
// location_update, which is the last step of fix processing.
type recordingBroadcaster struct {
	mu        sync.Mutex
	events    []*service.RealtimeEvent
	locations chan struct{}
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{locations: make(chan struct{}, 64)}
}

func (b *recordingBroadcaster) Publish(_ context.Context, _ uuid.UUID, event *service.RealtimeEvent) error {
	b.mu.Lock()
	b.events = append(b.events, event)
	b.mu.Unlock()

	if event.Event == service.EventLocationUpdate {
		b.locations <- struct{}{}
	}

	return nil
}

func (b *recordingBroadcaster) Close() error {
	return nil
}

func (b *recordingBroadcaster) named(name string) []*service.RealtimeEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []*service.RealtimeEvent
	for _, event := range b.events {
		if event.Event == name {
			out = append(out, event)
		}
	}

	return out
}

func (b *recordingBroadcaster) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = nil
}

// nopMetrics discards every observation.
type nopMetrics struct{}

func (nopMetrics) FixIngested(string) {}
func (nopMetrics) AlertCreated(string) {}
func (nopMetrics) AlertSuppressed(string) {}
func (nopMetrics) AlertingFailed(string) {}
func (nopMetrics) ObserveAlerting(time.Duration) {}
func (nopMetrics) RealtimeDelivered(string, int) {}
func (nopMetrics) RealtimeDropped(string) {}
func (nopMetrics) SessionsChanged(int) {}

type engineFixture struct {
	t           *testing.T
	db          *gorm.DB
	clock       *testClock
	broadcaster *recordingBroadcaster
	publisher   *mockSvc.MockEventPublisher
	locations   *locationService
	alerts      *alertService
	userID      uuid.UUID
	device      *entity.Device
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection serialises sqlite writers; every query inside a
	// transaction goes through the transaction's repositories.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := &config.Config{}
	cfg.ApplyDefaults()

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	f := &engineFixture{
		t:           t,
		db:          db,
		clock:       newTestClock(),
		broadcaster: newRecordingBroadcaster(),
		publisher:   publisher,
		userID:      uuid.New(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f.locations = newLocationService(LocationServiceParams{
		TxManager:    postgres.NewTransactionManager(db),
		DeviceRepo:   postgres.NewDeviceRepository(db),
		LocationRepo: postgres.NewLocationRepository(db),
		PetRepo:      postgres.NewPetRepository(db),
		PetLinkRepo:  postgres.NewPetLinkRepository(db),
		GeofenceRepo: postgres.NewGeofenceRepository(db),
		RuleRepo:     postgres.NewAlertRuleRepository(db),
		AlertRepo:    postgres.NewAlertRepository(db),
		Broadcaster:  f.broadcaster,
		Publisher:    publisher,
		Metrics:      nopMetrics{},
		Config:       cfg,
		Logger:       logger,
	}, f.clock.Now)
	t.Cleanup(func() { _ = f.locations.lanes.Close(context.Background()) })

	f.alerts = newAlertService(AlertServiceParams{
		TxManager:    postgres.NewTransactionManager(db),
		AlertRepo:    postgres.NewAlertRepository(db),
		DeviceRepo:   postgres.NewDeviceRepository(db),
		PetLinkRepo:  postgres.NewPetLinkRepository(db),
		GeofenceRepo: postgres.NewGeofenceRepository(db),
		RuleRepo:     postgres.NewAlertRuleRepository(db),
		Broadcaster:  f.broadcaster,
		Publisher:    publisher,
		Metrics:      nopMetrics{},
		Config:       cfg,
		Logger:       logger,
	}, f.clock.Now)

	f.device = f.addDevice("TRK-001", nil)

	return f
}

func (f *engineFixture) addDevice(hardwareID string, battery *int) *entity.Device {
	f.t.Helper()

	device := &entity.Device{
		UserID:       f.userID,
		DeviceID:     hardwareID,
		Name:         "Collar " + hardwareID,
		BatteryLevel: battery,
	}
	require.NoError(f.t, postgres.NewDeviceRepository(f.db).CreateDevice(context.Background(), device))

	return device
}

func (f *engineFixture) addCircle(name string, lat, lng, radius float64, onEntry, onExit bool) uuid.UUID {
	f.t.Helper()

	id := uuid.New()
	require.NoError(f.t, f.db.Create(&model.GeofenceModel{
		ID:              id,
		UserID:          f.userID,
		Name:            name,
		Type:            string(entity.GeofenceTypeCircle),
		CenterLatitude:  &lat,
		CenterLongitude: &lng,
		RadiusMeters:    &radius,
		CreatedAt:       f.clock.Now(),
		UpdatedAt:       f.clock.Now(),
	}).Error)
	// Create skips zero values on columns with defaults, so flags are set afterwards.
	require.NoError(f.t, f.db.Model(&model.GeofenceModel{}).Where("id = ?", id).Updates(map[string]any{
		"is_active":      true,
		"alert_on_entry": onEntry,
		"alert_on_exit":  onExit,
	}).Error)

	return id
}

func (f *engineFixture) addRule(ruleType entity.RuleType, conditions model.RuleConditionsJSON) {
	f.t.Helper()

	require.NoError(f.t, f.db.Create(&model.AlertRuleModel{
		ID:         uuid.New(),
		UserID:     f.userID,
		RuleType:   string(ruleType),
		Name:       string(ruleType) + " rule",
		IsActive:   true,
		Conditions: datatypes.NewJSONType(conditions),
	}).Error)
}

func (f *engineFixture) linkPet(name string) uuid.UUID {
	f.t.Helper()

	petID := uuid.New()
	require.NoError(f.t, f.db.Create(&model.PetModel{ID: petID, UserID: f.userID, Name: name}).Error)
	_, err := postgres.NewPetLinkRepository(f.db).Link(context.Background(), petID, f.device.ID, f.clock.Now())
	require.NoError(f.t, err)

	return petID
}

// submit ingests a fix for the fixture device and waits until its
// background processing has broadcast the location.
func (f *engineFixture) submit(lat, lng float64, battery *int) *entity.LocationFix {
	f.t.Helper()

	return f.submitFor(f.device.DeviceID, lat, lng, battery)
}

func (f *engineFixture) submitFor(identifier string, lat, lng float64, battery *int) *entity.LocationFix {
	f.t.Helper()

	// Fixes are ordered by recorded_at, which defaults to the clock.
	f.clock.Advance(30 * time.Second)
	fix, err := f.locations.HandleLocationFix(context.Background(), &usecase.LocationFixInput{
		DeviceIdentifier: identifier,
		Latitude:         lat,
		Longitude:        lng,
		BatteryLevel:     battery,
	})
	require.NoError(f.t, err)
	f.waitProcessed()

	return fix
}

func (f *engineFixture) waitProcessed() {
	f.t.Helper()

	select {
	case <-f.broadcaster.locations:
	case <-time.After(5 * time.Second):
		f.t.Fatal("location fix was not processed")
	}
}

func (f *engineFixture) alertsOf(alertType entity.AlertType) []*entity.Alert {
	f.t.Helper()

	alerts, err := f.alerts.ListAlerts(context.Background(), f.userID, entity.AlertFilter{Limit: 100})
	require.NoError(f.t, err)

	var out []*entity.Alert
	for _, alert := range alerts {
		if alert.Type == alertType {
			out = append(out, alert)
		}
	}

	return out
}

// metadataFloat reads a numeric metadata value, which comes back from jsonb
// as a json.Number.
func metadataFloat(t *testing.T, value any) float64 {
	t.Helper()

	number, ok := value.(json.Number)
	require.True(t, ok, "metadata value %v is %T", value, value)
	out, err := number.Float64()
	require.NoError(t, err)

	return out
}

func intPtr(v int) *int {
	return &v
}
