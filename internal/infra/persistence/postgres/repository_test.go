package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func seedDevice(t *testing.T, db *gorm.DB) *entity.Device {
	t.Helper()

	device := &entity.Device{
		UserID:   uuid.New(),
		DeviceID: "HW-" + uuid.NewString()[:8],
		Name:     "Collar",
	}
	require.NoError(t, NewDeviceRepository(db).CreateDevice(context.Background(), device))

	return device
}

func TestDeviceRepository_FindByIdentifiers(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()
	device := seedDevice(t, db)

	byID, err := repo.FindByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, device.DeviceID, byID.DeviceID)
	assert.Equal(t, entity.DeviceStatusActive, byID.Status)

	byHardware, err := repo.FindByHardwareID(ctx, device.DeviceID)
	require.NoError(t, err)
	assert.Equal(t, device.ID, byHardware.ID)

	_, err = repo.FindByHardwareID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)

	_, err = repo.FindByIDForUser(ctx, device.ID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)

	err = repo.CreateDevice(ctx, &entity.Device{UserID: uuid.New(), DeviceID: device.DeviceID})
	assert.ErrorIs(t, err, repository.ErrDuplicateDevice)
}

func TestDeviceRepository_RecordContactNeverMovesBackwards(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()
	device := seedDevice(t, db)

	later := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	earlier := later.Add(-time.Hour)
	battery := 42

	require.NoError(t, repo.RecordContact(ctx, device.ID, later, &battery))
	require.NoError(t, repo.RecordContact(ctx, device.ID, earlier, nil))

	stored, err := repo.FindByID(ctx, device.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastContact)
	assert.True(t, stored.LastContact.Equal(later))
	require.NotNil(t, stored.BatteryLevel)
	assert.Equal(t, 42, *stored.BatteryLevel)

	assert.ErrorIs(t, repo.RecordContact(ctx, uuid.New(), later, nil), repository.ErrDeviceNotFound)
}

func TestDeviceRepository_FindActiveAfterPages(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()
	for range 3 {
		seedDevice(t, db)
	}

	first, err := repo.FindActiveAfter(ctx, uuid.Nil, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)

	rest, err := repo.FindActiveAfter(ctx, first[1].ID, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.NotEqual(t, first[0].ID, rest[0].ID)
	assert.NotEqual(t, first[1].ID, rest[0].ID)
}

func TestPetLinkRepository_LinkKeepsOneActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewPetLinkRepository(db)
	ctx := context.Background()
	device := seedDevice(t, db)
	firstPet, secondPet := uuid.New(), uuid.New()
	at := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	_, err := repo.FindActiveByDevice(ctx, device.ID)
	require.ErrorIs(t, err, repository.ErrPetLinkNotFound)

	_, err = repo.Link(ctx, firstPet, device.ID, at)
	require.NoError(t, err)
	_, err = repo.Link(ctx, secondPet, device.ID, at.Add(time.Hour))
	require.NoError(t, err)

	active, err := repo.FindActiveByDevice(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, secondPet, active.PetID)

	var activeCount int64
	require.NoError(t, db.Model(&model.PetDeviceLinkModel{}).
		Where("device_id = ? AND is_active = ?", device.ID, true).
		Count(&activeCount).Error)
	assert.Equal(t, int64(1), activeCount)
}

func TestLocationRepository_PreviousAndLatest(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocationRepository(db)
	ctx := context.Background()
	device := seedDevice(t, db)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	fixes := make([]*entity.LocationFix, 0, 3)
	for i := range 3 {
		fix := &entity.LocationFix{
			DeviceID:   device.ID,
			Latitude:   27.7172 + float64(i)*0.001,
			Longitude:  85.3240,
			RecordedAt: base.Add(time.Duration(i) * time.Minute),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.CreateFix(ctx, fix))
		fixes = append(fixes, fix)
	}

	previous, err := repo.FindPreviousFix(ctx, fixes[2])
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.Equal(t, fixes[1].ID, previous.ID)

	none, err := repo.FindPreviousFix(ctx, fixes[0])
	require.NoError(t, err)
	assert.Nil(t, none)

	latest, err := repo.FindLatestFix(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, fixes[2].ID, latest.ID)

	from := base.Add(time.Minute)
	history, err := repo.FindHistory(ctx, device.ID, repository.HistoryQuery{From: &from, Limit: 10})
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, fixes[2].ID, history[0].ID)
}

func TestAlertRepository_LedgerQueries(t *testing.T) {
	db := newTestDB(t)
	repo := NewAlertRepository(db)
	ctx := context.Background()
	userID, deviceID, fenceID := uuid.New(), uuid.New(), uuid.New()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	newAlert := func(alertType entity.AlertType, at time.Time, geofenceID *uuid.UUID) *entity.Alert {
		alert := &entity.Alert{
			UserID:     userID,
			DeviceID:   &deviceID,
			GeofenceID: geofenceID,
			Type:       alertType,
			Severity:   entity.SeverityHigh,
			Title:      string(alertType),
			Message:    "test",
			Metadata:   map[string]any{"source": "test"},
			CreatedAt:  at,
		}
		require.NoError(t, repo.CreateAlert(ctx, alert))

		return alert
	}

	newAlert(entity.AlertTypeGeofenceEntry, base, &fenceID)
	exit := newAlert(entity.AlertTypeGeofenceExit, base.Add(time.Minute), &fenceID)
	battery := newAlert(entity.AlertTypeLowBattery, base.Add(2*time.Minute), nil)

	transition, err := repo.FindLatestTransition(ctx, deviceID, fenceID)
	require.NoError(t, err)
	require.NotNil(t, transition)
	assert.Equal(t, exit.ID, transition.ID)
	assert.Equal(t, entity.AlertTypeGeofenceExit, transition.Type)

	none, err := repo.FindLatestTransition(ctx, deviceID, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, none)

	latestBattery, err := repo.FindLatestByDeviceAndType(ctx, deviceID, entity.AlertTypeLowBattery)
	require.NoError(t, err)
	require.NotNil(t, latestBattery)
	assert.Equal(t, battery.ID, latestBattery.ID)
	assert.Equal(t, "test", latestBattery.Metadata["source"])

	count, err := repo.CountUnread(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	unread := false
	page, err := repo.FindByUser(ctx, userID, entity.AlertFilter{IsRead: &unread, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, battery.ID, page[0].ID)
}

func TestAlertRepository_MarkReadKeepsFirstReadAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewAlertRepository(db)
	ctx := context.Background()
	userID, deviceID := uuid.New(), uuid.New()

	alert := &entity.Alert{
		UserID:   userID,
		DeviceID: &deviceID,
		Type:     entity.AlertTypeInactivity,
		Severity: entity.SeverityMedium,
		Title:    "Device Inactivity Alert",
		Message:  "inactive",
	}
	require.NoError(t, repo.CreateAlert(ctx, alert))

	firstRead := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkRead(ctx, alert.ID, firstRead))
	require.NoError(t, repo.MarkRead(ctx, alert.ID, firstRead.Add(time.Hour)))

	stored, err := repo.FindByIDForUser(ctx, alert.ID, userID)
	require.NoError(t, err)
	assert.True(t, stored.IsRead)
	require.NotNil(t, stored.ReadAt)
	assert.True(t, stored.ReadAt.Equal(firstRead))

	_, err = repo.FindByIDForUser(ctx, alert.ID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrAlertNotFound)
}

func TestGeofenceAndRuleRepositories_ActiveOnly(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	userID := uuid.New()
	lat, lng, radius := 27.7172, 85.3240, 100.0
	threshold := 15

	require.NoError(t, db.Create(&model.GeofenceModel{
		ID: uuid.New(), UserID: userID, Name: "Home", Type: "circle",
		CenterLatitude: &lat, CenterLongitude: &lng, RadiusMeters: &radius,
		IsActive: true, AlertOnExit: true,
	}).Error)
	retired := uuid.New()
	require.NoError(t, db.Create(&model.GeofenceModel{
		ID: retired, UserID: userID, Name: "Old", Type: "circle",
	}).Error)
	// Create writes the column default for a false bool.
	require.NoError(t, db.Model(&model.GeofenceModel{}).Where("id = ?", retired).Update("is_active", false).Error)
	require.NoError(t, db.Create(&model.AlertRuleModel{
		ID: uuid.New(), UserID: userID, RuleType: "battery", Name: "Battery", IsActive: true,
		Conditions: datatypes.NewJSONType(model.RuleConditionsJSON{BatteryThresholdPercent: &threshold}),
	}).Error)

	fences, err := NewGeofenceRepository(db).FindActiveByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, fences, 1)
	assert.Equal(t, "Home", fences[0].Name)
	assert.True(t, fences[0].AlertOnExit)

	rules, err := NewAlertRuleRepository(db).FindActiveByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.NotNil(t, rules[0].Conditions.BatteryThresholdPercent)
	assert.Equal(t, 15, *rules[0].Conditions.BatteryThresholdPercent)
}

func TestPushTokenRepository_UpsertAndDeactivate(t *testing.T) {
	db := newTestDB(t)
	repo := NewPushTokenRepository(db)
	ctx := context.Background()
	firstUser, secondUser := uuid.New(), uuid.New()

	token := &entity.PushToken{UserID: firstUser, FCMToken: "fcm-1", DeviceID: "phone-1", Platform: "ios"}
	require.NoError(t, repo.UpsertToken(ctx, token))

	moved := &entity.PushToken{UserID: secondUser, FCMToken: "fcm-1", DeviceID: "phone-1", Platform: "ios"}
	require.NoError(t, repo.UpsertToken(ctx, moved))
	assert.Equal(t, token.ID, moved.ID)
	assert.Equal(t, secondUser, moved.UserID)

	tokens, err := repo.FindActiveByUsers(ctx, []uuid.UUID{firstUser, secondUser})
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, secondUser, tokens[0].UserID)

	affected, err := repo.DeactivateTokens(ctx, []string{"fcm-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	tokens, err = repo.FindActiveByUsers(ctx, []uuid.UUID{secondUser})
	require.NoError(t, err)
	assert.Empty(t, tokens)

	assert.ErrorIs(t, repo.DeleteToken(ctx, uuid.New(), secondUser), repository.ErrPushTokenNotFound)
}
