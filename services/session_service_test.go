package services

import (
	"testing"
	"time"

	"github.com/Om-Rawte/AIMenuAssistant/configs"
	"github.com/Om-Rawte/AIMenuAssistant/entity"
	"github.com/Om-Rawte/AIMenuAssistant/repository"
	"github.com/Om-Rawte/AIMenuAssistant/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newSessionService(t *testing.T, db *gorm.DB) *SessionService {
	t.Helper()
	cfg := &configs.Config{JWTSecret: "test-secret", SessionTTL: time.Hour}
	return NewSessionService(
		cfg,
		repository.NewTableRepository(db),
		repository.NewReservationRepository(db),
		newGroupService(db),
	)
}

func seedTable(t *testing.T, db *gorm.DB) entity.Table {
	t.Helper()
	table := entity.Table{Code: "T3", Name: "Center 1", Seats: 4}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return table
}

func TestEnterWithJSONQR(t *testing.T) {
	db := openTestDB(t)
	table := seedTable(t, db)
	svc := newSessionService(t, db)

	out, err := svc.Enter(&EnterIn{QR: `{"table_id": 1, "ai_provider": "deepseek"}`})
	assert.NoError(t, err)
	assert.Equal(t, table.ID, out.Table.ID)
	assert.NotEmpty(t, out.UserID)
	assert.EqualValues(t, 3600, out.ExpiresIn)

	claims, err := utils.ParseSessionToken(out.Token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, table.ID, claims.TableID)
	assert.Equal(t, out.UserID, claims.UserID)
	assert.Equal(t, "deepseek", claims.AIProvider)
}

func TestEnterWithPairQR(t *testing.T) {
	db := openTestDB(t)
	seedTable(t, db)
	svc := newSessionService(t, db)

	out, err := svc.Enter(&EnterIn{QR: "table_id=1&ai_provider=openai"})
	assert.NoError(t, err)
	assert.EqualValues(t, 1, out.Table.ID)
}

func TestEnterWithoutTableIsFatal(t *testing.T) {
	db := openTestDB(t)
	seedTable(t, db)
	svc := newSessionService(t, db)

	_, err := svc.Enter(&EnterIn{})
	assert.ErrorIs(t, err, ErrMissingTable)

	_, err = svc.Enter(&EnterIn{QR: "geo=52.5,13.4"})
	assert.ErrorIs(t, err, ErrMissingTable)
}

func TestEnterUnknownTable(t *testing.T) {
	db := openTestDB(t)
	svc := newSessionService(t, db)

	_, err := svc.Enter(&EnterIn{TableID: 42})
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestEnterValidatesReservationName(t *testing.T) {
	db := openTestDB(t)
	table := seedTable(t, db)
	res := entity.Reservation{CustomerName: "Garcia", TableID: table.ID}
	assert.NoError(t, db.Create(&res).Error)
	svc := newSessionService(t, db)

	_, err := svc.Enter(&EnterIn{TableID: table.ID, ReservationID: res.ID, ReservationName: "Smith"})
	assert.ErrorIs(t, err, ErrReservationName)

	// match is case-insensitive and ignores padding
	out, err := svc.Enter(&EnterIn{TableID: table.ID, ReservationID: res.ID, ReservationName: "  garcia "})
	assert.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

func TestEnterJoinsGroupSession(t *testing.T) {
	db := openTestDB(t)
	table := seedTable(t, db)
	svc := newSessionService(t, db)

	out, err := svc.Enter(&EnterIn{TableID: table.ID})
	assert.NoError(t, err)

	sess, err := svc.Group.Session(table.ID, out.UserID)
	assert.NoError(t, err)
	assert.Equal(t, StateIdle, sess.Status().State)
}
