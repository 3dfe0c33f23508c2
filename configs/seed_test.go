package configs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Om-Rawte/AIMenuAssistant/entity"
)

func useTestDB(t *testing.T) {
	t.Helper()
	prev := db
	t.Cleanup(func() { db = prev })

	ConnectionDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	SetupDatabase()
}

func TestSeedTablesIsIdempotent(t *testing.T) {
	useTestDB(t)

	assert.NoError(t, SeedTables())
	assert.NoError(t, SeedTables())

	var count int64
	db.Model(&entity.Table{}).Count(&count)
	assert.EqualValues(t, 5, count)
}

func TestSeedTablesSurvivesRenamedTable(t *testing.T) {
	useTestDB(t)
	assert.NoError(t, SeedTables())

	// a previous release seeded this table under a different name
	assert.NoError(t, db.Model(&entity.Table{}).
		Where("code = ?", "T1").
		Updates(map[string]any{"name": "Old Window", "seats": 3}).Error)

	assert.NoError(t, SeedTables())

	var count int64
	db.Model(&entity.Table{}).Count(&count)
	assert.EqualValues(t, 5, count)

	// reseeding finds the row by code and leaves the live values alone
	var tbl entity.Table
	assert.NoError(t, db.Where("code = ?", "T1").First(&tbl).Error)
	assert.Equal(t, "Old Window", tbl.Name)
	assert.Equal(t, 3, tbl.Seats)
}

func TestSeedMenuOnlyRunsOnce(t *testing.T) {
	useTestDB(t)

	assert.NoError(t, SeedMenu())
	var first int64
	db.Model(&entity.MenuItem{}).Count(&first)
	assert.NotZero(t, first)

	assert.NoError(t, SeedMenu())
	var second int64
	db.Model(&entity.MenuItem{}).Count(&second)
	assert.Equal(t, first, second)
}
