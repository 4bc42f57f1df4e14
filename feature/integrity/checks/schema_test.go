package checks

import (
	"testing"

	"asset-audit/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type widget struct {
	ID    uint   `gorm:"column:id;primaryKey"`
	Code  string `gorm:"column:code;type:varchar(32)"`
	Notes string `gorm:"column:notes;type:text"`
}

func (widget) TableName() string { return "widgets" }

type untabled struct {
	ID uint `gorm:"column:id"`
}

func setupSQLite(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, &widget{})
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_Migrated(t *testing.T) {
	db := setupSQLite(t)
	require.NoError(t, database.Migrate(db, &widget{}))

	report, err := CheckSchema(db, &widget{})
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "sqlite", report.Driver)
	assert.Equal(t, "ok", report.Tables["widgets"].Status)
}

func TestCheckSchema_MissingTable(t *testing.T) {
	db := setupSQLite(t)

	report, err := CheckSchema(db, widget{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	tbl := report.Tables["widgets"]
	assert.Equal(t, "error", tbl.Status)
	assert.ElementsMatch(t, []string{"id", "code", "notes"}, tbl.MissingColumns)
}

func TestCheckSchema_TypeMismatch(t *testing.T) {
	db := setupSQLite(t)
	require.NoError(t, db.Exec("CREATE TABLE widgets (id integer primary key, code integer, notes text)").Error)

	report, err := CheckSchema(db, &widget{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"code: expected varchar, got integer"}, report.Tables["widgets"].TypeMismatches)
}

func TestCheckSchema_InvalidModel(t *testing.T) {
	db := setupSQLite(t)

	_, err := CheckSchema(db, &untabled{})
	assert.EqualError(t, err, "model untabled does not implement TableName")

	_, err = CheckSchema(db, "widgets")
	assert.Error(t, err)
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "item_name", parseGormColumn("primaryKey;column:item_name;type:varchar(100)"))
	assert.Equal(t, "varchar(100)", parseGormType("column:item_name;type:varchar(100)"))
	assert.Equal(t, "", parseGormType("column:id"))
	assert.Equal(t, "varchar", baseType("VARCHAR(64)"))
	assert.Equal(t, "text", baseType("text"))
}
