package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db is a shared in-memory SQLite database for the feature suite.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the database once and migrates the given models, keyed by table name.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file:rentaldesk_features?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	mockDb := &Db{DbConn: dbConn, models: models}
	modelList := make([]any, 0, len(models))
	for _, m := range models {
		modelList = append(modelList, m)
	}
	if err := dbConn.AutoMigrate(modelList...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}
	return mockDb
}

// ClearDB deletes every row, children before parents.
func (d *Db) ClearDB(order []string) error {
	for _, table := range order {
		if err := d.DbConn.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// GetModel returns the model registered for table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
