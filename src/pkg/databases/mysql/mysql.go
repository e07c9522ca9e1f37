package mysql

import (
	"fmt"
	"time"

	"moving-service/src/pkg/log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

type DBInterface interface {
	GetDB() (*sqlx.DB, error)
	Close() error
}

type Database struct {
	db *sqlx.DB
}

func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC",
		v.GetString("database.username"),
		v.GetString("database.password"),
		v.GetString("database.host"),
		v.GetInt("database.port"),
		v.GetString("database.name"),
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		logger.Error("mysql-connect", err.Error(), "InitConnection", "")
		return nil, err
	}

	db.SetMaxIdleConns(v.GetInt("database.pool.idle"))
	db.SetMaxOpenConns(v.GetInt("database.pool.max"))
	db.SetConnMaxLifetime(time.Duration(v.GetInt("database.pool.lifetime")) * time.Second)

	logger.Info("mysql-connect", "connected to database", "InitConnection", v.GetString("database.name"))
	return &Database{db: db}, nil
}

func (d *Database) GetDB() (*sqlx.DB, error) {
	if d == nil || d.db == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}
	return d.db, nil
}

func (d *Database) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}
