package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/farkinca1971/office-management-sub003/config"
	"github.com/farkinca1971/office-management-sub003/storage"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

type Store struct {
	db    *sql.DB
	items storage.ItemsRepoI
}

func NewMysql(ctx context.Context, cfg config.Config) (storage.StorageI, error) {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.MysqlHost, cfg.MysqlPort)
	mysqlCfg.User = cfg.MysqlUser
	mysqlCfg.Passwd = cfg.MysqlPassword
	mysqlCfg.DBName = cfg.MysqlDatabase
	mysqlCfg.ParseTime = true

	db, err := sql.Open("mysql", mysqlCfg.FormatDSN())
	if err != nil {
		return nil, errors.Wrap(err, "error while opening mysql connection")
	}

	db.SetMaxOpenConns(cfg.MysqlMaxOpenConnections)
	db.SetMaxIdleConns(cfg.MysqlMaxIdleConnections)

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "error while pinging mysql")
	}

	return &Store{
		db: db,
	}, nil
}

// NewMysqlWithDB wraps an existing connection. Tests use it to run the
// store over a mocked driver.
func NewMysqlWithDB(db *sql.DB) storage.StorageI {
	return &Store{
		db: db,
	}
}

func (s *Store) CloseDB() {
	s.db.Close()
}

func (s *Store) Items() storage.ItemsRepoI {
	if s.items == nil {
		s.items = NewItemsRepo(s.db)
	}

	return s.items
}
