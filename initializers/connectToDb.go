package initializers

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/juju/errors"
	"github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// SQLiteDriver is sqlite3 with LOWER and UPPER replaced by Unicode-aware
// versions; the built-ins only fold ASCII.
const SQLiteDriver = "sqlite3_unicode"

func init() {
	sql.Register(SQLiteDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			if err := conn.RegisterFunc("lower", foldText(strings.ToLower), true); err != nil {
				return err
			}
			return conn.RegisterFunc("upper", foldText(strings.ToUpper), true)
		},
	})
}

// foldText applies fold to TEXT values and hands NULL, numbers and blobs back
// unchanged.
func foldText(fold func(string) string) func(any) any {
	return func(v any) any {
		if s, ok := v.(string); ok {
			return fold(s)
		}
		return v
	}
}

func ConnectToDB() {
	db, err := OpenDB(Env)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	DB = db
	log.WithField("driver", Env.DBDriver).Info("Connected to database")
}

// OpenDB opens a gorm connection for the configured driver. Constraint violations
// are translated into gorm.ErrDuplicatedKey and friends.
func OpenDB(cfg Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Annotatef(err, "opening %s database", cfg.DBDriver)
	}
	return db, nil
}

func dialectorFor(cfg Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			port := cfg.DBPort
			if port == "" {
				port = "3306"
			}
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				cfg.DBUser, cfg.DBPassword, cfg.DBHost, port, cfg.DBName)
		}
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			port := cfg.DBPort
			if port == "" {
				port = "5432"
			}
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
				cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, port)
		}
		return postgres.Open(dsn), nil
	case "sqlite":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = cfg.DBName + ".db"
		}
		return sqlite.New(sqlite.Config{DriverName: SQLiteDriver, DSN: dsn}), nil
	}
	return nil, errors.NotSupportedf("database driver %q", cfg.DBDriver)
}
