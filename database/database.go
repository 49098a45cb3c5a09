package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"coursetrack/config"
	"coursetrack/models"
)

// ConnectDb opens the configured store, sets up connection pooling and runs
// migrations.
func ConnectDb(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, gormConfig(nil))
	if err != nil {
		return nil, fmt.Errorf("database.ConnectDb(%s): %w", cfg.DBDriver, err)
	}
	log.Printf("[DATABASE] Connected to %s", cfg.DBDriver)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database.ConnectDb: %w", err)
	}
	if cfg.DBDriver == "sqlite" {
		// a single writer keeps sqlite from returning SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenInMemory opens a private in-memory sqlite store with migrations applied.
// nowFunc, when non-nil, replaces the clock used for timestamps.
func OpenInMemory(nowFunc func() time.Time) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig(nowFunc))
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// every connection to ":memory:" is a distinct database
	sqlDB.SetMaxOpenConns(1)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		dsn := cfg.DBDSN
		if dsn == "" {
			dsn = fmt.Sprintf(
				"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
				cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
			)
		}
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := cfg.DBDSN
		if dsn == "" {
			dsn = fmt.Sprintf(
				"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
				cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
			)
		}
		return mysql.Open(dsn), nil
	case "sqlite":
		dsn := cfg.DBDSN
		if dsn == "" {
			dsn = cfg.DBName + ".db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("database: unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func gormConfig(nowFunc func() time.Time) *gorm.Config {
	conf := &gorm.Config{
		// unique index violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger: gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormLogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	}
	if nowFunc != nil {
		conf.NowFunc = nowFunc
	}
	return conf
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) error {
	log.Println("[DATABASE] Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Lesson{},
		&models.Enrollment{},
		&models.UserProgress{},
		&models.Quiz{},
		&models.QuizQuestion{},
		&models.QuizAttempt{},
		&models.QuizAnswer{},
		&models.Certificate{},
	)
	if err != nil {
		return fmt.Errorf("database.RunMigrations: %w", err)
	}

	log.Println("[DATABASE] Migrations completed successfully.")
	return nil
}
