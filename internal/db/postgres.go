package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	types "github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
	"github.com/villagekeep/villagekeep-backend/internal/platform/envutil"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// New connects to the catalog store. Postgres is the production driver;
// DB_DRIVER=sqlite opens a local file for development.
func New(baseLog *logger.Logger) (*Service, error) {
	serviceLog := baseLog.With("service", "DBService")

	driver := envutil.String("DB_DRIVER", "postgres")
	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "sqlite":
		path := envutil.String("SQLITE_PATH", "villagekeep.db")
		serviceLog.Info("opening sqlite database", "path", path)
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		dsn := postgresDSN()
		serviceLog.Info("connecting to postgres")
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
		})
		if err == nil {
			if extErr := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; extErr != nil {
				return nil, fmt.Errorf("enable uuid-ossp extension: %w", extErr)
			}
		}
	}
	if err != nil {
		serviceLog.Error("database connection failed", "driver", driver, "error", err)
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	return &Service{db: db, log: serviceLog}, nil
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) AutoMigrateAll() error {
	s.log.Info("auto migrating catalog tables")
	err := s.db.AutoMigrate(
		&types.House{},
		&types.Accessory{},
		&types.StagedHouse{},
		&types.ApprovalRecord{},
	)
	if err != nil {
		s.log.Error("auto migration failed", "error", err)
		return err
	}
	return nil
}

func postgresDSN() string {
	host := envutil.String("POSTGRES_HOST", "localhost")
	port := envutil.String("POSTGRES_PORT", "5432")
	user := envutil.String("POSTGRES_USER", "postgres")
	password := envutil.String("POSTGRES_PASSWORD", "")
	name := envutil.String("POSTGRES_NAME", "villagekeep")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
}
