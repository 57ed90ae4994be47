// Package stub is an in-process double of the KhataPro backend. It
// implements the full REST contract the client speaks, backed by
// sqlite, and serves two jobs: a local development server
// (cmd/stubserver) and the integration-test backend.
package stub

import (
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gin-gonic/gin"

	"khatapro-client/config"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB

	cfg    config.StubConfig
	logger *zap.Logger
}

// New opens the database, migrates the schema and wires the router.
// Use ":memory:" as the DB path for tests.
func New(cfg config.StubConfig, log *zap.Logger) (*Server, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&Business{},
		&Customer{},
		&Transaction{},
		&Product{},
		&CatalogItem{},
		&Offer{},
	); err != nil {
		return nil, err
	}

	s := &Server{DB: db, cfg: cfg, logger: log}
	s.Engine = s.setupRouter()
	return s, nil
}

func (s *Server) Run() error {
	return s.Engine.Run(":" + s.cfg.Port)
}
