package config

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect abre a conexão com o banco usado pelo catálogo de tópicos.
// driver: postgres | sqlite (padrão sqlite, para uso local).
func Connect(ctx context.Context, driver, dsn string) error {
	var dialector gorm.Dialector

	switch driver {
	case "postgres":
		if dsn == "" {
			return fmt.Errorf("DATABASE_DSN é obrigatório com driver postgres")
		}
		dialector = postgres.Open(dsn)
	case "", "sqlite":
		if dsn == "" {
			dsn = "file:fluentia.db?cache=shared"
		}
		dialector = sqlite.Open(dsn)
	default:
		return fmt.Errorf("driver de banco não suportado: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("falha ao conectar no banco: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("falha no ping do banco: %w", err)
	}

	DB = db
	return nil
}
