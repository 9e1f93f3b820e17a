package db

import (
	"fmt"

	"hearth/pkg/config"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// GetDSN: DATABASE_URL 이 없으면 host 정보로 DSN 조립
func GetDSN(cfg config.DBConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	switch cfg.Driver {
	case DriverMySQL:
		port := cfg.Port
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=UTC", cfg.User, cfg.Password, cfg.Host, port, cfg.Name)
	default:
		port := cfg.Port
		if port == "" {
			port = "5432"
		}
		// 매칭 날짜는 UTC 자정으로 저장한다
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.Host, port, cfg.User, cfg.Password, cfg.Name)
	}
}
