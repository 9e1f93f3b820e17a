package db

import (
	"fmt"
	"log"

	"hearth/pkg/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect: 설정된 드라이버로 gorm 연결 생성
func Connect(cfg config.DBConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Printf("❌ %s 연결 실패: %v", cfg.Driver, err)
		return nil, err
	}

	log.Printf("✅ %s 연결 성공!", cfg.Driver)
	return db, nil
}

// Dialector: 드라이버 이름에 맞는 gorm dialector
func Dialector(cfg config.DBConfig) (gorm.Dialector, error) {
	dsn := GetDSN(cfg)

	switch cfg.Driver {
	case DriverPostgres, "":
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}
