package config

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// ConnectDB opens the database connection selected by DB_DRIVER.
// The sqlite default keeps all data in memory for the process lifetime.
func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch DBDriver {
	case "sqlite":
		dialector = sqlite.Open(DBName)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			DBUser, DBPassword, DBHost, DBPort, DBName)
		dialector = mysql.Open(dsn)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			DBHost, DBUser, DBPassword, DBName, DBPort)
		dialector = postgres.Open(dsn)
	case "mssql":
		dsn := "sqlserver://" + DBUser + ":" + DBPassword + "@" + DBHost + ":" + DBPort + "?database=" + DBName
		dialector = sqlserver.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
