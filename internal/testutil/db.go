// Package testutil opens throwaway stores for package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"biztime-backend/internal/config"
	"biztime-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB returns an in-memory SQLite database private to t, with foreign
// keys enforced and the schema migrated.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)
	db, err := gorm.Open(sqlite.Open(dsn), config.GormConfig(logger.Silent))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// One connection keeps the shared in-memory database alive and avoids
	// table locks between connections.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// MustExec runs a fixture statement.
func MustExec(t testing.TB, db *gorm.DB, sql string, args ...any) {
	t.Helper()
	if err := db.Exec(sql, args...).Error; err != nil {
		t.Fatalf("exec %q: %v", sql, err)
	}
}

// SeedCompany inserts a company row.
func SeedCompany(t testing.TB, db *gorm.DB, code, name, description string) {
	t.Helper()
	MustExec(t, db, "INSERT INTO companies (code, name, description) VALUES (?, ?, ?)", code, name, description)
}

// SeedIndustry inserts an industry row.
func SeedIndustry(t testing.TB, db *gorm.DB, code, industry string) {
	t.Helper()
	MustExec(t, db, "INSERT INTO industries (code, industry) VALUES (?, ?)", code, industry)
}

// Link associates a company with an industry.
func Link(t testing.TB, db *gorm.DB, compCode, industryCode string) {
	t.Helper()
	MustExec(t, db, "INSERT INTO company_industries (comp_code, industry_code) VALUES (?, ?)", compCode, industryCode)
}

// SeedInvoice inserts an unpaid invoice and returns its id.
func SeedInvoice(t testing.TB, db *gorm.DB, compCode string, amt float64) int64 {
	t.Helper()
	var id int64
	if err := db.Raw("INSERT INTO invoices (comp_code, amt) VALUES (?, ?) RETURNING id", compCode, amt).Scan(&id).Error; err != nil {
		t.Fatalf("insert invoice: %v", err)
	}
	return id
}
