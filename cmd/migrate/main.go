// Command migrate copies the whole training store from one relational
// engine to another (sqlite → mysql/postgres, or between the two servers).
// Tables are copied in dependency order with foreign-key checks suspended
// on the target, then every table's row count is verified.
//
// Usage:
//
//	migrate -source-driver sqlite -source-dsn trainings.db \
//	        -target-driver mysql -target-dsn "qa_user:qa_password@tcp(localhost:3306)/qa_trainings?charset=utf8mb4&parseTime=True"
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	database "traininghub_backend/internals/databases"
)

const batchSize = 1000

func main() {
	var (
		sourceDriver = flag.String("source-driver", "sqlite", "source engine: sqlite|mysql|postgres")
		sourceDSN    = flag.String("source-dsn", "trainings.db", "source DSN or sqlite path")
		targetDriver = flag.String("target-driver", "mysql", "target engine: mysql|postgres")
		targetDSN    = flag.String("target-dsn", "", "target DSN")
	)
	flag.Parse()

	if *targetDSN == "" {
		log.Println("missing -target-dsn")
		flag.Usage()
		os.Exit(2)
	}

	src, err := open(*sourceDriver, *sourceDSN)
	if err != nil {
		log.Fatalf("open source: %v", err)
	}
	dst, err := open(*targetDriver, *targetDSN)
	if err != nil {
		log.Fatalf("open target: %v", err)
	}

	log.Printf("migrating %s → %s", *sourceDriver, *targetDriver)

	if err := dst.AutoMigrate(database.Tables()...); err != nil {
		log.Fatalf("prepare target schema: %v", err)
	}

	if err := setFKChecks(dst, *targetDriver, false); err != nil {
		log.Fatalf("disable FK checks: %v", err)
	}

	total := 0
	for _, name := range tableNames() {
		n, err := copyTable(src, dst, name)
		if err != nil {
			log.Fatalf("copy %s: %v", name, err)
		}
		total += n
	}

	if err := setFKChecks(dst, *targetDriver, true); err != nil {
		log.Fatalf("re-enable FK checks: %v", err)
	}

	if err := verify(src, dst); err != nil {
		log.Fatalf("verify: %v", err)
	}
	log.Printf("migration complete: %d records copied", total)
}

func open(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	switch driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), cfg)
	case "mysql":
		return gorm.Open(mysql.Open(dsn), cfg)
	case "postgres":
		return gorm.Open(postgres.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}

// tableNames resolves the dependency-ordered model list to table names.
func tableNames() []string {
	names := make([]string, 0)
	for _, m := range database.Tables() {
		if t, ok := m.(schema.Tabler); ok {
			names = append(names, t.TableName())
		}
	}
	return names
}

// setFKChecks suspends or restores referential checks on the target so
// tables can load in bulk without FK timing issues.
func setFKChecks(db *gorm.DB, driver string, on bool) error {
	switch driver {
	case "mysql":
		v := 0
		if on {
			v = 1
		}
		return db.Exec(fmt.Sprintf("SET FOREIGN_KEY_CHECKS = %d", v)).Error
	case "postgres":
		role := "replica"
		if on {
			role = "origin"
		}
		return db.Exec(fmt.Sprintf("SET session_replication_role = %s", role)).Error
	}
	return nil
}

// copyTable streams one table across, preserving row order.
func copyTable(src, dst *gorm.DB, name string) (int, error) {
	var rows []map[string]interface{}
	if err := src.Table(name).Find(&rows).Error; err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		log.Printf("  %s: 0 records (skipped)", name)
		return 0, nil
	}

	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := dst.Table(name).Create(rows[start:end]).Error; err != nil {
			return 0, err
		}
	}
	log.Printf("  %s: %d records migrated", name, len(rows))
	return len(rows), nil
}

// verify compares per-table row counts between source and target.
func verify(src, dst *gorm.DB) error {
	for _, name := range tableNames() {
		var srcCount, dstCount int64
		if err := src.Table(name).Count(&srcCount).Error; err != nil {
			return err
		}
		if err := dst.Table(name).Count(&dstCount).Error; err != nil {
			return err
		}
		if srcCount != dstCount {
			return fmt.Errorf("%s: source has %d rows, target has %d", name, srcCount, dstCount)
		}
	}
	return nil
}
