package checks

import (
	"fmt"
	"strings"
	"sync"

	"finledger/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SchemaReport is the result of comparing the database with the gorm models.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport describes one table.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "missing", "error"
}

// CheckSchema verifies that every model's table exists with all of its columns.
// Columns whose gorm tag declares a type are also compared by type.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}
	cache := &sync.Map{}

	for _, model := range models {
		sch, err := schema.Parse(model, cache, db.NamingStrategy)
		if err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}

		actual, err := database.GetTableColumns(db, sch.Table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", sch.Table, err))
			report.Matched = false
			continue
		}

		tbl := compareTable(sch, actual)
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[sch.Table] = tbl
	}

	return report, nil
}

func compareTable(sch *schema.Schema, actual []database.ColumnInfo) TableReport {
	tbl := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	actualMap := make(map[string]database.ColumnInfo, len(actual))
	for _, col := range actual {
		actualMap[col.Field] = col
	}

	for _, field := range sch.Fields {
		if field.DBName == "" {
			continue
		}

		col, exists := actualMap[strings.ToLower(field.DBName)]
		if !exists {
			tbl.MissingColumns = append(tbl.MissingColumns, field.DBName)
			continue
		}

		expType := strings.ToLower(field.TagSettings["TYPE"])
		if expType != "" && !strings.Contains(col.Type, expType) {
			tbl.TypeMismatches = append(tbl.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", field.DBName, expType, col.Type))
		}
	}

	switch {
	case len(actual) == 0:
		tbl.Status = "missing"
	case len(tbl.MissingColumns) > 0 || len(tbl.TypeMismatches) > 0:
		tbl.Status = "error"
	}
	return tbl
}
