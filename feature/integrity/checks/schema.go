package checks

import (
	"fmt"
	"reflect"
	"strings"

	"place-manager/core/database"
	"place-manager/feature/places/models"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a schema check.
type SchemaReport struct {
	Table          string   `json:"table"`
	Dialect        string   `json:"dialect"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	NullMismatches []string `json:"null_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema verifies the places table against the gorm model.
// Every column of the model must exist, and columns tagged "not null" must be NOT NULL.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	model := models.Place{}
	report := &SchemaReport{
		Table:          model.TableName(),
		Dialect:        db.Dialector.Name(),
		Matched:        true,
		MissingColumns: []string{},
		NullMismatches: []string{},
		Status:         "ok",
	}

	actualCols, err := database.GetTableColumns(db, report.Table)
	if err != nil {
		return nil, err
	}

	actualMap := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actualMap[col.Field] = col
	}

	val := reflect.TypeOf(model)
	for i := 0; i < val.NumField(); i++ {
		gormTag := val.Field(i).Tag.Get("gorm")
		colName := parseGormColumn(gormTag)
		if colName == "" {
			continue
		}

		actCol, exists := actualMap[colName]
		if !exists {
			report.MissingColumns = append(report.MissingColumns, colName)
			continue
		}

		if hasGormFlag(gormTag, "not null") && !strings.EqualFold(actCol.Null, "NO") {
			report.NullMismatches = append(report.NullMismatches, fmt.Sprintf("%s: expected NOT NULL", colName))
		}
	}

	if len(report.MissingColumns) > 0 || len(report.NullMismatches) > 0 {
		report.Matched = false
		report.Status = "error"
	}
	return report, nil
}

// Helpers to parse simple GORM tags
func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}

func hasGormFlag(tag, flag string) bool {
	for _, p := range strings.Split(tag, ";") {
		if strings.EqualFold(strings.TrimSpace(p), flag) {
			return true
		}
	}
	return false
}
