package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/db"
	"github.com/sriramindia007/finflux-leadmanagement-sub000/prequalify"
	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

// expected CSV header, in order
var bulkColumns = []string{
	"name", "phone", "pincode", "age", "monthly_income",
	"existing_loans", "has_bank_account", "years_in_area",
}

// BulkUploadLeads ingests a CSV of leads. Bad rows are reported individually
// and do not abort the rest of the file.
func BulkUploadLeads(c *gin.Context, client *firestore.Client) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing multipart file field"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty or unreadable CSV"})
		return
	}
	if err := checkHeader(header); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created := 0
	var rowErrors []string
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		lead, err := leadFromRecord(record)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		if err := db.CreateLead(client, lead); err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		created++
	}

	c.JSON(http.StatusOK, gin.H{
		"created": created,
		"failed":  len(rowErrors),
		"errors":  rowErrors,
	})
}

func checkHeader(header []string) error {
	if len(header) != len(bulkColumns) {
		return fmt.Errorf("expected %d columns, got %d", len(bulkColumns), len(header))
	}
	for i, col := range bulkColumns {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return fmt.Errorf("column %d must be %q", i+1, col)
		}
	}
	return nil
}

func leadFromRecord(record []string) (types.Lead, error) {
	var lead types.Lead
	if len(record) != len(bulkColumns) {
		return lead, fmt.Errorf("expected %d fields, got %d", len(bulkColumns), len(record))
	}

	name := strings.TrimSpace(record[0])
	phone := strings.TrimSpace(record[1])
	if name == "" || phone == "" {
		return lead, fmt.Errorf("name and phone are required")
	}

	age, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return lead, fmt.Errorf("bad age %q", record[3])
	}
	income, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return lead, fmt.Errorf("bad monthly_income %q", record[4])
	}
	loans, err := strconv.Atoi(strings.TrimSpace(record[5]))
	if err != nil {
		return lead, fmt.Errorf("bad existing_loans %q", record[5])
	}
	hasAccount, err := strconv.ParseBool(strings.TrimSpace(record[6]))
	if err != nil {
		return lead, fmt.Errorf("bad has_bank_account %q", record[6])
	}
	years, err := strconv.Atoi(strings.TrimSpace(record[7]))
	if err != nil {
		return lead, fmt.Errorf("bad years_in_area %q", record[7])
	}

	prequal := prequalify.Evaluate(types.PrequalInput{
		Age:            age,
		MonthlyIncome:  income,
		ExistingLoans:  loans,
		HasBankAccount: hasAccount,
		YearsInArea:    years,
	})

	now := time.Now().UTC()
	return types.Lead{
		ID:             uuid.NewString(),
		Name:           name,
		Phone:          phone,
		Pincode:        strings.TrimSpace(record[2]),
		Age:            age,
		MonthlyIncome:  income,
		ExistingLoans:  loans,
		HasBankAccount: hasAccount,
		YearsInArea:    years,
		Source:         "bulk_upload",
		Status:         types.LeadStatusNew,
		PrequalBand:    prequal.Band,
		PrequalScore:   prequal.Score,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
