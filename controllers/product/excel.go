package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/models"
	"github.com/autoparts-hub/storefront-api/pkg/validate"
)

// importBatchSize caps each insert statement during bulk import.
const importBatchSize = 100

// Column order for import and export. Import rows with an ID update the
// existing product; rows without one create.
var excelHeaders = []string{
	"ID", "Name", "Description", "Price", "Make", "Model",
	"Year", "Condition", "Stock", "CategoryID",
}

var errRowInvalid = errors.New("invalid row")

// parseProductRow maps one spreadsheet row onto a product, applying the same
// bounds as the single-record form.
func parseProductRow(cells []string) (id uint, p models.Product, err error) {
	get := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	if idStr := get(0); idStr != "" {
		id64, convErr := strconv.ParseUint(idStr, 10, 64)
		if convErr != nil {
			return 0, p, errRowInvalid
		}
		id = uint(id64)
	}

	name := get(1)
	description := get(2)
	price, priceErr := strconv.ParseFloat(get(3), 64)
	makeName := get(4)
	modelName := get(5)
	year, yearErr := strconv.Atoi(get(6))
	condition := strings.ToLower(get(7))
	stock, stockErr := strconv.Atoi(get(8))

	switch {
	case len(name) < 3,
		len(description) < 10,
		priceErr != nil || price <= 0,
		makeName == "" || modelName == "",
		yearErr != nil || !validate.YearInRange(year),
		condition != "new" && condition != "used" && condition != "refurbished",
		stockErr != nil || stock < 0:
		return 0, p, errRowInvalid
	}

	p = models.Product{
		Name:        name,
		Slug:        Slugify(name),
		Description: description,
		Price:       price,
		Make:        makeName,
		Model:       modelName,
		Year:        year,
		Condition:   condition,
		Stock:       stock,
	}

	if catStr := get(9); catStr != "" {
		cat64, convErr := strconv.ParseUint(catStr, 10, 64)
		if convErr != nil {
			return 0, models.Product{}, errRowInvalid
		}
		catID := uint(cat64)
		p.CategoryID = &catID
	}

	return id, p, nil
}

// ImportProductsFromExcel bulk-creates and updates products from an uploaded
// workbook. Rows failing validation are skipped and counted, never partially
// applied.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0
		var pending []models.Product

		flush := func() {
			for start := 0; start < len(pending); start += importBatchSize {
				end := start + importBatchSize
				if end > len(pending) {
					end = len(pending)
				}
				batch := pending[start:end]
				if err := db.Create(&batch).Error; err != nil {
					skippedCount += len(batch)
				} else {
					createdCount += len(batch)
				}
			}
			pending = nil
		}

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			cells := make([]string, len(row.Cells))
			for j, cell := range row.Cells {
				cells[j] = cell.String()
			}

			id, product, err := parseProductRow(cells)
			if err != nil {
				skippedCount++
				continue
			}

			if id == 0 {
				pending = append(pending, product)
				continue
			}

			var existing models.Product
			if err := db.First(&existing, id).Error; err != nil {
				skippedCount++
				continue
			}
			product.ID = existing.ID
			product.Image = existing.Image
			product.CreatedAt = existing.CreatedAt
			if err := db.Save(&product).Error; err != nil {
				skippedCount++
				continue
			}
			updatedCount++
		}
		flush()

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
