package productcontroller

import (
	"regexp"
	"strings"

	"github.com/autoparts-hub/storefront-api/models"
)

// ProductInput is shared by create and update; the same bounds also apply to
// spreadsheet imports.
type ProductInput struct {
	Name        string  `json:"name" binding:"required,min=3"`
	Description string  `json:"description" binding:"required,min=10"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Make        string  `json:"make" binding:"required"`
	Model       string  `json:"model" binding:"required"`
	Year        int     `json:"year" binding:"required,vehicle_year"`
	Condition   string  `json:"condition" binding:"required,oneof=new used refurbished"`
	Stock       int     `json:"stock" binding:"min=0"`
	CategoryID  *uint   `json:"category_id"`
	Image       string  `json:"image"`
}

func (in ProductInput) apply(p *models.Product) {
	p.Name = in.Name
	p.Slug = Slugify(in.Name)
	p.Description = in.Description
	p.Price = in.Price
	p.Make = in.Make
	p.Model = in.Model
	p.Year = in.Year
	p.Condition = in.Condition
	p.Stock = in.Stock
	p.CategoryID = in.CategoryID
	if in.Image != "" {
		p.Image = in.Image
	}
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a product name.
func Slugify(name string) string {
	s := nonSlug.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
