// Package validate registers the storefront's custom binding rules on gin's
// validator engine. Import rules here apply identically to single-record
// edits and to bulk spreadsheet imports.
package validate

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const minVehicleYear = 1900

// YearInRange reports whether a vehicle year is plausible: 1900 up to next
// year's models.
func YearInRange(year int) bool {
	return year >= minVehicleYear && year <= time.Now().Year()+1
}

// RegisterCustom installs custom rules on the binding engine. Called once at
// startup.
func RegisterCustom() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("vehicle_year", func(fl validator.FieldLevel) bool {
		return YearInRange(int(fl.Field().Int()))
	})
}
