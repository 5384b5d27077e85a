package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsSlug reports whether s is a lowercase, hyphen-separated URL slug.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// RegisterCustomRules adds the "slug" rule to gin's binding engine so
// request models can declare `binding:"slug"` on slug fields.
func RegisterCustomRules() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return IsSlug(fl.Field().String())
		})
	}
}
