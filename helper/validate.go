// Package helper bundles request-boundary conveniences built on the
// validator package.
package helper

import (
	"github.com/gin-gonic/gin"

	"github.com/aimarket/mcore/validator"
)

// Validate is a wrapper around validator.ValidateStruct that returns a map of
// JSON field names to friendly error messages.
var Validate = validator.ValidateStruct

// ShouldBindAndValidateStruct binds and validates struct
func ShouldBindAndValidateStruct(c *gin.Context, obj any) (map[string]string, error) {
	if err := c.ShouldBind(obj); err != nil {
		return nil, err
	}

	return Validate(obj), nil
}
