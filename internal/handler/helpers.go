package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/damian-dev1/Ecommerce-Manager/internal/apierror"
	"github.com/damian-dev1/Ecommerce-Manager/internal/domain"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps the domain error taxonomy to HTTP statuses. Unknown
// errors go through the error middleware as 500s without leaking detail.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUnknownProduct),
		errors.Is(err, domain.ErrUnknownAttribute):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, domain.ErrTypeMismatch),
		errors.Is(err, domain.ErrInvalidOption),
		errors.Is(err, domain.ErrSelfReference):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
	}
}
