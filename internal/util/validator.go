package util

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/guregu/null.v3"

	"github.com/teamselevated/backend/internal/pkg/datespan"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("weekday", weekdayLabel)
	validate.RegisterValidation("clocktime", clockTime)
	validate.RegisterValidation("dateonly", dateOnly)
	validate.RegisterCustomTypeFunc(nullIntValuer, null.Int{})
	validate.RegisterCustomTypeFunc(nullStringValuer, null.String{})

	return validate
}

func weekdayLabel(fl validator.FieldLevel) bool {
	_, ok := datespan.WeekdayIndex(fl.Field().String())
	return ok
}

func clockTime(fl validator.FieldLevel) bool {
	_, err := time.Parse(datespan.ClockLayout, fl.Field().String())
	return err == nil
}

func dateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(datespan.DateLayout, fl.Field().String())
	return err == nil
}

func nullIntValuer(field reflect.Value) interface{} {
	if valuer, ok := field.Interface().(null.Int); ok {
		return valuer.Int64
	}

	return nil
}

func nullStringValuer(field reflect.Value) interface{} {
	if valuer, ok := field.Interface().(null.String); ok {
		return valuer.String
	}

	return nil
}
