package validator

import (
	stderrors "errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hotel-price-map/internal/pkg/errors"
)

var validate *validator.Validate

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return isoDate.MatchString(fl.Field().String())
	})
}

// Validate - валидация структуры. Ошибки валидации возвращаются как AppError INVALID_REQUEST
// с перечнем полей в деталях.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fieldPath(fe.Namespace())] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(fields)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// fieldPath отрезает имя корневой структуры: "HotelsRequest.Occupancies[0].Adults" -> "Occupancies[0].Adults"
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
