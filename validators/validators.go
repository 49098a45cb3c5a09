package validators

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"

	"coursetrack/apperror"
	"coursetrack/middleware"
	"coursetrack/models"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags
	levelTag        = "level"
	categoryTag     = "category"
	questionTypeTag = "questiontype"
	roleTag         = "role"
	notBlankTag     = "notblank"
)

func init() {
	Validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = Validate.RegisterValidation(levelTag, oneOfValidation(models.Levels))
	_ = Validate.RegisterValidation(categoryTag, oneOfValidation(models.Categories))
	_ = Validate.RegisterValidation(questionTypeTag, oneOfValidation(models.QuestionTypes))
	_ = Validate.RegisterValidation(roleTag, oneOfValidation(models.Roles))
	_ = Validate.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{levelTag, categoryTag, questionTypeTag, roleTag, notBlankTag} {
		_ = Validate.RegisterTranslation(tag, Translator, registerFn, translateCustomErrs)
	}
}

func translateCustomErrs(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case levelTag:
		return fe.Field() + " must be one of " + strings.Join(models.Levels, ", ")
	case categoryTag:
		return fe.Field() + " must be a known category"
	case questionTypeTag:
		return fe.Field() + " must be one of " + strings.Join(models.QuestionTypes, ", ")
	case roleTag:
		return fe.Field() + " must be one of " + strings.Join(models.Roles, ", ")
	case notBlankTag:
		return fe.Field() + " cannot be blank"
	default:
		return fe.Field() + " is invalid"
	}
}

func oneOfValidation(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}

// Struct validates v and returns its field errors, if any.
func Struct(v interface{}) []apperror.FieldError {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperror.FieldError{{Field: "", Message: err.Error()}}
	}
	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fieldPath(fe),
			Message: fe.Translate(Translator),
		})
	}
	return fields
}

// fieldPath drops the top level struct name: "SignupRequest.username" becomes
// "username".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// Body parses the JSON body into a new T, validates it and stores it in
// c.Locals(key).
func Body[T any](key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := Struct(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals(key, reqData)
		return c.Next()
	}
}

// ParamID validates a positive integer route parameter and stores it as a uint
// in c.Locals(key).
func ParamID(param, key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ID is required!", nil)
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return middleware.ValidationErrorResponse(c, []apperror.FieldError{
				{Field: param, Message: param + " must be a positive integer"},
			})
		}
		c.Locals(key, uint(id))
		return c.Next()
	}
}
