package api_client

import (
	"errors"
	"reflect"
	"strings"

	problem "github.com/artikelsmederij/artikel-generator-api/pkg/api_client/helpers/problem"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/loopfz/gadgeto/tonic"
)

// inputSamples bevat alle body-DTO's; de json-tag van een veld wordt hierin
// opgezocht omdat de validator alleen de Go-veldnaam teruggeeft.
var inputSamples = []any{
	models.AddTitlesInput{},
	models.ImportTitlesInput{},
	models.RegisterInput{},
	models.LoginInput{},
	models.ForgotPasswordInput{},
	models.UpsertCredentialInput{},
}

func jsonFieldName(structField string) string {
	for _, sample := range inputSamples {
		t := reflect.TypeOf(sample)
		if f, ok := t.FieldByName(structField); ok {
			if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
				return strings.Split(tag, ",")[0]
			}
		}
	}
	return structField
}

func invalidParamsFromBinding(err error) []problem.InvalidParam {
	// Probeer direct op validator.ValidationErrors te matchen.
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Geen validator-errors? Geef generiek terug.
		return []problem.InvalidParam{{Name: "body", Reason: err.Error()}}
	}

	out := make([]problem.InvalidParam, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, problem.InvalidParam{
			Name:   jsonFieldName(fe.StructField()),
			Reason: humanReason(fe),
		})
	}
	return out
}

func humanReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is verplicht"
	default:
		return fe.Error()
	}
}

func isValidationErr(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

func init() {
	tonic.SetErrorHook(func(c *gin.Context, err error) (int, interface{}) {
		// 1) Bind/validate errors → 400 met correcte invalidParams
		var be tonic.BindError
		if errors.As(err, &be) || isValidationErr(err) {
			invalids := invalidParamsFromBinding(err)
			apiErr := problem.NewBadRequest("body", "Invalid input", invalids...)
			c.Header("Content-Type", "application/problem+json")
			return apiErr.Status, apiErr
		}

		// 2) Eigen APIError → pass-through
		if apiErr, ok := err.(problem.APIError); ok {
			c.Header("Content-Type", "application/problem+json")
			return apiErr.Status, apiErr
		}

		// 3) Alles anders → 500
		internal := problem.NewInternalServerError(err.Error())
		c.Header("Content-Type", "application/problem+json")
		return internal.Status, internal
	})
}
