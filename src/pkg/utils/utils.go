package utils

import (
	"encoding/json"
	"fmt"
	"strconv"

	httpError "moving-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is the envelope every usecase returns.
type Result struct {
	Data  interface{}
	Error error
}

type baseResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data,omitempty"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(baseResponse{
		Success: true,
		Message: message,
		Code:    code,
		Data:    data,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	if commonErr, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(commonErr.Code).JSON(baseResponse{
			Success: false,
			Message: commonErr.Message,
			Code:    commonErr.Code,
		})
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(baseResponse{
		Success: false,
		Message: err.Error(),
		Code:    fiber.StatusBadRequest,
	})
}

// ConvertString marshals any value for log meta fields.
func ConvertString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case error:
		return val.Error()
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}

func ConvertInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return 0
		}
		return parsed
	}
	return 0
}

// FormatDuration renders minutes as "1 hr 20 min" style labels.
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%d min", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, mins)
}

// FormatCents renders integer minor units as a display amount, e.g. 75000 -> "750.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
