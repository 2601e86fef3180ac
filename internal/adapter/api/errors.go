package api

import (
	"fmt"
	"github.com/labstack/echo/v4"
)

type JsonErrorModel struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func JsonError(c echo.Context, status int, content any) error {
	data := &JsonErrorModel{Message: fmt.Sprintf("%v", content)}
	return c.JSON(status, data)
}

func JsonFieldErrors(c echo.Context, status int, fields map[string]string) error {
	return c.JSON(status, &JsonErrorModel{
		Message: "validation failed",
		Errors:  fields,
	})
}
