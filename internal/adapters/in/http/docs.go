package http

import (
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pickup/internal/generated/servers"
)

// openAPIDoc serves the embedded OpenAPI document to the swagger UI.
type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string {
	spec, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	doc, err := spec.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(doc)
}

func init() {
	swag.Register(swag.Name, openAPIDoc{})
}

// RegisterSwagger mounts the swagger UI under /swagger/.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
