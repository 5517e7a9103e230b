package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config ../../../api/http/oapi-codegen.yml ../../../api/http/openapi.yml
