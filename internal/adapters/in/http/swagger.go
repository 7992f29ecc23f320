package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// swaggerHandler serves the Swagger UI and the contract registered with swag.
var swaggerHandler = echoSwagger.WrapHandler

// openAPIDoc satisfies swag.Swagger with the embedded OpenAPI contract.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

var (
	swaggerOnce sync.Once
	swaggerErr  error
)

// registerSwaggerDoc registers the contract under swag.Name. swag panics on a
// second registration, so repeated router construction reuses the first one.
func registerSwaggerDoc(swagger *openapi3.T) error {
	swaggerOnce.Do(func() {
		data, err := swagger.MarshalJSON()
		if err != nil {
			swaggerErr = err
			return
		}
		swag.Register(swag.Name, openAPIDoc{json: string(data)})
	})
	return swaggerErr
}
