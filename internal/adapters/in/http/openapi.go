package http

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI3 converts the registered swagger document to OpenAPI 3 and
// validates it.
func OpenAPI3(ctx context.Context) (*openapi3.T, error) {
	var doc2 openapi2.T
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc2); err != nil {
		return nil, fmt.Errorf("failed to parse swagger document: %w", err)
	}

	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("failed to convert swagger document: %w", err)
	}

	if err = doc3.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid api document: %w", err)
	}

	return doc3, nil
}
