package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerInstanceRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getInstance",
		Method:      http.MethodGet,
		Path:        "/api/v1/instance",
		Summary:     "Get instance info",
		Description: "Returns the identity and version of this server installation",
		Tags:        []string{"System"},
	}, s.handleGetInstance)
}

// InstanceResponse describes this server installation.
type InstanceResponse struct {
	ID      string `json:"id" doc:"Stable installation identifier"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// InstanceOutput wraps the instance response for Huma.
type InstanceOutput struct {
	Body InstanceResponse
}

func (s *Server) handleGetInstance(ctx context.Context, _ *struct{}) (*InstanceOutput, error) {
	instance, err := s.services.Instance.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &InstanceOutput{Body: InstanceResponse{
		ID:      instance.ID,
		Name:    instance.Name,
		Version: instance.Version,
	}}, nil
}
