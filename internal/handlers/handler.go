package handlers

import (
	"github.com/estla/skillserver/internal/content"
	"github.com/estla/skillserver/internal/job"
	"github.com/estla/skillserver/pkg/logger_i"
)

// Handler carries the services every endpoint needs.
type Handler struct {
	content   content.Service
	jobs      *job.Service
	validator *payloadValidator
	logger    *logger_i.Logger
}

func NewHandler(contentService content.Service, jobService *job.Service) (*Handler, error) {
	validator, err := newPayloadValidator()
	if err != nil {
		return nil, err
	}
	logRH = logger_i.NewLogger("RequestHandler")
	return &Handler{
		content:   contentService,
		jobs:      jobService,
		validator: validator,
		logger:    logger_i.NewLogger("SkillHandler"),
	}, nil
}
