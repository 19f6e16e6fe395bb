package handlers

import (
	"talentmatch_backend/internal/services"
	"talentmatch_backend/internal/validator"
)

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Matching *MatchingHandler
	Search   *SearchHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Matching: NewMatchingHandler(base, container.MatchingService),
		Search:   NewSearchHandler(base, container.SearchService),
	}
}
