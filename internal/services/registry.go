package services

import "talentmatch_backend/internal/repositories"

// ServiceContainer wires every service with its repositories once at
// startup.
type ServiceContainer struct {
	MatchingService MatchingService
	SearchService   SearchService
}

func NewServiceContainer() *ServiceContainer {
	profileRepo := repositories.NewProfileRepository()
	listingRepo := repositories.NewListingRepository()

	return &ServiceContainer{
		MatchingService: NewMatchingService(profileRepo, listingRepo),
		SearchService:   NewSearchService(profileRepo),
	}
}
