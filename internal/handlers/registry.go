package handlers

// AppHandlers holds every handler the router needs.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	PetHandler          *PetHandler
	AvailabilityHandler *AvailabilityHandler
	RequestHandler      *RequestHandler
	CertificateHandler  *CertificateHandler
	ExperienceHandler   *ExperienceHandler
	AdminHandler        *AdminHandler
}
