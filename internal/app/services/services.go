package services

import (
	"github.com/studyconnect/backend/internal/app/auth"
	"github.com/studyconnect/backend/internal/app/repositories"
	"github.com/studyconnect/backend/internal/pkg/cache"
	"github.com/studyconnect/backend/internal/pkg/filestorage"
)

// Services bundles every service behind one constructor.
type Services struct {
	Note          NoteService
	Vendor        VendorService
	Accommodation AccommodationService
	Tutor         TutorService
	Advertisement AdvertisementService
	Analytics     AnalyticsService
	User          UserService
}

// NewServices wires the service layer. The cache may be nil when Redis
// is not configured.
func NewServices(repos *repositories.Repositories, storage filestorage.FileStorage, c *cache.Cache) *Services {
	authz := auth.NewAuthorizationService(repos)
	return &Services{
		Note:          NewNoteService(repos, storage, authz),
		Vendor:        NewVendorService(repos, authz),
		Accommodation: NewAccommodationService(repos, authz),
		Tutor:         NewTutorService(repos, authz),
		Advertisement: NewAdvertisementService(repos),
		Analytics:     NewAnalyticsService(repos, c),
		User:          NewUserService(repos),
	}
}
