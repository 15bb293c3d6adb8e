package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository behind one constructor so the
// bootstrap wiring stays in one place.
type Repositories struct {
	User          *UserRepository
	Note          *NoteRepository
	Rating        *RatingRepository
	Comment       *CommentRepository
	Saved         *SavedRepository
	Vendor        *VendorRepository
	Accommodation *AccommodationRepository
	Tutor         *TutorRepository
	Advertisement *AdvertisementRepository
	Analytics     *AnalyticsRepository
}

// NewRepositories creates all repositories over one connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:          NewUserRepository(db),
		Note:          NewNoteRepository(db),
		Rating:        NewRatingRepository(db),
		Comment:       NewCommentRepository(db),
		Saved:         NewSavedRepository(db),
		Vendor:        NewVendorRepository(db),
		Accommodation: NewAccommodationRepository(db),
		Tutor:         NewTutorRepository(db),
		Advertisement: NewAdvertisementRepository(db),
		Analytics:     NewAnalyticsRepository(db),
	}
}
