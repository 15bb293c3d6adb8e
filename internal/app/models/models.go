package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleVendor  RoleType = "VENDOR"
	RoleAdmin   RoleType = "ADMIN"
)

// ContentType classifies note material
type ContentType string

const (
	ContentTypeLectureNotes ContentType = "lecture-notes"
	ContentTypeAssignment   ContentType = "assignment"
	ContentTypePastPaper    ContentType = "past-paper"
	ContentTypeSummary      ContentType = "summary"
	ContentTypeLabReport    ContentType = "lab-report"
)

// SortKey is the listing sort selector shared by all listing endpoints.
type SortKey string

const (
	SortRecent    SortKey = "recent"
	SortPopular   SortKey = "popular"
	SortRating    SortKey = "rating"
	SortPriceAsc  SortKey = "priceAsc"
	SortPriceDesc SortKey = "priceDesc"
)

// AccommodationType classifies accommodation listings
type AccommodationType string

const (
	AccommodationHostel    AccommodationType = "hostel"
	AccommodationPG        AccommodationType = "pg"
	AccommodationApartment AccommodationType = "apartment"
	AccommodationShared    AccommodationType = "shared-room"
)

// GenderPreference restricts who an accommodation accepts
type GenderPreference string

const (
	GenderAny    GenderPreference = "any"
	GenderMale   GenderPreference = "male"
	GenderFemale GenderPreference = "female"
)

// TutorMode is how tutoring sessions are delivered
type TutorMode string

const (
	TutorModeOnline   TutorMode = "online"
	TutorModeInPerson TutorMode = "in-person"
	TutorModeHybrid   TutorMode = "hybrid"
)

// SessionStatus tracks the tutor session booking lifecycle
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// AdPlacement is where an advertisement is rendered by the client
type AdPlacement string

const (
	PlacementBanner  AdPlacement = "banner"
	PlacementSidebar AdPlacement = "sidebar"
	PlacementFeed    AdPlacement = "feed"
)
