package model

// Actor is the authenticated identity a handler resolved from the bearer
// token; services use it for role and ownership checks.
type Actor struct {
	ID   int
	Role Role
}

func (a Actor) Admin() bool { return a.Role == RoleAdmin }

type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	TelephoneNumber string `json:"telephoneNumber" validate:"required,len=10,numeric"`
	Role            Role   `json:"role"`
	DriverLicense   string `json:"driverLicense"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"token"`
	ExpiresIn   int64  `json:"expiresIn"`
}

type UpdateProfileRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email" validate:"omitempty,email"`
	TelephoneNumber string `json:"telephoneNumber" validate:"omitempty,len=10,numeric"`
	Password        string `json:"password" validate:"omitempty,min=6"`
	DriverLicense   string `json:"driverLicense"`
}

type AdminUpdateUserRequest struct {
	Name           string         `json:"name"`
	MembershipTier MembershipTier `json:"membershipTier"`
}

type CarRequest struct {
	Make         string       `json:"make" validate:"required"`
	Model        string       `json:"model" validate:"required"`
	Year         int          `json:"year" validate:"required,gte=1950"`
	NumberPlates string       `json:"numberPlates" validate:"required"`
	Description  string       `json:"description" validate:"required"`
	RentalPrice  float64      `json:"rentalPrice" validate:"required,gt=0"`
	Color        string       `json:"color" validate:"required"`
	Transmission Transmission `json:"transmission" validate:"required,oneof=automatic manual"`
	FuelType     FuelType     `json:"fuelType" validate:"required,oneof=petrol diesel electric hybrid"`
	Features     []string     `json:"features"`
	Available    *bool        `json:"available"`
}

// CarFilter accumulates the optional listing criteria; the repository maps
// set fields onto the query.
type CarFilter struct {
	Make         string
	Model        string
	Year         int
	Transmission string
	FuelType     string
	Color        string
	Available    *bool
	MinPrice     float64
	MaxPrice     float64
	MinRating    float64
	Sort         string
	Page         int
	Limit        int
}

// PromoQuote is the listing-side promotion layer: the single highest active
// discount plus the union of all active extra benefits.
type PromoQuote struct {
	DiscountPercent float64  `json:"discountPercent"`
	PriceAfterPromo float64  `json:"priceAfterPromo"`
	ExtraBenefits   []string `json:"extraBenefits,omitempty"`
}

// CarView augments a listing entry for authenticated callers. Membership
// and promotion discounts are reported independently, never composed.
type CarView struct {
	Car
	DiscountedPrice *float64    `json:"discountedPrice,omitempty"`
	Promo           *PromoQuote `json:"promo,omitempty"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type CarList struct {
	Items      []CarView  `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type CreateReservationRequest struct {
	Car        int  `json:"car" validate:"required"`
	PickUpDate Date `json:"pickUpDate" validate:"required"`
	ReturnDate Date `json:"returnDate" validate:"required"`
}

type UpdateReservationStatusRequest struct {
	Status ReservationStatus `json:"status" validate:"required,oneof=pending accepted completed cancelled"`
}

type StatusChangeResult struct {
	Reservation      Reservation `json:"reservation"`
	DeletedConflicts int         `json:"deletedConflicts"`
}

type Availability struct {
	IsAvailable             bool          `json:"isAvailable"`
	ConflictingReservations []Reservation `json:"conflictingReservations"`
}

type RatingRequest struct {
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=500"`
}

type UpgradeMembershipRequest struct {
	Tier MembershipTier `json:"tier" validate:"required"`
}

type Membership struct {
	Tier        MembershipTier `json:"tier"`
	Benefits    Benefits       `json:"benefits"`
	ExpiryDate  string         `json:"expiryDate"`
	MemberSince string         `json:"memberSince"`
}

type TierInfo struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Benefits Benefits `json:"benefits"`
}

type PromotionRequest struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description"`
	DiscountPercent float64 `json:"discountPercent" validate:"gte=0,lte=100"`
	ValidFrom       Date    `json:"validFrom" validate:"required"`
	ValidTo         Date    `json:"validTo" validate:"required"`
	ExtraBenefit    string  `json:"extraBenefit"`
}
