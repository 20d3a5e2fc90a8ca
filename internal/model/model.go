package model

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

type Role string

const (
	RoleRenter Role = "car-renter"
	RoleOwner  Role = "car-owner"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleRenter, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

type MembershipTier string

const (
	TierBasic  MembershipTier = "basic"
	TierSilver MembershipTier = "silver"
	TierGold   MembershipTier = "gold"
)

func (t MembershipTier) Valid() bool {
	switch t {
	case TierBasic, TierSilver, TierGold:
		return true
	}
	return false
}

// Benefits is fully determined by the membership tier; it is derived on
// every read and never stored.
type Benefits struct {
	DiscountRate      float64 `json:"discountRate"`
	FreeDelivery      bool    `json:"freeDelivery"`
	PrioritySupport   bool    `json:"prioritySupport"`
	ExtraDriverOption bool    `json:"extraDriverOption"`
}

type User struct {
	ID                   int            `json:"id" db:"id"`
	Name                 string         `json:"name" db:"name"`
	Email                string         `json:"email" db:"email"`
	Password             string         `json:"-" db:"password"`
	TelephoneNumber      string         `json:"telephoneNumber" db:"telephone_number"`
	Role                 Role           `json:"role" db:"role"`
	DriverLicense        string         `json:"driverLicense,omitempty" db:"driver_license"`
	MembershipTier       MembershipTier `json:"membershipTier,omitempty" db:"membership_tier"`
	MemberSince          time.Time      `json:"memberSince" db:"member_since"`
	MembershipExpiryDate time.Time      `json:"membershipExpiryDate" db:"membership_expiry_date"`
	CreatedAt            time.Time      `json:"createdAt" db:"created_at"`
}

type UserSummary struct {
	ID             int            `json:"id" db:"id"`
	Name           string         `json:"name" db:"name"`
	Email          string         `json:"email" db:"email"`
	Role           Role           `json:"role" db:"role"`
	MembershipTier MembershipTier `json:"membershipTier,omitempty" db:"membership_tier"`
}

type Transmission string

const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

type Car struct {
	ID           int            `json:"id" db:"id"`
	OwnerID      int            `json:"createdBy" db:"owner_id"`
	Make         string         `json:"make" db:"make"`
	Model        string         `json:"model" db:"model"`
	Year         int            `json:"year" db:"year"`
	NumberPlates string         `json:"numberPlates" db:"number_plates"`
	Description  string         `json:"description" db:"description"`
	RentalPrice  float64        `json:"rentalPrice" db:"rental_price"`
	Color        string         `json:"color" db:"color"`
	Transmission Transmission   `json:"transmission" db:"transmission"`
	FuelType     FuelType       `json:"fuelType" db:"fuel_type"`
	Features     pq.StringArray `json:"features" db:"features"`
	Available    bool           `json:"available" db:"available"`
	RatingScore  float64        `json:"ratingScore" db:"rating_score"`
	ReviewCount  int            `json:"reviewCount" db:"review_count"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
}

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusAccepted  ReservationStatus = "accepted"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s ReservationStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Reservation struct {
	ID         int               `json:"id" db:"id"`
	UserID     int               `json:"user" db:"user_id"`
	CarID      int               `json:"car" db:"car_id"`
	PickUpDate time.Time         `json:"pickUpDate" db:"pick_up_date"`
	ReturnDate time.Time         `json:"returnDate" db:"return_date"`
	TotalPrice float64           `json:"totalPrice" db:"total_price"`
	Status     ReservationStatus `json:"status" db:"status"`
	RatingID   *int              `json:"rating,omitempty" db:"rating_id"`
	CreatedAt  time.Time         `json:"createdAt" db:"created_at"`
}

type Rating struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user" db:"user_id"`
	CarID     int       `json:"car" db:"car_id"`
	Score     int       `json:"score" db:"score"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Promotion struct {
	ID              int       `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	DiscountPercent float64   `json:"discountPercent" db:"discount_percent"`
	ValidFrom       time.Time `json:"validFrom" db:"valid_from"`
	ValidTo         time.Time `json:"validTo" db:"valid_to"`
	ExtraBenefit    string    `json:"extraBenefit,omitempty" db:"extra_benefit"`
}

// Date accepts both RFC3339 timestamps and plain YYYY-MM-DD values in
// request bodies.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse(time.DateOnly, s)
		if err != nil {
			return err
		}
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}
