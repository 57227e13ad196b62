package domain

import (
	"time"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
	ListingTypeBoth ListingType = "both"
)

func (t ListingType) Valid() bool {
	switch t {
	case ListingTypeSale, ListingTypeRent, ListingTypeBoth:
		return true
	}
	return false
}

type CarOffer struct {
	ID             string         `json:"id"`
	DealerID       string         `json:"dealer_id"`
	Make           string         `json:"make"`
	Model          string         `json:"model"`
	Year           int            `json:"year"`
	Price          float64        `json:"price"`
	Mileage        int            `json:"mileage"`
	FuelType       string         `json:"fuel_type"`
	Transmission   string         `json:"transmission"`
	BodyType       string         `json:"body_type"`
	Color          string         `json:"color"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	ListingType    ListingType    `json:"listing_type"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
