package models

import "github.com/shopspring/decimal"

// MassageOption is one bookable massage from the studio's static offer.
type MassageOption struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Duration string          `json:"duration"` // e.g., "90 min"
	Price    decimal.Decimal `json:"price"`    // EUR
}

// TimeSlot represents a pre-defined appointment window.
type TimeSlot struct {
	ID   int    `json:"id"`
	Time string `json:"time"` // e.g., "10:00"
}

// VoucherDesign is a selectable visual template for the voucher banner.
type VoucherDesign struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}
