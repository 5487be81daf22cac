// Package catalog exposes the studio's static offer: massage options,
// appointment time slots, and voucher designs. The data is defined at
// process start and never mutated; all ids handed to the wizard originate
// here, so a failed lookup indicates a programming error in the caller.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"spavoucher/models"
)

var massageOptions = []models.MassageOption{
	{ID: 1, Name: "Klassische Massage", Duration: "60 min", Price: decimal.NewFromInt(65)},
	{ID: 2, Name: "Aromatherapie Massage", Duration: "90 min", Price: decimal.NewFromInt(95)},
	{ID: 3, Name: "Hot Stone Massage", Duration: "75 min", Price: decimal.NewFromInt(85)},
}

var timeSlots = []models.TimeSlot{
	{ID: 1, Time: "09:00"},
	{ID: 2, Time: "10:00"},
	{ID: 3, Time: "11:00"},
	{ID: 4, Time: "14:00"},
	{ID: 5, Time: "15:00"},
	{ID: 6, Time: "16:00"},
}

var voucherDesigns = []models.VoucherDesign{
	{
		ID:       1,
		Name:     "Entspannung Pur",
		ImageURL: "https://images.unsplash.com/photo-1600334089648-b0d9d3028eb2?auto=format&fit=crop&w=400&h=250",
	},
	{
		ID:       2,
		Name:     "Wellness Oase",
		ImageURL: "https://images.unsplash.com/photo-1540555700478-4be289fbecef?auto=format&fit=crop&w=400&h=250",
	},
	{
		ID:       3,
		Name:     "Zen Moment",
		ImageURL: "https://images.unsplash.com/photo-1544161515-4ab6ce6db874?auto=format&fit=crop&w=400&h=250",
	},
	{
		ID:       4,
		Name:     "Harmonie",
		ImageURL: "https://images.unsplash.com/photo-1507652313519-d4e9174996dd?auto=format&fit=crop&w=400&h=250",
	},
}

// MassageOptions returns the ordered list of bookable massages.
func MassageOptions() []models.MassageOption {
	return massageOptions
}

// TimeSlots returns the ordered list of appointment windows.
func TimeSlots() []models.TimeSlot {
	return timeSlots
}

// VoucherDesigns returns the ordered list of voucher templates.
func VoucherDesigns() []models.VoucherDesign {
	return voucherDesigns
}

// MassageOptionByID looks up a massage option by its catalog id.
func MassageOptionByID(id int) (models.MassageOption, error) {
	for _, opt := range massageOptions {
		if opt.ID == id {
			return opt, nil
		}
	}
	return models.MassageOption{}, fmt.Errorf("massage option with ID %d not found", id)
}

// TimeSlotByID looks up a time slot by its catalog id.
func TimeSlotByID(id int) (models.TimeSlot, error) {
	for _, slot := range timeSlots {
		if slot.ID == id {
			return slot, nil
		}
	}
	return models.TimeSlot{}, fmt.Errorf("time slot with ID %d not found", id)
}

// VoucherDesignByID looks up a voucher design by its catalog id.
func VoucherDesignByID(id int) (models.VoucherDesign, error) {
	for _, design := range voucherDesigns {
		if design.ID == id {
			return design, nil
		}
	}
	return models.VoucherDesign{}, fmt.Errorf("voucher design with ID %d not found", id)
}
