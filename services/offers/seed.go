package offers

import "homeserve/models"

// SeedOffers returns the platform's promotional offers. Fixed discounts and
// minimum amounts are integer minor units (paise).
func SeedOffers() []models.Offer {
	return []models.Offer{
		{
			ID: "1", Title: "First Booking Special",
			Description:   "Get 30% off on your first service booking",
			Code:          "WELCOME30",
			DiscountValue: 30, DiscountType: models.DiscountPercentage,
			MinAmount: 100000, Category: "all", ExpiryDate: "2026-12-31",
			Terms: "Valid only for new customers",
		},
		{
			ID: "2", Title: "AC Summer Special",
			Description:   "25% off on all AC repair and maintenance services",
			Code:          "ACSUMMER25",
			DiscountValue: 25, DiscountType: models.DiscountPercentage,
			MinAmount: 50000, Category: "ac", ExpiryDate: "2026-09-30",
			Terms: "Valid on services above ₹500",
		},
		{
			ID: "3", Title: "Flat ₹200 Off",
			Description:   "Get flat ₹200 off on plumbing services",
			Code:          "PLUMB200",
			DiscountValue: 20000, DiscountType: models.DiscountFixed,
			MinAmount: 80000, Category: "plumbing", ExpiryDate: "2026-11-15",
			Terms: "Minimum order ₹800",
		},
		{
			ID: "4", Title: "Deep Cleaning Package",
			Description:   "40% off on complete home deep cleaning",
			Code:          "CLEAN40",
			DiscountValue: 40, DiscountType: models.DiscountPercentage,
			MinAmount: 150000, Category: "cleaning", ExpiryDate: "2026-10-20",
			Terms: "Includes all cleaning services",
		},
		{
			ID: "5", Title: "Emergency Repair",
			Description:   "20% off on emergency repair services",
			Code:          "EMERGENCY20",
			DiscountValue: 20, DiscountType: models.DiscountPercentage,
			MinAmount: 0, Category: "repair", ExpiryDate: "2026-12-25",
			Terms: "Available 24/7",
		},
		{
			ID: "6", Title: "Monthly Package",
			Description:   "Save 35% with monthly service subscription",
			Code:          "MONTHLY35",
			DiscountValue: 35, DiscountType: models.DiscountPercentage,
			MinAmount: 200000, Category: "all", ExpiryDate: "2026-11-30",
			Terms: "Minimum 3-month subscription",
		},
		{
			ID: "7", Title: "Appliance Repair",
			Description:   "₹150 off on all appliance repair services",
			Code:          "APP150",
			DiscountValue: 15000, DiscountType: models.DiscountFixed,
			MinAmount: 60000, Category: "appliance", ExpiryDate: "2026-10-10",
			Terms: "Excludes spare parts",
		},
		{
			ID: "8", Title: "Pest Control Combo",
			Description:   "Buy 2 pest control services, get 1 free",
			Code:          "PESTCOMBO",
			DiscountValue: 33, DiscountType: models.DiscountPercentage,
			MinAmount: 120000, Category: "pest", ExpiryDate: "2026-09-15",
			Terms: "Valid on package of 3 services",
		},
	}
}
