package catalog

import "homeserve/models"

var (
	morningSlots = []string{"09:00", "10:00", "11:00", "12:00"}
	daySlots     = []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}
	eveningSlots = []string{"14:00", "15:00", "16:00", "17:00", "18:00"}
)

// SeedCatalog returns the static service catalog. Prices are integer minor
// units (paise).
func SeedCatalog() []models.ServiceOffering {
	return []models.ServiceOffering{
		// Car wash.
		{ID: "car-1", Name: "Basic Wash (Bucket wash)", Category: "car", BasePrice: 29900, DurationMinutes: 45, AvailableSlots: daySlots, MaxBookingsPerSlot: 4},
		{ID: "car-2", Name: "Premium Wash (Water Wash)", Category: "car", BasePrice: 49900, DurationMinutes: 60, AvailableSlots: daySlots, MaxBookingsPerSlot: 3},
		{ID: "car-3", Name: "Interior Cleaning", Category: "car", BasePrice: 49900, DurationMinutes: 60, AvailableSlots: daySlots, MaxBookingsPerSlot: 3},
		{ID: "car-4", Name: "Full Service (Water Wash + Interior)", Category: "car", BasePrice: 69900, DurationMinutes: 90, AvailableSlots: morningSlots, MaxBookingsPerSlot: 2},
		{ID: "car-5", Name: "Engine Wash", Category: "car", BasePrice: 39900, DurationMinutes: 45, AvailableSlots: morningSlots, MaxBookingsPerSlot: 2},
		{ID: "car-6", Name: "Waxing & Polishing", Category: "car", BasePrice: 89900, DurationMinutes: 120, AvailableSlots: morningSlots, MaxBookingsPerSlot: 2},
		{ID: "car-7", Name: "AC Service & Cleaning", Category: "car", BasePrice: 79900, DurationMinutes: 90, AvailableSlots: eveningSlots, MaxBookingsPerSlot: 2},
		{ID: "car-8", Name: "Tire Shine & Cleaning", Category: "car", BasePrice: 19900, DurationMinutes: 30, AvailableSlots: daySlots, MaxBookingsPerSlot: 4},

		// Bike wash.
		{ID: "bike-1", Name: "Basic Wash (Bucket wash)", Category: "bike", BasePrice: 9900, DurationMinutes: 30, AvailableSlots: daySlots, MaxBookingsPerSlot: 6},
		{ID: "bike-2", Name: "Premium Wash (Water Wash)", Category: "bike", BasePrice: 19900, DurationMinutes: 45, AvailableSlots: daySlots, MaxBookingsPerSlot: 4},
		{ID: "bike-3", Name: "Chain Cleaning & Lubrication", Category: "bike", BasePrice: 14900, DurationMinutes: 30, AvailableSlots: daySlots, MaxBookingsPerSlot: 4},
		{ID: "bike-4", Name: "Complete Bike Service", Category: "bike", BasePrice: 59900, DurationMinutes: 120, AvailableSlots: morningSlots, MaxBookingsPerSlot: 2},
		{ID: "bike-5", Name: "Engine Cleaning", Category: "bike", BasePrice: 24900, DurationMinutes: 45, AvailableSlots: eveningSlots, MaxBookingsPerSlot: 3},
		{ID: "bike-6", Name: "Polish & Wax", Category: "bike", BasePrice: 34900, DurationMinutes: 60, AvailableSlots: eveningSlots, MaxBookingsPerSlot: 3},

		// AC services.
		{ID: "ac-1", Name: "AC General Service", Category: "ac", BasePrice: 59900, DurationMinutes: 90, AvailableSlots: daySlots, MaxBookingsPerSlot: 3},
		{ID: "ac-2", Name: "AC Deep Cleaning", Category: "ac", BasePrice: 89900, DurationMinutes: 120, AvailableSlots: morningSlots, MaxBookingsPerSlot: 2},
		{ID: "ac-3", Name: "AC Gas Charging", Category: "ac", BasePrice: 129900, DurationMinutes: 120, AvailableSlots: morningSlots, MaxBookingsPerSlot: 2},
		{ID: "ac-4", Name: "AC Repair & Troubleshooting", Category: "ac", BasePrice: 39900, DurationMinutes: 60, AvailableSlots: daySlots, MaxBookingsPerSlot: 3},
		{ID: "ac-5", Name: "AC Installation", Category: "ac", BasePrice: 149900, DurationMinutes: 180, AvailableSlots: morningSlots, MaxBookingsPerSlot: 1},
		{ID: "ac-6", Name: "AC Uninstallation", Category: "ac", BasePrice: 69900, DurationMinutes: 90, AvailableSlots: eveningSlots, MaxBookingsPerSlot: 2},
		{ID: "ac-7", Name: "Annual Maintenance Contract", Category: "ac", BasePrice: 299900, DurationMinutes: 240, AvailableSlots: morningSlots, MaxBookingsPerSlot: 2},
		{ID: "ac-8", Name: "Water Leakage Repair", Category: "ac", BasePrice: 49900, DurationMinutes: 60, AvailableSlots: daySlots, MaxBookingsPerSlot: 3},

		// Home cleaning.
		{ID: "clean-1", Name: "Sofa Cleaning (3 Seater)", Category: "cleaning", BasePrice: 49900, DurationMinutes: 90, AvailableSlots: daySlots, MaxBookingsPerSlot: 3},
		{ID: "clean-2", Name: "Carpet Deep Cleaning", Category: "cleaning", BasePrice: 69900, DurationMinutes: 120, AvailableSlots: morningSlots, MaxBookingsPerSlot: 2},
		{ID: "clean-3", Name: "Full Home Deep Cleaning", Category: "cleaning", BasePrice: 249900, DurationMinutes: 360, AvailableSlots: []string{"09:00"}, MaxBookingsPerSlot: 1},
	}
}
