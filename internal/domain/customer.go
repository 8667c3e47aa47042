package domain

type Customer struct {
	ID            int32      `json:"customer_id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address,omitempty"`
	DriverLicense string     `json:"driver_license"`
	DateOfBirth   *Timestamp `json:"date_of_birth,omitempty"`
	CreatedAt     Timestamp  `json:"created_at"`
	UpdatedAt     Timestamp  `json:"updated_at"`
}

// FullName joins first and last name for display.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

type CustomerCreate struct {
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address,omitempty"`
	DriverLicense string     `json:"driver_license"`
	DateOfBirth   *Date      `json:"date_of_birth,omitempty"`
}

// CustomerWithProfile is the customer detail payload including the loyalty
// profile and vehicle preferences, both read-only in this console.
type CustomerWithProfile struct {
	Customer
	MembershipProfile  *MembershipProfile  `json:"membership_profile,omitempty"`
	VehiclePreferences []VehiclePreference `json:"vehicle_preferences"`
}

type VehiclePreference struct {
	CustomerID      int32     `json:"customer_id"`
	VehicleType     string    `json:"vehicle_type"`
	PreferenceScore *int32    `json:"preference_score,omitempty"`
	CreatedAt       Timestamp `json:"created_at"`
}
