package domain

type MembershipTier struct {
	TierName       string   `json:"tier_name"`
	Description    string   `json:"description,omitempty"`
	MonthlyFee     *Cents   `json:"monthly_fee,omitempty"`
	FreeUpgrades   *int32   `json:"free_upgrades,omitempty"`
	BonusPointRate *float64 `json:"bonus_point_rate,omitempty"`
}

// MembershipProfile is a customer's loyalty record, read-only here.
type MembershipProfile struct {
	ID               int32      `json:"profile_id"`
	CustomerID       int32      `json:"customer_id"`
	MembershipTier   string     `json:"membership_tier"`
	PointsBalance    int32      `json:"points_balance"`
	TierLevel        string     `json:"tier_level"`
	JoinDate         Timestamp  `json:"join_date"`
	LastActivityDate *Timestamp `json:"last_activity_date,omitempty"`
	LifetimeRentals  int32      `json:"lifetime_rentals"`
	LifetimeSpending Cents      `json:"lifetime_spending"`
}
