package model

import "time"

type CartRecord struct {
	SessionID string `gorm:"primaryKey;size:64;not null"` // cart session cookie value
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItemRecord struct {
	ID uint `gorm:"primaryKey"`
	// FK → cart_record.session_id
	SessionID string `gorm:"size:64;index;not null"`
	Position  int    `gorm:"not null"` // order within the cart, hosting at 0
	ItemID    string `gorm:"size:128;not null"`
	Type      string `gorm:"size:16;index;not null"` // hosting, domain, email, addon, other
	Quantity  int    `gorm:"not null"`

	Plan  string `gorm:"size:16"`
	Term  string `gorm:"size:16"`
	Trial bool

	Domain string `gorm:"size:255"`

	ProductCode string `gorm:"size:64"`
	Name        string `gorm:"size:255"`
	Description string `gorm:"size:255"`
	PriceCents  int64
	Interval    string `gorm:"size:16"`
	Currency    string `gorm:"size:8"`

	CreatedAt time.Time
}

type CheckoutRecord struct {
	ID        string `gorm:"primaryKey;size:64;not null"` // uuid
	SessionID string `gorm:"size:64;index;not null"`
	Status    string `gorm:"size:32;index;not null"` // CREATED, FAILED

	PlanID       string `gorm:"size:64"`
	BillingCycle string `gorm:"size:16"`
	TrialActive  bool

	DueTodayCents         int64 `gorm:"not null"`
	RecurringMonthlyCents int64 `gorm:"not null"`

	Email       string `gorm:"size:255;index;not null"`
	CheckoutURL string `gorm:"size:512"`

	UTMSource   string `gorm:"size:128"`
	UTMMedium   string `gorm:"size:128"`
	UTMCampaign string `gorm:"size:128"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ContactMessage struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"size:255;not null"`
	Email   string `gorm:"size:255;index;not null"`
	Phone   string `gorm:"size:64"`
	Subject string `gorm:"size:255"`
	Message string `gorm:"type:text;not null"`

	CreatedAt time.Time
}
