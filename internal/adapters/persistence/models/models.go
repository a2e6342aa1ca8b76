package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table. Email carries the uniqueness constraint:
// the index makes a concurrent duplicate signup fail at the storage layer
// rather than racing past the service-level check.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"size:50;not null" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;not null" json:"role"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO. The sanitized view: no password hash, ever.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Asset Tables
// ============================================================

// Base represents bases table
type Base struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Location  string         `gorm:"size:200;not null" json:"location"`
	Capacity  int            `gorm:"not null" json:"capacity"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Base) TableName() string {
	return "bases"
}

// Equipment represents equipment table
type Equipment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Category  string         `gorm:"size:50;not null" json:"category"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	Base      string         `gorm:"size:100;not null;index" json:"base"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Equipment) TableName() string {
	return "equipment"
}

// Transfer represents transfers table
type Transfer struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	EquipmentType   string         `gorm:"size:100;not null" json:"equipment_type"`
	Quantity        int            `gorm:"not null" json:"quantity"`
	FromBase        string         `gorm:"size:100;not null;index" json:"from_base"`
	ToBase          string         `gorm:"size:100;not null;index" json:"to_base"`
	Notes           string         `gorm:"type:text" json:"notes"`
	ExpectedArrival time.Time      `gorm:"not null" json:"expected_arrival"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Transfer) TableName() string {
	return "transfers"
}

// Purchase statuses
const (
	PurchaseStatusPending   = "Pending Approval"
	PurchaseStatusInTransit = "In Transit"
	PurchaseStatusDelivered = "Delivered"
)

// Purchase represents purchases table
type Purchase struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	OrderNo       string         `gorm:"uniqueIndex;size:30;not null" json:"order_no"`
	EquipmentType string         `gorm:"size:100;not null" json:"equipment_type"`
	Quantity      int            `gorm:"not null" json:"quantity"`
	UnitCost      float64        `gorm:"type:decimal(15,2);not null" json:"unit_cost"`
	TotalCost     float64        `gorm:"type:decimal(15,2);not null" json:"total_cost"`
	Vendor        string         `gorm:"size:200" json:"vendor"`
	Base          string         `gorm:"size:100;not null;index" json:"base"`
	PurchaseDate  time.Time      `gorm:"not null" json:"purchase_date"`
	DeliveryDate  *time.Time     `json:"delivery_date"`
	Status        string         `gorm:"size:30;not null;default:'Pending Approval'" json:"status"`
	ApprovedBy    string         `gorm:"size:100" json:"approved_by"`
	Notes         string         `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Purchase) TableName() string {
	return "purchases"
}

// Assignment statuses
const (
	AssignmentStatusActive   = "Active"
	AssignmentStatusReturned = "Returned"
)

// Assignment represents assignments table
type Assignment struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	AssignmentNo   string         `gorm:"uniqueIndex;size:30;not null" json:"assignment_no"`
	EquipmentType  string         `gorm:"size:100;not null" json:"equipment_type"`
	SerialNumber   string         `gorm:"size:50" json:"serial_number"`
	AssignedTo     string         `gorm:"size:100;not null" json:"assigned_to"`
	PersonnelID    string         `gorm:"size:30;not null;index" json:"personnel_id"`
	Rank           string         `gorm:"size:50" json:"rank"`
	Unit           string         `gorm:"size:100" json:"unit"`
	Base           string         `gorm:"size:100;not null;index" json:"base"`
	AssignmentDate time.Time      `gorm:"not null" json:"assignment_date"`
	ReturnDate     *time.Time     `json:"return_date"`
	Condition      string         `gorm:"size:30" json:"condition"`
	Status         string         `gorm:"size:20;not null;default:'Active'" json:"status"`
	AssignedBy     string         `gorm:"size:100" json:"assigned_by"`
	Notes          string         `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// Expenditure represents expenditures table
type Expenditure struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	ExpenditureNo   string         `gorm:"uniqueIndex;size:30;not null" json:"expenditure_no"`
	EquipmentType   string         `gorm:"size:100;not null" json:"equipment_type"`
	Quantity        int            `gorm:"not null" json:"quantity"`
	ExpendedBy      string         `gorm:"size:100;not null" json:"expended_by"`
	PersonnelID     string         `gorm:"size:30;index" json:"personnel_id"`
	Base            string         `gorm:"size:100;not null;index" json:"base"`
	ExpenditureDate time.Time      `gorm:"not null" json:"expenditure_date"`
	Reason          string         `gorm:"size:200" json:"reason"`
	AuthorizedBy    string         `gorm:"size:100" json:"authorized_by"`
	UnitCost        float64        `gorm:"type:decimal(15,2)" json:"unit_cost"`
	TotalCost       float64        `gorm:"type:decimal(15,2)" json:"total_cost"`
	Notes           string         `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Expenditure) TableName() string {
	return "expenditures"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Base{},
		&Equipment{},
		&Transfer{},
		&Purchase{},
		&Assignment{},
		&Expenditure{},
	)
}
