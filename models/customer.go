package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a billing counterparty. The tool surface reads customers
// and supports a partial field update; creation stays with the back
// office.
type Customer struct {
	ID                       string          `gorm:"primaryKey;size:15" json:"id"`
	Name                     string          `gorm:"size:255" json:"name"`
	NameKana                 string          `gorm:"size:255" json:"name_kana"`
	PhoneNumber              string          `gorm:"size:25" json:"phone_number"`
	Email                    string          `gorm:"size:255" json:"email"`
	Status                   int             `json:"status"`
	CreatedAt                *time.Time      `json:"created_at"`
	CreatedBy                string          `gorm:"size:150" json:"created_by"`
	UpdatedAt                *time.Time      `json:"updated_at"`
	UpdatedBy                string          `gorm:"size:150" json:"updated_by"`
	IsDeleted                bool            `gorm:"default:false" json:"is_deleted"`
	TaxCode                  string          `gorm:"size:25" json:"tax_code"`
	CooperationMembershipFee float64         `json:"cooperation_membership_fee"`
	VariousMembershipFee     decimal.Decimal `gorm:"type:decimal(12,2)" json:"various_membership_fee"`
	Address1                 string          `gorm:"size:255" json:"address_1"`
	Address2                 string          `gorm:"size:255" json:"address_2"`
	IsContractor             bool            `gorm:"default:false" json:"is_contractor"`
}

// TableName overrides the table name
func (Customer) TableName() string {
	return "customers"
}
