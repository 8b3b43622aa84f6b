package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentPlanDetail is one line of a bill. Lines are owned by their
// PaymentPlan and are only ever created together with it.
type PaymentPlanDetail struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PaymentPlanID string          `gorm:"size:15" json:"payment_plan_id"`
	Attribute     string          `gorm:"size:255" json:"attribute"`
	Product       string          `gorm:"size:255" json:"product"`
	Specification string          `gorm:"size:255" json:"specification"`
	Quantity      int16           `json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2)" json:"unit_price"`
	Tax           decimal.Decimal `gorm:"type:decimal(12,2)" json:"tax"`
	Device        string          `gorm:"size:255" json:"device"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(12,2)" json:"tax_amount"`
	Note          string          `gorm:"size:255" json:"note"`
	UpdatedAt     *time.Time      `json:"updated_at"`
	CreatedAt     *time.Time      `json:"created_at"`
}

// TableName overrides the table name
func (PaymentPlanDetail) TableName() string {
	return "payment_plan_details"
}
