package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentPlanIDPrefix plus a zero-padded sequence value forms the
// business identifier of a payment plan, e.g. "PP00000042".
const PaymentPlanIDPrefix = "PP"

// PaymentPlan is a bill issued against a project. It is the aggregate
// root of its detail lines: header and details are always written in
// one transaction, and the header identifier is generated at insert
// time from the payment_plans_id_seq sequence.
type PaymentPlan struct {
	ID               string          `gorm:"primaryKey;size:15" json:"id"`
	ProjectID        string          `gorm:"size:15" json:"project_id"`
	PlanDate         *time.Time      `gorm:"type:date" json:"plan_date"`
	Amount           decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Tax              decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax"`
	Status           string          `gorm:"size:25" json:"status"`
	IsPayAll         bool            `json:"is_pay_all"`
	CreatedAt        *time.Time      `json:"created_at"`
	CreatedBy        string          `gorm:"size:150" json:"created_by"`
	UpdatedAt        *time.Time      `json:"updated_at"`
	UpdatedBy        string          `gorm:"size:150" json:"updated_by"`
	IsDeleted        bool            `gorm:"default:false" json:"is_deleted"`
	PaymentPlanDate1 *time.Time      `gorm:"type:date" json:"payment_plan_date_1"`
	PaymentPlanDate2 *time.Time      `gorm:"type:date" json:"payment_plan_date_2"`
	PayForMonth      int16           `json:"pay_for_month"`
	Taxable          bool            `json:"taxable"`
	TaxPercent       float64         `json:"tax_percent"`
	RoundTax         string          `gorm:"type:char(1)" json:"round_tax"`
	RoundAmount      string          `gorm:"type:char(1)" json:"round_amount"`
	Payer            string          `gorm:"size:255" json:"payer"`
	CustomerName     string          `gorm:"size:255" json:"customer_name"`
	ExecutionTeam    string          `gorm:"size:255" json:"execution_team"`
	ExecutionDate    *time.Time      `gorm:"type:date" json:"execution_date"`
	ProjectName      string          `gorm:"size:255" json:"project_name"`
	PayerCode        string          `gorm:"size:25" json:"payer_code"`
	CustomerID       string          `gorm:"size:15" json:"customer_id"`
	ProjectNumber    string          `gorm:"size:25" json:"project_number"`
	InvoiceDate      *time.Time      `gorm:"type:date" json:"invoice_date"`
	PayForYear       int16           `json:"pay_for_year"`

	Details []PaymentPlanDetail `gorm:"foreignKey:PaymentPlanID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"details,omitempty"`
}

// TableName overrides the table name
func (PaymentPlan) TableName() string {
	return "payment_plans"
}

// BeforeCreate assigns the generated identifier. On Postgres the value
// comes from the payment_plans_id_seq sequence, which is safe under
// concurrent inserts. Other dialects (sqlite in tests) fall back to
// max(id)+1.
func (p *PaymentPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID != "" {
		return nil
	}
	var next int64
	if tx.Dialector.Name() == "postgres" {
		if err := tx.Raw("SELECT nextval('payment_plans_id_seq')").Scan(&next).Error; err != nil {
			return err
		}
	} else {
		var maxID string
		if err := tx.Raw("SELECT COALESCE(MAX(id), '') FROM payment_plans").Scan(&maxID).Error; err != nil {
			return err
		}
		if n, err := strconv.ParseInt(strings.TrimPrefix(maxID, PaymentPlanIDPrefix), 10, 64); err == nil {
			next = n + 1
		} else {
			next = 1
		}
	}
	p.ID = fmt.Sprintf("%s%08d", PaymentPlanIDPrefix, next)
	return nil
}
