package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a construction project. Projects are created by the back
// office, not by this service; the tool surface only reads them.
type Project struct {
	ID               string          `gorm:"primaryKey;size:15" json:"id"`
	Name             string          `gorm:"size:255" json:"name"`
	Status           int             `json:"status"`
	PlanStartDate    *time.Time      `gorm:"type:date" json:"plan_start_date"`
	PlanCompleteDate *time.Time      `gorm:"type:date" json:"plan_complete_date"`
	CustomerID       string          `gorm:"size:15" json:"customer_id"`
	CompanyName      string          `gorm:"size:255" json:"company_name"`
	CreatedAt        *time.Time      `json:"created_at"`
	CreatedBy        string          `gorm:"size:150" json:"created_by"`
	UpdatedAt        *time.Time      `json:"updated_at"`
	UpdatedBy        string          `gorm:"size:150" json:"updated_by"`
	IsDeleted        bool            `gorm:"default:false" json:"is_deleted"`
	ProjectNumber    string          `gorm:"size:25" json:"project_number"`
	CompletedDate    *time.Time      `gorm:"type:date" json:"completed_date"`
	EndDate          *time.Time      `gorm:"type:date" json:"end_date"`
	Tax              float64         `json:"tax"`
	Amount           decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	EntryCost        decimal.Decimal `gorm:"type:decimal(12,2)" json:"entry_cost"`
	Profit           decimal.Decimal `gorm:"type:decimal(12,2)" json:"profit"`
	ProfitRate       float64         `json:"profit_rate"`
	PaidAmount       decimal.Decimal `gorm:"type:decimal(12,2)" json:"paid_amount"`
}

// TableName overrides the table name
func (Project) TableName() string {
	return "projects"
}
