package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/NgoVanPhien1997tb/yacchi-mcp/models"
	"github.com/NgoVanPhien1997tb/yacchi-mcp/tools"
	"github.com/NgoVanPhien1997tb/yacchi-mcp/utils"
)

type BillHandler struct {
	db *gorm.DB
}

func NewBillHandler(db *gorm.DB) *BillHandler {
	return &BillHandler{db: db}
}

var allowedOrderByBills = map[string]bool{
	"created_at":  true,
	"amount":      true,
	"project_id":  true,
	"customer_id": true,
}

type SearchBillsRequest struct {
	ProjectIDs    utils.StringList `json:"project_ids"`
	CustomerIDs   utils.StringList `json:"customer_ids"`
	CreatedAtFrom string           `json:"created_at_from"`
	CreatedAtTo   string           `json:"created_at_to"`
	OrderBy       string           `json:"order_by"`
	OrderDir      string           `json:"order_dir"`
}

// SearchBills returns up to utils.PageSize bills matching the given
// project/customer/date filters. At least one filter is required; an
// unfiltered call is rejected rather than scanning the whole table.
func (h *BillHandler) SearchBills(c *gin.Context) {
	var req SearchBillsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderBy := utils.SafeOrderBy(req.OrderBy, allowedOrderByBills, "created_at")
	orderDir := utils.SafeOrderDir(req.OrderDir)

	w := utils.NewWhere("pl.is_deleted = false")
	if len(req.ProjectIDs) > 0 {
		w.In("pl.project_id", req.ProjectIDs)
	}
	if len(req.CustomerIDs) > 0 {
		w.In("pl.customer_id", req.CustomerIDs)
	}
	if req.CreatedAtFrom != "" {
		w.Gte("pl.created_at", req.CreatedAtFrom)
	}
	if req.CreatedAtTo != "" {
		w.Lte("pl.created_at", req.CreatedAtTo)
	}
	if !w.HasFilters() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide at least one filter: project_ids, customer_ids, or created_at range"})
		return
	}

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM payment_plans pl WHERE %s", w.SQL())
	dataSQL := fmt.Sprintf(`
		SELECT
			pl.id AS bill_number,
			pl.created_at,
			pl.tax,
			pl.amount,
			p.project_number,
			p.name AS project_name,
			c.id AS customer_id,
			p.id AS project_id,
			c.name AS customer_name,
			pl.execution_date AS expected_date_of_payment
		FROM payment_plans pl
		LEFT JOIN projects p ON p.id = pl.project_id
		LEFT JOIN customers c ON c.id = pl.customer_id
		WHERE %s
		ORDER BY pl.%s %s
		LIMIT %d`, w.SQL(), orderBy, orderDir, utils.PageSize)

	total, items, err := utils.RunSearch(h.db, countSQL, dataSQL, w.Args())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, utils.SearchResult{
		Total:    total,
		Returned: len(items),
		OrderBy:  orderBy,
		OrderDir: orderDir,
		Items:    items,
	})
}

type BillDetailInput struct {
	Attribute string           `json:"attribute"`
	Product   string           `json:"product"`
	Quantity  *int             `json:"quantity"`
	TaxAmount *decimal.Decimal `json:"tax_amount"`
	Amount    *decimal.Decimal `json:"amount"`
}

type CreateBillRequest struct {
	CustomerID            string            `json:"customer_id"`
	PayerCode             string            `json:"payer_code"`
	ProjectID             string            `json:"project_id"`
	PaymentDate           string            `json:"payment_date"`
	ExpectedDateOfPayment string            `json:"expected_date_of_payment"`
	ExecutionTeam         string            `json:"execution_team"`
	Details               []BillDetailInput `json:"details"`
}

// referenceLookups maps required reference fields to the table and
// column that must contain the value.
var referenceLookups = []struct {
	field  string
	table  string
	column string
	get    func(*CreateBillRequest) *string
}{
	{"project_id", "projects", "id", func(r *CreateBillRequest) *string { return &r.ProjectID }},
	{"customer_id", "customers", "id", func(r *CreateBillRequest) *string { return &r.CustomerID }},
	{"payer_code", "customers", "id", func(r *CreateBillRequest) *string { return &r.PayerCode }},
}

// validateCreateBill checks field formats and reference existence. It
// is pure validation: nothing is written, and the first violation is
// returned as a descriptive error.
func (h *BillHandler) validateCreateBill(req *CreateBillRequest) error {
	for _, ref := range referenceLookups {
		v := strings.TrimSpace(*ref.get(req))
		if v == "" {
			return fmt.Errorf("%s must not be empty", ref.field)
		}
		*ref.get(req) = v

		var n int64
		if err := h.db.Table(ref.table).Where(ref.column+" = ?", v).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%s '%s' does not exist in %s.%s", ref.field, v, ref.table, ref.column)
		}
	}

	for _, f := range []struct{ name, value string }{
		{"payment_date", req.PaymentDate},
		{"expected_date_of_payment", req.ExpectedDateOfPayment},
	} {
		if f.value == "" {
			continue
		}
		if _, err := utils.ParseISODate(f.value); err != nil {
			return fmt.Errorf("%s must be an ISO date (YYYY-MM-DD): %q", f.name, f.value)
		}
	}

	if len(req.Details) == 0 {
		return errors.New("details must not be empty")
	}
	for i, d := range req.Details {
		if d.Quantity != nil && *d.Quantity <= 0 {
			return fmt.Errorf("details[%d]: quantity must be > 0", i)
		}
		if d.Amount == nil {
			return fmt.Errorf("details[%d]: amount is required", i)
		}
		if d.TaxAmount == nil {
			return fmt.Errorf("details[%d]: tax_amount is required", i)
		}
		if d.Amount.IsNegative() || d.TaxAmount.IsNegative() {
			return fmt.Errorf("details[%d]: money fields must be >= 0", i)
		}
	}
	return nil
}

// CreateBill validates the request, then persists the payment plan and
// its detail lines in one transaction. The plan identifier is assigned
// by the model's BeforeCreate hook during the insert; totals are the
// exact decimal sums of the detail lines.
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validateCreateBill(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totalAmount := decimal.Zero
	totalTax := decimal.Zero
	for _, d := range req.Details {
		totalAmount = totalAmount.Add(*d.Amount)
		totalTax = totalTax.Add(*d.TaxAmount)
	}

	now := time.Now()
	plan := models.PaymentPlan{
		ProjectID:     req.ProjectID,
		CustomerID:    req.CustomerID,
		PayerCode:     req.PayerCode,
		ExecutionTeam: req.ExecutionTeam,
		Amount:        totalAmount,
		Tax:           totalTax,
		CreatedAt:     &now,
		IsDeleted:     false,
	}
	if req.ExpectedDateOfPayment != "" {
		d, _ := utils.ParseISODate(req.ExpectedDateOfPayment)
		plan.ExecutionDate = &d
	}
	if req.PaymentDate != "" {
		d, _ := utils.ParseISODate(req.PaymentDate)
		plan.PlanDate = &d
	}
	for _, d := range req.Details {
		detail := models.PaymentPlanDetail{
			Attribute: d.Attribute,
			Product:   d.Product,
			Amount:    *d.Amount,
			TaxAmount: *d.TaxAmount,
			CreatedAt: &now,
		}
		if d.Quantity != nil {
			detail.Quantity = int16(*d.Quantity)
		}
		plan.Details = append(plan.Details, detail)
	}

	// Header first, then lines referencing its generated id. Any
	// failure rolls the whole plan back.
	if err := h.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&plan).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]gin.H, 0, len(plan.Details))
	for _, d := range plan.Details {
		items = append(items, gin.H{
			"id":         d.ID,
			"attribute":  d.Attribute,
			"product":    d.Product,
			"quantity":   d.Quantity,
			"tax_amount": utils.ToJSONValue(d.TaxAmount),
			"amount":     utils.ToJSONValue(d.Amount),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"bill_id":         plan.ID,
		"customer_id":     plan.CustomerID,
		"project_id":      plan.ProjectID,
		"amount":          utils.ToJSONValue(plan.Amount),
		"tax":             utils.ToJSONValue(plan.Tax),
		"details_created": len(items),
		"details":         items,
	})
}

// Register adds the bill tools to the registry.
func (h *BillHandler) Register(r *tools.Registry) {
	r.Register(tools.Tool{
		Name:        "search_bills",
		Description: "Query invoice lists by project and customer. Accepts array strings. Returns up to 5 rows.",
		InputSchema: searchBillsSchema,
		Handler:     h.SearchBills,
	})
	r.Register(tools.Tool{
		Name:        "create_bill",
		Description: "Create bill",
		InputSchema: createBillSchema,
		Handler:     h.CreateBill,
	})
	r.Stub("bills_update")
	r.Stub("bills_list")
	r.Stub("bills_list_by_creation_date")
}
