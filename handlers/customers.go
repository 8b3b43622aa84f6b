package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NgoVanPhien1997tb/yacchi-mcp/models"
	"github.com/NgoVanPhien1997tb/yacchi-mcp/tools"
	"github.com/NgoVanPhien1997tb/yacchi-mcp/utils"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

var allowedOrderByCustomers = map[string]bool{
	"id":           true,
	"name":         true,
	"email":        true,
	"phone_number": true,
	"created_at":   true,
}

type SearchCustomersRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	CreatedAtFrom string `json:"created_at_from"`
	CreatedAtTo   string `json:"created_at_to"`
	OrderBy       string `json:"order_by"`
	OrderDir      string `json:"order_dir"`
}

// SearchCustomers queries customers with dynamic filters and safe
// sorting, returning up to utils.PageSize rows. Contractor rows are
// excluded; name matches case-insensitive substrings, email and phone
// match exactly unless the caller supplies % or _ wildcards.
func (h *CustomerHandler) SearchCustomers(c *gin.Context) {
	var req SearchCustomersRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderBy := utils.SafeOrderBy(req.OrderBy, allowedOrderByCustomers, "created_at")
	orderDir := utils.SafeOrderDir(req.OrderDir)

	w := utils.NewWhere("c.is_deleted = false AND c.is_contractor = false")
	if req.ID != "" {
		w.Eq("c.id", req.ID)
	}
	if req.Name != "" {
		w.Contains("c.name", req.Name)
	}
	if req.Email != "" {
		w.Pattern("c.email", req.Email)
	}
	if req.PhoneNumber != "" {
		w.Pattern("c.phone_number", req.PhoneNumber)
	}
	if req.CreatedAtFrom != "" {
		w.Gte("c.created_at", req.CreatedAtFrom)
	}
	if req.CreatedAtTo != "" {
		w.Lte("c.created_at", req.CreatedAtTo)
	}
	if !w.HasFilters() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide at least one filter: id, name, email, phone_number, or created_at range"})
		return
	}

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM customers c WHERE %s", w.SQL())
	dataSQL := fmt.Sprintf(`
		SELECT
			c.id,
			c.name,
			c.email,
			c.phone_number,
			c.created_at,
			c.is_deleted
		FROM customers c
		WHERE %s
		ORDER BY c.%s %s
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

type UpdateCustomerRequest struct {
	ID          string  `json:"id" binding:"required"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

// UpdateCustomer applies a partial update to the named customer. Only
// fields present in the request are touched; an update with no fields
// and an update that matches no live row both come back as structured
// error results, not transport failures.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Email != nil {
		changes["email"] = *req.Email
	}
	if req.PhoneNumber != nil {
		changes["phone_number"] = *req.PhoneNumber
	}
	if len(changes) == 0 {
		c.JSON(http.StatusOK, gin.H{"error": "no fields to update"})
		return
	}

	res := h.db.Model(&models.Customer{}).
		Where("id = ? AND is_deleted = false", req.ID).
		Updates(changes)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusOK, gin.H{"error": "customer not found or already deleted"})
		return
	}

	var updated models.Customer
	if err := h.db.First(&updated, "id = ?", req.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           updated.ID,
		"name":         updated.Name,
		"email":        updated.Email,
		"phone_number": updated.PhoneNumber,
		"created_at":   utils.ToJSONValue(updated.CreatedAt),
		"is_deleted":   updated.IsDeleted,
	})
}

// Register adds the customer tools to the registry.
func (h *CustomerHandler) Register(r *tools.Registry) {
	r.Register(tools.Tool{
		Name:        "search_customers",
		Description: "Query customers with dynamic filters; safe sort by id, name, email, phone_number. Returns up to 5 rows.",
		InputSchema: searchCustomersSchema,
		Handler:     h.SearchCustomers,
	})
	r.Register(tools.Tool{
		Name:        "update_customer",
		Description: "Update customer details",
		InputSchema: updateCustomerSchema,
		Handler:     h.UpdateCustomer,
	})
	r.Stub("customers_create")
	r.Stub("customers_list")
	r.Stub("customers_list_by_creation_date")
}
