package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NgoVanPhien1997tb/yacchi-mcp/tools"
	"github.com/NgoVanPhien1997tb/yacchi-mcp/utils"
)

type ProjectHandler struct {
	db *gorm.DB
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{db: db}
}

var allowedOrderByProjects = map[string]bool{
	"id":             true,
	"name":           true,
	"project_number": true,
	"created_at":     true,
	"completed_date": true,
	"end_date":       true,
}

type ProjectSearchRequest struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	ProjectNumber     string `json:"project_number"`
	CreatedAtFrom     string `json:"created_at_from"`
	CreatedAtTo       string `json:"created_at_to"`
	CompletedDateFrom string `json:"completed_date_from"`
	CompletedDateTo   string `json:"completed_date_to"`
	EndDateFrom       string `json:"end_date_from"`
	EndDateTo         string `json:"end_date_to"`
	OrderBy           string `json:"order_by"`
	OrderDir          string `json:"order_dir"`
}

// ProjectSearch queries projects with dynamic filters and safe
// sorting, returning up to utils.PageSize rows.
func (h *ProjectHandler) ProjectSearch(c *gin.Context) {
	var req ProjectSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderBy := utils.SafeOrderBy(req.OrderBy, allowedOrderByProjects, "created_at")
	orderDir := utils.SafeOrderDir(req.OrderDir)

	w := utils.NewWhere("p.is_deleted = false")
	if req.ID != "" {
		w.Eq("p.id", req.ID)
	}
	if req.Name != "" {
		w.Contains("p.name", req.Name)
	}
	if req.ProjectNumber != "" {
		w.Eq("p.project_number", req.ProjectNumber)
	}
	for _, b := range []struct {
		col, from, to string
	}{
		{"p.created_at", req.CreatedAtFrom, req.CreatedAtTo},
		{"p.completed_date", req.CompletedDateFrom, req.CompletedDateTo},
		{"p.end_date", req.EndDateFrom, req.EndDateTo},
	} {
		if b.from != "" {
			w.Gte(b.col, b.from)
		}
		if b.to != "" {
			w.Lte(b.col, b.to)
		}
	}
	if !w.HasFilters() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide at least one filter: id, name, project_number, or a date range"})
		return
	}

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM projects p WHERE %s", w.SQL())
	dataSQL := fmt.Sprintf(`
		SELECT
			p.id,
			p.name,
			p.project_number,
			p.created_at,
			p.completed_date,
			p.end_date,
			p.is_deleted
		FROM projects p
		WHERE %s
		ORDER BY p.%s %s
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

type CostQuotationRequest struct {
	IDs          utils.StringList `json:"ids"`
	ProjectCodes utils.StringList `json:"project_codes"`
}

// CostQuotation returns quotation figures (tax, amount, entry cost)
// for projects selected by id and/or project code. At least one of the
// two lists must be non-empty.
func (h *ProjectHandler) CostQuotation(c *gin.Context) {
	var req CostQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.IDs) == 0 && len(req.ProjectCodes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either 'ids' or 'project_codes' must be provided (non-empty)"})
		return
	}

	w := utils.NewWhere("p.is_deleted = false")
	if len(req.IDs) > 0 {
		w.In("p.id", req.IDs)
	}
	if len(req.ProjectCodes) > 0 {
		w.In("p.project_number", req.ProjectCodes)
	}

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM projects p WHERE %s", w.SQL())
	dataSQL := fmt.Sprintf(`
		SELECT
			p.id AS project_id,
			p.name AS project_name,
			p.project_number AS project_code,
			p.tax,
			p.amount,
			p.entry_cost AS total_amount
		FROM projects p
		WHERE %s
		LIMIT %d`, w.SQL(), utils.PageSize)

	total, items, err := utils.RunSearch(h.db, countSQL, dataSQL, w.Args())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, utils.SearchResult{
		Total:    total,
		Returned: len(items),
		Items:    items,
	})
}

type ProjectListByCustomerIDsRequest struct {
	IDs utils.StringList `json:"ids"`
}

// ProjectListByCustomerIDs lists projects belonging to the given
// customers, newest first.
func (h *ProjectHandler) ProjectListByCustomerIDs(c *gin.Context) {
	var req ProjectListByCustomerIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one customer_id must be provided"})
		return
	}

	w := utils.NewWhere("p.is_deleted = false")
	w.In("p.customer_id", req.IDs)

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM projects p WHERE %s", w.SQL())
	dataSQL := fmt.Sprintf(`
		SELECT
			p.id,
			p.name,
			p.project_number,
			p.customer_id,
			p.created_at,
			p.completed_date,
			p.end_date,
			p.is_deleted
		FROM projects p
		WHERE %s
		ORDER BY p.created_at DESC
		LIMIT %d`, w.SQL(), utils.PageSize)

	total, items, err := utils.RunSearch(h.db, countSQL, dataSQL, w.Args())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, utils.SearchResult{
		Total:    total,
		Returned: len(items),
		OrderBy:  "created_at",
		OrderDir: "desc",
		Items:    items,
	})
}

// Register adds the project tools to the registry.
func (h *ProjectHandler) Register(r *tools.Registry) {
	r.Register(tools.Tool{
		Name:        "project_search",
		Description: "Query projects with dynamic filters; safe sort by id, name, project_number, created_at, completed_date, end_date. Returns up to 5 rows.",
		InputSchema: projectSearchSchema,
		Handler:     h.ProjectSearch,
	})
	r.Register(tools.Tool{
		Name:        "cost_quotation_for_project",
		Description: "Query quotation information for projects by project id or code",
		InputSchema: costQuotationSchema,
		Handler:     h.CostQuotation,
	})
	r.Register(tools.Tool{
		Name:        "project_list_by_customer_ids",
		Description: "Query project list by customer ids",
		InputSchema: projectListByCustomerIDsSchema,
		Handler:     h.ProjectListByCustomerIDs,
	})
	r.Stub("project_create")
	r.Stub("project_update")
	r.Stub("project_list")
	r.Stub("get_list_projects_by_creation_date")
}
