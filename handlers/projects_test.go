package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectSearch(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	router := setupRouter(db)

	t.Run("No Filters Rejected", func(t *testing.T) {
		w := callTool(t, router, "project_search", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "at least one filter")
	})

	t.Run("Exact Project Number", func(t *testing.T) {
		w := callTool(t, router, "project_search", `{"project_number": "PRJ-2025-001"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		assert.Equal(t, 1.0, resp["total"])
		row := resp["items"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "PJ00000001", row["id"])
	})

	t.Run("Fuzzy Name", func(t *testing.T) {
		w := callTool(t, router, "project_search", `{"name": "văn phòng"}`)
		resp := decodeBody(t, w)
		assert.Equal(t, 1.0, resp["total"])
		row := resp["items"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "PJ00000002", row["id"])
	})

	t.Run("Completed Date Range", func(t *testing.T) {
		w := callTool(t, router, "project_search", `{"completed_date_from": "2025-05-01", "completed_date_to": "2025-07-01"}`)
		resp := decodeBody(t, w)
		assert.Equal(t, 1.0, resp["total"])
	})

	t.Run("Soft Deleted Excluded", func(t *testing.T) {
		w := callTool(t, router, "project_search", `{"id": "PJ00000099"}`)
		resp := decodeBody(t, w)
		assert.Equal(t, 0.0, resp["total"])
	})

	t.Run("Order By Whitelist Fallback", func(t *testing.T) {
		w := callTool(t, router, "project_search", `{"name": "á", "order_by": "drop table", "order_dir": "up"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		assert.Equal(t, "created_at", resp["order_by"])
		assert.Equal(t, "desc", resp["order_dir"])
	})
}

func TestCostQuotation(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	router := setupRouter(db)

	t.Run("Requires IDs Or Codes", func(t *testing.T) {
		w := callTool(t, router, "cost_quotation_for_project", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "'ids' or 'project_codes'")

		w = callTool(t, router, "cost_quotation_for_project", `{"ids": []}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("By IDs", func(t *testing.T) {
		w := callTool(t, router, "cost_quotation_for_project", `{"ids": ["PJ00000001"]}`)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		assert.Equal(t, 1.0, resp["total"])
		row := resp["items"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "PJ00000001", row["project_id"])
		assert.Equal(t, "PRJ-2025-001", row["project_code"])
	})

	t.Run("By Codes CSV", func(t *testing.T) {
		w := callTool(t, router, "cost_quotation_for_project", `{"project_codes": "PRJ-2025-001,PRJ-2025-002"}`)
		resp := decodeBody(t, w)
		assert.Equal(t, 2.0, resp["total"])
		assert.Equal(t, 2.0, resp["returned"])
	})

	t.Run("No Order Fields In Result", func(t *testing.T) {
		w := callTool(t, router, "cost_quotation_for_project", `{"ids": ["PJ00000001"]}`)
		resp := decodeBody(t, w)
		_, hasOrderBy := resp["order_by"]
		assert.False(t, hasOrderBy)
	})
}

func TestProjectListByCustomerIDs(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	router := setupRouter(db)

	t.Run("Requires IDs", func(t *testing.T) {
		w := callTool(t, router, "project_list_by_customer_ids", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "at least one customer_id")
	})

	t.Run("By Customer", func(t *testing.T) {
		w := callTool(t, router, "project_list_by_customer_ids", `{"ids": "CUS001"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		// PJ00000099 also belongs to CUS001 but is soft deleted
		assert.Equal(t, 1.0, resp["total"])
		assert.Equal(t, "created_at", resp["order_by"])
		assert.Equal(t, "desc", resp["order_dir"])
		row := resp["items"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "CUS001", row["customer_id"])
	})

	t.Run("Multiple Customers Newest First", func(t *testing.T) {
		w := callTool(t, router, "project_list_by_customer_ids", `{"ids": ["CUS001", "CUS002"]}`)
		resp := decodeBody(t, w)
		assert.Equal(t, 2.0, resp["total"])
		items := resp["items"].([]interface{})
		first := items[0].(map[string]interface{})
		assert.Equal(t, "PJ00000002", first["id"])
	})
}

func TestProjectStubs(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	for _, name := range []string{"project_create", "project_update", "project_list", "get_list_projects_by_creation_date"} {
		w := callTool(t, router, name, `{}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "not implemented yet")
	}
}
