package handlers

import "encoding/json"

// Input schemas advertised through the tool catalog. List-valued
// parameters declare the three encodings the normalizer accepts.

var searchBillsSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"project_ids": {"type": ["array", "string"], "description": "List of project IDs (array, JSON-array string, or CSV)"},
		"customer_ids": {"type": ["array", "string"], "description": "List of customer IDs (array, JSON-array string, or CSV)"},
		"created_at_from": {"type": "string", "description": "Created date from (ISO 8601)"},
		"created_at_to": {"type": "string", "description": "Created date to (ISO 8601)"},
		"order_by": {"type": "string", "description": "Sort by one of: amount, created_at, customer_id, project_id"},
		"order_dir": {"type": "string", "enum": ["asc", "desc"], "description": "Sort direction"}
	}
}`)

var createBillSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"customer_id": {"type": "string", "description": "Customer ID"},
		"payer_code": {"type": "string", "description": "Payer code"},
		"project_id": {"type": "string", "description": "Project or construction ID related to this bill"},
		"payment_date": {"type": "string", "description": "Payment date (format: YYYY-MM-DD)"},
		"expected_date_of_payment": {"type": "string", "description": "Expected payment date (format: YYYY-MM-DD)"},
		"execution_team": {"type": "string", "description": "Team or department executing the project"},
		"details": {
			"type": "array",
			"description": "Detailed list of items in the bill",
			"items": {
				"type": "object",
				"properties": {
					"attribute": {"type": "string", "description": "Name of the specific item or task in the invoice"},
					"product": {"type": "string", "description": "Name or code of the product or service provided"},
					"quantity": {"type": "integer", "description": "Quantity of items"},
					"tax_amount": {"type": "number", "description": "Tax amount (VND)"},
					"amount": {"type": "number", "description": "Amount before tax (VND)"}
				},
				"required": ["tax_amount", "amount"]
			}
		}
	},
	"required": ["customer_id", "payer_code", "project_id", "details"]
}`)

var searchCustomersSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"id": {"type": "string", "description": "Customer ID"},
		"name": {"type": "string", "description": "Customer name (fuzzy match)"},
		"email": {"type": "string", "description": "Exact email, or pattern with % / _ wildcards"},
		"phone_number": {"type": "string", "description": "Exact phone, or pattern with % / _ wildcards"},
		"created_at_from": {"type": "string", "description": "Created-at from (ISO 8601)"},
		"created_at_to": {"type": "string", "description": "Created-at to (ISO 8601)"},
		"order_by": {"type": "string", "description": "Sort column: id, name, email, phone_number, created_at"},
		"order_dir": {"type": "string", "enum": ["asc", "desc"], "description": "Sort direction"}
	}
}`)

var updateCustomerSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"id": {"type": "string", "description": "Customer ID"},
		"name": {"type": "string", "description": "Customer name"},
		"email": {"type": "string", "description": "Customer email"},
		"phone_number": {"type": "string", "description": "Customer phone number"}
	},
	"required": ["id"]
}`)

var projectSearchSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"id": {"type": "string", "description": "Project ID"},
		"name": {"type": "string", "description": "Project name (fuzzy match)"},
		"project_number": {"type": "string", "description": "Exact project number/code"},
		"created_at_from": {"type": "string", "description": "Created at from (ISO 8601)"},
		"created_at_to": {"type": "string", "description": "Created at to (ISO 8601)"},
		"completed_date_from": {"type": "string", "description": "Completed date from (ISO 8601)"},
		"completed_date_to": {"type": "string", "description": "Completed date to (ISO 8601)"},
		"end_date_from": {"type": "string", "description": "End date from (ISO 8601)"},
		"end_date_to": {"type": "string", "description": "End date to (ISO 8601)"},
		"order_by": {"type": "string", "description": "Sort column: id, name, project_number, created_at, completed_date, end_date"},
		"order_dir": {"type": "string", "enum": ["asc", "desc"], "description": "Sort direction"}
	}
}`)

var costQuotationSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"ids": {"type": ["array", "string"], "description": "List of project ids. Example: [\"PJ00001\",\"PJ00002\"]"},
		"project_codes": {"type": ["array", "string"], "description": "List of project codes. Example: [\"25-1-ADMADM-0565\",\"5-1-ADMADM-05\"]"}
	}
}`)

var projectListByCustomerIDsSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"ids": {"type": ["array", "string"], "description": "List of customer ids"}
	},
	"required": ["ids"]
}`)
