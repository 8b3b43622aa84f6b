package utils

import "gorm.io/gorm"

// PageSize caps every search at 5 rows. There is no pagination beyond
// it; callers needing more narrow their filters.
const PageSize = 5

// SearchResult is the common shape of all list-returning tools.
type SearchResult struct {
	Total    int64                    `json:"total"`
	Returned int                      `json:"returned"`
	OrderBy  string                   `json:"order_by,omitempty"`
	OrderDir string                   `json:"order_dir,omitempty"`
	Items    []map[string]interface{} `json:"items"`
}

// RunSearch executes the count and data statements on a single
// connection borrowed from the pool and released on return. Rows pass
// through RowsToJSON so the result is safe to encode.
func RunSearch(db *gorm.DB, countSQL, dataSQL string, args []interface{}) (int64, []map[string]interface{}, error) {
	var total int64
	var rows []map[string]interface{}
	err := db.Connection(func(tx *gorm.DB) error {
		if err := tx.Raw(countSQL, args...).Scan(&total).Error; err != nil {
			return err
		}
		return tx.Raw(dataSQL, args...).Scan(&rows).Error
	})
	if err != nil {
		return 0, nil, err
	}
	return total, RowsToJSON(rows), nil
}
