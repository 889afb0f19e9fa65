package models

import "gorm.io/gorm"

// Record is implemented by every entity served through the generic CRUD
// routes.
type Record interface {
	RecordID() uint
	EntityName() string
}

// deleteEach loads the rows matching the condition and deletes them one at a
// time so their own BeforeDelete hooks run inside the same transaction.
func deleteEach[M any](tx *gorm.DB, query string, args ...any) error {
	var rows []M
	if err := tx.Where(query, args...).Find(&rows).Error; err != nil {
		return err
	}
	for i := range rows {
		if err := tx.Delete(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
