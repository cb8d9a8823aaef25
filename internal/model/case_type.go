package model

import "strings"

// CaseType classifies cases and fixes the workflow their stages follow.
type CaseType struct {
	CaseTypeID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"case_type_id"`
	Name          string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	SubCategories string `gorm:"type:text"                                      json:"sub_categories"` // comma-separated
	Priority      string `gorm:"type:varchar(10);not null;default:'Medium'"     json:"priority"`
	ExpectedDays  int    `gorm:"not null;default:30"                            json:"expected_days"`
	WorkflowType  string `gorm:"type:varchar(20);not null;default:'Type_A'"     json:"workflow_type"`
	IsActive      bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (CaseType) TableName() string { return "case_types" }

// SubCategoryList splits the comma-separated sub-categories.
func (t *CaseType) SubCategoryList() []string {
	parts := strings.Split(t.SubCategories, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
