package models

type DashboardStats struct {
	TotalProducts    int `json:"totalProducts"`
	TotalInquiries   int `json:"totalInquiries"`
	PendingInquiries int `json:"pendingInquiries"`
	TotalCategories  int `json:"totalCategories"`
}
