package model

// /dashboard/stats の集計値
type DashboardStats struct {
	TotalUsers           int64 `json:"totalUsers"`
	TotalAdmins          int64 `json:"totalAdmins"`
	TotalVendors         int64 `json:"totalVendors"`
	TotalRegularUsers    int64 `json:"totalRegularUsers"`
	TotalVendorsEntities int64 `json:"totalVendorsEntities"`
	TotalMenuItems       int64 `json:"totalMenuItems"`
	TotalOrders          int64 `json:"totalOrders"`
	TotalOrdersToday     int64 `json:"totalOrdersToday"`
	TotalOrdersThisWeek  int64 `json:"totalOrdersThisWeek"`
	TotalFeedback        int64 `json:"totalFeedback"`
}
