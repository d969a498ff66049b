package model

// DashboardResponse aggregates a user's activity counters and earnings.
type DashboardResponse struct {
	User          *UserEntity `json:"user"`
	ClientTasks   int         `json:"client_tasks"`
	TaskerTasks   int         `json:"tasker_tasks"`
	TotalEarnings float64     `json:"total_earnings"`
	Rating        float64     `json:"rating"`
	TotalReviews  int         `json:"total_reviews"`
}
