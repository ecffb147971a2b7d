package analytics

// SkillCountDTO is one entry of the popular-skills leaderboard.
type SkillCountDTO struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// DashboardDTO is the fixed shape served to the admin dashboard.
type DashboardDTO struct {
	TotalUsers     int64           `json:"totalUsers"`
	ActiveUsers    int64           `json:"activeUsers"`
	PendingSwaps   int64           `json:"pendingSwaps"`
	CompletedSwaps int64           `json:"completedSwaps"`
	AverageRating  float64         `json:"averageRating"`
	TopSkills      []SkillCountDTO `json:"topSkills"`
}
