package analytics

import (
	"context"

	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/pkg/db/models"
	"github.com/skillswaphq/skillswap-backend/pkg/enums"
)

// Repository runs the aggregation queries behind the dashboard.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to analytics queries.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CountMembers returns the total and active member counts. Admin accounts
// are excluded from both.
func (r *Repository) CountMembers(ctx context.Context) (total, active int64, err error) {
	base := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", enums.UserRoleUser)
	if err = base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = base.Session(&gorm.Session{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

// CountSwapsByStatus returns the number of swaps grouped by status.
// Statuses with no rows are absent from the map.
func (r *Repository) CountSwapsByStatus(ctx context.Context) (map[enums.SwapStatus]int64, error) {
	type row struct {
		Status enums.SwapStatus
		Total  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[enums.SwapStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}

// RatingStats returns the mean feedback rating and the number of feedback
// rows. The mean is zero when there is no feedback.
func (r *Repository) RatingStats(ctx context.Context) (average float64, count int64, err error) {
	var res struct {
		AvgRating float64
		Total     int64
	}
	err = r.db.WithContext(ctx).
		Model(&models.Feedback{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS total").
		Scan(&res).Error
	if err != nil {
		return 0, 0, err
	}
	return res.AvgRating, res.Total, nil
}

// OfferedSkills returns the skills_offered arrays of all members in
// insertion order, which fixes the tie-break order of the leaderboard.
func (r *Repository) OfferedSkills(ctx context.Context) ([][]string, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Select("skills_offered").
		Where("role = ?", enums.UserRoleUser).
		Order("created_at ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	skills := make([][]string, 0, len(users))
	for i := range users {
		skills = append(skills, users[i].SkillsOffered)
	}
	return skills, nil
}
