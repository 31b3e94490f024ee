package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hirestack/applicant-tracking/internal/candidate"
	"github.com/hirestack/applicant-tracking/internal/dashboard"
	"github.com/hirestack/applicant-tracking/internal/interview"
	"github.com/hirestack/applicant-tracking/internal/requirement"
	"github.com/hirestack/applicant-tracking/internal/stage"
)

// StatsRepository implements dashboard.Repository with GORM aggregate
// queries over the domain tables.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) dashboard.Repository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CandidateStats() (*dashboard.CandidateStats, error) {
	stats := &dashboard.CandidateStats{
		ByStatus: make(map[string]int64),
	}

	if err := r.db.Model(&candidate.Candidate{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	err := r.db.Model(&stage.Stage{}).
		Select("stages.id AS stage_id, stages.name AS stage_name, COUNT(candidates.id) AS count").
		Joins("LEFT JOIN candidates ON candidates.current_stage_id = stages.id").
		Group("stages.id, stages.name, stages.position").
		Order("stages.position ASC").
		Scan(&stats.ByStage).Error
	if err != nil {
		return nil, err
	}

	var statusRows []struct {
		Status string
		Count  int64
	}
	err = r.db.Model(&candidate.Candidate{}).
		Select("status, COUNT(id) AS count").
		Group("status").
		Scan(&statusRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		stats.ByStatus[row.Status] = row.Count
	}

	return stats, nil
}

func (r *StatsRepository) RequirementStats() (*dashboard.RequirementStats, error) {
	stats := &dashboard.RequirementStats{}

	if err := r.db.Model(&requirement.Requirement{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&requirement.Requirement{}).
		Where("status = ?", requirement.StatusApproved).
		Count(&stats.Approved).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&requirement.Requirement{}).
		Where("priority = ?", requirement.PriorityUrgent).
		Count(&stats.Urgent).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *StatsRepository) InterviewStats() (*dashboard.InterviewStats, error) {
	stats := &dashboard.InterviewStats{}
	now := time.Now()

	if err := r.db.Model(&interview.Interview{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	if err := r.db.Model(&interview.Interview{}).
		Where("scheduled_time >= ? AND scheduled_time < ?", dayStart, dayEnd).
		Count(&stats.Today).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&interview.Interview{}).
		Where("scheduled_time > ? AND status = ?", now, interview.StatusScheduled).
		Count(&stats.Upcoming).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
