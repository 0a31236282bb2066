package repository

import (
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/app/models"
)

// teamMemberRepository implements the TeamMemberRepository interface
type teamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository instance
func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

func (r *teamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

func (r *teamMemberRepository) GetByID(id uint) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetActive retrieves active members in display order, then by name.
func (r *teamMemberRepository) GetActive() ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Where("is_active = ?", true).Order("sort_order ASC, name ASC").Find(&members).Error
	return members, err
}

func (r *teamMemberRepository) GetAll(offset, limit int) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Order("sort_order ASC, name ASC").Offset(offset).Limit(limit).Find(&members).Error
	return members, err
}

func (r *teamMemberRepository) Update(member *models.TeamMember) error {
	return r.db.Save(member).Error
}

func (r *teamMemberRepository) Delete(id uint) error {
	return r.db.Delete(&models.TeamMember{}, id).Error
}

func (r *teamMemberRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Count(&count).Error
	return count, err
}
