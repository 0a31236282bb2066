package models

import "time"

// Volunteer application status values. Status starts at Pending no matter
// what the client submits; only the admin API moves it afterwards.
const (
	ApplicationStatusPending   = "Pending"
	ApplicationStatusReviewed  = "Reviewed"
	ApplicationStatusContacted = "Contacted"
	ApplicationStatusAccepted  = "Accepted"
	ApplicationStatusRejected  = "Rejected"
)

// Volunteer areas of interest offered on the public form.
const (
	AreaCommunityOutreach     = "Community Outreach"
	AreaEducationTraining     = "Education & Training"
	AreaAdministrativeSupport = "Administrative Support"
	AreaFundraising           = "Fundraising"
	AreaOther                 = "Other"
)

var applicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusContacted,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

var volunteerAreas = []string{
	AreaCommunityOutreach,
	AreaEducationTraining,
	AreaAdministrativeSupport,
	AreaFundraising,
	AreaOther,
}

type VolunteerApplication struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Email           string    `gorm:"type:varchar(200);not null" json:"email" validate:"required,email,max=200"`
	Phone           string    `gorm:"type:varchar(20)" json:"phone" validate:"max=20"`
	AreaOfInterest  string    `gorm:"type:varchar(100);not null" json:"area_of_interest" validate:"required"`
	Message         string    `gorm:"type:text" json:"message"`
	Status          string    `gorm:"type:varchar(50);default:'Pending'" json:"status"`
	ApplicationDate time.Time `gorm:"autoCreateTime" json:"application_date"`
}

func (VolunteerApplication) TableName() string {
	return "volunteer_applications"
}

// ValidApplicationStatus reports whether s is in the closed status set.
func ValidApplicationStatus(s string) bool {
	return containsString(applicationStatuses, s)
}

// ValidVolunteerArea reports whether area is one of the offered choices.
func ValidVolunteerArea(area string) bool {
	return containsString(volunteerAreas, area)
}

// ApplicationStatuses returns the allowed status values in display order.
func ApplicationStatuses() []string {
	out := make([]string, len(applicationStatuses))
	copy(out, applicationStatuses)
	return out
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
