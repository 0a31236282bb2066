package models

import "time"

// Partnership inquiry status values. New inquiries always start at New.
const (
	InquiryStatusNew       = "New"
	InquiryStatusReviewed  = "Reviewed"
	InquiryStatusContacted = "Contacted"
	InquiryStatusOnHold    = "On Hold"
	InquiryStatusCompleted = "Completed"
)

// Partnership types offered on the public form.
const (
	PartnershipProgramCollaboration = "Program Collaboration"
	PartnershipFundingSponsorship   = "Funding/Sponsorship"
	PartnershipResearch             = "Research"
	PartnershipAdvocacy             = "Advocacy"
	PartnershipOther                = "Other"
)

var inquiryStatuses = []string{
	InquiryStatusNew,
	InquiryStatusReviewed,
	InquiryStatusContacted,
	InquiryStatusOnHold,
	InquiryStatusCompleted,
}

var partnershipTypes = []string{
	PartnershipProgramCollaboration,
	PartnershipFundingSponsorship,
	PartnershipResearch,
	PartnershipAdvocacy,
	PartnershipOther,
}

type PartnershipInquiry struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OrganizationName string    `gorm:"type:varchar(255);not null" json:"organization_name" validate:"required,max=255"`
	ContactPerson    string    `gorm:"type:varchar(255);not null" json:"contact_person" validate:"required,max=255"`
	Email            string    `gorm:"type:varchar(200);not null" json:"email" validate:"required,email,max=200"`
	PartnershipType  string    `gorm:"type:varchar(100);not null" json:"partnership_type" validate:"required"`
	Message          string    `gorm:"type:text" json:"message"`
	Status           string    `gorm:"type:varchar(50);default:'New'" json:"status"`
	InquiryDate      time.Time `gorm:"autoCreateTime" json:"inquiry_date"`
}

func (PartnershipInquiry) TableName() string {
	return "partnership_inquiries"
}

// ValidInquiryStatus reports whether s is in the closed status set.
func ValidInquiryStatus(s string) bool {
	return containsString(inquiryStatuses, s)
}

// ValidPartnershipType reports whether t is one of the offered choices.
func ValidPartnershipType(t string) bool {
	return containsString(partnershipTypes, t)
}

// InquiryStatuses returns the allowed status values in display order.
func InquiryStatuses() []string {
	out := make([]string, len(inquiryStatuses))
	copy(out, inquiryStatuses)
	return out
}
