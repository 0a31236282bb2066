package controllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/app/repository"
	"github.com/pleromasprings/core-api/internal/pkg/mail"
)

// Public form submission endpoints. All of them accept anonymous writes,
// persist a row and fire a best-effort staff notification mail.

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=200"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required"`
}

// HandleAPIContact stores a contact form submission.
func HandleAPIContact(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	msg := models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	}
	if err := repository.GetGlobalRepositories().Contact.Create(&msg); err != nil {
		return serverError(c, err)
	}

	go mail.NotifyStaff(
		"New contact message: "+msg.Subject,
		fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message),
	)

	return c.Status(fiber.StatusCreated).JSON(msg)
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=200"`
}

// HandleAPISubscribe adds an email to the newsletter list. The unique index
// on email is the real guard; the pre-check just produces the friendly 409
// without a failed insert in the common case.
func HandleAPISubscribe(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	repo := repository.GetGlobalRepositories().Newsletter

	exists, err := repo.EmailExists(email)
	if err != nil {
		return serverError(c, err)
	}
	if exists {
		return conflict(c, "Email already subscribed.")
	}

	sub := models.NewsletterSubscriber{Email: email, IsActive: true}
	if err := repo.Create(&sub); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return conflict(c, "Email already subscribed.")
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(sub)
}

type volunteerRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Email          string `json:"email" validate:"required,email,max=200"`
	Phone          string `json:"phone" validate:"max=20"`
	AreaOfInterest string `json:"area_of_interest" validate:"required"`
	Message        string `json:"message"`
}

// HandleAPIVolunteer stores a volunteer application. Status is always set
// server-side to Pending regardless of what the payload carries.
func HandleAPIVolunteer(c *fiber.Ctx) error {
	var req volunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}
	if !models.ValidVolunteerArea(req.AreaOfInterest) {
		return fieldInvalid(c, "area_of_interest", "Select a valid choice.")
	}

	app := models.VolunteerApplication{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		AreaOfInterest: req.AreaOfInterest,
		Message:        req.Message,
		Status:         models.ApplicationStatusPending,
	}
	if err := repository.GetGlobalRepositories().Volunteer.Create(&app); err != nil {
		return serverError(c, err)
	}

	go mail.NotifyStaff(
		"New volunteer application",
		fmt.Sprintf("%s <%s> applied for: %s", app.Name, app.Email, app.AreaOfInterest),
	)

	return c.Status(fiber.StatusCreated).JSON(app)
}

type partnerRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,max=255"`
	ContactPerson    string `json:"contact_person" validate:"required,max=255"`
	Email            string `json:"email" validate:"required,email,max=200"`
	PartnershipType  string `json:"partnership_type" validate:"required"`
	Message          string `json:"message"`
}

// HandleAPIPartner stores a partnership inquiry. Status always starts at New.
func HandleAPIPartner(c *fiber.Ctx) error {
	var req partnerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}
	if !models.ValidPartnershipType(req.PartnershipType) {
		return fieldInvalid(c, "partnership_type", "Select a valid choice.")
	}

	inq := models.PartnershipInquiry{
		OrganizationName: strings.TrimSpace(req.OrganizationName),
		ContactPerson:    strings.TrimSpace(req.ContactPerson),
		Email:            strings.TrimSpace(req.Email),
		PartnershipType:  req.PartnershipType,
		Message:          req.Message,
		Status:           models.InquiryStatusNew,
	}
	if err := repository.GetGlobalRepositories().Partnership.Create(&inq); err != nil {
		return serverError(c, err)
	}

	go mail.NotifyStaff(
		"New partnership inquiry",
		fmt.Sprintf("%s (%s <%s>), type: %s", inq.OrganizationName, inq.ContactPerson, inq.Email, inq.PartnershipType),
	)

	return c.Status(fiber.StatusCreated).JSON(inq)
}
