package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/app/repository"
)

// Staff-facing management of inbound submissions: contact messages,
// newsletter subscribers, volunteer applications and partnership inquiries.
// Status transitions happen only here, never through the public API.

// HandleAdminListMessages returns contact messages, newest first.
func HandleAdminListMessages(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	repo := repository.GetGlobalRepositories().Contact
	messages, err := repo.GetAll(offset, limit)
	if err != nil {
		return serverError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(listPayload(messages, total))
}

// HandleAdminMarkMessageRead flags a contact message as handled.
func HandleAdminMarkMessageRead(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid message id")
	}
	repo := repository.GetGlobalRepositories().Contact
	if err := repo.MarkRead(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Message not found")
		}
		return serverError(c, err)
	}
	msg, err := repo.GetByID(id)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(msg)
}

// HandleAdminDeleteMessage removes a contact message.
func HandleAdminDeleteMessage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid message id")
	}
	repo := repository.GetGlobalRepositories().Contact
	if _, err := repo.GetByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Message not found")
		}
		return serverError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return serverError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAdminListSubscribers returns newsletter subscribers, newest first.
func HandleAdminListSubscribers(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	repo := repository.GetGlobalRepositories().Newsletter
	subscribers, err := repo.GetAll(offset, limit)
	if err != nil {
		return serverError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(listPayload(subscribers, total))
}

// HandleAdminDeleteSubscriber removes a subscription.
func HandleAdminDeleteSubscriber(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid subscriber id")
	}
	repo := repository.GetGlobalRepositories().Newsletter
	if _, err := repo.GetByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Subscriber not found")
		}
		return serverError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return serverError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleAdminListApplications returns volunteer applications, newest first.
func HandleAdminListApplications(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	repo := repository.GetGlobalRepositories().Volunteer
	apps, err := repo.GetAll(offset, limit)
	if err != nil {
		return serverError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(listPayload(apps, total))
}

// HandleAdminGetApplication returns one volunteer application.
func HandleAdminGetApplication(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid application id")
	}
	app, err := repository.GetGlobalRepositories().Volunteer.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Application not found")
		}
		return serverError(c, err)
	}
	return c.JSON(app)
}

// HandleAdminUpdateApplicationStatus moves an application through its
// lifecycle. Only values from the closed status set are accepted.
func HandleAdminUpdateApplicationStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid application id")
	}
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}
	if !models.ValidApplicationStatus(req.Status) {
		return fieldInvalid(c, "status", "Select a valid choice.")
	}

	repo := repository.GetGlobalRepositories().Volunteer
	if err := repo.UpdateStatus(id, req.Status); err != nil {
		if isNotFound(err) {
			return notFound(c, "Application not found")
		}
		return serverError(c, err)
	}
	app, err := repo.GetByID(id)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(app)
}

// HandleAdminDeleteApplication removes a volunteer application.
func HandleAdminDeleteApplication(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid application id")
	}
	repo := repository.GetGlobalRepositories().Volunteer
	if _, err := repo.GetByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Application not found")
		}
		return serverError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return serverError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAdminListInquiries returns partnership inquiries, newest first.
func HandleAdminListInquiries(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	repo := repository.GetGlobalRepositories().Partnership
	inquiries, err := repo.GetAll(offset, limit)
	if err != nil {
		return serverError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(listPayload(inquiries, total))
}

// HandleAdminGetInquiry returns one partnership inquiry.
func HandleAdminGetInquiry(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid inquiry id")
	}
	inq, err := repository.GetGlobalRepositories().Partnership.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Inquiry not found")
		}
		return serverError(c, err)
	}
	return c.JSON(inq)
}

// HandleAdminUpdateInquiryStatus moves an inquiry through its lifecycle.
func HandleAdminUpdateInquiryStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid inquiry id")
	}
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}
	if !models.ValidInquiryStatus(req.Status) {
		return fieldInvalid(c, "status", "Select a valid choice.")
	}

	repo := repository.GetGlobalRepositories().Partnership
	if err := repo.UpdateStatus(id, req.Status); err != nil {
		if isNotFound(err) {
			return notFound(c, "Inquiry not found")
		}
		return serverError(c, err)
	}
	inq, err := repo.GetByID(id)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(inq)
}

// HandleAdminDeleteInquiry removes a partnership inquiry.
func HandleAdminDeleteInquiry(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid inquiry id")
	}
	repo := repository.GetGlobalRepositories().Partnership
	if _, err := repo.GetByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Inquiry not found")
		}
		return serverError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return serverError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
