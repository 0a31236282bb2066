package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/app/repository"
)

type teamMemberRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Role           string `json:"role" validate:"required,max=255"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profile_picture" validate:"omitempty,max=500"`
	LinkedinURL    string `json:"linkedin_url" validate:"omitempty,url,max=500"`
	TwitterURL     string `json:"twitter_url" validate:"omitempty,url,max=500"`
	Email          string `json:"email" validate:"omitempty,email,max=200"`
	Order          int    `json:"order"`
	IsActive       *bool  `json:"is_active"`
}

// HandleAdminListTeam returns all team members, inactive ones included.
func HandleAdminListTeam(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	repo := repository.GetGlobalRepositories().TeamMember
	members, err := repo.GetAll(offset, limit)
	if err != nil {
		return serverError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(listPayload(members, total))
}

// HandleAdminCreateTeamMember adds a team member.
func HandleAdminCreateTeamMember(c *fiber.Ctx) error {
	var req teamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	member := models.TeamMember{
		Name:           req.Name,
		Role:           req.Role,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
		LinkedinURL:    req.LinkedinURL,
		TwitterURL:     req.TwitterURL,
		Email:          req.Email,
		Order:          req.Order,
		IsActive:       isActive,
	}
	if err := repository.GetGlobalRepositories().TeamMember.Create(&member); err != nil {
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.Status(fiber.StatusCreated).JSON(member)
}

// HandleAdminUpdateTeamMember replaces the writable fields of a team member.
func HandleAdminUpdateTeamMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid team member id")
	}
	var req teamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	repo := repository.GetGlobalRepositories().TeamMember
	member, err := repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Team member not found")
		}
		return serverError(c, err)
	}

	member.Name = req.Name
	member.Role = req.Role
	member.Bio = req.Bio
	member.ProfilePicture = req.ProfilePicture
	member.LinkedinURL = req.LinkedinURL
	member.TwitterURL = req.TwitterURL
	member.Email = req.Email
	member.Order = req.Order
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	if err := repo.Update(member); err != nil {
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.JSON(member)
}

// HandleAdminDeleteTeamMember removes a team member.
func HandleAdminDeleteTeamMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid team member id")
	}
	repo := repository.GetGlobalRepositories().TeamMember
	if _, err := repo.GetByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Team member not found")
		}
		return serverError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return serverError(c, err)
	}
	invalidateListCaches()
	return c.SendStatus(fiber.StatusNoContent)
}
