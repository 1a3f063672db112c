package handlers

import (
	"errors"

	applog "rewear/internal/log"
	"rewear/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	profile, err := h.Auth.Signup(req.Name, req.Email, req.Password, req.Location)
	if err != nil {
		return failErr(c, err, "auth.signup.fail", "Internal server error")
	}

	applog.Audit(c, "auth.signup", map[string]any{"email": profile.Email})
	return respond(c, fiber.StatusCreated, "User created successfully", fiber.Map{
		"name":  profile.Name,
		"email": profile.Email,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	token, profile, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
		// Unknown email reports 400 on this route; a wrong password is 401.
		if errors.Is(err, services.ErrNotFound) {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return failErr(c, err, "auth.login.fail", "Internal server error")
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": profile.Email})
	return respond(c, fiber.StatusOK, "Login successful", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"name":  profile.Name,
			"email": profile.Email,
		},
	})
}
