package controllers

import (
	"github.com/HuyNLy/Little-Lemon-App/entity"
	"github.com/HuyNLy/Little-Lemon-App/pkg/resp"
	"github.com/HuyNLy/Little-Lemon-App/services"
	"github.com/HuyNLy/Little-Lemon-App/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Service *services.ProfileService
}

func NewProfileController(service *services.ProfileService) *ProfileController {
	return &ProfileController{Service: service}
}

// GET /profile
func (ctl *ProfileController) Get(c *gin.Context) {
	profile, onboarded, err := ctl.Service.Bootstrap()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if profile == nil {
		resp.NotFound(c, "no profile")
		return
	}
	resp.OK(c, gin.H{
		"profile":     profile,
		"onboarded":   onboarded,
		"destination": ctl.Service.Route(),
	})
}

// PUT /profile
func (ctl *ProfileController) Update(c *gin.Context) {
	var req entity.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if !utils.ValidateEmail(req.Email) {
		resp.BadRequest(c, "invalid email")
		return
	}
	if !utils.ValidateName(req.FirstName) {
		resp.BadRequest(c, "invalid first name")
		return
	}
	if req.LastName != "" && !utils.ValidateName(req.LastName) {
		resp.BadRequest(c, "invalid last name")
		return
	}
	if req.Phone != "" && !utils.ValidatePhone(req.Phone) {
		resp.BadRequest(c, "invalid phone number")
		return
	}

	if err := ctl.Service.Persist(&req); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, req)
}

// POST /onboarding — first-time submit from the welcome screen.
func (ctl *ProfileController) Onboard(c *gin.Context) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if !utils.ValidateName(req.FirstName) {
		resp.BadRequest(c, "invalid first name")
		return
	}
	if !utils.ValidateEmail(req.Email) {
		resp.BadRequest(c, "invalid email")
		return
	}

	profile := entity.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := ctl.Service.CompleteOnboarding(&profile); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{
		"profile":     profile,
		"destination": entity.DestinationHome,
	})
}

// POST /profile/logout
func (ctl *ProfileController) Logout(c *gin.Context) {
	if err := ctl.Service.Logout(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"destination": entity.DestinationWelcome})
}
