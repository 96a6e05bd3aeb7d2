package controllers

import (
	"net/http"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/middlewares"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/resp"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/services"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/utils"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

func guestOf(s *middlewares.Session) services.ActorID {
	gid, _ := s.Get(services.SessionGuestID)
	return services.ActorID(gid)
}

// startSession logs u in and answers with the user and a bearer token.
func startSession(c *gin.Context, u *entity.User) (gin.H, bool) {
	s := middlewares.SessionFrom(c)
	s.Login(u.ID, u.Role, u.Name, u.Email)
	token, err := s.Token()
	if err != nil {
		resp.ServerError(c, err)
		return nil, false
	}
	return gin.H{"user": u, "token": token}, true
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if !bind(c, &req) {
		return
	}
	u, err := a.Svc.Register(req.Name, req.Email, req.Password, guestOf(middlewares.SessionFrom(c)))
	if err != nil {
		fail(c, err)
		return
	}
	if body, ok := startSession(c, u); ok {
		resp.Created(c, "Account created successfully!", body)
	}
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if !bind(c, &req) {
		return
	}
	u, err := a.Svc.Login(req.Email, req.Password, guestOf(middlewares.SessionFrom(c)))
	if err != nil {
		fail(c, err)
		return
	}
	if body, ok := startSession(c, u); ok {
		resp.Message(c, "Login successful!", body)
	}
}

// POST /api/auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	middlewares.SessionFrom(c).Clear()
	resp.Message(c, "Logged out successfully", nil)
}

// GET /api/auth/profile
func (a *AuthController) Profile(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		c.JSON(http.StatusOK, gin.H{"success": false, "logged_in": false, "message": "Not logged in"})
		return
	}
	u, err := a.Svc.GetProfile(uid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"logged_in": true, "user": u})
}

// PUT /api/auth/profile
func (a *AuthController) UpdateProfile(c *gin.Context) {
	var req services.ProfileIn
	if !bind(c, &req) {
		return
	}
	u, err := a.Svc.UpdateProfile(utils.CurrentUserID(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	if req.Name != nil {
		middlewares.SessionFrom(c).Set(services.SessionUserName, u.Name)
	}
	resp.Message(c, "Profile updated successfully", gin.H{"user": u})
}

// POST /api/auth/forgot-password
func (a *AuthController) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if !bind(c, &req) {
		return
	}
	token, err := a.Svc.ForgotPassword(req.Email)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "If an account exists, a reset code has been sent to your email.", gin.H{"token": token})
}

// POST /api/auth/reset-password
func (a *AuthController) ResetPassword(c *gin.Context) {
	var req struct {
		Token       string `json:"token"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if !bind(c, &req) {
		return
	}
	if err := a.Svc.ResetPassword(req.Token, req.Code, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Password reset successfully! You can now login.", nil)
}

// POST /api/auth/avatar
func (a *AuthController) UploadAvatar(c *gin.Context) {
	var req struct {
		Image string `json:"image"`
	}
	if !bind(c, &req) {
		return
	}
	url, err := a.Svc.SaveAvatar(utils.CurrentUserID(c), req.Image)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Avatar updated!", gin.H{"avatar_url": url})
}
