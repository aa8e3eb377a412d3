package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"Gin_sqlite_redis_archive_tool/app"
	"Gin_sqlite_redis_archive_tool/db"
	"Gin_sqlite_redis_archive_tool/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserController struct{ *Srv }

func GetUserController(s *Srv) *UserController { return &UserController{Srv: s} }

func (uc *UserController) setSessionCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   uc.secureCookie(),
	})
}

// POST /auth/register
func (uc *UserController) Register(c *gin.Context) {
	var in struct {
		Username string `json:"username" binding:"required,min=3,max=50"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if _, err := uc.Repo.FindUserByUsername(c.Request.Context(), in.Username); err == nil {
		c.JSON(http.StatusConflict, app.H{"error": "el usuario ya existe"})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	u := &models.User{Username: in.Username, PasswordHash: string(hash)}
	if err := uc.Repo.CreateUser(c.Request.Context(), u); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, u)
}

// POST /auth/login
func (uc *UserController) Login(c *gin.Context) {
	var in struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	u, err := uc.Repo.FindUserByUsername(c.Request.Context(), in.Username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "usuario o contraseña incorrectos"})
		return
	}

	sid := uuid.NewString()
	if err := uc.AppSessions().Create(c.Request.Context(), sid, u.ID); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	uc.setSessionCookie(c, sid, int(uc.Cfg.SessionTTL.Seconds()))
	c.JSON(http.StatusOK, app.H{"user": u})
}

// POST /auth/logout
func (uc *UserController) Logout(c *gin.Context) {
	if ck, err := c.Request.Cookie(app.AppSessionCookie); err == nil && ck.Value != "" {
		_ = uc.AppSessions().Delete(c.Request.Context(), ck.Value)
	}
	uc.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// GET /api/me
func (uc *UserController) Me(c *gin.Context) {
	id, _ := app.UserID(c)
	u, err := uc.Repo.FindUserByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// POST /api/me/password — verifies the current password, then updates and
// revokes every other session.
func (uc *UserController) ChangePassword(c *gin.Context) {
	var in struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	id, _ := app.UserID(c)
	u, err := uc.Repo.FindUserByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.CurrentPassword)) != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "la contraseña actual es incorrecta"})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	if err := uc.Repo.UpdateUserPassword(c.Request.Context(), id, string(hash)); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	_ = uc.AppSessions().RevokeAllForUser(c.Request.Context(), id)
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// POST /api/me/email
func (uc *UserController) UpdateEmail(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	id, _ := app.UserID(c)
	u, err := uc.Repo.FindUserByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "contraseña incorrecta"})
		return
	}
	if other, err := uc.Repo.FindUserByEmail(c.Request.Context(), in.Email); err == nil && other.ID != id {
		c.JSON(http.StatusConflict, app.H{"error": "este correo ya está registrado"})
		return
	}
	if err := uc.Repo.UpdateUserEmail(c.Request.Context(), id, in.Email); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// POST /auth/forgot-password — always answers the same message so the
// response does not reveal whether an email is registered.
func (uc *UserController) ForgotPassword(c *gin.Context) {
	var in struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	const reply = "si el correo está registrado, recibirás un enlace de recuperación"

	u, err := uc.Repo.FindUserByEmail(c.Request.Context(), in.Email)
	if err != nil {
		c.JSON(http.StatusOK, app.H{"message": reply})
		return
	}
	token, err := uc.Repo.GenerateResetToken(c.Request.Context(), u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	link := fmt.Sprintf("%s/reset_password/%s", uc.Cfg.WebOrigin, token)
	body := fmt.Sprintf(
		"Hola %s,\n\nHas solicitado restablecer tu contraseña. Abre el siguiente enlace para crear una nueva:\n\n%s\n\nEste enlace expirará en 24 horas. Si no solicitaste este cambio, ignora este mensaje.",
		u.Username, link,
	)
	if err := uc.Mail.Send(in.Email, "Recuperación de contraseña", body); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "no se pudo enviar el correo"})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": reply})
}

// POST /auth/reset-password/:token
func (uc *UserController) ResetPassword(c *gin.Context) {
	token := c.Param("token")
	var in struct {
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	u, err := uc.Repo.FindUserByResetToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusBadRequest, app.H{"error": "el enlace es inválido o ha expirado"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	if u.TokenExpiry == nil || time.Now().After(*u.TokenExpiry) {
		c.JSON(http.StatusBadRequest, app.H{"error": "el enlace ha expirado"})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	if err := uc.Repo.UpdateUserPassword(c.Request.Context(), u.ID, string(hash)); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	_ = uc.AppSessions().RevokeAllForUser(c.Request.Context(), u.ID)
	c.JSON(http.StatusOK, app.H{"ok": true})
}
