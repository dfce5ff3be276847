// README: Auth handlers: sign-up, sign-in, sign-out, codes, password reset.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"drivehire/internal/modules/auth"
	"drivehire/internal/modules/profile"
)

type AuthHandler struct {
	auth *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{auth: svc}
}

type signUpReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	sess, err := h.auth.SignUp(c.Request.Context(), auth.SignUpCommand{
		Email:    req.Email,
		Password: req.Password,
		Role:     profile.Role(req.Role),
	})
	if err != nil {
		writeAuthError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, sessionResponse(sess))
}

type signInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	sess, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, sessionResponse(sess))
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok || token == "" {
		writeError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	if err := h.auth.SignOut(c.Request.Context(), token); err != nil {
		writeAuthError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "signed_out"})
}

type sendCodeReq struct {
	Email string `json:"email"`
}

func (h *AuthHandler) SendCode(c *gin.Context) {
	var req sendCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.auth.SendCode(c.Request.Context(), req.Email); err != nil {
		writeAuthError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "code_sent"})
}

type verifyCodeReq struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req verifyCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.auth.VerifyCode(c.Request.Context(), req.Email, req.Code); err != nil {
		writeAuthError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "verified"})
}

type resetPasswordReq struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.auth.ResetPasswordWithCode(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		writeAuthError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "password_reset"})
}

func sessionResponse(sess *auth.Session) gin.H {
	return gin.H{
		"user_id": sess.UserID,
		"role":    sess.Role,
		"token":   sess.Token,
	}
}
