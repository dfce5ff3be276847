// README: Profile handlers: me, update, document upload and verification.
package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"drivehire/internal/http/middleware"
	"drivehire/internal/modules/document"
	"drivehire/internal/modules/profile"
	"drivehire/internal/types"
)

type ProfileHandler struct {
	profiles  *profile.Service
	documents *document.Service
}

func NewProfileHandler(profiles *profile.Service, documents *document.Service) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, documents: documents}
}

// Me returns the caller's profile, creating a minimal one on first access.
func (h *ProfileHandler) Me(c *gin.Context) {
	p, err := h.profiles.GetOrCreate(c.Request.Context(),
		types.ID(middleware.CallerUID(c)), "", profile.Role(middleware.CallerRole(c)))
	if err != nil {
		writeProfileError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, profileResponse(p))
}

type updateProfileReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.profiles.Update(c.Request.Context(), types.ID(middleware.CallerUID(c)), profile.UpdateCommand{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		writeProfileError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, profileResponse(p))
}

// UploadDocument accepts a multipart form with a "file" part and a doc type
// path param. The declared part size is checked before reading the body.
func (h *ProfileHandler) UploadDocument(c *gin.Context) {
	docType := profile.DocType(c.Param("docType"))

	file, err := c.FormFile("file")
	if err != nil {
		writeError(c, http.StatusBadRequest, "missing file")
		return
	}
	if file.Size > document.MaxUploadBytes {
		writeDocumentError(c, document.ErrTooLarge)
		return
	}

	f, err := file.Open()
	if err != nil {
		writeError(c, http.StatusBadRequest, "unreadable file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, document.MaxUploadBytes+1))
	if err != nil {
		writeError(c, http.StatusBadRequest, "unreadable file")
		return
	}

	url, err := h.documents.Upload(c.Request.Context(), document.UploadCommand{
		UserID:      types.ID(middleware.CallerUID(c)),
		DocType:     docType,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		writeDocumentError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"doc_type": docType, "url": url})
}

type verifyDocumentReq struct {
	Verified bool `json:"verified"`
}

// VerifyDocument is admin-only; the router enforces the role.
func (h *ProfileHandler) VerifyDocument(c *gin.Context) {
	var req verifyDocumentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	err := h.profiles.VerifyDocument(c.Request.Context(),
		types.ID(c.Param("id")), profile.DocType(c.Param("docType")), req.Verified)
	if err != nil {
		writeProfileError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "ok"})
}

func profileResponse(p *profile.Profile) gin.H {
	docs := gin.H{}
	for docType, doc := range p.Documents {
		docs[string(docType)] = gin.H{"url": doc.URL, "verified": doc.Verified}
	}
	return gin.H{
		"id":                 p.ID,
		"name":               p.Name,
		"email":              p.Email,
		"phone":              p.Phone,
		"role":               p.Role,
		"is_verified":        p.IsVerified,
		"documents":          docs,
		"documents_verified": p.DocumentsVerified(),
		"completion_percent": p.CompletionPercent(),
	}
}
