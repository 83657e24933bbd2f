package handlers

import (
	"errors"
	"net/http"

	"github.com/autohandel/backoffice/internal/backoffice"
	"github.com/autohandel/backoffice/internal/repository"
	"github.com/autohandel/backoffice/pkg/logger"
	"github.com/autohandel/backoffice/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// Document notices.
const (
	NoticeDocumentUploaded = "Document succesvol geüpload"
	NoticeDocumentUpdated  = "Document bijgewerkt"
	NoticeDocumentDeleted  = "Document verwijderd"
)

// maxUploadMemory bounds the multipart form kept in memory; larger parts
// spill to temporary files that are discarded after the request.
const maxUploadMemory = 8 << 20

func (h *BackofficeHandler) documentsView(c *gin.Context, status int, message string) {
	var filter backoffice.DocumentFilter
	_ = c.ShouldBindQuery(&filter)
	ctx := c.Request.Context()
	body := gin.H{
		"documenten":   h.svc.ListDocuments(ctx, filter),
		"statistieken": h.svc.DocumentStats(ctx),
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

// ListDocuments supports ?categorie=, ?status=, ?type= and ?q= filters.
func (h *BackofficeHandler) ListDocuments(c *gin.Context) {
	h.documentsView(c, http.StatusOK, "")
}

// UploadDocument expects a multipart form with a "bestand" file part next to
// the metadata fields. Only name, size and MIME type of the file are kept.
func (h *BackofficeHandler) UploadDocument(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload", "details": err.Error()})
		return
	}
	var form backoffice.DocumentForm
	if !bindForm(c, &form) {
		return
	}

	var file *backoffice.UploadedFile
	if fh, err := c.FormFile("bestand"); err == nil {
		file = &backoffice.UploadedFile{Name: fh.Filename, Size: fh.Size}
		declared := fh.Header.Get("Content-Type")
		if f, err := fh.Open(); err == nil {
			file.ContentType = backoffice.DetectContentType(declared, f)
			_ = f.Close()
		} else {
			logger.Warnf("upload %q: cannot open part for sniffing: %v", fh.Filename, err)
			file.ContentType = declared
		}
	}

	if _, err := h.svc.UploadDocument(c.Request.Context(), middleware.SessionFrom(c), form, file); err != nil {
		writeError(c, err)
		return
	}
	h.documentsView(c, http.StatusCreated, NoticeDocumentUploaded)
}

func (h *BackofficeHandler) UpdateDocument(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var form backoffice.DocumentForm
	if !bindForm(c, &form) {
		return
	}
	h.svc.UpdateDocument(c.Request.Context(), id, form)
	h.documentsView(c, http.StatusOK, NoticeDocumentUpdated)
}

func (h *BackofficeHandler) DeleteDocument(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	h.svc.DeleteDocument(c.Request.Context(), middleware.SessionFrom(c), id)
	h.documentsView(c, http.StatusOK, NoticeDocumentDeleted)
}

// ViewDocument is a stub: no file bytes are stored.
func (h *BackofficeHandler) ViewDocument(c *gin.Context) {
	h.documentNotice(c, backoffice.NoticeDocumentView)
}

// DownloadDocument is a stub: no file bytes are stored.
func (h *BackofficeHandler) DownloadDocument(c *gin.Context) {
	h.documentNotice(c, backoffice.NoticeDocumentDownload)
}

func (h *BackofficeHandler) documentNotice(c *gin.Context, notice string) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	d, err := h.svc.Documents.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": notice, "document": d})
}
