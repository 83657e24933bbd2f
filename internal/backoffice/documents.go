package backoffice

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/autohandel/backoffice/internal/aggregate"
	"github.com/autohandel/backoffice/internal/models"
	"github.com/autohandel/backoffice/internal/sessions"
	"github.com/gabriel-vasile/mimetype"
)

// Stub notices for the document actions that have no backing yet.
const (
	NoticeDocumentView     = "Document weergave (placeholder)"
	NoticeDocumentDownload = "Document gedownload"
)

// DocumentForm is the metadata submitted with an upload or an edit.
type DocumentForm struct {
	Name       string `json:"naam" form:"naam"`
	Type       string `json:"type" form:"type"`
	Category   string `json:"categorie" form:"categorie"`
	RelatedTo  string `json:"gerelateerd_aan" form:"gerelateerd_aan"`
	ExpiryDate string `json:"vervaldatum" form:"vervaldatum"`
	Status     string `json:"status" form:"status"`
	OCR        bool   `json:"ocr_verwerken" form:"ocr_verwerken"`
}

// UploadedFile describes the file chosen for an upload. Its content is
// never stored.
type UploadedFile struct {
	Name        string
	Size        int64
	ContentType string
}

// FormatFileSize renders a byte count as megabytes with one decimal.
func FormatFileSize(size int64) string {
	return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
}

// DetectContentType returns declared unless it is empty or the generic
// octet-stream type, in which case the type is sniffed from r.
func DetectContentType(declared string, r io.Reader) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if r == nil {
		return declared
	}
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return declared
	}
	return mt.String()
}

// DocumentFilter narrows the document list. Empty fields match everything.
type DocumentFilter struct {
	Category string `form:"categorie"`
	Status   string `form:"status"`
	Type     string `form:"type"`
	Query    string `form:"q"`
}

func (f DocumentFilter) match(d models.Document) bool {
	if f.Category != "" && string(d.Category) != f.Category {
		return false
	}
	if f.Status != "" && string(d.Status) != f.Status {
		return false
	}
	if f.Type != "" && d.Type != f.Type {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		text := strings.ToLower(d.Name + " " + d.RelatedTo)
		if !strings.Contains(text, q) {
			return false
		}
	}
	return true
}

// ListDocuments returns the documents matching filter in stored order.
func (s *Service) ListDocuments(ctx context.Context, filter DocumentFilter) []models.Document {
	out := []models.Document{}
	for _, d := range s.Documents.LoadAll(ctx) {
		if filter.match(d) {
			out = append(out, d)
		}
	}
	return out
}

// DocumentStats counts every stored document, ignoring list filters.
func (s *Service) DocumentStats(ctx context.Context) aggregate.DocumentStats {
	return aggregate.Documents(s.Documents.LoadAll(ctx), s.now())
}

// UploadDocument records the metadata of an uploaded file. A missing file
// is a validation failure.
func (s *Service) UploadDocument(ctx context.Context, sess *sessions.Session, form DocumentForm, file *UploadedFile) (models.Document, error) {
	if file == nil || file.Name == "" {
		return models.Document{}, &ValidationError{Notice: NoticeFileRequired, Fields: []string{"bestand"}}
	}
	d := models.Document{
		Name:         strings.TrimSpace(form.Name),
		Type:         form.Type,
		Category:     models.DocumentCategory(form.Category),
		RelatedTo:    form.RelatedTo,
		ExpiryDate:   form.ExpiryDate,
		UploadDate:   s.today(),
		Status:       models.DocumentComplete,
		OCRProcessed: form.OCR,
		FileName:     file.Name,
		FileSize:     FormatFileSize(file.Size),
		FileType:     file.ContentType,
		UploadedBy:   actor(sess),
	}
	if d.Name == "" {
		d.Name = file.Name
	}
	d = s.Documents.Create(ctx, d)
	s.log.Infof("document %d (%s, %s) uploaded by %s", d.ID, d.FileName, d.FileSize, d.UploadedBy)
	s.RecordActivity(ctx, sess, IconDocument, "Document geüpload: "+d.Name)
	return d, nil
}

// UpdateDocument overwrites the non-empty metadata fields of the document
// with id. File details are never touched.
func (s *Service) UpdateDocument(ctx context.Context, id int64, form DocumentForm) (models.Document, bool) {
	return s.Documents.Update(ctx, id, func(d *models.Document) {
		if v := strings.TrimSpace(form.Name); v != "" {
			d.Name = v
		}
		if form.Type != "" {
			d.Type = form.Type
		}
		if form.Category != "" {
			d.Category = models.DocumentCategory(form.Category)
		}
		if form.RelatedTo != "" {
			d.RelatedTo = form.RelatedTo
		}
		if form.ExpiryDate != "" {
			d.ExpiryDate = form.ExpiryDate
		}
		if form.Status != "" {
			d.Status = models.DocumentStatus(form.Status)
		}
	})
}

// DeleteDocument removes the document with id. Unknown ids are ignored.
func (s *Service) DeleteDocument(ctx context.Context, sess *sessions.Session, id int64) bool {
	d, err := s.Documents.Get(ctx, id)
	if err != nil || !s.Documents.Remove(ctx, id) {
		return false
	}
	s.RecordActivity(ctx, sess, IconDocument, "Document verwijderd: "+d.Name)
	return true
}
