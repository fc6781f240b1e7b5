package request

import (
	"strings"

	"seguros_xpto/internal/domain/entities"
)

type DocumentUpload struct {
	Filename      string `json:"filename" binding:"required"`
	ContentType   string `json:"content_type"`
	SizeBytes     int64  `json:"size_bytes"`
	DocType       string `json:"doc_type"`
	ExtractedText string `json:"extracted_text"`
}

// RegisterClaimRequest is the customer-facing claim registration payload.
// Document text arrives already extracted; this service never performs OCR.
type RegisterClaimRequest struct {
	ClaimID      string           `json:"claim_id" binding:"required"`
	CustomerName string           `json:"customer_name" binding:"required"`
	PolicyNumber string           `json:"policy_number" binding:"required"`
	Description  string           `json:"description"`
	Amount       float64          `json:"amount"`
	ClaimType    string           `json:"claim_type" binding:"required"`
	Documents    []DocumentUpload `json:"documents"`
}

func (r RegisterClaimRequest) ResolveClaimType() string {
	return strings.ToLower(strings.TrimSpace(r.ClaimType))
}

// ResolveDocuments maps uploads into domain records, dropping entries with a
// blank filename.
func (r RegisterClaimRequest) ResolveDocuments() []entities.DocumentRecord {
	docs := make([]entities.DocumentRecord, 0, len(r.Documents))
	for _, d := range r.Documents {
		if strings.TrimSpace(d.Filename) == "" {
			continue
		}
		docs = append(docs, entities.DocumentRecord{
			Filename:      strings.TrimSpace(d.Filename),
			ContentType:   d.ContentType,
			SizeBytes:     d.SizeBytes,
			DocType:       strings.ToLower(strings.TrimSpace(d.DocType)),
			ExtractedText: d.ExtractedText,
		})
	}
	return docs
}
