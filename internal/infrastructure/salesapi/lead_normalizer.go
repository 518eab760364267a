package salesapi

import (
	"log"
	"strings"

	"salesdash/internal/domain/entities"
)

// leadStatusSynonyms folds the status spellings observed upstream onto the
// seven canonical values. Lookup happens on the lower-cased, trimmed input;
// anything unmapped becomes "new".
var leadStatusSynonyms = map[string]entities.LeadStatus{
	"new":         entities.LeadStatusNew,
	"contacted":   entities.LeadStatusContacted,
	"contact":     entities.LeadStatusContacted,
	"qualified":   entities.LeadStatusQualified,
	"qualify":     entities.LeadStatusQualified,
	"proposal":    entities.LeadStatusProposal,
	"negotiation": entities.LeadStatusNegotiation,
	"negotiating": entities.LeadStatusNegotiation,
	"won":         entities.LeadStatusWon,
	"closed-won":  entities.LeadStatusWon,
	"closed_won":  entities.LeadStatusWon,
	"lost":        entities.LeadStatusLost,
	"closed-lost": entities.LeadStatusLost,
	"closed_lost": entities.LeadStatusLost,
}

// NormalizeLeadStatus folds a raw upstream status onto the canonical funnel.
func NormalizeLeadStatus(raw string) entities.LeadStatus {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if status, ok := leadStatusSynonyms[normalized]; ok {
		return status
	}
	return entities.LeadStatusNew
}

// NormalizeLead maps one arbitrary payload object to a Lead. It is total:
// keys and types carry no guarantees and every field has a defined fallback,
// so a malformed record degrades to defaults instead of failing the fetch.
// index is the record's ordinal position in the source collection.
func NormalizeLead(rec map[string]any, index int) entities.Lead {
	if index < 3 {
		log.Printf("[salesapi][leads] sample record %d keys=%d", index, len(rec))
	}

	return entities.Lead{
		ID:             firstString(rec, "id", "_id"),
		CompanyName:    firstString(rec, "companyName", "company_name", "company", "organization"),
		ContactName:    firstString(rec, "contactName", "contact_name", "name", "fullName"),
		Email:          firstString(rec, "email", "emailAddress"),
		Phone:          firstString(rec, "phone", "telephone", "phoneNumber"),
		Source:         firstString(rec, "source", "leadSource", "origin"),
		Status:         NormalizeLeadStatus(firstString(rec, "status", "state")),
		EstimatedValue: firstNumber(rec, "estimatedValue", "estimated_value", "value", "amount"),
		Notes:          firstString(rec, "notes", "description", "memo"),
		CreatedAt:      firstTime(rec, "createdAt", "created_at", "createDate", "dateCreated"),
		UpdatedAt:      firstTime(rec, "updatedAt", "updated_at", "updateDate", "dateUpdated"),
	}
}
