package salesapi

import (
	"log"

	"salesdash/internal/domain/entities"
)

// NormalizeQuoteStatus passes a raw status through only when it matches one
// of the ten canonical values verbatim; everything else, including different
// casing and near-matches, becomes discoveryMeeting.
//
// This is deliberately stricter than lead-status folding: the quotes API
// already speaks the canonical vocabulary, so there is no synonym table.
func NormalizeQuoteStatus(raw string) entities.QuoteStatus {
	if status := entities.QuoteStatus(raw); status.IsValid() {
		return status
	}
	return entities.QuoteStatusDiscoveryMeeting
}

// NormalizeQuote maps one arbitrary payload object to a Quote. Total, like
// NormalizeLead, but additionally copes with the nested customer and account
// sub-objects, each of which may be a string, a number, a partial object or
// absent entirely.
//
// The customer's display name resolves businessName-first while the
// secondary name field resolves name-first; the two are intentionally not
// mirror copies and both are kept on the record.
func NormalizeQuote(rec map[string]any, index int) entities.Quote {
	if index < 3 {
		log.Printf("[salesapi][quotes] sample record %d keys=%d", index, len(rec))
	}

	customer := nestedParty(rec, "customer",
		[]string{"businessName", "name"},
		[]string{"name", "businessName"},
	)
	employee := nestedParty(rec, "account",
		[]string{"name", "fullName"},
		[]string{"name", "fullName"},
	)
	// For employees the two resolutions coincide; keep only Name.
	employee.BusinessName = ""

	return entities.Quote{
		ID:                 firstString(rec, "_id", "id"),
		LeadID:             resolveLeadID(rec),
		QuoteNumber:        firstString(rec, "quoteNumber"),
		QuoteCode:          firstString(rec, "quoteCode"),
		Title:              firstString(rec, "title"),
		Description:        firstString(rec, "description", "notes"),
		Price:              firstNumber(rec, "price"),
		Cost:               firstNumber(rec, "cost"),
		EstimatedValue:     firstNumber(rec, "estimatedValue"),
		ExpirationDate:     firstTime(rec, "expirationDate"),
		Status:             NormalizeQuoteStatus(firstString(rec, "status")),
		Customer:           customer,
		AssignedEmployee:   employee,
		PercentageOfWeight: firstNumber(rec, "percentageOfWeight"),
		InStandBy:          boolOf(rec["inStandBy"]),
		CreatedAt:          firstTime(rec, "createdAt"),
		UpdatedAt:          firstTime(rec, "updatedAt"),
	}
}

// nestedParty resolves a nested party field under key. When the value is an
// object, BusinessName and Name each resolve through their own priority
// list; when it is a bare string or number, that value serves as both and
// the id stays empty.
func nestedParty(rec map[string]any, key string, primaryOrder, secondaryOrder []string) entities.QuoteParty {
	obj, isObject := subObject(rec, key)
	if !isObject {
		flat := stringOf(rec[key])
		return entities.QuoteParty{BusinessName: flat, Name: flat}
	}

	return entities.QuoteParty{
		ID:           partyField(obj, "_id", "id"),
		BusinessName: partyField(obj, primaryOrder...),
		Name:         partyField(obj, secondaryOrder...),
	}
}

func partyField(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := stringOf(obj[key]); s != "" {
			return s
		}
	}
	return ""
}

func resolveLeadID(rec map[string]any) string {
	if s := stringOf(rec["leadId"]); s != "" {
		return s
	}
	if lead, ok := subObject(rec, "lead"); ok {
		return stringOf(lead["_id"])
	}
	return ""
}
