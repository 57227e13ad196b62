package usecase

import (
	"strings"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
)

// ResolveManualContacts splits a comma-separated contact string into a flat
// list: each piece trimmed, empty pieces dropped, order preserved. Duplicates
// survive this stage; deduplication, when enabled, happens at aggregation.
func ResolveManualContacts(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var contacts []string
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		contacts = append(contacts, piece)
	}
	return contacts
}

// ResolvePartnerContacts collects delivery addresses for the selected
// partners: contact email first, then contact phone, skipping unset fields.
// Partner IDs absent from the supplied directory are silently skipped; this
// never fails and never emits placeholder entries.
func ResolvePartnerContacts(partnerIDs []string, partners []*domain.Partner) []string {
	if len(partnerIDs) == 0 || len(partners) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Partner, len(partners))
	for _, p := range partners {
		byID[p.ID] = p
	}

	var contacts []string
	for _, partnerID := range partnerIDs {
		p, ok := byID[partnerID]
		if !ok {
			continue
		}
		if p.ContactEmail != nil && *p.ContactEmail != "" {
			contacts = append(contacts, *p.ContactEmail)
		}
		if p.ContactPhone != nil && *p.ContactPhone != "" {
			contacts = append(contacts, *p.ContactPhone)
		}
	}
	return contacts
}

// dedupeContacts removes duplicates while preserving first-seen order.
func dedupeContacts(contacts []string) []string {
	seen := make(map[string]bool, len(contacts))
	var out []string
	for _, contact := range contacts {
		if seen[contact] {
			continue
		}
		seen[contact] = true
		out = append(out, contact)
	}
	return out
}
