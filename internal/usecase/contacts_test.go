package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestResolveManualContacts_TrimsAndDropsEmpty(t *testing.T) {
	contacts := ResolveManualContacts("a@x.com, b@y.com ,")
	assert.Equal(t, []string{"a@x.com", "b@y.com"}, contacts)
}

func TestResolveManualContacts_Empty(t *testing.T) {
	assert.Empty(t, ResolveManualContacts(""))
	assert.Empty(t, ResolveManualContacts("  ,  , "))
}

func TestResolveManualContacts_KeepsDuplicatesAndOrder(t *testing.T) {
	contacts := ResolveManualContacts("+41001, a@x.com, +41001")
	assert.Equal(t, []string{"+41001", "a@x.com", "+41001"}, contacts)
}

func TestResolvePartnerContacts_EmailThenPhone(t *testing.T) {
	partners := []*domain.Partner{
		{ID: "PTN1", ContactEmail: strPtr("one@partners.ch"), ContactPhone: strPtr("+41791")},
		{ID: "PTN2", ContactEmail: strPtr("two@partners.ch")},
		{ID: "PTN3", ContactPhone: strPtr("+41793")},
	}

	contacts := ResolvePartnerContacts([]string{"PTN1", "PTN2", "PTN3"}, partners)
	assert.Equal(t, []string{"one@partners.ch", "+41791", "two@partners.ch", "+41793"}, contacts)
}

func TestResolvePartnerContacts_SkipsUnknownIDs(t *testing.T) {
	partners := []*domain.Partner{
		{ID: "PTN1", ContactEmail: strPtr("one@partners.ch")},
	}

	contacts := ResolvePartnerContacts([]string{"PTN_MISSING", "PTN1", "PTN_GONE"}, partners)

	// Unknown IDs vanish without error and without placeholder entries.
	assert.Equal(t, []string{"one@partners.ch"}, contacts)
	for _, c := range contacts {
		assert.NotEmpty(t, c)
	}
}

func TestResolvePartnerContacts_SkipsEmptyFields(t *testing.T) {
	partners := []*domain.Partner{
		{ID: "PTN1", ContactEmail: strPtr(""), ContactPhone: strPtr("+41791")},
		{ID: "PTN2"},
	}

	contacts := ResolvePartnerContacts([]string{"PTN1", "PTN2"}, partners)
	assert.Equal(t, []string{"+41791"}, contacts)
}

func TestDedupeContacts(t *testing.T) {
	deduped := dedupeContacts([]string{"a@x.com", "+41001", "a@x.com", "+41001", "b@y.com"})
	assert.Equal(t, []string{"a@x.com", "+41001", "b@y.com"}, deduped)
}
