package lead_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aprovost/studiodesk/internal/lead"
)

func TestParseCSV(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	input := strings.Join([]string{
		"email,interests,signed_up",
		"ana@example.com,Wedding Photography,2026-02-14",
		"ben@example.com,Portraits,",
		",Family Sessions,2026-03-01",
	}, "\n")

	params, err := lead.ParseCSV(strings.NewReader(input), now)
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, "ana@example.com", params[0].Email)
	assert.Equal(t, "Wedding Photography", params[0].Interests)
	assert.Equal(t, time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), params[0].SignedUp)

	// Missing date falls back to the import time.
	assert.Equal(t, "ben@example.com", params[1].Email)
	assert.Equal(t, now, params[1].SignedUp)
}

func TestParseCSV_HeaderCaseInsensitive(t *testing.T) {
	input := "Email,Interests\nana@example.com,Newborn\n"

	params, err := lead.ParseCSV(strings.NewReader(input), time.Now())
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Newborn", params[0].Interests)
}

func TestParseCSV_MissingEmailColumn(t *testing.T) {
	input := "name,interests\nAna,Portraits\n"

	_, err := lead.ParseCSV(strings.NewReader(input), time.Now())
	assert.ErrorContains(t, err, "email column")
}

func TestParseCSV_EmptyFile(t *testing.T) {
	_, err := lead.ParseCSV(strings.NewReader(""), time.Now())
	assert.Error(t, err)
}

func TestDeriveStatus(t *testing.T) {
	client := "ana@example.com"

	assert.Equal(t, lead.StatusConverted, lead.DeriveStatus(&client))
	assert.Equal(t, lead.StatusLead, lead.DeriveStatus(nil))
}
