package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarketType(t *testing.T) {
	tests := []struct {
		input string
		want  MarketType
		ok    bool
	}{
		{"listed", MarketTypeListed, true},
		{"otc", MarketTypeOTC, true},
		{"emerging", MarketTypeEmerging, true},
		{"xyz", "", false},
		{"", "", false},
		{"LISTED", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseMarketType(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestDeriveSlug(t *testing.T) {
	eventDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2330-2025-03-14", DeriveSlug("2330", eventDate))
	// alphanumeric codes are lowercased
	assert.Equal(t, "00637l-2025-03-14", DeriveSlug("00637L", eventDate))
}

func TestDeriveKeywords(t *testing.T) {
	keywords := DeriveKeywords("台積電", "2330")
	assert.Equal(t, []string{
		"台積電",
		"2330",
		"台積電法說會",
		"2330法說會",
		"法人說明會",
		"財報說明會",
	}, keywords)
}

func TestDeriveDescription(t *testing.T) {
	eventDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	withoutAudio := DeriveDescription("台積電", "2330", eventDate, false)
	assert.Equal(t, "台積電(2330)於2025/3/14舉辦的法人說明會資料，提供中英文PDF下載和線上預覽。", withoutAudio)

	withAudio := DeriveDescription("台積電", "2330", eventDate, true)
	assert.Equal(t, "台積電(2330)於2025/3/14舉辦的法人說明會資料，提供中英文PDF下載、線上預覽及音訊錄音。", withAudio)
}

func TestNewPresentation(t *testing.T) {
	input := NewPresentationInput{
		CompanyCode:       "2330",
		CompanyName:       "台積電",
		EventDate:         time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		PresentationTWUrl: "https://example.com/tw.pdf",
		PresentationEnUrl: "https://example.com/en.pdf",
		AudioLinkUrl:      "https://example.com/audio.mp3",
		MarketType:        MarketTypeListed,
	}

	p, err := NewPresentation(input)
	require.NoError(t, err)

	assert.Equal(t, "2330-2025-03-14", p.Slug)
	assert.Len(t, p.Keywords, 6)
	assert.Contains(t, p.Description, "音訊錄音")
	assert.Equal(t, MarketTypeListed, p.MarketType)
}

func TestNewPresentation_Validation(t *testing.T) {
	valid := NewPresentationInput{
		CompanyCode:       "2330",
		CompanyName:       "台積電",
		EventDate:         time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		PresentationTWUrl: "https://example.com/tw.pdf",
		MarketType:        MarketTypeListed,
	}

	missingCode := valid
	missingCode.CompanyCode = ""
	_, err := NewPresentation(missingCode)
	assert.Error(t, err)

	missingURL := valid
	missingURL.PresentationTWUrl = ""
	_, err = NewPresentation(missingURL)
	assert.Error(t, err)

	missingDate := valid
	missingDate.EventDate = time.Time{}
	_, err = NewPresentation(missingDate)
	assert.Error(t, err)

	badMarket := valid
	badMarket.MarketType = "sii"
	_, err = NewPresentation(badMarket)
	assert.Error(t, err)
}
