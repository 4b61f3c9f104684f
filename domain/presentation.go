package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MarketType is the listing venue classification of a company.
type MarketType string

const (
	MarketTypeListed   MarketType = "listed"
	MarketTypeOTC      MarketType = "otc"
	MarketTypeEmerging MarketType = "emerging"
)

var marketTypeLabels = map[MarketType]string{
	MarketTypeListed:   "上市",
	MarketTypeOTC:      "上櫃",
	MarketTypeEmerging: "興櫃",
}

// ParseMarketType returns the MarketType for s, or false when s is not
// one of the closed enumeration. Callers treat unknown values as "no
// filter" rather than an error.
func ParseMarketType(s string) (MarketType, bool) {
	mt := MarketType(s)
	_, ok := marketTypeLabels[mt]
	if !ok {
		return "", false
	}
	return mt, true
}

// Valid reports whether the market type is one of listed/otc/emerging.
func (m MarketType) Valid() bool {
	_, ok := marketTypeLabels[m]
	return ok
}

// Label returns the zh-TW display label for the market type.
func (m MarketType) Label() string {
	return marketTypeLabels[m]
}

// Presentation is one investor-relations event record (法說會).
// Records are immutable after creation; the slug/keywords/description
// fields are derived once at creation time and never recomputed.
type Presentation struct {
	ID                uuid.UUID  `json:"id"`
	CompanyCode       string     `json:"companyCode"`
	CompanyName       string     `json:"companyName"`
	EventDate         time.Time  `json:"eventDate"`
	PresentationTWUrl string     `json:"presentationTWUrl"`
	PresentationEnUrl string     `json:"presentationEnUrl,omitempty"`
	AudioLinkUrl      string     `json:"audioLinkUrl,omitempty"`
	MarketType        MarketType `json:"marketType"`
	Slug              string     `json:"slug,omitempty"`
	Keywords          []string   `json:"keywords,omitempty"`
	Description       string     `json:"description,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// NewPresentationInput carries the raw fields produced by the ingestion
// process. ID and timestamps are store-assigned on insert.
type NewPresentationInput struct {
	CompanyCode       string
	CompanyName       string
	EventDate         time.Time
	PresentationTWUrl string
	PresentationEnUrl string
	AudioLinkUrl      string
	MarketType        MarketType
}

// NewPresentation builds a record from ingestion input and computes the
// derived SEO fields. It is the only construction path; there is no
// hidden persistence hook.
func NewPresentation(input NewPresentationInput) (*Presentation, error) {
	if input.CompanyCode == "" {
		return nil, errors.New("company code is required")
	}
	if input.CompanyName == "" {
		return nil, errors.New("company name is required")
	}
	if input.EventDate.IsZero() {
		return nil, errors.New("event date is required")
	}
	if input.PresentationTWUrl == "" {
		return nil, errors.New("primary presentation url is required")
	}
	if !input.MarketType.Valid() {
		return nil, fmt.Errorf("invalid market type %q", input.MarketType)
	}

	return &Presentation{
		CompanyCode:       input.CompanyCode,
		CompanyName:       input.CompanyName,
		EventDate:         input.EventDate,
		PresentationTWUrl: input.PresentationTWUrl,
		PresentationEnUrl: input.PresentationEnUrl,
		AudioLinkUrl:      input.AudioLinkUrl,
		MarketType:        input.MarketType,
		Slug:              DeriveSlug(input.CompanyCode, input.EventDate),
		Keywords:          DeriveKeywords(input.CompanyName, input.CompanyCode),
		Description:       DeriveDescription(input.CompanyName, input.CompanyCode, input.EventDate, input.AudioLinkUrl != ""),
	}, nil
}

// DeriveSlug returns the URL-safe identifier: company code plus ISO
// event date, lowercased.
func DeriveSlug(companyCode string, eventDate time.Time) string {
	return strings.ToLower(fmt.Sprintf("%s-%s", companyCode, eventDate.Format("2006-01-02")))
}

// DeriveKeywords returns the SEO keyword set for a record.
func DeriveKeywords(companyName, companyCode string) []string {
	return []string{
		companyName,
		companyCode,
		companyName + "法說會",
		companyCode + "法說會",
		"法人說明會",
		"財報說明會",
	}
}

// DeriveDescription returns the templated SEO sentence. The wording
// changes when an audio recording is available.
func DeriveDescription(companyName, companyCode string, eventDate time.Time, hasAudio bool) string {
	date := fmt.Sprintf("%d/%d/%d", eventDate.Year(), int(eventDate.Month()), eventDate.Day())
	suffix := "，提供中英文PDF下載和線上預覽。"
	if hasAudio {
		suffix = "，提供中英文PDF下載、線上預覽及音訊錄音。"
	}
	return fmt.Sprintf("%s(%s)於%s舉辦的法人說明會資料%s", companyName, companyCode, date, suffix)
}
