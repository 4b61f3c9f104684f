// Command seed bulk-loads presentation records from a JSON file
// produced by the scraping pipeline. Derived SEO fields are computed
// here, at creation time, so the serving path never recomputes them.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"finconf/config"
	"finconf/domain"
	"finconf/driver/presentation_db"
	"finconf/utils/logger"
)

type seedRow struct {
	CompanyCode       string `json:"companyCode"`
	CompanyName       string `json:"companyName"`
	EventDate         string `json:"eventDate"`
	PresentationTWUrl string `json:"presentationTWUrl"`
	PresentationEnUrl string `json:"presentationEnUrl"`
	AudioLinkUrl      string `json:"audioLinkUrl"`
	MarketType        string `json:"marketType"`
}

func main() {
	file := flag.String("file", "seed-data.json", "path to the JSON array of presentation rows")
	flag.Parse()

	logger.InitLogger()

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *file, err)
	}

	var rows []seedRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		log.Fatalf("failed to parse %s: %v", *file, err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := presentation_db.InitDBConnection(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	repo := presentation_db.NewPresentationDBRepositoryWithPool(pool)

	inserted := 0
	skipped := 0
	for i, row := range rows {
		eventDate, err := time.Parse("2006-01-02", row.EventDate)
		if err != nil {
			log.Printf("row %d: bad event date %q, skipping", i, row.EventDate)
			skipped++
			continue
		}

		marketType, ok := domain.ParseMarketType(row.MarketType)
		if !ok {
			log.Printf("row %d: bad market type %q, skipping", i, row.MarketType)
			skipped++
			continue
		}

		presentation, err := domain.NewPresentation(domain.NewPresentationInput{
			CompanyCode:       row.CompanyCode,
			CompanyName:       row.CompanyName,
			EventDate:         eventDate,
			PresentationTWUrl: row.PresentationTWUrl,
			PresentationEnUrl: row.PresentationEnUrl,
			AudioLinkUrl:      row.AudioLinkUrl,
			MarketType:        marketType,
		})
		if err != nil {
			log.Printf("row %d: %v, skipping", i, err)
			skipped++
			continue
		}

		if err := repo.InsertPresentation(ctx, presentation); err != nil {
			log.Fatalf("row %d: insert failed: %v", i, err)
		}
		inserted++
	}

	log.Printf("seed complete: %d inserted, %d skipped", inserted, skipped)
}
