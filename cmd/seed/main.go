package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	_ "embed"

	"github.com/google/uuid"

	"github.com/atlasworks/travelatlas/internal/adapters/postgres"
	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/pkg/config"
)

//go:embed pois.json
var seedData []byte

type seedPOI struct {
	CountryCode string  `json:"country_code"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

func main() {
	cfg, err := config.Load("travelatlas-seed")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := postgres.New(ctx, cfg.Database.DSN(), 5)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	var seeds []seedPOI
	if err := json.Unmarshal(seedData, &seeds); err != nil {
		log.Fatalf("parse seed data: %v", err)
	}

	pois := make([]domain.POI, 0, len(seeds))
	for _, s := range seeds {
		// Deterministic IDs keep reseeding idempotent.
		id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("travelatlas/poi/"+s.CountryCode+"/"+s.Name))
		pois = append(pois, domain.POI{
			ID:          id.String(),
			CountryCode: s.CountryCode,
			Name:        s.Name,
			Category:    s.Category,
			Description: s.Description,
			Location:    domain.GeoPoint{Lat: s.Lat, Lon: s.Lon},
		})
	}

	repo := postgres.NewPOIRepo(db)
	if err := repo.UpsertBatch(ctx, pois); err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Printf("seeded %d pois", len(pois))
}
