package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/repository"
	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/config"
)

// Seeds the catalog collections with a small starter data set so a fresh
// project has something to browse. Safe to run more than once, but each run
// inserts new documents.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	diseaseRepo := repository.NewFirestoreDiseaseRepository(firestoreClient)
	tipRepo := repository.NewFirestoreTipRepository(firestoreClient)
	expertRepo := repository.NewFirestoreExpertRepository(firestoreClient)

	diseases := []*entity.Disease{
		{
			Name:       "Rice Blast",
			Crop:       "Rice",
			Symptoms:   []string{"Diamond-shaped lesions on leaves", "White to gray centers with brown borders", "Neck rot on panicles"},
			Cause:      "Fungus Magnaporthe oryzae, favored by high humidity and nitrogen excess",
			Treatment:  "Apply tricyclazole-based fungicide at first symptoms and repeat after 10 days if lesions spread",
			Prevention: "Use resistant varieties, avoid dense planting and split nitrogen applications",
			Severity:   entity.SeverityHigh,
		},
		{
			Name:       "Leaf Curl Virus",
			Crop:       "Chili",
			Symptoms:   []string{"Upward curling of leaves", "Stunted growth", "Reduced fruit set"},
			Cause:      "Begomovirus transmitted by whiteflies",
			Treatment:  "Remove infected plants and control whiteflies with neem oil or imidacloprid",
			Prevention: "Use virus-free seedlings and yellow sticky traps near nursery beds",
			Severity:   entity.SeverityMedium,
		},
		{
			Name:       "Black Sigatoka",
			Crop:       "Banana",
			Symptoms:   []string{"Dark streaks on underside of leaves", "Premature leaf death", "Small, unevenly ripened fruit"},
			Cause:      "Fungus Mycosphaerella fijiensis spread by wind and rain",
			Treatment:  "Remove affected leaves and apply mancozeb on a 14-day schedule during wet weather",
			Prevention: "Improve drainage and spacing to lower leaf wetness",
			Severity:   entity.SeverityHigh,
		},
	}

	tips := []*entity.Tip{
		{
			Title:    "Water paddy early in the morning",
			Category: "Irrigation",
			Season:   "Yala",
			Icon:     "droplet",
			Content: []string{
				"Irrigate before 9am to cut evaporation losses.",
				"Keep 2-3cm of standing water during tillering.",
				"Drain the field a week before harvest.",
			},
			Timing: "Daily during dry spells",
		},
		{
			Title:    "Compost before the monsoon",
			Category: "Soil",
			Season:   "Maha",
			Icon:     "leaf",
			Content: []string{
				"Work compost into the top 15cm of soil two weeks before planting.",
				"One wheelbarrow per 10 square meters is enough for vegetables.",
			},
			Timing: "Two weeks before planting",
		},
		{
			Title:    "Scout for pests weekly",
			Category: "Pest control",
			Season:   "All year",
			Icon:     "bug",
			Content: []string{
				"Walk the field edges and check the underside of leaves.",
				"Record counts so you can spot a rising trend before it becomes an outbreak.",
			},
		},
	}

	experts := []*entity.Expert{
		{
			Name:       "Dr. Nimal Perera",
			Specialty:  "Rice pathology",
			Experience: "18 years",
			Languages:  []string{"Sinhala", "English"},
			Rating:     4.8,
			Phone:      "+94 71 234 5678",
			Available:  true,
		},
		{
			Name:       "Ms. Kavitha Raj",
			Specialty:  "Vegetable pest management",
			Experience: "11 years",
			Languages:  []string{"Tamil", "English"},
			Rating:     4.6,
			Phone:      "+94 77 876 5432",
			Available:  true,
		},
		{
			Name:       "Mr. Sunil Bandara",
			Specialty:  "Soil and irrigation",
			Experience: "22 years",
			Languages:  []string{"Sinhala"},
			Rating:     4.4,
			Phone:      "+94 70 111 2233",
			Available:  false,
		},
	}

	for _, disease := range diseases {
		if err := diseaseRepo.Create(ctx, disease); err != nil {
			log.Fatalf("Failed to seed disease %q: %v", disease.Name, err)
		}
		log.Printf("Seeded disease %s (%s)", disease.Name, disease.ID)
	}

	for _, tip := range tips {
		if err := tipRepo.Create(ctx, tip); err != nil {
			log.Fatalf("Failed to seed tip %q: %v", tip.Title, err)
		}
		log.Printf("Seeded tip %s (%s)", tip.Title, tip.ID)
	}

	for _, expert := range experts {
		if err := expertRepo.Create(ctx, expert); err != nil {
			log.Fatalf("Failed to seed expert %q: %v", expert.Name, err)
		}
		log.Printf("Seeded expert %s (%s)", expert.Name, expert.ID)
	}

	log.Printf("Seeding complete")
}
