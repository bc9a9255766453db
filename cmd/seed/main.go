package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vitrinalocal/services/api/internal/config"
	"github.com/vitrinalocal/services/api/internal/domain"
	mongodoc "github.com/vitrinalocal/services/api/internal/infrastructure/mongo"
)

// Seeds a handful of sample stores for local development. Refuses to
// run against a non-empty collection.
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "tiendas-seed").Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongodrv.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatal().Err(err).Msg("MongoDB connection failed")
	}
	defer client.Disconnect(context.Background())

	database := client.Database(cfg.MongoDatabase)
	collection := database.Collection(cfg.StoreCollection)

	count, err := collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		logger.Fatal().Err(err).Msg("count failed")
	}
	if count > 0 {
		logger.Info().Int64("count", count).Msg("collection already seeded, nothing to do")
		return
	}

	repo := mongodoc.NewStoreRepository(database, cfg.StoreCollection)
	stores := sampleStores()
	for i := range stores {
		if err := repo.Insert(ctx, &stores[i]); err != nil {
			logger.Fatal().Err(err).Str("name", stores[i].Name).Msg("insert failed")
		}
		logger.Info().Str("id", stores[i].ID).Str("name", stores[i].Name).Msg("tienda creada")
	}

	logger.Info().Int("stores", len(stores)).Msg("seed complete")
}

func sampleStores() []domain.Store {
	now := time.Now().UTC()

	stores := []domain.Store{
		{
			Name:             "Pizzería Don Carlos",
			Address:          "Calle 45 #12-30",
			Category:         "Pizzerías",
			WhatsappPhone:    "573001234567",
			SalesDescription: "Pizza artesanal en horno de leña, domicilios hasta las 11pm.",
			Website:          "https://pizzeriadoncarlos.example",
			CreatedAt:        now.Add(-72 * time.Hour),
			Active:           true,
			Reviews: []domain.Review{
				{User: "Ana", Comment: "La mejor pizza del barrio", Rating: 5, Date: now.Add(-24 * time.Hour)},
				{User: "Luis", Comment: "Buena masa, llegó caliente", Rating: 4, Date: now.Add(-12 * time.Hour)},
			},
		},
		{
			Name:             "Veterinaria Patitas",
			Address:          "Carrera 8 #23-15",
			Category:         "Veterinarias",
			WhatsappPhone:    "573009876543",
			SalesDescription: "Consulta, vacunación y peluquería canina.",
			SocialMedia:      "https://instagram.com/vetpatitas",
			CreatedAt:        now.Add(-48 * time.Hour),
			Active:           true,
			Reviews:          []domain.Review{},
		},
		{
			Name:             "Gimnasio Fuerza Total",
			Address:          "Avenida 30 #5-02",
			Category:         "Gimnasios",
			WhatsappPhone:    "573205550101",
			SalesDescription: "Planes mensuales y entrenadores personalizados.",
			CreatedAt:        now.Add(-24 * time.Hour),
			Active:           false,
			Reviews:          []domain.Review{},
		},
	}

	return stores
}
