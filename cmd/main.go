package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/handler"
	util "github.com/artikelsmederij/artikel-generator-api/pkg/api_client/helpers/util"
	"github.com/artikelsmederij/artikel-generator-api/pkg/jobs"
	"github.com/artikelsmederij/artikel-generator-api/pkg/llm"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	api "github.com/artikelsmederij/artikel-generator-api/pkg/api_client"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/database"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/repositories"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/services"
)

func main() {
	_ = godotenv.Load()

	version, err := util.LoadOASVersion("./api/openapi.json")
	if err != nil {
		log.Fatalf("failed to load OAS version: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	dbcon := "postgres://" +
		os.Getenv("DB_USERNAME") + ":" +
		os.Getenv("DB_PASSWORD") + "@" +
		os.Getenv("DB_HOSTNAME") + "/" +
		os.Getenv("DB_DBNAME")
	db, err := database.Connect(dbcon)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	articleRepo := repositories.NewArticleRepository(db)
	credentialRepo := repositories.NewCredentialRepository(db)
	userRepo := repositories.NewUserRepository(db)

	credentialsService := services.NewCredentialsAPIService(credentialRepo)

	// Vaste probeervolgorde: eerst openai, dan anthropic.
	orchestrator := llm.NewOrchestrator(credentialsService,
		llm.NewOpenAIClient(os.Getenv("OPENAI_ENDPOINT")),
		llm.NewAnthropicClient(os.Getenv("ANTHROPIC_ENDPOINT")),
	)

	articlesService := services.NewArticlesAPIService(articleRepo, orchestrator, 30*time.Minute)
	authService := services.NewAuthAPIService(userRepo, jwtSecret, 24*time.Hour)

	jobs.ScheduleStuckSweep(context.Background(), articlesService)

	router := api.NewRouter(version, jwtSecret, api.Controllers{
		Auth:        handler.NewAuthAPIController(authService),
		Articles:    handler.NewArticlesAPIController(articlesService),
		Credentials: handler.NewCredentialsAPIController(credentialsService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server is running on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
