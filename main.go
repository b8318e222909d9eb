package main

import (
	"log"
	"os"

	"github.com/atropass/ai-caption-saas/db"
	_ "github.com/atropass/ai-caption-saas/docs"
	"github.com/atropass/ai-caption-saas/handlers/captions"
	"github.com/atropass/ai-caption-saas/handlers/health"
	"github.com/atropass/ai-caption-saas/handlers/webhooks"
	"github.com/atropass/ai-caption-saas/licenses"
	"github.com/atropass/ai-caption-saas/provider"
	"github.com/atropass/ai-caption-saas/routes"
	"github.com/atropass/ai-caption-saas/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title AI Social Caption Generator
// @version 1.0
// @description API de génération de captions pour réseaux sociaux, accès sous licence Gumroad
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey LicenseKey
// @in header
// @name X-License-Key
// @description Clé de licence délivrée à l'achat via Gumroad
func main() {

	gin.SetMode(gin.ReleaseMode)

	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, relying on system environment variables")
	}

	database, err := db.Connect()
	if err != nil {
		log.Fatal("Erreur lors de la connexion à la base de données:", err)
	}

	captionProvider, err := provider.NewAzureOpenAI()
	if err != nil {
		log.Fatal("Erreur lors de l'initialisation du provider Azure OpenAI:", err)
	}

	licenseService := licenses.NewService(database)

	r := routes.SetupRouter(
		health.New(),
		captions.New(database, captionProvider),
		webhooks.New(licenseService),
		licenseService,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Erreur lors du démarrage du serveur:", err)
	}
}
