package main

import (
	"os"

	"github.com/dreamjobs/portal/cmd"
)

// @title DreamJobs Portal API
// @version 1.0
// @description Job board backend: candidate profiles, job postings, applications, premium matching and checkout.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@dreamjobs.example.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
