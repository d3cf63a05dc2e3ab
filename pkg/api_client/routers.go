package api_client

import (
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/handler"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/middleware"
	"github.com/gin-gonic/gin"
	"github.com/loopfz/gadgeto/tonic"
	"github.com/wI2L/fizz"
	"github.com/wI2L/fizz/openapi"
)

var apiVersionHeader = fizz.Header(
	"API-Version",
	"De API-versie van de response",
	"", // lege string betekent: primitive string in het OpenAPI-document
)

// Controllers bundelt de controllers die de router nodig heeft.
type Controllers struct {
	Auth        *handler.AuthAPIController
	Articles    *handler.ArticlesAPIController
	Credentials *handler.CredentialsAPIController
}

func NewRouter(apiVersion, jwtSecret string, c Controllers) *fizz.Fizz {
	g := gin.Default()
	g.Use(APIVersionMiddleware(apiVersion))
	f := fizz.NewFromEngine(g)

	info := &openapi.Info{
		Title:       "Artikel Generator API v1",
		Description: "API voor het genereren van artikelteksten op basis van ingediende titels",
		Version:     apiVersion,
	}

	root := f.Group("/v1", "API v1", "Artikel Generator V1 routes")

	// Publieke auth-endpoints
	auth := root.Group("/auth", "Auth", "Registratie en aanmelden")
	auth.POST("/register",
		[]fizz.OperationOption{
			fizz.Summary("Registreer een nieuwe gebruiker"),
			apiVersionHeader,
		},
		tonic.Handler(c.Auth.Register, 201),
	)
	auth.POST("/login",
		[]fizz.OperationOption{
			fizz.Summary("Aanmelden met gebruikersnaam en wachtwoord"),
			apiVersionHeader,
		},
		tonic.Handler(c.Auth.Login, 200),
	)
	auth.POST("/forgot-password",
		[]fizz.OperationOption{
			fizz.Summary("Wachtwoord terugzetten naar een tijdelijke waarde"),
			apiVersionHeader,
		},
		tonic.Handler(c.Auth.ForgotPassword, 200),
	)

	// Endpoints voor aangemelde gebruikers
	articles := root.Group("/articles", "Artikelen", "Titelintake, generatie en status", middleware.RequireUser(jwtSecret))
	articles.GET("",
		[]fizz.OperationOption{
			fizz.Summary("Alle eigen artikelen ophalen, nieuwste eerst"),
			apiVersionHeader,
		},
		tonic.Handler(c.Articles.ListArticles, 200),
	)
	articles.POST("",
		[]fizz.OperationOption{
			fizz.Summary("Titels toevoegen, één per regel"),
			apiVersionHeader,
		},
		tonic.Handler(c.Articles.AddTitles, 201),
	)
	articles.POST("/import",
		[]fizz.OperationOption{
			fizz.Summary("Titels importeren uit een éénkoloms CSV (eerste rij is header)"),
			apiVersionHeader,
		},
		tonic.Handler(c.Articles.ImportTitles, 201),
	)
	articles.POST("/:id/generate",
		[]fizz.OperationOption{
			fizz.Summary("Artikeltekst genereren voor een titel"),
			apiVersionHeader,
		},
		tonic.Handler(c.Articles.Generate, 200),
	)
	articles.GET("/:id/status",
		[]fizz.OperationOption{
			fizz.Summary("Status van een artikel opvragen"),
			apiVersionHeader,
		},
		tonic.Handler(c.Articles.Status, 200),
	)

	// Beheer-endpoints
	credentials := root.Group("/credentials", "Beheer", "Providersleutels beheren", middleware.RequireAdmin(jwtSecret))
	credentials.GET("",
		[]fizz.OperationOption{
			fizz.Summary("Opgeslagen providersleutels tonen (gemaskeerd)"),
			apiVersionHeader,
		},
		tonic.Handler(c.Credentials.ListCredentials, 200),
	)
	credentials.PUT("",
		[]fizz.OperationOption{
			fizz.Summary("Providersleutel aanmaken of overschrijven"),
			apiVersionHeader,
		},
		tonic.Handler(c.Credentials.UpsertCredential, 200),
	)

	f.GET("/v1/openapi.json", []fizz.OperationOption{}, f.OpenAPI(info, "json"))

	return f
}

type apiVersionWriter struct {
	gin.ResponseWriter
	version string
}

func (w *apiVersionWriter) WriteHeader(code int) {
	if code >= 200 && code < 300 {
		w.Header().Set("API-Version", w.version)
	}
	w.ResponseWriter.WriteHeader(code)
}

func APIVersionMiddleware(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer = &apiVersionWriter{c.Writer, version}
		c.Next()
	}
}
