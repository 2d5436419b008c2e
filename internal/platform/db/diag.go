package db

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// maxDiagCollections caps how many collection names the diagnostic
// endpoint lists.
const maxDiagCollections = 10

// maxDiagErrorLen caps how much of a store error is echoed back.
const maxDiagErrorLen = 50

// DiagnosticReport is the body of the GET /test endpoint. Store failures
// never turn into an error response here: describing them is the whole
// point of the endpoint.
type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagnosticHandler reports store configuration and reachability. The
// urlSet and nameSet flags describe configuration presence only; the
// values themselves are never echoed back.
func DiagnosticHandler(database *mongo.Database, urlSet, nameSet bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		report := DiagnosticReport{
			Backend:          "running",
			Database:         "not available",
			DatabaseURL:      presence(urlSet),
			DatabaseName:     presence(nameSet),
			ConnectionStatus: "not connected",
			Collections:      []string{},
		}

		if database == nil {
			return c.JSON(http.StatusOK, report)
		}

		report.ConnectionStatus = "connected"

		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		names, err := database.ListCollectionNames(ctx, bson.M{})
		if err != nil {
			report.Database = "connected but error: " + truncate(err.Error(), maxDiagErrorLen)
			return c.JSON(http.StatusOK, report)
		}

		report.Database = "connected and working"
		if len(names) > maxDiagCollections {
			names = names[:maxDiagCollections]
		}
		report.Collections = names
		return c.JSON(http.StatusOK, report)
	}
}

func presence(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
