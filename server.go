package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/soumitsalman/globaldoc/sdk"
	"golang.org/x/time/rate"
)

// POST /api/v1/submit_report
// GET  /api/v1/reports/:id
// GET  /api/v1/reports?status=pending_review&email=a@b.com&min_severity=3&top_n=20

const (
	_WELCOME_MESSAGE = "Welcome to the GlobalDoc API"
	_SUCCESS_MESSAGE = "Report submitted successfully"
)

const (
	_RATE_LIMIT = 100
	_RATE_TPS   = 2000
)

type submitParams struct {
	Symptoms string `json:"symptoms"`
	Email    string `json:"email"`
}

type queryParams struct {
	Status      string `form:"status"`
	Email       string `form:"email"`
	MinSeverity int    `form:"min_severity"`
	TopN        int    `form:"top_n"`
}

func submitReportHandler(ctx *gin.Context) {
	var body_params submitParams
	if ctx.BindJSON(&body_params) != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": sdk.ErrInvalidInput.Error()})
		return
	}
	report_id, err := sdk.SubmitReport(body_params.Symptoms, body_params.Email)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": _SUCCESS_MESSAGE, "report_id": report_id})
}

// bad input is the caller's fault. everything else that escapes the pipeline
// (normalization, persistence) is a server error.
func statusForError(err error) int {
	if errors.Is(err, sdk.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func getReportHandler(ctx *gin.Context) {
	report, err := sdk.GetReport(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, report)
}

func getReportsHandler(ctx *gin.Context) {
	var query_params queryParams
	if ctx.BindQuery(&query_params) != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "query params are not right"})
		return
	}
	// create filters
	filters := make([]sdk.Option, 0, 3)
	if query_params.Status != "" {
		filters = append(filters, sdk.WithStatusFilter(query_params.Status))
	}
	if query_params.Email != "" {
		filters = append(filters, sdk.WithEmailFilter(query_params.Email))
	}
	if query_params.MinSeverity > 0 {
		filters = append(filters, sdk.WithMinSeverityFilter(query_params.MinSeverity))
	}
	ctx.JSON(http.StatusOK, sdk.GetReports(query_params.TopN, filters...))
}

func initializeRateLimiter() gin.HandlerFunc {
	limiter := rate.NewLimiter(_RATE_LIMIT, _RATE_TPS)
	return func(ctx *gin.Context) {
		if limiter.Allow() {
			ctx.Next()
		} else {
			ctx.AbortWithStatus(http.StatusTooManyRequests)
		}
	}
}

func newServer() *gin.Engine {
	router := gin.Default()
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": _WELCOME_MESSAGE})
	})
	group := router.Group("/api/v1")
	group.Use(initializeRateLimiter())
	group.POST("/submit_report", submitReportHandler)
	group.GET("/reports/:id", getReportHandler)
	group.GET("/reports", getReportsHandler)
	return router
}

func main() {
	godotenv.Load()
	if err := sdk.InitializeGlobalDoc(getDBConnectionString(), getGeminiApiKey(), getClassifierUrl(), getClassifierAuthToken()); err != nil {
		log.Fatalln("initialization not working", err)
	}
	newServer().Run(getServerAddress())
}
