package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/raghadd22/anah-mood-service/internal/analysis"
	"github.com/raghadd22/anah-mood-service/internal/config"
	"github.com/raghadd22/anah-mood-service/internal/journal"
	"github.com/raghadd22/anah-mood-service/internal/lexicon"
	"github.com/raghadd22/anah-mood-service/internal/models"
	"github.com/raghadd22/anah-mood-service/internal/notifications"
	"github.com/raghadd22/anah-mood-service/internal/report"
	"github.com/raghadd22/anah-mood-service/internal/scheduler"
	"github.com/raghadd22/anah-mood-service/internal/storage"
)

// userHeader carries the journal partition identity; auth itself is handled
// upstream of this service.
const userHeader = "X-Anah-User"

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logrus.Info("Starting Anah mood service")

	// Initialize storage: Azure when configured, in-memory otherwise
	var storageClient storage.StorageInterface
	if cfg.StorageAccount != "" {
		storageClient, err = storage.NewAzureStorage(cfg.StorageAccount, cfg.StorageContainer)
		if err != nil {
			logrus.Fatalf("Failed to initialize storage: %v", err)
		}
	} else {
		logrus.Warn("No storage account configured, journal entries are kept in memory only")
		storageClient = storage.NewMemoryStorage()
	}

	// Kick off the one-time lexicon load. Analysis before (or without) a
	// successful load degrades to the fallback rules instead of blocking.
	lexStore := lexicon.NewStore(cfg.LexiconURL, cfg.LexiconPath)
	go func() {
		if err := lexStore.Load(context.Background()); err != nil {
			logrus.Warnf("Lexicon load failed: %v", err)
		}
	}()

	analyzer := analysis.New(lexStore, cfg.ExplicitMoodWeight)
	journalService := journal.NewService(storageClient, analyzer, cfg.TopMoods)
	notificationService := notifications.NewService(cfg)
	reportService := report.NewService(cfg, journalService, notificationService)

	schedulerService := scheduler.NewService(cfg, reportService)
	if err := schedulerService.Start(); err != nil {
		logrus.Fatalf("Failed to start scheduler: %v", err)
	}
	defer schedulerService.Stop()

	router := mux.NewRouter()

	router.HandleFunc("/health", healthCheckHandler(lexStore)).Methods("GET")
	router.HandleFunc("/metrics", metricsHandler(reportService)).Methods("GET")
	router.HandleFunc("/trigger", triggerHandler(reportService)).Methods("POST")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analyze", analyzeHandler(analyzer)).Methods("POST")
	api.HandleFunc("/entries", listEntriesHandler(journalService)).Methods("GET")
	api.HandleFunc("/entries/{date}", saveEntryHandler(journalService)).Methods("PUT")
	api.HandleFunc("/entries/{date}", getEntryHandler(journalService)).Methods("GET")
	api.HandleFunc("/entries/{date}", deleteEntryHandler(journalService)).Methods("DELETE")
	api.HandleFunc("/stats", statsHandler(journalService, cfg.DefaultWindowDays)).Methods("GET")
	api.HandleFunc("/streaks", streaksHandler(journalService)).Methods("GET")
	api.HandleFunc("/achievements", achievementsHandler(journalService)).Methods("GET")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.Infof("HTTP server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}

func requestUser(r *http.Request) string {
	if user := r.Header.Get(userHeader); user != "" {
		return user
	}
	return journal.GuestUser
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func healthCheckHandler(lexStore *lexicon.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lexiconState := "loading"
		select {
		case <-lexStore.Ready():
			if lexStore.Available() {
				lexiconState = "loaded"
			} else {
				lexiconState = "unavailable"
			}
		default:
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"status":    "healthy",
			"lexicon":   lexiconState,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

func metricsHandler(reportService *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics := reportService.GetMetrics()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(metrics))
	}
}

func triggerHandler(reportService *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		go func() {
			if err := reportService.RunReports(); err != nil {
				logrus.Errorf("Manual report trigger failed: %v", err)
			}
		}()

		writeJSON(w, http.StatusOK, map[string]string{"message": "Report run triggered successfully"})
	}
}

type analyzeRequest struct {
	Text string `json:"text"`
	Mood string `json:"mood,omitempty"`
}

type analyzeResponse struct {
	Mood    models.MoodCategory `json:"mood"`
	Counts  map[string]int      `json:"counts"`
	Total   int                 `json:"total"`
	Summary string              `json:"summary"`
}

func analyzeHandler(analyzer *analysis.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
			return
		}

		res := analyzer.AnalyzeText(req.Text)
		writeJSON(w, http.StatusOK, analyzeResponse{
			Mood:    analyzer.ComputeDominantMood(req.Text, req.Mood),
			Counts:  res.Counts,
			Total:   res.TotalMatches,
			Summary: analysis.Summary(res.Counts, res.TotalMatches),
		})
	}
}

type saveEntryRequest struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	Mood   string `json:"mood,omitempty"`
}

func saveEntryHandler(journalService *journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
			return
		}

		entry, err := journalService.Save(requestUser(r), mux.Vars(r)["date"], req.Text, req.Rating, req.Mood)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, entry)
	}
}

func getEntryHandler(journalService *journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry, ok := journalService.Get(requestUser(r), mux.Vars(r)["date"])
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Errorf("no entry for %s", mux.Vars(r)["date"]))
			return
		}
		writeJSON(w, http.StatusOK, entry)
	}
}

func deleteEntryHandler(journalService *journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := journalService.Delete(requestUser(r), mux.Vars(r)["date"]); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Entry deleted"})
	}
}

func listEntriesHandler(journalService *journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rating := -1
		if v := r.URL.Query().Get("rating"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < 0 || parsed > 5 {
				writeError(w, http.StatusBadRequest, fmt.Errorf("rating must be an integer between 0 and 5"))
				return
			}
			rating = parsed
		}
		writeJSON(w, http.StatusOK, journalService.List(requestUser(r), rating))
	}
}

func statsHandler(journalService *journal.Service, defaultDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := defaultDays
		if v := r.URL.Query().Get("days"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < 0 {
				writeError(w, http.StatusBadRequest, fmt.Errorf("days must be a non-negative integer"))
				return
			}
			days = parsed
		}
		writeJSON(w, http.StatusOK, journalService.WindowStats(requestUser(r), days))
	}
}

func streaksHandler(journalService *journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, journalService.Streaks(requestUser(r)))
	}
}

func achievementsHandler(journalService *journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, journalService.Achievements(requestUser(r)))
	}
}
