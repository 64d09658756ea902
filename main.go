// TareasWebService is a web service that provides CRUD operations for tasks.
//
// It implements CRUD operations and uses MongoDB to store tasks as documents in a tasks collection.
// Incoming bodies are validated field by field and every failure is reported with a fixed message.
// The service also provides Prometheus metrics for monitoring and recording metrics.
// Cross-origin requests are allowed only for the origins configured at startup.
//
// The following endpoints are available:
//
//  1. GET /tasks - List tasks, optionally filtered with ?completed=true|false
//  2. POST /tasks - Create a new task
//  3. GET /tasks/{id} - Get a task by ID
//  4. PATCH /tasks/{id} - Update the submitted fields of a task
//  5. DELETE /tasks/{id} - Delete a task
//  6. GET /metrics - Display Prometheus metrics
//
// You may use godoc -http=:6060 to view the documentation in your browser.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TareasWebService/config"
	"TareasWebService/handlers"
	"TareasWebService/store"
	"TareasWebService/validation"

	"github.com/sirupsen/logrus"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/joho/godotenv"
)

var (
	errorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tareas_errors_total",
		Help: "Total number of errors occurred in the application.",
	}, []string{"endpoint"})
	endPointCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tareas_endpoint_calls_total",
		Help: "Total number of calls per endpoint.",
	}, []string{"endpoint"})
	log = logrus.New()
)

func main() {

	err := godotenv.Load()
	if err != nil {
		fmt.Println("Error loading .env file")
	}
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	prometheus.MustRegister(errorCounter)
	prometheus.MustRegister(endPointCounter)

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := store.Connect(connectCtx, cfg.MongoURI)
	cancelConnect()
	if err != nil {
		log.Fatal(err)
	}

	taskStore := store.NewMongoTaskStore(client.Database(cfg.Database).Collection(cfg.Collection))
	taskHandler := handlers.NewTaskHandler(taskStore, validation.New(), log, endPointCounter, errorCounter)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newRouter(taskHandler, cfg.AllowedOrigins),
	}

	go func() {
		log.Info("Server listening on port " + cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error(err)
	}
}

// newRouter wires the task endpoints and the metrics endpoint behind the
// CORS middleware.
func newRouter(taskHandler *handlers.TaskHandler, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tasks", taskHandler.ListTasksHandler)
	mux.HandleFunc("POST /tasks", taskHandler.CreateTaskHandler)
	mux.HandleFunc("GET /tasks/{id}", taskHandler.GetTaskHandler)
	mux.HandleFunc("PATCH /tasks/{id}", taskHandler.UpdateTaskHandler)
	mux.HandleFunc("DELETE /tasks/{id}", taskHandler.DeleteTaskHandler)
	mux.Handle("GET /metrics", promhttp.Handler())
	return corsMiddleware(mux, allowedOrigins)
}

// corsMiddleware is a middleware function that allows cross-origin requests
// from the configured origin allow-list. Preflight requests are answered
// here and never reach the handlers.
func corsMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		origin := req.Header.Get("Origin")
		if origin != "" && allowed[origin] {
			res.Header().Set("Access-Control-Allow-Origin", origin)
			res.Header().Set("Vary", "Origin")
		}
		if req.Method == http.MethodOptions {
			res.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			res.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			res.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(res, req)
	})
}
