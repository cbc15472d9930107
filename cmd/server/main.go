package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"instapost/internal/common"
	"instapost/internal/dbmysql"
	"instapost/internal/wire"
)

func main() {
	log.Println("Starting Instapost server...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app, cleanup, err := wire.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	// Migrations run here, at startup, not inside providers.
	if err := dbmysql.Migrate(app.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	router := setupRouter(app)

	addr := app.Config.Server.Host + ":" + app.Config.Server.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Instapost server running on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Instapost server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("Instapost server stopped")
}

func setupRouter(app *wire.Application) http.Handler {
	r := mux.NewRouter()

	r.Use(common.LoggingMiddleware)
	r.Use(common.CORSMiddleware)
	r.Use(common.AuthMiddleware([]string{"/auth", "/media", "/ws", "/health"}))

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/register", app.Users.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/token", app.Users.Token).Methods(http.MethodPost)

	// Media
	r.HandleFunc("/media/{fileId}", app.Media.Serve).Methods(http.MethodGet)
	r.HandleFunc("/users/upload", app.Media.Upload).Methods(http.MethodPost)

	// Posts. Literal segments register before the {handle} wildcards.
	r.HandleFunc("/users/create", app.Feed.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/users/posts/{postId}", app.Feed.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/users/posts/{postId}", app.Feed.DeletePost).Methods(http.MethodDelete)

	// Social graph
	r.HandleFunc("/users", app.Users.Search).Methods(http.MethodGet)
	r.HandleFunc("/users/follow", app.Users.Follow).Methods(http.MethodPost)
	r.HandleFunc("/users/unfollow", app.Users.Unfollow).Methods(http.MethodPost)
	r.HandleFunc("/users/like", app.Likes.Like).Methods(http.MethodPost)
	r.HandleFunc("/users/unlike", app.Likes.Unlike).Methods(http.MethodPost)

	// Comments
	r.HandleFunc("/users/comment", app.Comments.Create).Methods(http.MethodPost)
	r.HandleFunc("/users/comments/{postId}", app.Comments.PostComments).Methods(http.MethodGet)

	r.HandleFunc("/users/{handle}/suggestions", app.Users.Suggestions).Methods(http.MethodGet)
	r.HandleFunc("/users/{handle}/followerPosts", app.Feed.HomeFeed).Methods(http.MethodGet)
	r.HandleFunc("/users/{handle}/comments", app.Comments.UserComments).Methods(http.MethodGet)
	r.HandleFunc("/users/{handle}", app.Users.Profile).Methods(http.MethodGet)
	r.HandleFunc("/users/{handle}", app.Users.Update).Methods(http.MethodPatch)
	r.HandleFunc("/users/{handle}", app.Users.Delete).Methods(http.MethodDelete)

	// Realtime relay
	r.HandleFunc("/ws", app.Chat.ServeWS).Methods(http.MethodGet)

	return r
}
