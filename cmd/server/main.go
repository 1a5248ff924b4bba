package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"mathboard/internal/config"
	"mathboard/internal/database"
	"mathboard/internal/handler"
	"mathboard/internal/middleware"
	"mathboard/internal/quiz"
	"mathboard/internal/repository"
	"mathboard/internal/session"
)

func main() {
	// .env опционален, в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используется окружение")
	}

	cfg := config.Load()

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Ошибка инициализации БД: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Ошибка миграций: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	resultRepo := repository.NewResultRepository(db)

	store := session.NewStore(cfg.Session)
	gen := quiz.NewGenerator()

	registrationHandler := handler.NewRegistrationHandler(userRepo, store)
	loginHandler := handler.NewLoginHandler(userRepo, store)
	logoutHandler := handler.NewLogoutHandler(store)
	boardHandler := handler.NewBoardHandler(commentRepo, questionRepo, gen, store, cfg.Policy)
	quizHandler := handler.NewQuizHandler(questionRepo, resultRepo, store, cfg.Policy)
	commentHandler := handler.NewCommentHandler(commentRepo, store, cfg.Policy)

	mux := http.NewServeMux()
	mux.HandleFunc("/", boardHandler.Board)
	mux.HandleFunc("/login", loginHandler.Login)
	mux.HandleFunc("/logout", logoutHandler.Logout)
	mux.HandleFunc("/signup", registrationHandler.Register)
	mux.HandleFunc("/maths", quizHandler.CheckAnswers)
	mux.HandleFunc("/like/", commentHandler.Like)
	mux.HandleFunc("/delete/", commentHandler.Delete)
	mux.HandleFunc("/username/", commentHandler.UsernamePage)

	publicPaths := []string{"/login", "/signup", "/static/"}
	if !cfg.Policy.LikeRequiresAuth {
		publicPaths = append(publicPaths, "/like/")
	}

	srv := middleware.RequireAuth(store, publicPaths)(mux)

	log.Println("Сервер запущен на порту", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
