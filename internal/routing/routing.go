package routing

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"learnhub/pkg/ai"
	"learnhub/pkg/handlers"
	"learnhub/pkg/lesson"
	"learnhub/pkg/quiz"
	"learnhub/pkg/realtime"
	"learnhub/pkg/user"
)

const defaultAddr = ":8082"

func InitRoutes(api *mux.Router, db *sql.DB, mongoDB *mongo.Database, hub *realtime.Hub, logger *slog.Logger) {

	userService := user.NewService(user.NewMySQLRepo(db))
	userHandler := handlers.NewUserHandler(userService, logger)

	lessonService := lesson.NewService(lesson.NewMongoRepo(mongoDB))
	lessonHandler := handlers.NewLessonHandler(lessonService, logger)

	quizService := quiz.NewService(quiz.NewMongoRepo(mongoDB))
	quizHandler := handlers.NewQuizHandler(quizService, logger)

	aiClient := ai.NewClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_BASE_URL"), logger)
	aiHandler := handlers.NewAIHandler(aiClient, hub, logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	authRouter := api.PathPrefix("/auth").Subrouter()
	lessonsRouter := api.PathPrefix("/lessons").Subrouter()
	quizzesRouter := api.PathPrefix("/quizzes").Subrouter()
	aiRouter := api.PathPrefix("/ai").Subrouter()

	/* auth routers */
	authRouter.HandleFunc("/register", userHandler.Register).Methods("POST").Name("register")
	authRouter.HandleFunc("/login", userHandler.Login).Methods("POST").Name("login")
	authRouter.HandleFunc("/profile", userHandler.Profile).Methods("GET")

	/* lesson routers */
	lessonsRouter.HandleFunc("", lessonHandler.Create).Methods("POST")
	lessonsRouter.HandleFunc("", lessonHandler.GetAll).Methods("GET")
	lessonsRouter.HandleFunc("/{lesson_id:[a-zA-Z0-9]+}", lessonHandler.GetByID).Methods("GET")
	lessonsRouter.HandleFunc("/{lesson_id:[a-zA-Z0-9]+}", lessonHandler.Update).Methods("PUT")
	lessonsRouter.HandleFunc("/{lesson_id:[a-zA-Z0-9]+}", lessonHandler.Delete).Methods("DELETE")

	/* quiz routers */
	quizzesRouter.HandleFunc("", quizHandler.Create).Methods("POST")
	quizzesRouter.HandleFunc("", quizHandler.GetAll).Methods("GET")
	quizzesRouter.HandleFunc("/{quiz_id:[a-zA-Z0-9]+}", quizHandler.GetByID).Methods("GET")
	quizzesRouter.HandleFunc("/{quiz_id:[a-zA-Z0-9]+}/submit", quizHandler.Submit).Methods("POST")

	/* ai routers */
	aiRouter.HandleFunc("/explain", aiHandler.Explain).Methods("POST")
	aiRouter.HandleFunc("/generate-quiz", aiHandler.GenerateQuiz).Methods("POST")

	api.HandleFunc("/health", handlers.Health).Methods("GET")
}

func StartServer(r *mux.Router) {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = defaultAddr
	}
	fmt.Println("\n\033[32m", "The server is running on http://localhost"+addr, "\033[0m")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
