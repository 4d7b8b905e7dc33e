package routes

import (
	"net/http"

	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/just-nibble/snapvcs/docs"
	"github.com/just-nibble/snapvcs/internal/http/handlers"
	"github.com/just-nibble/snapvcs/internal/http/middleware"
)

type Handlers struct {
	Repositories *handlers.RepositoryHandler
	Files        *handlers.FileHandler
	Commits      *handlers.CommitHandler
	Branches     *handlers.BranchHandler
	Status       *handlers.StatusHandler
	Health       *handlers.HealthHandler
}

func NewRouter(h Handlers, logger zerolog.Logger) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("POST /repositories", h.Repositories.InitRepository)
	router.HandleFunc("GET /repositories", h.Repositories.FetchAllRepositories)
	router.HandleFunc("GET /repositories/{repo}", h.Repositories.FetchRepository)
	router.HandleFunc("GET /repositories/{repo}/authors/top", h.Repositories.GetTopAuthors)

	router.HandleFunc("PUT /repositories/{repo}/files/{path...}", h.Files.WriteFile)
	router.HandleFunc("GET /repositories/{repo}/files/{path...}", h.Files.ReadFile)
	router.HandleFunc("DELETE /repositories/{repo}/files/{path...}", h.Files.DeleteFile)
	router.HandleFunc("GET /repositories/{repo}/tree", h.Files.ListTree)

	router.HandleFunc("POST /repositories/{repo}/commits", h.Commits.Commit)
	router.HandleFunc("GET /repositories/{repo}/commits/{id}", h.Commits.ShowCommit)
	router.HandleFunc("POST /repositories/{repo}/checkout", h.Commits.Checkout)

	router.HandleFunc("POST /repositories/{repo}/branches", h.Branches.CreateBranch)
	router.HandleFunc("GET /repositories/{repo}/branches", h.Branches.ListBranches)
	router.HandleFunc("GET /repositories/{repo}/branches/{branch}/log", h.Commits.Log)
	router.HandleFunc("GET /repositories/{repo}/branches/{branch}/status", h.Status.Status)
	router.HandleFunc("GET /repositories/{repo}/branches/{branch}/diff/{path...}", h.Status.Diff)

	router.HandleFunc("GET /health", h.Health.Health)
	// Serve Swagger documentation
	router.HandleFunc("GET /swagger/", httpSwagger.WrapHandler)

	return middleware.Recoverer(logger)(middleware.RequestLogger(logger)(router))
}
