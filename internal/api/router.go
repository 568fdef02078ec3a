package api

import "github.com/gorilla/mux"

// NewRouter wires every endpoint. Public routes are registered before the
// authenticated subrouter so they bypass the token check.
func NewRouter(h *ApiHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.Root).Methods("GET")
	r.HandleFunc("/health", h.Health).Methods("GET")

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/auth/register", h.Register).Methods("POST")
	apiRouter.HandleFunc("/auth/login", h.Login).Methods("POST")
	apiRouter.HandleFunc("/users/leaderboard", h.Leaderboard).Methods("GET")
	apiRouter.HandleFunc("/lessons/", h.GetLevels).Methods("GET")
	apiRouter.HandleFunc("/lessons/{lesson_id:[0-9]+}", h.GetLesson).Methods("GET")
	apiRouter.HandleFunc("/shop/items", h.GetShopItems).Methods("GET")

	s := apiRouter.PathPrefix("/").Subrouter()
	s.Use(h.AuthMiddleware)
	s.HandleFunc("/auth/me", h.Me).Methods("GET")
	s.HandleFunc("/users/me", h.Me).Methods("GET")
	s.HandleFunc("/users/me", h.UpdateProfile).Methods("PUT")
	s.HandleFunc("/progress/submit", h.SubmitProgress).Methods("POST")
	s.HandleFunc("/progress/", h.GetProgress).Methods("GET")
	s.HandleFunc("/mistakes/", h.GetMistakes).Methods("GET")
	s.HandleFunc("/mistakes/{id:[0-9]+}/master", h.MarkMastered).Methods("POST")
	s.HandleFunc("/shop/buy", h.BuyItem).Methods("POST")

	return r
}
