package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/vaani-labs/vaani-backend/internal/api/handlers"
	"github.com/vaani-labs/vaani-backend/internal/api/middleware"
	"github.com/vaani-labs/vaani-backend/internal/config"
	"github.com/vaani-labs/vaani-backend/internal/speech"
	"github.com/vaani-labs/vaani-backend/internal/synthesis"
	"github.com/vaani-labs/vaani-backend/internal/translation"
)

// Router wires the collaborator clients into the HTTP surface. Collaborators
// are constructed by the caller and injected, so handlers hold no hidden
// process-wide state.
type Router struct {
	mux         *chi.Mux
	cfg         *config.Config
	translator  translation.Translator
	recognizer  speech.Recognizer
	synthesizer synthesis.Synthesizer
	detector    handlers.LanguageDetector
}

func NewRouter(
	cfg *config.Config,
	translator translation.Translator,
	recognizer speech.Recognizer,
	synthesizer synthesis.Synthesizer,
	detector handlers.LanguageDetector,
) *Router {
	return &Router{
		mux:         chi.NewRouter(),
		cfg:         cfg,
		translator:  translator,
		recognizer:  recognizer,
		synthesizer: synthesizer,
		detector:    detector,
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(rt.cfg.CORS.AllowedOrigins))

	rl := middleware.NewRateLimiter(100, 200)
	r.Use(rl.Limit)

	r.Get("/", handlers.Root)
	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/languages", handlers.Languages)

		translateH := handlers.NewTranslateHandler(rt.translator)
		r.Post("/translate", translateH.Translate)

		speechH := handlers.NewSpeechToTextHandler(rt.recognizer, rt.detector)
		r.Post("/speech-to-text", speechH.SpeechToText)

		ttsH := handlers.NewTextToSpeechHandler(rt.synthesizer)
		r.Post("/text-to-speech", ttsH.TextToSpeech)
	})

	return r
}
