package gateway

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"legalease/internal/dashboard"
)

// NewMux routes the dashboard API.
func NewMux(ctrl *dashboard.Controller, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handlers{ctrl: ctrl, logger: logger}

	r := chi.NewRouter()
	r.Use(cors)
	r.Route("/api", func(r chi.Router) {
		r.Post("/analysis", h.runAnalysis)
		r.Post("/comparison", h.runComparison)
		r.Get("/state", h.state)
		r.Post("/reset", h.reset)
		r.Post("/language", h.setLanguage)

		r.Get("/history", h.listHistory)
		r.Get("/history/{id}", h.getHistory)
		r.Post("/history/{id}/open", h.openHistory)
		r.Delete("/history/{id}", h.deleteHistory)

		r.Get("/export/markdown", h.exportMarkdown)
		r.Get("/export/print", h.exportPrint)

		r.Get("/chat/ws", h.chatSocket)
	})
	return r
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length")
		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}
