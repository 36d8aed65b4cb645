package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"telegram-relay-service/internal/config"
	hrest "telegram-relay-service/internal/handler/http"
	"telegram-relay-service/internal/router"
	"telegram-relay-service/internal/usecase"
	"telegram-relay-service/pkg/telegram"
	"telegram-relay-service/pkg/template"
)

func NewServer(cfg config.AppConfig) *http.Server {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	if cfg.BotToken == "" || cfg.ChatID == "" {
		log.Println("⚠️ BOT_TOKEN or CHAT_ID not set; submissions will be rejected until configured")
	}

	// --- Clients ---
	tg := telegram.NewTelegramClient(cfg.BotToken)

	// --- Templates ---
	tmpl := template.NewTemplateService()

	// --- Usecases ---
	uc := usecase.NewRelayUsecase(cfg, tg, tmpl, logger)

	// --- Handlers ---
	h := hrest.NewRelayHandler(uc, cfg.DevMode, logger)

	// --- HTTP routes ---
	r := chi.NewRouter()
	r = router.SetupRoutes(r, h).(*chi.Mux)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
}
