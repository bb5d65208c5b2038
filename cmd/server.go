package cmd

import (
	"fmt"
	"landgrid/internal/chain"
	"landgrid/internal/config"
	"landgrid/internal/core"
	"landgrid/internal/db"
	"landgrid/internal/http/handler"
	"landgrid/internal/http/handler/middleware"
	"landgrid/internal/http/payload"
	"landgrid/internal/http/server"
	"landgrid/internal/secret"
	"landgrid/internal/store"
	"landgrid/pkg/log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("landgrid", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	gridStore := store.NewGridStore(dbConn)
	if err := gridStore.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	rpcClient, err := rpc.Dial(config.NodeRPCURL)
	if err != nil {
		logger.Errorw("node rpc connection failed", "error", err)
		return err
	}
	chainClient := chain.NewClient(rpcClient, config.ReceiptWaitAttempts, config.ReceiptWaitInterval)

	registry, err := loadTokenRegistry(config.TokenRegistryFile)
	if err != nil {
		logger.Errorw("failed to load token registry", "error", err)
		return err
	}

	box := secret.NewBox(config.WalletEncryptionKey)

	pricing := core.Pricing{
		BasePrice:     config.LandBasePrice,
		TokenContract: common.HexToAddress(config.TokenContract),
		Recipient:     common.HexToAddress(config.RecipientAddress),
		TokenDecimals: config.TokenDecimals,
	}

	// engines
	reconciler := core.NewPurchaseReconciler(logger, gridStore, chainClient, pricing)
	claimEngine := core.NewClaimEngine(logger, gridStore, box)
	dropEngine := core.NewDropEngine(logger, gridStore, chainClient, box, registry)
	landEditor := core.NewLandEditor(logger, gridStore)
	gridService := core.NewGridService(logger, gridStore)

	// handler
	gridHlr := handler.NewGridHandler(
		logger,
		payload.DecodeValidator{},
		reconciler,
		claimEngine,
		dropEngine,
		landEditor,
		gridService)

	// middleware
	mux := http.NewServeMux()
	var hdlr http.Handler = mux
	hdlr = middleware.NewCORSMiddleware(splitOrigins(config.AllowedOrigins)).CORS(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// the viewport endpoint is the hot read path, keep it rate limited per IP
	viewLimiter := middleware.NewRateLimitMiddleware(5, 10)

	// register routes
	mux.HandleFunc(handler.SubmitPurchase, gridHlr.HandleSubmitPurchase)
	mux.HandleFunc(handler.ConfirmPurchase, gridHlr.HandleConfirmPurchase)
	mux.HandleFunc(handler.ClaimItem, gridHlr.HandleClaimItem)
	mux.HandleFunc(handler.ClaimedSecret, gridHlr.HandleClaimedSecret)
	mux.HandleFunc(handler.CreateDrop, gridHlr.HandleCreateDrop)
	mux.HandleFunc(handler.ConfirmDrop, gridHlr.HandleConfirmDrop)
	mux.HandleFunc(handler.UpdateParcels, gridHlr.HandleUpdateParcels)
	mux.Handle(handler.GetViewport, viewLimiter.Limit(http.HandlerFunc(gridHlr.HandleGetViewport)))
	mux.HandleFunc(handler.GetStats, gridHlr.HandleGetStats)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	if sdErr := server.Shutdown(); sdErr != nil && err == nil {
		err = fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}

func loadTokenRegistry(path string) (*config.TokenRegistry, error) {
	return config.LoadTokenRegistry(path)
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
