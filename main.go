package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"khatapro-client/client"
	"khatapro-client/config"
	"khatapro-client/services"
	"khatapro-client/session"
	"khatapro-client/storage"
	"khatapro-client/utils"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	cmd := flag.String("cmd", "dashboard", "Command: login|logout|dashboard|customers|transactions|products|adjust-stock|daemon")
	phone := flag.String("phone", "", "Phone number (login)")
	password := flag.String("password", "", "Password (login)")
	customerID := flag.String("customer", "", "Customer id filter (transactions)")
	productID := flag.String("product", "", "Product id (adjust-stock)")
	delta := flag.Int("delta", 1, "Stock delta (adjust-stock)")
	flag.Parse()

	cfg := config.Load()
	logger := utils.NewLogger(cfg.Logger)
	defer logger.Sync()

	store, err := storage.NewFileStore(cfg.Storage.Path)
	if err != nil {
		logger.Fatal("failed to open local store", zap.Error(err))
	}
	sessions := session.NewManager(store, logger)
	defer sessions.Close()
	api := client.New(cfg, store, sessions, logger)

	ctx := context.Background()
	if err := run(ctx, *cmd, api, store, sessions, cfg, logger, cliArgs{
		phone:      *phone,
		password:   *password,
		customerID: *customerID,
		productID:  *productID,
		delta:      *delta,
	}); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

type cliArgs struct {
	phone      string
	password   string
	customerID string
	productID  string
	delta      int
}

func run(ctx context.Context, cmd string, api *client.Client, store storage.Store, sessions *session.Manager, cfg *config.Config, logger *zap.Logger, args cliArgs) error {
	switch cmd {
	case "login":
		if err := utils.ValidatePhone(args.phone); err != nil {
			return err
		}
		auth, err := api.Login(ctx, args.phone, args.password)
		if err != nil {
			return err
		}
		fmt.Println("Logged in as", auth.Business.BusinessName)
		return nil

	case "logout":
		if err := api.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil

	case "dashboard":
		summary, err := api.Dashboard(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("To receive: %.2f  To pay: %.2f\n", summary.TotalCredit, summary.TotalPayment)
		for _, cu := range summary.RecentCustomers {
			fmt.Printf("  %-24s %10.2f\n", cu.Name, cu.Balance)
		}
		return nil

	case "customers":
		customers, err := api.Customers(ctx)
		if err != nil {
			return err
		}
		for _, cu := range customers {
			fmt.Printf("%s  %-24s %-12s %10.2f\n", cu.ID, cu.Name, cu.PhoneNumber, cu.Balance)
		}
		return nil

	case "transactions":
		txns, err := api.Transactions(ctx, args.customerID)
		if err != nil {
			return err
		}
		for _, t := range txns {
			fmt.Printf("%s  %-8s %10.2f  %s\n", t.CreatedAt, t.Type, t.Amount, t.Notes)
		}
		return nil

	case "products":
		inventory := services.NewInventoryService(api, store, services.CacheConfig{TTL: cfg.Sync.CacheTTL}, logger)
		products, fetched, err := inventory.OnFocus(ctx)
		if err != nil {
			return err
		}
		source := "cache"
		if fetched {
			source = "server"
		}
		fmt.Printf("%d products (%s)\n", len(products), source)
		for _, p := range products {
			marker := ""
			if p.StockQuantity <= p.LowStockThreshold {
				marker = "  LOW"
			}
			fmt.Printf("%s  %-24s %8.2f  x%d%s\n", p.ID, p.Name, p.Price, p.StockQuantity, marker)
		}
		return nil

	case "adjust-stock":
		inventory := services.NewInventoryService(api, store, services.CacheConfig{TTL: cfg.Sync.CacheTTL}, logger)
		if _, err := inventory.Refresh(ctx); err != nil {
			return err
		}
		return inventory.AdjustStock(ctx, args.productID, args.delta)

	case "daemon":
		return runDaemon(ctx, api, store, sessions, cfg, logger)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// runDaemon keeps the product cache warm on a schedule and reacts to
// session changes until interrupted.
func runDaemon(ctx context.Context, api *client.Client, store storage.Store, sessions *session.Manager, cfg *config.Config, logger *zap.Logger) error {
	inventory := services.NewInventoryService(api, store, services.CacheConfig{TTL: cfg.Sync.CacheTTL}, logger)

	sync := services.NewSyncService(logger)
	err := sync.Add("products", cfg.Sync.RefreshInterval, services.RefreshFunc(func(ctx context.Context) error {
		_, err := inventory.Refresh(ctx)
		return err
	}))
	if err != nil {
		return err
	}
	sync.Start()
	defer sync.Stop()

	states, subID := sessions.Subscribe()
	defer sessions.Unsubscribe(subID)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("daemon running", zap.String("refresh", cfg.Sync.RefreshInterval.String()))
	for {
		select {
		case state, ok := <-states:
			if !ok {
				return nil
			}
			if !state.Authenticated {
				logger.Info("session ended, stopping daemon", zap.String("reason", string(state.Reason)))
				return nil
			}
		case sig := <-sigs:
			logger.Info("shutting down", zap.String("signal", strings.ToUpper(sig.String())))
			return nil
		}
	}
}
