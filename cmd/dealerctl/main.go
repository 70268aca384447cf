// dealerctl is a small operator CLI over the dealer platform client. It keeps
// a session on disk between invocations, so "login --remember" followed by
// "orders" works the way the storefront does across browser restarts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/core/ports"
	"github.com/evamobilya/dealer-client/internal/core/service"
	"github.com/evamobilya/dealer-client/internal/infrastructure/api"
	"github.com/evamobilya/dealer-client/internal/infrastructure/storage"
	"github.com/evamobilya/dealer-client/internal/pkg/config"
	"github.com/evamobilya/dealer-client/internal/pkg/events"
	"github.com/evamobilya/dealer-client/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	durable, err := durableTier(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("session store unavailable")
	}
	repo := storage.NewSessionRepository(durable, storage.NewMemoryStore())

	bus := events.NewExpiryBus()
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, bus, log)

	sess := service.NewSessionService(api.NewAuthAPI(client), repo, bus, log)
	sess.Initialize(ctx)

	cart := service.NewCartService(api.NewCartAPI(client), sess, log)
	notifications := service.NewNotificationService(api.NewNotificationAPI(client), sess, service.NotificationOptions{
		FeedCooldown:   cfg.Notification.FeedCooldown,
		UnreadCooldown: cfg.Notification.UnreadCooldown,
		PollInterval:   cfg.Notification.PollInterval,
		PageSize:       cfg.Notification.PageSize,
	}, log)
	orders := service.NewOrderService(api.NewOrderAPI(client), sess, log)

	sess.OnSessionChange(cart.OnSessionChanged)
	sess.OnSessionChange(notifications.OnSessionChanged)

	if err := run(ctx, os.Args[1], os.Args[2:], sess, cart, notifications, orders); err != nil {
		log.Error().Err(err).Str("command", os.Args[1]).Msg("command failed")
		os.Exit(1)
	}
}

func durableTier(ctx context.Context, cfg *config.Config) (ports.KVStore, error) {
	if cfg.Redis.Addr != "" {
		client, err := storage.ConnectRedis(ctx, storage.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client, ""), nil
	}
	return storage.NewFileStore(cfg.Session.File)
}

func run(ctx context.Context, command string, args []string, sess *service.SessionService, cart *service.CartService, notifications *service.NotificationService, orders *service.OrderService) error {
	switch command {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		username := fs.String("username", "", "dealer username")
		password := fs.String("password", "", "dealer password")
		remember := fs.Bool("remember", false, "persist the session across invocations")
		_ = fs.Parse(args)

		res := sess.Login(ctx, *username, *password, *remember)
		fmt.Println(res.Message)
		if !res.Success {
			return fmt.Errorf("login rejected")
		}
		if u := sess.User(); u != nil {
			fmt.Printf("%s (%s)\n", u.DisplayName(), u.Role)
		}
		return nil

	case "logout":
		res := sess.Logout(ctx)
		fmt.Println(res.Message)
		return nil

	case "whoami":
		u := sess.User()
		if u == nil {
			fmt.Println("oturum yok")
			return nil
		}
		fmt.Printf("%s (%s) %s\n", u.DisplayName(), u.Role, sess.Currency())
		return nil

	case "cart":
		cart.Refresh(ctx)
		fmt.Printf("sepette %d kalem\n", cart.Count())
		return nil

	case "notifications":
		fs := flag.NewFlagSet("notifications", flag.ExitOnError)
		page := fs.Int("page", 1, "feed page")
		watch := fs.Bool("watch", false, "poll the unread count until interrupted")
		_ = fs.Parse(args)

		if err := notifications.FetchNotifications(ctx, 1, false); err != nil {
			return err
		}
		if *page > 1 {
			if err := notifications.GoToPage(ctx, *page); err != nil {
				return err
			}
		}
		for _, n := range notifications.Notifications() {
			marker := " "
			if !n.IsRead {
				marker = "*"
			}
			fmt.Printf("%s #%d %s\n", marker, n.ID, n.Title)
		}
		fmt.Printf("sayfa %d/%d, %d okunmamış\n", notifications.CurrentPage(), notifications.TotalPages(), notifications.UnreadCount())

		if *watch {
			notifications.StartPolling(ctx)
			<-ctx.Done()
		}
		return nil

	case "orders":
		fs := flag.NewFlagSet("orders", flag.ExitOnError)
		page := fs.Int("page", 1, "page")
		status := fs.String("status", "", "filter by status")
		_ = fs.Parse(args)

		result, err := orders.List(ctx, ports.ListOrdersFilter{Page: *page, Status: domain.OrderStatus(*status)})
		if err != nil {
			return err
		}
		for _, o := range result.Items {
			fmt.Printf("#%d %s %s %.2f %s\n", o.ID, o.CreatedAt.Format(time.DateOnly), o.Status, o.Total, o.Currency)
		}
		fmt.Printf("sayfa %d/%d\n", result.Page, result.TotalPages)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: dealerctl <command> [flags]

commands:
  login   -username -password [-remember]
  logout
  whoami
  cart
  notifications [-page N] [-watch]
  orders [-page N] [-status S]`)
}
