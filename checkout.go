// Package checkout is the embeddable checkout core for the Bytesme
// storefront: voucher lookup and evaluation, the locally persisted
// applied-voucher slot, and order placement against the backend API.
package checkout

import (
	"log/slog"
	"os"
	"strings"

	"bytesme-checkout/internal/domain/cart"
	"bytesme-checkout/internal/domain/order"
	"bytesme-checkout/internal/domain/voucher"
	"bytesme-checkout/internal/infra/api"
	"bytesme-checkout/internal/infra/readstore"
	"bytesme-checkout/internal/infra/repository"
	"bytesme-checkout/internal/pkg/clock"
	"bytesme-checkout/internal/pkg/config"
	"bytesme-checkout/internal/usecase/commands"
	"bytesme-checkout/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// Aliases exported for host applications; the implementations live under
// internal following the usual layering.
type (
	Config      = config.Config
	Voucher     = voucher.Voucher
	Code        = voucher.Code
	Evaluation  = voucher.Evaluation
	Reason      = voucher.Reason
	Cart        = cart.Cart
	Line        = cart.Line
	TokenSource = api.TokenSource

	VoucherView        = queries.VoucherView
	GiftProductView    = queries.GiftProductView
	CheckoutQuote      = queries.CheckoutQuote
	ApplyVoucherResult = commands.ApplyVoucherResult
	PlaceOrderParams   = commands.PlaceOrderParams
	PlaceOrderResult   = commands.PlaceOrderResult
)

// Sentinels hosts are expected to match with errors.Is.
var (
	ErrVoucherNotFound = commands.ErrVoucherNotFound
	ErrVoucherRejected = commands.ErrVoucherRejected
	ErrNoItemsSelected = order.ErrNoItemsSelected
	ErrInvalidCode     = voucher.ErrInvalidCode
)

func LoadConfig() (Config, error) {
	return config.LoadConfig()
}

func NewCart(lines []Line) (*Cart, error) {
	return cart.NewCart(lines)
}

func NewStaticTokenSource(token string) TokenSource {
	return api.NewStaticTokenSource(token)
}

// Client bundles the checkout commands and voucher queries behind one
// handle. Construct it with New, or through the fx Module.
type Client struct {
	Checkout commands.CheckoutCommands
	Vouchers queries.VoucherQueries

	rdb *redis.Client
}

func New(cfg Config, tokens TokenSource) (*Client, error) {
	logger := NewLogger(cfg.Log)

	apiClient, err := api.NewClient(cfg.API, tokens)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	clk := clock.NewRealClock()
	reads := readstore.NewVoucherReadStore(apiClient, logger)
	applied := repository.NewAppliedVoucherRepository(rdb, cfg.Store, logger)
	account := repository.NewAccountVoucherRepository(apiClient, logger)
	orders := repository.NewOrderRepository(apiClient, logger)

	return &Client{
		Checkout: commands.NewCheckoutCommands(reads, account, applied, orders, clk, logger),
		Vouchers: queries.NewVoucherQueries(reads, clk),
		rdb:      rdb,
	}, nil
}

// Close releases the local store connection. The HTTP client needs no
// explicit shutdown.
func (c *Client) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func NewLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
