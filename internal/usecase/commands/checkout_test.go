//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bytesme-checkout/internal/domain/cart"
	"bytesme-checkout/internal/domain/order"
	"bytesme-checkout/internal/domain/voucher"
	"bytesme-checkout/internal/infra"
	"bytesme-checkout/internal/pkg/clock"
	"bytesme-checkout/internal/pkg/errs"
	"bytesme-checkout/internal/usecase/commands"
	"bytesme-checkout/internal/usecase/shared"
	"bytesme-checkout/tests/common/builder"
	commandsmock "bytesme-checkout/tests/mock/commands"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type commandMocks struct {
	vouchers *commandsmock.MockVoucherFinder
	account  *commandsmock.MockVoucherAccountGateway
	applied  *commandsmock.MockAppliedVoucherRepository
	orders   *commandsmock.MockOrderGateway
}

func newCheckoutCommands(t *testing.T) (commands.CheckoutCommands, commandMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := commandMocks{
		vouchers: commandsmock.NewMockVoucherFinder(ctrl),
		account:  commandsmock.NewMockVoucherAccountGateway(ctrl),
		applied:  commandsmock.NewMockAppliedVoucherRepository(ctrl),
		orders:   commandsmock.NewMockOrderGateway(ctrl),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := commands.NewCheckoutCommands(
		m.vouchers, m.account, m.applied, m.orders,
		clock.NewFixedClock(testNow), logger,
	)
	return uc, m
}

func testCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart([]cart.Line{
		{ItemID: 1, ProductID: "prod-1", UnitPrice: 45000, Quantity: 3, Selected: true},
		{ItemID: 2, ProductID: "prod-2", UnitPrice: 80000, Quantity: 1, Selected: true},
		{ItemID: 3, ProductID: "prod-3", UnitPrice: 99000, Quantity: 2, Selected: false},
	})
	require.NoError(t, err)
	return c
}

func gatewayErr(kind infra.GatewayErrorKind) error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return infra.WrapGatewayErr(logger, kind, "boom", errs.New("underlying"))
}

func TestCheckoutCommands_ApplyVoucher(t *testing.T) {
	validBuilder := func() *builder.VoucherBuilder {
		return builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) {
			b.ExpiresAt = testNow.Add(24 * time.Hour)
		})
	}

	testCases := []struct {
		name       string
		code       string
		setupMocks func(m commandMocks)
		wantErr    error
		check      func(t *testing.T, result *commands.ApplyVoucherResult)
	}{
		{
			name:       "rejects malformed code before any lookup",
			code:       "a!",
			setupMocks: func(m commandMocks) {},
			wantErr:    voucher.ErrInvalidCode,
		},
		{
			name: "maps catalog miss to not found",
			code: "NOSUCH",
			setupMocks: func(m commandMocks) {
				m.vouchers.EXPECT().
					FindByCode(gomock.Any(), "NOSUCH").
					Return(nil, gatewayErr(infra.KindNotFound))
			},
			wantErr: commands.ErrVoucherNotFound,
		},
		{
			name: "marks upstream failures as lookup failure",
			code: "BYTESME10",
			setupMocks: func(m commandMocks) {
				m.vouchers.EXPECT().
					FindByCode(gomock.Any(), "BYTESME10").
					Return(nil, gatewayErr(infra.KindUpstreamFailure))
			},
			wantErr: commands.ErrVoucherLookupFailed,
		},
		{
			name: "rejects snapshots that fail domain validation",
			code: "BYTESME10",
			setupMocks: func(m commandMocks) {
				snap := validBuilder().With(func(b *builder.VoucherBuilder) {
					b.Value = 250 // out-of-range percentage
				}).BuildSnapshot()
				m.vouchers.EXPECT().
					FindByCode(gomock.Any(), "BYTESME10").
					Return(snap, nil)
			},
			wantErr: commands.ErrInvalidVoucherData,
		},
		{
			name: "expired voucher is a normal inapplicable result, no server round trip",
			code: "BYTESME10",
			setupMocks: func(m commandMocks) {
				snap := validBuilder().With(func(b *builder.VoucherBuilder) {
					b.ExpiresAt = testNow.Add(-time.Hour)
				}).BuildSnapshot()
				m.vouchers.EXPECT().
					FindByCode(gomock.Any(), "BYTESME10").
					Return(snap, nil)
			},
			check: func(t *testing.T, result *commands.ApplyVoucherResult) {
				assert.False(t, result.Applied)
				assert.Equal(t, voucher.ReasonExpired, result.Reason)
				require.NotNil(t, result.Voucher)
			},
		},
		{
			name: "server verdict overrides a passing local evaluation",
			code: "BYTESME10",
			setupMocks: func(m commandMocks) {
				snap := validBuilder().BuildSnapshot()
				m.vouchers.EXPECT().
					FindByCode(gomock.Any(), "BYTESME10").
					Return(snap, nil)
				m.vouchers.EXPECT().
					CheckApplicable(gomock.Any(), "BYTESME10", []int64{1, 2}).
					Return(false, "firstOrderOnly", nil)
			},
			check: func(t *testing.T, result *commands.ApplyVoucherResult) {
				assert.False(t, result.Applied)
				assert.Equal(t, voucher.ReasonFirstOrderOnly, result.Reason)
			},
		},
		{
			name: "account mirror failure aborts the apply",
			code: "BYTESME10",
			setupMocks: func(m commandMocks) {
				snap := validBuilder().BuildSnapshot()
				m.vouchers.EXPECT().
					FindByCode(gomock.Any(), "BYTESME10").
					Return(snap, nil)
				m.vouchers.EXPECT().
					CheckApplicable(gomock.Any(), "BYTESME10", gomock.Any()).
					Return(true, "", nil)
				m.account.EXPECT().
					Apply(gomock.Any(), "BYTESME10").
					Return(gatewayErr(infra.KindUpstreamFailure))
			},
			wantErr: commands.ErrVoucherApplyFailed,
		},
		{
			name: "applies and persists, normalizing the input code",
			code: "  bytesme10 ",
			setupMocks: func(m commandMocks) {
				snap := validBuilder().BuildSnapshot()
				m.vouchers.EXPECT().
					FindByCode(gomock.Any(), "BYTESME10").
					Return(snap, nil)
				m.vouchers.EXPECT().
					CheckApplicable(gomock.Any(), "BYTESME10", []int64{1, 2}).
					Return(true, "", nil)
				m.account.EXPECT().
					Apply(gomock.Any(), "BYTESME10").
					Return(nil)
				m.applied.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, result *commands.ApplyVoucherResult) {
				assert.True(t, result.Applied)
				assert.Equal(t, voucher.ReasonNone, result.Reason)
				// 10% of 215000
				assert.Equal(t, int64(21500), result.Discount)
			},
		},
		{
			name: "local persistence failure does not undo a successful apply",
			code: "BYTESME10",
			setupMocks: func(m commandMocks) {
				snap := validBuilder().BuildSnapshot()
				m.vouchers.EXPECT().
					FindByCode(gomock.Any(), "BYTESME10").
					Return(snap, nil)
				m.vouchers.EXPECT().
					CheckApplicable(gomock.Any(), "BYTESME10", gomock.Any()).
					Return(true, "", nil)
				m.account.EXPECT().
					Apply(gomock.Any(), "BYTESME10").
					Return(nil)
				m.applied.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(gatewayErr(infra.KindStoreFailure))
			},
			check: func(t *testing.T, result *commands.ApplyVoucherResult) {
				assert.True(t, result.Applied)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newCheckoutCommands(t)
			tc.setupMocks(m)

			result, err := uc.ApplyVoucher(context.Background(), tc.code, testCart(t), false)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result)
			tc.check(t, result)
		})
	}
}

func TestCheckoutCommands_ApplyVoucher_MinimumOrderValue(t *testing.T) {
	uc, m := newCheckoutCommands(t)

	minOrder := int64(500000)
	snap := builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) {
		b.ExpiresAt = testNow.Add(24 * time.Hour)
		b.MinOrderValue = &minOrder
	}).BuildSnapshot()

	m.vouchers.EXPECT().
		FindByCode(gomock.Any(), "BYTESME10").
		Return(snap, nil)

	result, err := uc.ApplyVoucher(context.Background(), "BYTESME10", testCart(t), false)

	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.Equal(t, voucher.ReasonMinimumOrderValue, result.Reason)
}

func TestCheckoutCommands_RemoveVoucher(t *testing.T) {
	t.Run("removes account-side then clears the local slot", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		m.account.EXPECT().Remove(gomock.Any()).Return(nil)
		m.applied.EXPECT().Clear(gomock.Any()).Return(nil)

		require.NoError(t, uc.RemoveVoucher(context.Background()))
	})

	t.Run("account failure surfaces and slot is left untouched", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		m.account.EXPECT().Remove(gomock.Any()).Return(gatewayErr(infra.KindUpstreamFailure))

		err := uc.RemoveVoucher(context.Background())
		require.ErrorIs(t, err, commands.ErrVoucherRemoveFailed)
	})

	t.Run("slot clear failure is tolerated", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		m.account.EXPECT().Remove(gomock.Any()).Return(nil)
		m.applied.EXPECT().Clear(gomock.Any()).Return(gatewayErr(infra.KindStoreFailure))

		require.NoError(t, uc.RemoveVoucher(context.Background()))
	})
}

func TestCheckoutCommands_AppliedVoucher(t *testing.T) {
	t.Run("returns the stored voucher", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		stored, err := builder.NewVoucherBuilder().BuildDomain()
		require.NoError(t, err)
		m.applied.EXPECT().Find(gomock.Any()).Return(stored, nil)

		got, err := uc.AppliedVoucher(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("store failure reads as no voucher applied", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		m.applied.EXPECT().Find(gomock.Any()).Return(nil, gatewayErr(infra.KindStoreFailure))

		got, err := uc.AppliedVoucher(context.Background())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestCheckoutCommands_PlaceOrder(t *testing.T) {
	params := func(t *testing.T) commands.PlaceOrderParams {
		return commands.PlaceOrderParams{
			AddressID:       7,
			PaymentMethodID: "cod",
			Cart:            testCart(t),
		}
	}

	t.Run("submits the applied voucher with the order", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		stored, err := builder.NewVoucherBuilder().BuildDomain()
		require.NoError(t, err)

		m.applied.EXPECT().Find(gomock.Any()).Return(stored, nil)

		var captured *order.Placement
		m.orders.EXPECT().
			Place(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *order.Placement, key uuid.UUID) (*shared.OrderConfirmation, error) {
				captured = p
				assert.NotEqual(t, uuid.Nil, key)
				return &shared.OrderConfirmation{OrderID: "order-1", Status: "pending"}, nil
			})

		result, err := uc.PlaceOrder(context.Background(), params(t))
		require.NoError(t, err)

		require.NotNil(t, captured)
		assert.Equal(t, int64(7), captured.AddressID())
		assert.Equal(t, "1,2", captured.SelectedItemIDsCSV())
		require.NotNil(t, result.VoucherCode)
		assert.Equal(t, "BYTESME10", *result.VoucherCode)
		assert.Equal(t, "order-1", result.Confirmation.OrderID)
	})

	t.Run("places without voucher when the slot is empty", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		m.applied.EXPECT().Find(gomock.Any()).Return(nil, nil)
		m.orders.EXPECT().
			Place(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *order.Placement, _ uuid.UUID) (*shared.OrderConfirmation, error) {
				assert.Nil(t, p.VoucherCode())
				return &shared.OrderConfirmation{OrderID: "order-2", Status: "pending"}, nil
			})

		result, err := uc.PlaceOrder(context.Background(), params(t))
		require.NoError(t, err)
		assert.Nil(t, result.VoucherCode)
	})

	t.Run("places without voucher when the slot cannot be read", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		m.applied.EXPECT().Find(gomock.Any()).Return(nil, gatewayErr(infra.KindStoreFailure))
		m.orders.EXPECT().
			Place(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *order.Placement, _ uuid.UUID) (*shared.OrderConfirmation, error) {
				assert.Nil(t, p.VoucherCode())
				return &shared.OrderConfirmation{OrderID: "order-3", Status: "pending"}, nil
			})

		_, err := uc.PlaceOrder(context.Background(), params(t))
		require.NoError(t, err)
	})

	t.Run("rejects an empty selection before any request", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		m.applied.EXPECT().Find(gomock.Any()).Return(nil, nil)

		empty, err := cart.NewCart([]cart.Line{
			{ItemID: 1, ProductID: "prod-1", UnitPrice: 45000, Quantity: 1, Selected: false},
		})
		require.NoError(t, err)

		_, err = uc.PlaceOrder(context.Background(), commands.PlaceOrderParams{
			AddressID:       7,
			PaymentMethodID: "cod",
			Cart:            empty,
		})
		require.ErrorIs(t, err, order.ErrNoItemsSelected)
	})

	t.Run("clears the slot when the server rejects the voucher", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		stored, err := builder.NewVoucherBuilder().BuildDomain()
		require.NoError(t, err)

		m.applied.EXPECT().Find(gomock.Any()).Return(stored, nil)
		m.orders.EXPECT().
			Place(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, gatewayErr(infra.KindVoucherRejected))
		m.applied.EXPECT().Clear(gomock.Any()).Return(nil)

		_, err = uc.PlaceOrder(context.Background(), params(t))
		require.ErrorIs(t, err, commands.ErrVoucherRejected)
	})

	t.Run("other upstream failures keep the slot intact", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		m.applied.EXPECT().Find(gomock.Any()).Return(nil, nil)
		m.orders.EXPECT().
			Place(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, gatewayErr(infra.KindUpstreamFailure))

		_, err := uc.PlaceOrder(context.Background(), params(t))
		require.ErrorIs(t, err, commands.ErrOrderPlacementFailed)
		assert.NotErrorIs(t, err, commands.ErrVoucherRejected)
	})
}
