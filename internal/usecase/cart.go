package usecase

import (
	"github.com/DRSN-tech/retail-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// CartItem — позиция корзины для подсчёта итогов.
// Цена в копейках, ставка налога в базисных пунктах.
type CartItem struct {
	PriceCents int64
	Quantity   int64
	TaxBP      int64
}

// CartTotals — итоги корзины. Все суммы в копейках.
type CartTotals struct {
	TotalItems    int64
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
}

// Aggregate считает итоги по позициям. Чистая функция без побочных эффектов,
// используется одинаково для отображения корзины и для итогов заказа.
//
// subtotal = Σ price*qty (точно в копейках);
// tax = Σ price*qty*bp / 10000 — округление половиной от нуля выполняется
// один раз, после суммирования, а не по каждой позиции;
// total = subtotal + tax.
// Пустой вход даёт нулевые итоги, это не ошибка.
func Aggregate(items []CartItem) CartTotals {
	var (
		totalItems   int64
		subtotal     int64
		taxNumerator = decimal.Zero
	)

	for _, item := range items {
		line := item.PriceCents * item.Quantity
		totalItems += item.Quantity
		subtotal += line
		taxNumerator = taxNumerator.Add(
			decimal.NewFromInt(line).Mul(decimal.NewFromInt(item.TaxBP)),
		)
	}

	tax := taxNumerator.DivRound(decimal.NewFromInt(10000), 0).IntPart()

	return CartTotals{
		TotalItems:    totalItems,
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
	}
}

func lineItemsToCartItems(items []domain.OrderLineItem) []CartItem {
	cartItems := make([]CartItem, 0, len(items))
	for _, item := range items {
		cartItems = append(cartItems, CartItem{
			PriceCents: item.PriceCents,
			Quantity:   item.Quantity,
			TaxBP:      item.TaxBP,
		})
	}
	return cartItems
}
