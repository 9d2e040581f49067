package entity

import "time"

// Session is the persisted token+user pair for one signed-in browser,
// keyed by the session cookie.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      *User     `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CheckoutSession is the explicit cart-to-checkout hand-off: the selected
// cart item ids live here, not in a shared storage key.
type CheckoutSession struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	CartItemIDs []string  `json:"cartItemIds"`
	CreatedAt   time.Time `json:"createdAt"`
}
