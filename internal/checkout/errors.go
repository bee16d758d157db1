package checkout

import "errors"

var (
	// ErrNoCart means checkout was attempted without a resolved cart id.
	ErrNoCart = errors.New("no active cart to check out")

	// ErrEmptyCart means the cart has no lines.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

	// ErrIncompleteContact means a required guest contact field is blank.
	// Caught before any network call.
	ErrIncompleteContact = errors.New("please fill in all required fields")

	// ErrPaymentTimeout means the poller exhausted its attempt budget
	// without seeing a successful payment. Retryable by resubmitting.
	ErrPaymentTimeout = errors.New("payment timeout - please try again")
)
