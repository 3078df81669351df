package erc1155

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLenientDecode makes the store treat undecodable records as absent,
// substituting zero-value defaults instead of returning a *DecodeError.
// A corrupted record then becomes indistinguishable from one that never
// existed, silently resetting balances and approvals.
func WithLenientDecode() StoreOption {
	return func(s *Store) {
		s.lenient = true
	}
}
