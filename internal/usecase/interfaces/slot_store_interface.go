package interfaces

import "context"

//go:generate mockgen -source=slot_store_interface.go -destination=mocks/slot_store_mock.go -package=mock_interfaces

// ISlotStore is the injected persistence capability behind the project store:
// a single string-keyed slot with whole-value reads and writes.
//
// Contract:
//   - Get reports found=false (not an error) when the key has never been set.
//   - Set replaces the whole value; there are no partial writes.
//   - Remove of an absent key is a no-op.
type ISlotStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
