package usecase

import (
	"sort"

	"github.com/groceryflow/backend/internal/domain"
)

// Defaults for stores the directory does not know about.
const (
	fallbackStoreETA = "45-60 min"
	fallbackStoreFee = 4.99
)

// BuildSplitProposal groups cart items by store and attaches directory
// metadata (name, ETA, delivery fee) to each group. Store groups are ordered
// by store ID so the proposal is deterministic for identical input.
//
// The proposal totals are exact sums over the per-store entries:
// TotalItems = sum of ItemCount, TotalDelivery = sum of DeliveryFee,
// Subtotal = sum of per-store Subtotal.
func BuildSplitProposal(items []domain.CartItem, stores domain.StoreDirectory) *domain.SplitProposal {
	groups := make(map[string]*domain.StoreGroup)

	for _, item := range items {
		group, ok := groups[item.StoreID]
		if !ok {
			group = &domain.StoreGroup{
				StoreID:     item.StoreID,
				StoreName:   item.StoreID,
				ETA:         fallbackStoreETA,
				DeliveryFee: fallbackStoreFee,
			}
			if stores != nil {
				if info, found := stores.Store(item.StoreID); found {
					group.StoreName = info.Name
					group.ETA = info.ETA
					group.DeliveryFee = info.DeliveryFee
				}
			}
			groups[item.StoreID] = group
		}

		group.ItemCount += item.Quantity
		group.Subtotal += item.Price * float64(item.Quantity)
	}

	storeIDs := make([]string, 0, len(groups))
	for id := range groups {
		storeIDs = append(storeIDs, id)
	}
	sort.Strings(storeIDs)

	proposal := &domain.SplitProposal{
		Stores: make([]domain.StoreGroup, 0, len(storeIDs)),
	}
	for _, id := range storeIDs {
		group := groups[id]
		proposal.Stores = append(proposal.Stores, *group)
		proposal.TotalItems += group.ItemCount
		proposal.TotalDelivery += group.DeliveryFee
		proposal.Subtotal += group.Subtotal
	}

	return proposal
}
