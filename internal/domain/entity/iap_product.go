package entity

import (
	"time"
)

const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

const (
	IapStatusActive   = "active"
	IapStatusInactive = "inactive"
	IapStatusPending  = "pending"
)

type IapPrice struct {
	Currency  string  `json:"currency" firestore:"currency"`
	Amount    float64 `json:"amount" firestore:"amount"`
	Formatted string  `json:"formatted" firestore:"formatted"`
}

// IapProduct mirrors one store-listed in-app product. The document key is the
// store-assigned SKU, never a generated ID. Store-origin fields (name,
// description, prices, status, lastSynced, syncError) are written by the sync
// job only; link fields (linkedProductId, isLinked) are written by the link
// maintainer only. IsLinked must always equal LinkedProductID != "".
type IapProduct struct {
	Platform    string     `json:"platform" firestore:"platform"`
	SKU         string     `json:"sku" firestore:"sku"`
	Name        string     `json:"name" firestore:"name"`
	Description string     `json:"description" firestore:"description"`
	Prices      []IapPrice `json:"prices" firestore:"prices"`
	Status      string     `json:"status" firestore:"status"`

	LinkedProductID string `json:"linked_product_id,omitempty" firestore:"linkedProductId"`
	IsLinked        bool   `json:"is_linked" firestore:"isLinked"`

	LastSynced time.Time `json:"last_synced" firestore:"lastSynced"`
	SyncError  string    `json:"sync_error,omitempty" firestore:"syncError"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// PreferredPrice picks the price entry shown in admin listings, falling back
// to the first entry the store reported.
func (p *IapProduct) PreferredPrice() *IapPrice {
	preferred := []string{"INR", "USD", "EUR"}
	for _, currency := range preferred {
		for i := range p.Prices {
			if p.Prices[i].Currency == currency {
				return &p.Prices[i]
			}
		}
	}
	if len(p.Prices) > 0 {
		return &p.Prices[0]
	}
	return nil
}

// IapSyncPatch is the store-origin field subset. The sync job writes these
// and nothing else, so a scheduled sync can never clobber a link.
type IapSyncPatch struct {
	Name        string
	Description string
	Prices      []IapPrice
	Status      string
	LastSynced  time.Time
}

// IapLinkPatch is the link field subset, owned by the link maintainer.
// An empty LinkedProductID clears the link.
type IapLinkPatch struct {
	LinkedProductID string
	IsLinked        bool
}

// SyncStatus is held in the fixed sentinel document alongside the real
// product records so the admin UI can always show last-sync state.
type SyncStatus struct {
	LastSync time.Time `json:"last_sync" firestore:"lastSync"`
	Success  bool      `json:"success" firestore:"success"`
	Platform string    `json:"platform" firestore:"platform"`
	Total    int       `json:"total" firestore:"total"`
	Created  int       `json:"created" firestore:"created"`
	Updated  int       `json:"updated" firestore:"updated"`
	Failed   int       `json:"failed" firestore:"failed"`
	Error    string    `json:"error,omitempty" firestore:"error"`
}
