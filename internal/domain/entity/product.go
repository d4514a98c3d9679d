package entity

import (
	"time"
)

type Product struct {
	ID          string   `json:"id" firestore:"id"`
	Title       string   `json:"title" firestore:"title"`
	Description string   `json:"description" firestore:"description"`
	CategoryID  string   `json:"category_id" firestore:"categoryId"`
	Tags        []string `json:"tags" firestore:"tags"`

	// At most one linked in-app product per platform. A free product holds
	// neither.
	IapProductIDAndroid string `json:"iap_product_id_android,omitempty" firestore:"iapProductIdAndroid"`
	IapProductIDIOS     string `json:"iap_product_id_ios,omitempty" firestore:"iapProductIdIOS"`
	IsFree              bool   `json:"is_free" firestore:"isFree"`

	// Snapshot of the linked IAP's preferred price so listings don't join.
	DisplayPrice    float64 `json:"display_price,omitempty" firestore:"displayPrice"`
	DisplayCurrency string  `json:"display_currency,omitempty" firestore:"displayCurrency"`

	IsActive   bool `json:"is_active" firestore:"isActive"`
	IsFeatured bool `json:"is_featured" firestore:"isFeatured"`

	ImageURL  string `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	ImagePath string `json:"image_path,omitempty" firestore:"imagePath,omitempty"`
	FileURL   string `json:"file_url,omitempty" firestore:"fileUrl,omitempty"`
	FilePath  string `json:"file_path,omitempty" firestore:"filePath,omitempty"`
	FileName  string `json:"file_name,omitempty" firestore:"fileName,omitempty"`
	FileSize  int64  `json:"file_size,omitempty" firestore:"fileSize,omitempty"`
	FileType  string `json:"file_type,omitempty" firestore:"fileType,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// IapProductID returns the linked SKU for a platform, empty when unlinked.
func (p *Product) IapProductID(platform string) string {
	if p == nil {
		return ""
	}
	switch platform {
	case PlatformAndroid:
		return p.IapProductIDAndroid
	case PlatformIOS:
		return p.IapProductIDIOS
	}
	return ""
}
