package entity

import (
	"time"
)

const (
	PurchaseStatusCompleted = "completed"
	PurchaseStatusPending   = "pending"
	PurchaseStatusRefunded  = "refunded"
)

// Purchase is a transaction record written by the mobile client at purchase
// time. The admin API reads and annotates these; it never creates them.
type Purchase struct {
	ID            string `json:"id" firestore:"id"`
	UserID        string `json:"user_id" firestore:"userId"`
	UserEmail     string `json:"user_email,omitempty" firestore:"userEmail,omitempty"`
	UserName      string `json:"user_name,omitempty" firestore:"userName,omitempty"`
	ProductID     string `json:"product_id" firestore:"productId"`
	ProductTitle  string `json:"product_title,omitempty" firestore:"productTitle,omitempty"`
	IapProductID  string `json:"iap_product_id,omitempty" firestore:"iapProductId,omitempty"`
	TransactionID string `json:"transaction_id,omitempty" firestore:"transactionId,omitempty"`
	Platform      string `json:"platform,omitempty" firestore:"platform,omitempty"`

	ProductPrice          float64 `json:"product_price" firestore:"productPrice"`
	ProductPriceFormatted string  `json:"product_price_formatted,omitempty" firestore:"productPriceFormatted,omitempty"`

	Status       string     `json:"status" firestore:"status"`
	RefundDate   *time.Time `json:"refund_date,omitempty" firestore:"refundDate,omitempty"`
	RefundReason string     `json:"refund_reason,omitempty" firestore:"refundReason,omitempty"`
	AdminNotes   string     `json:"admin_notes,omitempty" firestore:"adminNotes,omitempty"`

	PurchaseDate time.Time `json:"purchase_date" firestore:"purchaseDate"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}

// PurchaseStats aggregates completed purchases for the reporting screens.
type PurchaseStats struct {
	TotalPurchases    int     `json:"total_purchases"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}

type DashboardStats struct {
	TotalProducts   int     `json:"total_products"`
	ActiveProducts  int     `json:"active_products"`
	TotalCategories int     `json:"total_categories"`
	TotalUsers      int     `json:"total_users"`
	TotalPurchases  int     `json:"total_purchases"`
	TotalRevenue    float64 `json:"total_revenue"`
}
