package entity

import (
	"time"
)

type User struct {
	ID          string `json:"id" firestore:"id"`
	Email       string `json:"email" firestore:"email"`
	DisplayName string `json:"display_name" firestore:"displayName"`
	PhotoURL    string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
	Role        string `json:"role" firestore:"role"`
	IsActive    bool   `json:"is_active" firestore:"isActive"`

	TotalPurchases int     `json:"total_purchases" firestore:"totalPurchases"`
	TotalSpent     float64 `json:"total_spent" firestore:"totalSpent"`

	LastLogin time.Time `json:"last_login" firestore:"lastLogin"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
