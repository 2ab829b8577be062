package entities

import "time"

// Webhook statuses
const (
	WebhookStatusActive   = "active"
	WebhookStatusInactive = "inactive"
)

type Webhook struct {
	ID            string     `json:"id" gorm:"primaryKey;column:id"`
	OwnerID       string     `json:"owner_id" gorm:"column:owner_id"`
	CreatedAt     time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"column:updated_at"`
	Name          string     `json:"name" gorm:"column:name"`
	URL           string     `json:"url" gorm:"column:url"`
	Token         string     `json:"token" gorm:"column:token"`
	Events        []string   `json:"events" gorm:"column:events;serializer:json"`
	Status        string     `json:"status" gorm:"column:status"`
	LastTriggered *time.Time `json:"last_triggered,omitempty" gorm:"column:last_triggered"`
}

func (Webhook) TableName() string {
	return "webhooks"
}

type ApiKey struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id"`
	OwnerID   string    `json:"owner_id" gorm:"column:owner_id"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	Name      string    `json:"name" gorm:"column:name"`
	ClientID  string    `json:"client_id" gorm:"column:client_id"`
	// O secret completo só é retornado na criação.
	ClientSecret string     `json:"client_secret,omitempty" gorm:"column:client_secret"`
	Scopes       []string   `json:"scopes" gorm:"column:scopes;serializer:json"`
	LastUsed     *time.Time `json:"last_used,omitempty" gorm:"column:last_used"`
}

func (ApiKey) TableName() string {
	return "api_keys"
}
