package models

import "time"

// TradeStatusPending is the only status the service ever records: no
// accept/reject transition is exposed, so requests stay pending forever.
const TradeStatusPending = "pending"

// TradeRequest represents a pending request to trade a book. Requester and
// book fields are denormalized copies taken when the request is created.
type TradeRequest struct {
	ID             int64     `json:"id"`
	BookID         int64     `json:"bookId"`
	RequesterID    int64     `json:"requesterId"`
	RequesterName  string    `json:"requesterName"`
	RequesterEmail string    `json:"requesterEmail"`
	BookTitle      string    `json:"bookTitle"`
	OwnerID        int64     `json:"ownerId"`
	CreatedAt      time.Time `json:"createdAt"`
	Status         string    `json:"status"`
}

// RequestTradeRequest is the JSON body for POST /api/request-trade.
type RequestTradeRequest struct {
	BookID int64 `json:"bookId"`
	UserID int64 `json:"userId"`
}
