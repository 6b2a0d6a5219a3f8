package models

// Book represents a book offered for trade. OwnerName, City and Neighborhood
// are copies of the owner's fields taken when the book is created; they are
// never re-synced if the owner record changes.
type Book struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	OwnerName    string `json:"ownerName"`
	OwnerID      int64  `json:"ownerId"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Description  string `json:"description"`
}

// AddBookRequest is the JSON body for POST /api/books.
type AddBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	OwnerID     int64  `json:"ownerId"`
}
