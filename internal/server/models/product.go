package models

// Product is a catalogue item. ImageURL is empty or points at a file stored
// by the upload handler, e.g. "/uploads/image-1712345678901.png".
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}
