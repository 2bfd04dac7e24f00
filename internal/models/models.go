package models

import (
	"time"
)

// Model defines the base interface for all persistent models in the flint client.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
// Implementations handle local store interactions for specific model types.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the store
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the store
	Delete(id string) error                    // Delete removes a model from the store by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// ContentRef identifies a catalog item. Immutable once fetched from the backend.
type ContentRef struct {
	ContentID string `json:"contentId"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Year      int    `json:"year,omitempty"`
	Author    string `json:"author,omitempty"`
}

// Collection represents a collection summary from the list and detail endpoints.
type Collection struct {
	CollectionID string `json:"collectionId"`
	ImageURL     string `json:"imageUrl"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CreatedAt    string `json:"createdAt"`
}

// CollectionPage is one cursor-paged slice of the collection listing.
type CollectionPage struct {
	Items      []Collection `json:"items"`
	NextCursor string       `json:"nextCursor"`
	HasNext    bool         `json:"hasNext"`
}

// ContentItem is one ranked entry of a collection create payload.
// Order within the contentList is the display rank.
type ContentItem struct {
	ContentID string `json:"contentId"`
	IsSpoiler bool   `json:"isSpoiler"`
	Reason    string `json:"reason"`
}

// CreateCollectionRequest is the wire shape for collection creation.
type CreateCollectionRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	IsPublic    bool          `json:"isPublic"`
	ContentList []ContentItem `json:"contentList"`
}
