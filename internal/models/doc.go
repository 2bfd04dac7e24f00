// Package models defines domain entities and persistence interfaces for the Flint collection client.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs representing backend data
//   - [ContentRef] : Catalog item metadata returned by content search
//   - [Collection] : Collection summary from list/detail endpoints
//   - [CollectionPage] : Cursor-paged collection listing
//   - [ContentItem] : One ranked entry of a collection create payload
//   - [CreateCollectionRequest] : Wire shape for collection creation
//
// 2. Persistent Entities: Local-store-backed models with full lifecycle management
//   - [SearchRecord] : A recorded catalog search with keyword and result count
//
// Persistent entities implement the Model interface providing ID generation,
// timestamps, validation, and soft delete support. The Repository[T] interface
// defines standard CRUD operations for local store access.
package models
