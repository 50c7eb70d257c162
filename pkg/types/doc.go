// Package types defines the Catalog and repository interfaces, entity types,
// and standard errors for the pokedex catalog.
//
// The catalog tracks Pokemon, the Owners and Reviewers around them, the
// Categories they belong to, and the Countries owners reside in. Entities are
// plain records identified by store-assigned numeric IDs; many-to-many links
// between Pokemon and Owners/Categories are held in association rows.
package types
